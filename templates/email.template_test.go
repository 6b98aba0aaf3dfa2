package templates_test

import (
	"strings"
	"testing"

	"github.com/VinukaThejana/immerzo/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeadAlertTmpl(t *testing.T) {
	html, err := templates.Email{}.GetLeadAlertTmpl(templates.LeadAlert{
		Kind:  "franchise",
		ID:    "65f0c0ffee",
		Name:  "Ravi <script>alert(1)</script>",
		Email: "ravi@example.com",
		Phone: "9999999999",
		Details: map[string]string{
			"City tier":        "Tier 2",
			"Preferred cities": "Pune, Mysuru",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "New franchise inquiry")
	assert.Contains(t, html, "65f0c0ffee")
	assert.Contains(t, html, "ravi@example.com")
	assert.NotContains(t, html, "<script>")
	assert.Less(t, strings.Index(html, "City tier"), strings.Index(html, "Preferred cities"))
}
