package templates

import (
	"bytes"
	"html/template"
	"sort"
)

// Email contains all the templates that are related to email
type Email struct{}

// LeadAlert contains the details that are rendered in the new lead email
type LeadAlert struct {
	Kind    string
	ID      string
	Name    string
	Email   string
	Phone   string
	Details map[string]string
}

type detail struct {
	Label string
	Value string
}

var leadAlertTmpl = template.Must(template.New("leadAlert").Parse(`
<html>
  <head>
    <style>
      .container {
        display: flex;
        flex-direction: column;
        gap: 4;
        margin-top: 20px;
        margin-bottom: 40px;
        font-family: system-ui, -apple-system, "Helvetica Neue", Helvetica, Arial, sans-serif;
      }
      table {
        border-collapse: collapse;
      }
      td {
        border: 1px solid rgba(0, 0, 0, 0.1);
        padding: 6px 12px;
      }
      .label {
        font-weight: 600;
        color: rgba(0, 0, 0, 0.65);
      }
    </style>
  </head>
  <body>
    <h1>IMMERZO</h1>
    <strong>New {{.Kind}} inquiry</strong>
    <div class="container">
      <table>
        <tr><td class="label">Reference</td><td>{{.ID}}</td></tr>
        <tr><td class="label">Name</td><td>{{.Name}}</td></tr>
        <tr><td class="label">Email</td><td>{{.Email}}</td></tr>
        <tr><td class="label">Phone</td><td>{{.Phone}}</td></tr>
        {{range .Details}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
        {{end}}
      </table>
    </div>
    <footer>
      This email was sent because a new inquiry was submitted on the website
    </footer>
  </body>
</html>
`))

// GetLeadAlertTmpl is a function that is used to get the new lead alert template
func (Email) GetLeadAlertTmpl(alert LeadAlert) (emailHTML string, err error) {
	details := make([]detail, 0, len(alert.Details))
	for label, value := range alert.Details {
		details = append(details, detail{Label: label, Value: value})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Label < details[j].Label
	})

	var buf bytes.Buffer
	err = leadAlertTmpl.Execute(&buf, struct {
		Kind    string
		ID      string
		Name    string
		Email   string
		Phone   string
		Details []detail
	}{
		Kind:    alert.Kind,
		ID:      alert.ID,
		Name:    alert.Name,
		Email:   alert.Email,
		Phone:   alert.Phone,
		Details: details,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
