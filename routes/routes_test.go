package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/connect"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/models"
	"github.com/VinukaThejana/immerzo/passcode"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/VinukaThejana/immerzo/store"
	"github.com/VinukaThejana/immerzo/upload"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminSecret = "s3cret"

type harness struct {
	app   *fiber.App
	store *store.Memory
	dir   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dir := t.TempDir()
	env := config.Env{
		DevEnv:             string(config.Test),
		StoreDriver:        enums.StoreMemory,
		UploadDriver:       enums.UploadLocal,
		UploadDir:          dir,
		UploadPublicPrefix: "/uploads",
		OTPFixedCode:       "123456",
		AdminSecret:        adminSecret,
	}

	mem := store.NewMemory()
	conn := connect.Connector{
		Store:   mem,
		Uploads: upload.NewLocal(dir, env.UploadPublicPrefix),
	}

	otpS := services.OTP{
		Store:  conn.Store,
		Sender: passcode.Fixed{Code: env.OTPFixedCode},
	}
	inquiryS := services.Inquiry{
		Store:   conn.Store,
		OTP:     &otpS,
		Uploads: conn.Uploads,
	}

	app := New(&env)
	SetupRoutes(app, &conn, &env, &otpS, &inquiryS)

	return &harness{
		app:   app,
		store: mem,
		dir:   dir,
	}
}

func (h *harness) do(t *testing.T, req *http.Request) (int, map[string]interface{}) {
	t.Helper()

	res, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	body := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return res.StatusCode, body
}

func (h *harness) get(t *testing.T, target string) (int, map[string]interface{}) {
	return h.do(t, httptest.NewRequest(fiber.MethodGet, target, nil))
}

func (h *harness) postJSON(t *testing.T, target string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return h.do(t, req)
}

func (h *harness) postMall(t *testing.T, fields map[string]string, filename string, data []byte) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if filename != "" {
		part, err := w.CreateFormFile("floorplan", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/mall", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return h.do(t, req)
}

func franchise(otpCode string) map[string]interface{} {
	payload := map[string]interface{}{
		"full_name":                 "Asha Rao",
		"email":                     "asha@example.com",
		"phone":                     "9999999999",
		"investment_capacity_lakhs": 75.5,
		"preferred_cities":          "Pune, Nagpur",
		"city_tier":                 "Tier 2",
	}
	if otpCode != "" {
		payload["otp_code"] = otpCode
	}
	return payload
}

func mall() map[string]string {
	return map[string]string{
		"contact_name":         "Vikram",
		"email":                "vikram@example.com",
		"phone":                "9876543210",
		"mall_name":            "Orion",
		"location_city":        "Bengaluru",
		"available_space_sqft": "2500",
	}
}

func franchiseDocs(t *testing.T, s store.Store) []models.FranchiseInquiry {
	t.Helper()

	docs := []models.FranchiseInquiry{}
	require.NoError(t, s.GetDocuments(context.Background(), enums.FranchiseInquiryCollection, store.Query{}, &docs))
	return docs
}

func TestInfoEndpoints(t *testing.T) {
	h := newHarness(t)

	status, body := h.get(t, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "IMMERZO Backend Running", body["message"])

	status, body = h.get(t, "/api/metrics")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 4.7, body["google_rating"])
	assert.Equal(t, float64(1800), body["avg_daily_footfall"])
	assert.Equal(t, "Fri-Sun", body["peak_days"])

	status, body = h.get(t, "/api/resources")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "/assets/franchise-kit.pdf", body["franchise_kit_url"])

	status, body = h.get(t, "/health")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["health"])
}

func TestDiagnostic(t *testing.T) {
	h := newHarness(t)

	status, body := h.get(t, "/test")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "Connected", body["connection_status"])
	assert.Equal(t, []interface{}{}, body["collections"])

	h.postJSON(t, "/api/otp/start", map[string]string{"phone": "9999999999", "purpose": "mall"})

	_, body = h.get(t, "/test")
	assert.Equal(t, []interface{}{enums.OTPRequestCollection}, body["collections"])
}

func TestOTPRoundTrip(t *testing.T) {
	h := newHarness(t)

	status, body := h.postJSON(t, "/api/otp/start", map[string]string{"phone": "9999999999", "purpose": "franchise"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "OTP sent", body["message"])
	assert.Equal(t, "123456", body["demo_code"])

	status, body = h.postJSON(t, "/api/otp/verify", map[string]string{"phone": "9999999999", "purpose": "franchise", "code": "000000"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid OTP", body["detail"])

	status, body = h.postJSON(t, "/api/otp/verify", map[string]string{"phone": "9999999999", "purpose": "franchise", "code": "123456"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = h.postJSON(t, "/api/otp/verify", map[string]string{"phone": "9999999999", "purpose": "franchise", "code": "123456"})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestOTPVerifyNotFound(t *testing.T) {
	h := newHarness(t)

	status, body := h.postJSON(t, "/api/otp/verify", map[string]string{"phone": "9999999999", "purpose": "mall", "code": "123456"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "OTP not found", body["detail"])
}

func TestOTPStartValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "unknown purpose", payload: map[string]string{"phone": "9999999999", "purpose": "kiosk"}},
		{name: "short phone", payload: map[string]string{"phone": "12345", "purpose": "mall"}},
		{name: "missing phone", payload: map[string]string{"purpose": "mall"}},
		{name: "phone with brackets", payload: map[string]string{"phone": "(999)9999999", "purpose": "franchise"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			status, body := h.postJSON(t, "/api/otp/start", tt.payload)
			assert.Equal(t, fiber.StatusUnprocessableEntity, status)
			assert.Equal(t, "validation_failed", body["detail"])
			assert.NotEmpty(t, body["errors"])
		})
	}
}

func TestFranchiseWithoutOTP(t *testing.T) {
	h := newHarness(t)

	status, body := h.postJSON(t, "/api/franchise", franchise(""))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["id"])

	docs := franchiseDocs(t, h.store)
	require.Len(t, docs, 1)
	assert.Equal(t, "Asha Rao", docs[0].FullName)
	assert.Equal(t, 75.5, docs[0].InvestmentCapacityLakhs)
	assert.False(t, docs[0].OTPVerified)
}

func TestFranchiseWithOTP(t *testing.T) {
	h := newHarness(t)

	h.postJSON(t, "/api/otp/start", map[string]string{"phone": "9999999999", "purpose": "franchise"})

	status, _ := h.postJSON(t, "/api/franchise", franchise("123456"))
	require.Equal(t, fiber.StatusOK, status)

	docs := franchiseDocs(t, h.store)
	require.Len(t, docs, 1)
	assert.True(t, docs[0].OTPVerified)
}

func TestFranchiseWrongOTPStoresNothing(t *testing.T) {
	h := newHarness(t)

	h.postJSON(t, "/api/otp/start", map[string]string{"phone": "9999999999", "purpose": "franchise"})

	status, body := h.postJSON(t, "/api/franchise", franchise("000000"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid OTP", body["detail"])
	assert.Empty(t, franchiseDocs(t, h.store))
}

func TestFranchiseValidation(t *testing.T) {
	h := newHarness(t)

	payload := franchise("")
	payload["city_tier"] = "Tier 3"
	payload["email"] = "not-an-email"
	delete(payload, "investment_capacity_lakhs")

	status, body := h.postJSON(t, "/api/franchise", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "validation_failed", body["detail"])
	assert.Len(t, body["errors"], 3)
	assert.Empty(t, franchiseDocs(t, h.store))
}

func TestMallWithFloorplan(t *testing.T) {
	h := newHarness(t)
	data := []byte("%PDF-1.4 floorplan")

	status, body := h.postMall(t, mall(), "plan.pdf", data)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.NotEmpty(t, body["id"])

	file, ok := body["file"].(map[string]interface{})
	require.True(t, ok)
	filename, _ := file["filename"].(string)
	assert.True(t, strings.HasSuffix(filename, "_plan.pdf"))
	assert.Equal(t, "/uploads/"+filename, file["path"])
	assert.Equal(t, float64(len(data)), file["size"])

	saved, err := os.ReadFile(filepath.Join(h.dir, filename))
	require.NoError(t, err)
	assert.Equal(t, data, saved)

	res, err := h.app.Test(httptest.NewRequest(fiber.MethodGet, "/uploads/"+filename, nil), -1)
	require.NoError(t, err)
	defer res.Body.Close()
	served, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, data, served)

	docs := []models.MallInquiry{}
	require.NoError(t, h.store.GetDocuments(context.Background(), enums.MallInquiryCollection, store.Query{}, &docs))
	require.Len(t, docs, 1)
	assert.True(t, docs[0].HasFloorplan)
	assert.Equal(t, 2500, docs[0].AvailableSpaceSqft)
	require.NotNil(t, docs[0].Floorplan)
	assert.Equal(t, filename, docs[0].Floorplan.Filename)
}

func TestMallWithoutFloorplan(t *testing.T) {
	h := newHarness(t)

	status, body := h.postMall(t, mall(), "", nil)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Nil(t, body["file"])

	entries, err := os.ReadDir(h.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMallWrongOTPSkipsUpload(t *testing.T) {
	h := newHarness(t)

	fields := mall()
	fields["otp_code"] = "123456"

	status, body := h.postMall(t, fields, "plan.pdf", []byte("plan"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "OTP not found", body["detail"])

	entries, err := os.ReadDir(h.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMallValidation(t *testing.T) {
	h := newHarness(t)

	fields := mall()
	delete(fields, "mall_name")

	status, body := h.postMall(t, fields, "", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "validation_failed", body["detail"])
}

func TestAdminInquiries(t *testing.T) {
	h := newHarness(t)

	h.postJSON(t, "/api/franchise", franchise(""))
	h.postJSON(t, "/api/franchise", franchise(""))

	status, _ := h.get(t, "/admin/inquiries/franchise")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/inquiries/franchise?limit=1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer wrong")
	status, _ = h.do(t, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req = httptest.NewRequest(fiber.MethodGet, "/admin/inquiries/franchise?limit=1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminSecret)
	status, body := h.do(t, req)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	req = httptest.NewRequest(fiber.MethodGet, "/admin/inquiries/kiosk", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminSecret)
	status, _ = h.do(t, req)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMallLargeFloorplan(t *testing.T) {
	h := newHarness(t)
	data := bytes.Repeat([]byte("f"), 5*1024*1024)

	status, body := h.postMall(t, mall(), "plan.pdf", data)
	require.Equal(t, fiber.StatusOK, status, body)

	file, ok := body["file"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(len(data)), file["size"])
}
