package payments

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/TontunHi/it-fund-vr/app/storage"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

// Validation failures must be rejected before any persistence, so the
// routes are registered without a live database.
func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	SetupPaymentsRoutes(app, nil, storage.NewResolver(t.TempDir()))
	return app
}

func multipartBody(t *testing.T, fields map[string]string, fileField string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, "slip.png")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(pngBytes); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()
	return body, w.FormDataContentType()
}

func TestUploadSlipRequiresFile(t *testing.T) {
	app := testApp(t)

	body, contentType := multipartBody(t, map[string]string{
		"memberId": "0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb",
		"month":    "6",
		"year":     "2024",
		"amount":   "100",
	}, "")

	req := httptest.NewRequest("POST", "/api/payments", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("missing slip file: status = %d, want 400", resp.StatusCode)
	}
}

func TestUploadSlipRejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"non-numeric month", map[string]string{
			"memberId": "0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb",
			"month":    "June", "year": "2024", "amount": "100",
		}},
		{"month out of range", map[string]string{
			"memberId": "0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb",
			"month":    "13", "year": "2024", "amount": "100",
		}},
		{"missing member id", map[string]string{
			"month": "6", "year": "2024", "amount": "100",
		}},
		{"malformed member id", map[string]string{
			"memberId": "42",
			"month":    "6", "year": "2024", "amount": "100",
		}},
		{"non-numeric amount", map[string]string{
			"memberId": "0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb",
			"month":    "6", "year": "2024", "amount": "lots",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t)
			body, contentType := multipartBody(t, tt.fields, "slipImage")

			req := httptest.NewRequest("POST", "/api/payments", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestUpdateStatusRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown status", `{"memberId":"0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb","month":6,"year":2024,"status":"maybe"}`},
		{"unpaid is not storable", `{"memberId":"0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb","month":6,"year":2024,"status":"unpaid"}`},
		{"missing member id", `{"month":6,"year":2024,"status":"approved"}`},
		{"month out of range", `{"memberId":"0b96a1ab-7563-4b85-b5a0-d4e5cc8d3bfb","month":0,"year":2024,"status":"approved"}`},
		{"not json", `month=6`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t)

			req := httptest.NewRequest("PUT", "/api/payments/status", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}
