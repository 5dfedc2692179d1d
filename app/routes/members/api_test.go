package members

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreateMemberRejectsMissingName(t *testing.T) {
	app := fiber.New()
	SetupMembersRoutes(app, nil)

	tests := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","nickname":"ann"}`},
		{"no name field", `{"nickname":"ann"}`},
		{"not json", `name=Alice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/members", strings.NewReader(tt.body))
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
