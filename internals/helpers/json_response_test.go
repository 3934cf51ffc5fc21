package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"defaults", "/x", 1, 20, 0},
		{"explicit", "/x?page=3&per_page=10", 3, 10, 20},
		{"limit alias", "/x?limit=15", 1, 15, 0},
		{"per_page wins over limit", "/x?per_page=10&limit=50", 1, 10, 0},
		{"capped at max", "/x?per_page=500", 1, 100, 0},
		{"negative page clamps", "/x?page=-2", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got Paging
			app.Get("/x", func(c *fiber.Ctx) error {
				got = ResolvePaging(c, 20, 100)
				return c.SendString("ok")
			})
			resp, err := app.Test(httptest.NewRequest("GET", tt.url, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			resp.Body.Close()

			if got.Page != tt.wantPage || got.PerPage != tt.wantPerPage || got.Offset != tt.wantOffset {
				t.Errorf("got %+v, want page=%d per_page=%d offset=%d",
					got, tt.wantPage, tt.wantPerPage, tt.wantOffset)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(2, 10, 35)
	if p.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("page 2 of 4 should have next and prev, got %+v", p)
	}

	empty := BuildPaginationFromPage(1, 10, 0)
	if empty.TotalPages != 1 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty result should report a single page, got %+v", empty)
	}
}

func TestJsonErrorShape(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed ErrorResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.Success {
		t.Error("success should be false")
	}
	if parsed.ErrorCode != "NOT_FOUND" {
		t.Errorf("error_code = %q, want NOT_FOUND", parsed.ErrorCode)
	}
	if parsed.Message != "Evento não encontrado" {
		t.Errorf("message = %q", parsed.Message)
	}
}

func TestJsonOKShape(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"k": "v"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Success || parsed.Message != "ok" || parsed.Data["k"] != "v" {
		t.Errorf("unexpected body: %+v", parsed)
	}
}
