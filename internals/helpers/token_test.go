package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func runWithLocals(t *testing.T, locals map[string]any, fn func(c *fiber.Ctx)) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		fn(c)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
}

func TestGetUserIDFromToken(t *testing.T) {
	id := uuid.New()

	runWithLocals(t, map[string]any{LocUserID: id}, func(c *fiber.Ctx) {
		got, err := GetUserIDFromToken(c)
		if err != nil || got != id {
			t.Errorf("uuid local: got %v, %v", got, err)
		}
	})

	runWithLocals(t, map[string]any{LocUserID: id.String()}, func(c *fiber.Ctx) {
		got, err := GetUserIDFromToken(c)
		if err != nil || got != id {
			t.Errorf("string local: got %v, %v", got, err)
		}
	})

	runWithLocals(t, map[string]any{}, func(c *fiber.Ctx) {
		if _, err := GetUserIDFromToken(c); err == nil {
			t.Error("missing local should fail")
		} else if fe, ok := err.(*fiber.Error); !ok || fe.Code != fiber.StatusUnauthorized {
			t.Errorf("missing local should be 401, got %v", err)
		}
	})

	runWithLocals(t, map[string]any{LocUserID: "not-a-uuid"}, func(c *fiber.Ctx) {
		if _, err := GetUserIDFromToken(c); err == nil {
			t.Error("malformed id should fail")
		} else if fe, ok := err.(*fiber.Error); !ok || fe.Code != fiber.StatusBadRequest {
			t.Errorf("malformed id should be 400, got %v", err)
		}
	})
}

func TestIsStaff(t *testing.T) {
	tests := []struct {
		name   string
		locals map[string]any
		want   bool
	}{
		{"admin", map[string]any{LocRole: "admin"}, true},
		{"maestro", map[string]any{LocRole: "maestro"}, true},
		{"spalla flag", map[string]any{LocRole: "musico", LocIsSpalla: true}, true},
		{"plain musician", map[string]any{LocRole: "musico"}, false},
		{"section leader alone is not staff", map[string]any{LocRole: "musico", LocIsSectionLeader: true}, false},
		{"no locals", map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runWithLocals(t, tt.locals, func(c *fiber.Ctx) {
				if got := IsStaff(c); got != tt.want {
					t.Errorf("IsStaff = %v, want %v", got, tt.want)
				}
			})
		})
	}
}
