package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestProfileRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := newTestEnv()
	router := buildRouter(logDiscard(), nil, env.deps)
	token := signupAndLogin(t, router)
	base := "/stores/mie-bangladesh"

	rec := doJSON(t, router, http.MethodGet, base+"/profile", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get profile: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Mie Bangladesh"`) {
		t.Fatalf("unexpected profile body: %s", rec.Body.String())
	}

	update := `{
		"name": "Mie Bangladesh Pusat",
		"address": "Jl. Merdeka 99",
		"phone": "0813",
		"email": "Pusat@Example.com"
	}`
	rec = doJSON(t, router, http.MethodPut, base+"/profile", token, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("put profile: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	saved := env.stores.byKey["mie-bangladesh"]
	if saved.Name != "Mie Bangladesh Pusat" || saved.Address != "Jl. Merdeka 99" {
		t.Fatalf("update not persisted: %+v", saved)
	}
	if saved.Email != "pusat@example.com" {
		t.Fatalf("email not normalized: %q", saved.Email)
	}
	// The key never changes; it is part of every store URL.
	if saved.Key != "mie-bangladesh" {
		t.Fatalf("key changed to %q", saved.Key)
	}
}

func TestProfileUpdateRequiresName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := newTestEnv()
	router := buildRouter(logDiscard(), nil, env.deps)
	token := signupAndLogin(t, router)

	rec := doJSON(t, router, http.MethodPut, "/stores/mie-bangladesh/profile", token, `{"name":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
