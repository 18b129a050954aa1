package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/api/handler"
	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/service"
)

type routerResolver struct{}

func (routerResolver) Resolve(_ context.Context, role domain.Role, id string) (*domain.Actor, error) {
	return &domain.Actor{ID: id, Role: role}, nil
}

type routerDenylist struct{}

func (routerDenylist) Revoke(context.Context, string, time.Time) error { return nil }
func (routerDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }

type routerFixture struct {
	e      *echo.Echo
	tokens *service.TokenService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	tokens, err := service.NewTokenService(service.TokenConfig{Secret: "router-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	reg := prometheus.NewRegistry()

	// Handlers with nil services are fine: the tests below never reach them.
	h := Handlers{
		AdminAuth: handler.NewAuthHandler(nil, domain.RoleAdmin, true),
		ZoneAuth:  handler.NewAuthHandler(nil, domain.RoleZone, false),
		UserAuth:  handler.NewAuthHandler(nil, domain.RoleUser, true),
		Catalog:   handler.NewCatalogHandler(nil, nil, nil, nil, nil, nil),
		Zones:     handler.NewZoneHandler(nil, nil),
		Users:     handler.NewUserHandler(nil),
		Receipts:  handler.NewReceiptHandler(nil),
		Orders:    handler.NewOrderHandler(nil),
		Health:    handler.NewHealthHandler(nil),
	}
	e := NewRouter(h, Options{
		Verifier:    tokens,
		Resolver:    routerResolver{},
		Denylist:    routerDenylist{},
		CORSOrigins: []string{"https://shop.example"},
		Registerer:  reg,
		Gatherer:    reg,
		Logger:      zerolog.Nop(),
	})
	return &routerFixture{e: e, tokens: tokens}
}

func (f *routerFixture) do(t *testing.T, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) token(t *testing.T, role domain.Role) string {
	t.Helper()
	tok, err := f.tokens.Issue("actor-1", role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return tok
}

func TestRouter_InfrastructureRoutes(t *testing.T) {
	f := newRouterFixture(t)

	if rec := f.do(t, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("/health: expected 200, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/health/ready", ""); rec.Code != http.StatusOK {
		t.Errorf("/health/ready with no checks: expected 200, got %d", rec.Code)
	}

	// One request through the instrumented stack so the collectors have samples.
	f.do(t, http.MethodGet, "/api/admin/users", "")
	rec := f.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "commerce_http_requests_total") {
		t.Errorf("/metrics: expected request counter, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/swagger/doc.json", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Commerce API") {
		t.Errorf("/swagger/doc.json: expected document, got %d", rec.Code)
	}
}

func TestRouter_GuardsEachSurface(t *testing.T) {
	f := newRouterFixture(t)
	admin := f.token(t, domain.RoleAdmin)
	zone := f.token(t, domain.RoleZone)
	user := f.token(t, domain.RoleUser)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"admin route without token", http.MethodGet, "/api/admin/users", "", http.StatusUnauthorized},
		{"admin route with zone token", http.MethodGet, "/api/admin/all-zones", zone, http.StatusForbidden},
		{"admin route with user token", http.MethodDelete, "/api/admin/delete-product/p1", user, http.StatusForbidden},
		{"zone route with admin token", http.MethodGet, "/api/zone/all-receipts", admin, http.StatusForbidden},
		{"zone route with user token", http.MethodPost, "/api/zone/generate-receipt", user, http.StatusForbidden},
		{"user route without token", http.MethodGet, "/api/products", "", http.StatusUnauthorized},
		{"user route with zone token", http.MethodPost, "/api/place-order", zone, http.StatusForbidden},
		{"user route with garbage token", http.MethodGet, "/api/my-orders", "garbage", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		rec := f.do(t, tc.method, tc.path, tc.token)
		if rec.Code != tc.want {
			t.Errorf("%s: expected %d, got %d (%s)", tc.name, tc.want, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_ProfileReachesHandler(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/zone/profile", f.token(t, domain.RoleZone))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"role":"zone"`) {
		t.Errorf("unexpected profile body %s", rec.Body.String())
	}
}

func TestRouter_CORS(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/signin", nil)
	req.Header.Set(echo.HeaderOrigin, "https://shop.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://shop.example" {
		t.Errorf("allowed origin: expected echo of origin, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/signin", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Errorf("foreign origin must not be allowed, got %q", got)
	}
}
