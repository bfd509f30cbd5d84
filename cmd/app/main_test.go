package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"travigo/internal/api/controllers"
	"travigo/internal/config"
	"travigo/pkg/middleware"
	mem "travigo/pkg/memcache"
	"travigo/pkg/observability"
	"travigo/pkg/utils"
)

func TestRouterWiring(t *testing.T) {
	cfg := config.Config{AppEnv: "test", CORSOrigin: "http://localhost:5173", BodyLimitBytes: 16 * 1024}
	r := ProvideRouter(
		cfg,
		zerolog.Nop(),
		observability.InitRegistry(),
		utils.NewJWTManager(config.JWTConfig{Secret: "test", TTL: time.Hour}),
		mem.NewRevokedTokens(),
		middleware.NewUserRateLimiter(5),
		controllers.NewAccountController(nil),
		controllers.NewItineraryController(nil),
	)

	cases := []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/api/v1/auth/healthchecker", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodPost, "/api/v1/itineraries/generate", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/itineraries", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/users/preferences", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/users/logout", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}")))
		if rr.Code != tc.code {
			t.Fatalf("%s %s: got %d, want %d", tc.method, tc.path, rr.Code, tc.code)
		}
		if rr.Header().Get("X-Trace-ID") == "" {
			t.Fatalf("%s %s: missing trace id header", tc.method, tc.path)
		}
	}
}
