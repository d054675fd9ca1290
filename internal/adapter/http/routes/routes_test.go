package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"athwela/internal/adapter/http/handlers"
	"athwela/internal/adapter/http/handlers/mocks"
	appconfig "athwela/internal/config"
	"athwela/internal/domain/entities"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	needs    *mocks.MockINeedUseCase
	guard    *mocks.MockIPinGuard
	registry *mocks.MockIRegistryUseCase
	admin    *mocks.MockIAdminUseCase
	events   *mocks.MockIVolunteerEventUseCase
	router   *gin.Engine
}

func newRouterFixture(t *testing.T, cfg appconfig.Config) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := routerFixture{
		needs:    mocks.NewMockINeedUseCase(ctrl),
		guard:    mocks.NewMockIPinGuard(ctrl),
		registry: mocks.NewMockIRegistryUseCase(ctrl),
		admin:    mocks.NewMockIAdminUseCase(ctrl),
		events:   mocks.NewMockIVolunteerEventUseCase(ctrl),
	}
	f.router = NewRouter(cfg, Handlers{
		Need:     handlers.NewNeedHandler(f.needs, f.registry),
		Record:   handlers.NewRecordHandler(mocks.NewMockIRecordUseCase(ctrl), f.registry),
		Guard:    handlers.NewGuardHandler(f.guard, f.registry),
		Registry: handlers.NewRegistryHandler(f.registry),
		Stats:    handlers.NewStatsHandler(mocks.NewMockIStatsUseCase(ctrl)),
		Admin:    handlers.NewAdminHandler(f.admin),
		Event:    handlers.NewEventHandler(f.events),
	})
	return f
}

func TestRouter_Ping(t *testing.T) {
	f := newRouterFixture(t, appconfig.Config{CORSAllowedOrigins: "*"})

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_NeedRoutes(t *testing.T) {
	f := newRouterFixture(t, appconfig.Config{CORSAllowedOrigins: "*"})
	f.needs.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Need{ID: "n-1", Quantity: 2}, nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/needs/n-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_GuardRoutesUseCollectionNames(t *testing.T) {
	f := newRouterFixture(t, appconfig.Config{CORSAllowedOrigins: "*"})
	f.registry.EXPECT().Session("").Return(usecase.NewRegistrySession(nil, ""))
	f.guard.EXPECT().AuthorizedDelete(gomock.Any(), gomock.Any(), entities.CollectionServiceRequests, "sr-1", "1234").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/service-requests/sr-1", strings.NewReader(`{"pin":"1234"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	secret := "admin-secret"
	f := newRouterFixture(t, appconfig.Config{CORSAllowedOrigins: "*", JWTSecret: secret})

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/admin/needs/n-1/close", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "mod-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	f.admin.EXPECT().ForceClose(gomock.Any(), "n-1").Return(entities.Need{ID: "n-1", Closed: true}, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/needs/n-1/close", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EventRoutes(t *testing.T) {
	secret := "admin-secret"
	f := newRouterFixture(t, appconfig.Config{CORSAllowedOrigins: "*", JWTSecret: secret})
	f.events.EXPECT().Register(gomock.Any(), "ev-1").Return(entities.VolunteerEvent{ID: "ev-1", RegisteredVolunteers: 1}, nil)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/events/ev-1/registrations", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	body := `{"title":"Cleanup","type":"CLEANUP","date":"2026-06-01","required_volunteers":5}`
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	f := newRouterFixture(t, appconfig.Config{CORSAllowedOrigins: "https://relief.example.org"})

	req := httptest.NewRequest(http.MethodOptions, "/v1/needs", nil)
	req.Header.Set("Origin", "https://relief.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", handlers.HeaderClientID)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://relief.example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	c := corsConfig([]string{"https://a.example", "https://b.example"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowOrigins)
}
