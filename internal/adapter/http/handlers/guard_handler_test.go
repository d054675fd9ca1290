package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"athwela/internal/adapter/http/handlers/mocks"
	"athwela/internal/domain/entities"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newGuardRouter(t *testing.T) (*mocks.MockIPinGuard, *mocks.MockIRegistryUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	guard := mocks.NewMockIPinGuard(ctrl)
	registry := mocks.NewMockIRegistryUseCase(ctrl)
	h := NewGuardHandler(guard, registry)

	r := gin.New()
	r.PATCH("/v1/people/:id", h.Update(entities.CollectionPeople))
	r.DELETE("/v1/service-requests/:id", h.Delete(entities.CollectionServiceRequests))
	return guard, registry, r
}

func TestGuardHandler_Update(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		_, _, r := newGuardRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/people/p-1", bytes.NewBufferString(`{"pin":"1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong pin", func(t *testing.T) {
		guard, _, r := newGuardRouter(t)
		guard.EXPECT().AuthorizedUpdate(gomock.Any(), entities.CollectionPeople, "p-1", "0000", entities.Patch{"status": "SAFE"}).Return(usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPatch, "/v1/people/p-1", bytes.NewBufferString(`{"pin":"0000","fields":{"status":"SAFE"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("protected fields only", func(t *testing.T) {
		guard, _, r := newGuardRouter(t)
		guard.EXPECT().AuthorizedUpdate(gomock.Any(), entities.CollectionPeople, "p-1", "1234", gomock.Any()).Return(usecase.ErrInvalidPatch)

		req := httptest.NewRequest(http.MethodPatch, "/v1/people/p-1", bytes.NewBufferString(`{"pin":"1234","fields":{"secret_pin":"9999"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		guard, _, r := newGuardRouter(t)
		guard.EXPECT().AuthorizedUpdate(gomock.Any(), entities.CollectionPeople, "p-1", "1234", entities.Patch{"status": "SAFE"}).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/people/p-1", bytes.NewBufferString(`{"pin":"1234","fields":{"status":"SAFE"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestGuardHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		guard, registry, r := newGuardRouter(t)
		registry.EXPECT().Session("").Return(usecase.NewRegistrySession(nil, ""))
		guard.EXPECT().AuthorizedDelete(gomock.Any(), gomock.Any(), entities.CollectionServiceRequests, "sr-1", "1234").Return(usecase.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-requests/sr-1", bytes.NewBufferString(`{"pin":"1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		guard, registry, r := newGuardRouter(t)
		session := usecase.NewRegistrySession(nil, "client-1")
		registry.EXPECT().Session("client-1").Return(session)
		guard.EXPECT().AuthorizedDelete(gomock.Any(), session, entities.CollectionServiceRequests, "sr-1", "1234").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-requests/sr-1", bytes.NewBufferString(`{"pin":"1234"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderClientID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
