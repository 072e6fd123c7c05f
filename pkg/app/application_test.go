package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"powervoting/pkg/config"
	"powervoting/pkg/logger"
)

type stubHandler struct {
	method string
	path   string
	status int
}

func (s stubHandler) RegisterRoutes(router *httprouter.Router) {
	router.Handle(s.method, s.path, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(s.status)
	})
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg := config.FromEnv("app-test")
	cfg.Log = logger.Discard()

	a := NewApplication(cfg)
	a.SetApp(
		stubHandler{method: http.MethodPost, path: "/api/v1/echo", status: http.StatusOK},
		stubHandler{method: http.MethodGet, path: "/health", status: http.StatusOK},
	)
	return a
}

func TestApplication_Routes(t *testing.T) {
	h := newTestApplication(t).Handler()

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		want        int
	}{
		{name: "health", method: http.MethodGet, path: "/health", want: http.StatusOK},
		{name: "api route", method: http.MethodPost, path: "/api/v1/echo", contentType: "application/json", want: http.StatusOK},
		{name: "api route without json", method: http.MethodPost, path: "/api/v1/echo", want: http.StatusUnsupportedMediaType},
		{name: "wrong method", method: http.MethodGet, path: "/api/v1/echo", want: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nothing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != tt.want {
				t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.want, w.Code)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("expected X-Request-ID header to be set")
			}
		})
	}
}
