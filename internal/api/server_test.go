package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServerRoutes(t *testing.T) {
	handler := newTestHandler(t)
	srv := NewServer("0", handler)

	tests := []struct {
		method, path string
		body         string
		wantStatus   int
	}{
		{http.MethodGet, "/api/v1/catalog", "", http.StatusOK},
		{http.MethodGet, "/api/v1/goldprice", "", http.StatusOK},
		{http.MethodPost, "/api/v1/intents", `{"type":"navigate","direction":"next"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/catalog", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/intents", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/nothing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		var req *http.Request
		if tt.body != "" {
			req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		} else {
			req = httptest.NewRequest(tt.method, tt.path, nil)
		}
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
		}
	}
}
