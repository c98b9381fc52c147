package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMethodMux(t *testing.T) {
	mux := MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		http.MethodPut: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}),
	})

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPut, http.StatusAccepted},
		{http.MethodPost, http.StatusMethodNotAllowed},
		{http.MethodDelete, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(tt.method, "/api/preferences", nil))
		if w.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.method, tt.want, w.Code)
		}
	}
}
