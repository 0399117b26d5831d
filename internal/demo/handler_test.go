package demo_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northgate-api/northgate/internal/demo"
)

func newRouter() http.Handler {
	handler := demo.NewHandler(slog.New(slog.DiscardHandler))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestRoot(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Hello world!", body["message"])
}

func TestHelloName(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/hello/Marta", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `"Hello Marta"`, res.Body.String())
}

func TestCounterIncrements(t *testing.T) {
	router := newRouter()

	for _, expected := range []string{`"1"`, `"2"`, `"3"`} {
		req := httptest.NewRequest(http.MethodGet, "/counter", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, expected, res.Body.String())
	}
}

func TestMethodStatusCodes(t *testing.T) {
	router := newRouter()

	cases := []struct {
		method string
		status int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPut, http.StatusOK},
		{http.MethodOptions, http.StatusOK},
		{http.MethodDelete, http.StatusOK},
		{http.MethodPost, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/method", nil)
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			require.Equal(t, tc.status, res.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
			assert.Equal(t, tc.method, body["method"])
		})
	}
}
