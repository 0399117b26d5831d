package auth_test

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northgate-api/northgate/internal/auth"
)

const (
	testUser   = "4dm1n"
	testPass   = "NotSoSecurePa$$"
	cookieName = "session_token"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	service := auth.NewService(auth.Credentials{Username: testUser, Password: testPass}, 3)
	handler := auth.NewHandler(slog.New(slog.DiscardHandler), service, cookieName)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func loginSession(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login_session", nil)
	req.SetBasicAuth(testUser, testPass)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	for _, c := range res.Result().Cookies() {
		if c.Name == cookieName {
			require.NotEmpty(t, c.Value)
			return c
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestLoginSessionSetsCookie(t *testing.T) {
	router := newRouter(t)
	cookie := loginSession(t, router)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginSessionRejectsBadCredentials(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login_session", nil)
	req.SetBasicAuth(testUser, "wrong")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.NotEmpty(t, res.Header().Get("WWW-Authenticate"))
}

func TestLoginSessionRejectsMissingBasicAuth(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login_session", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestLoginTokenReturnsToken(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login_token", nil)
	req.SetBasicAuth(testUser, testPass)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body["token"], 64, "sha256 hex token")
}

func TestWelcomeSessionFormats(t *testing.T) {
	router := newRouter(t)
	cookie := loginSession(t, router)

	cases := []struct {
		format      string
		contentType string
		body        string
	}{
		{"json", "application/json", "{\"message\":\"Welcome!\"}\n"},
		{"html", "text/html; charset=utf-8", "<h1>Welcome!</h1>"},
		{"", "text/plain; charset=utf-8", "Welcome!"},
		{"xml", "text/plain; charset=utf-8", "Welcome!"},
	}
	for _, tc := range cases {
		t.Run("format="+tc.format, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/welcome_session?format="+tc.format, nil)
			req.AddCookie(cookie)
			res := httptest.NewRecorder()
			router.ServeHTTP(res, req)

			require.Equal(t, http.StatusOK, res.Code)
			assert.Equal(t, tc.contentType, res.Header().Get("Content-Type"))
			assert.Equal(t, tc.body, res.Body.String())
		})
	}
}

func TestWelcomeSessionWithoutCookie(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/welcome_session", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestWelcomeSessionWithForgedCookie(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/welcome_session", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "deadbeef"})
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestWelcomeTokenQueryAndBearer(t *testing.T) {
	router := newRouter(t)

	loginReq := httptest.NewRequest(http.MethodPost, "/login_token", nil)
	loginReq.SetBasicAuth(testUser, testPass)
	loginRes := httptest.NewRecorder()
	router.ServeHTTP(loginRes, loginReq)
	require.Equal(t, http.StatusCreated, loginRes.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(loginRes.Body.Bytes(), &body))
	token := body["token"]

	req := httptest.NewRequest(http.MethodGet, "/welcome_token?token="+url.QueryEscape(token), nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/welcome_token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/welcome_token?token=bogus", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestLogoutSessionRedirectsAndRevokes(t *testing.T) {
	router := newRouter(t)
	cookie := loginSession(t, router)

	req := httptest.NewRequest(http.MethodDelete, "/logout_session?format=json", nil)
	req.AddCookie(cookie)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/logged_out?format=json", res.Header().Get("Location"))

	// The token is gone from the registry: same logout again is rejected.
	req = httptest.NewRequest(http.MethodDelete, "/logout_session?format=json", nil)
	req.AddCookie(cookie)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestLoggedOutFormats(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logged_out?format=html", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "<h1>Logged out!</h1>", res.Body.String())
}

func TestPasswordHashEndpoint(t *testing.T) {
	router := newRouter(t)

	sum := sha512.Sum512([]byte("haslo"))
	digest := hex.EncodeToString(sum[:])

	req := httptest.NewRequest(http.MethodGet, "/auth?password=haslo&password_hash="+digest, nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusNoContent, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/auth?password=haslo&password_hash=wrong", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	req = httptest.NewRequest(http.MethodGet, "/auth", nil)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}
