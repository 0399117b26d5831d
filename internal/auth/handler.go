package auth

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger     *slog.Logger
	service    *Service
	cookieName string
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, cookieName string) *Handler {
	return &Handler{logger: logger, service: service, cookieName: cookieName}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login_session", h.loginSession)
	r.Post("/login_token", h.loginToken)
	r.Get("/welcome_session", h.welcomeSession)
	r.Get("/welcome_token", h.welcomeToken)
	r.Delete("/logout_session", h.logoutSession)
	r.Delete("/logout_token", h.logoutToken)
	r.Get("/logged_out", h.loggedOut)
	r.Get("/auth", h.checkPasswordHash)
}

func (h *Handler) loginSession(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		h.unauthorizedBasic(w)
		return
	}
	token, err := h.service.IssueSessionToken(username, password)
	if err != nil {
		h.logger.Warn("session login rejected", slog.String("username", username))
		h.unauthorizedBasic(w)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) loginToken(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		h.unauthorizedBasic(w)
		return
	}
	token, err := h.service.IssueLoginToken(username, password)
	if err != nil {
		h.logger.Warn("token login rejected", slog.String("username", username))
		h.unauthorizedBasic(w)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *Handler) welcomeSession(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(r)
	if !h.service.CheckSession(token) {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	format := ParseFormat(r.URL.Query().Get("format"))
	format.Render(w, http.StatusOK, "Welcome!")
}

func (h *Handler) welcomeToken(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if !h.service.CheckToken(token) {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	format := ParseFormat(r.URL.Query().Get("format"))
	format.Render(w, http.StatusOK, "Welcome!")
}

func (h *Handler) logoutSession(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(r)
	if err := h.service.RevokeSession(token); err != nil {
		httpx.RespondError(w, err)
		return
	}
	// Expire the cookie alongside the registry entry.
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	h.redirectLoggedOut(w, r)
}

func (h *Handler) logoutToken(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if err := h.service.RevokeToken(token); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.redirectLoggedOut(w, r)
}

func (h *Handler) loggedOut(w http.ResponseWriter, r *http.Request) {
	format := ParseFormat(r.URL.Query().Get("format"))
	format.Render(w, http.StatusOK, "Logged out!")
}

func (h *Handler) checkPasswordHash(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := VerifyPasswordHash(q.Get("password"), q.Get("password_hash")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) redirectLoggedOut(w http.ResponseWriter, r *http.Request) {
	format := ParseFormat(r.URL.Query().Get("format"))
	target := "/logged_out?format=" + url.QueryEscape(format.String())
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// bearerToken reads the login token from the token query parameter, falling
// back to an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func (h *Handler) unauthorizedBasic(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="northgate"`)
	httpx.RespondError(w, httpx.ErrUnauthorized)
}
