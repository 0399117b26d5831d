// Package demo hosts the stateless teaching endpoints and the process-wide
// request counter.
package demo

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

// Handler serves the hello/counter/method endpoints. The counter lives for
// the process only and is guarded by a mutex.
type Handler struct {
	logger  *slog.Logger
	mu      sync.Mutex
	counter int64
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// MountRoutes registers demo routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/hello/{name}", h.hello)
	r.Get("/counter", h.count)

	// Same path, different status per method: POST creates, the rest echo.
	r.MethodFunc(http.MethodGet, "/method", h.method(http.StatusOK))
	r.MethodFunc(http.MethodPut, "/method", h.method(http.StatusOK))
	r.MethodFunc(http.MethodOptions, "/method", h.method(http.StatusOK))
	r.MethodFunc(http.MethodDelete, "/method", h.method(http.StatusOK))
	r.MethodFunc(http.MethodPost, "/method", h.method(http.StatusCreated))
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Hello world!"})
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	httpx.JSON(w, http.StatusOK, "Hello "+name)
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.counter++
	value := h.counter
	h.mu.Unlock()
	httpx.JSON(w, http.StatusOK, strconv.FormatInt(value, 10))
}

func (h *Handler) method(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, status, map[string]string{"method": r.Method})
	}
}
