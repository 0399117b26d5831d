package employees

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := httpx.QueryInt(r, "limit", 0)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	offset, err := httpx.QueryInt(r, "offset", 0)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	params := ListParams{
		Limit:  limit,
		Offset: offset,
		Order:  r.URL.Query().Get("order"),
	}

	list, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if list == nil {
		list = []Employee{}
	}
	httpx.JSON(w, http.StatusOK, list)
}
