package search_guests

import (
	"net/http"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	list, err := h.service.Search(r.Context(), name)
	if err != nil {
		h.logger.Error("GET /guests - Failed to search guests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
