package get_today_departures

import (
	"net/http"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/departures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.TodayDepartures(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations/departures - Failed to list departures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
