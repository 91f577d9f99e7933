package get_status_board

import (
	"net/http"
	"time"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/domain"
)

const msgInvalidDate = "날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식이어야 합니다"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/status-board
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/status-board - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	board, err := h.service.StatusBoard(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /rooms/status-board - Failed to build status board: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(board))
}
