package delete_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/service/guests"
)

const (
	msgInvalidGuestID      = "고객 ID가 올바르지 않습니다"
	msgNotFound            = "고객을 찾을 수 없습니다"
	msgGuestHasReservation = "예약 이력이 있는 고객은 삭제할 수 없습니다"
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

// Handle DELETE /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	if err := h.service.Delete(r.Context(), guestID); err != nil {
		switch {
		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("DELETE /guests/{id} - Guest not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, guests.ErrGuestHasReservations):
			h.logger.Warn("DELETE /guests/{id} - Guest has reservations: guest_id=%d", guestID)
			handlers.RespondConflict(w, msgGuestHasReservation)

		default:
			h.logger.Error("DELETE /guests/{id} - Failed to delete guest: guest_id=%d, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /guests/{id} - Guest deleted successfully: guest_id=%d", guestID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
