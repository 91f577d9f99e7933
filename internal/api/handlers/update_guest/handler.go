package update_guest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/service/guests"
	"github.com/hotelpms/reservation-service/internal/service/guests/models"
)

const (
	msgInvalidGuestID     = "고객 ID가 올바르지 않습니다"
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
	msgNotFound           = "고객을 찾을 수 없습니다"
	msgDuplicateEmail     = "이미 등록된 이메일입니다"
	msgInvalidInput       = "입력값이 올바르지 않습니다"
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

// Handle PUT /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	var req models.UpdateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	guest, err := h.service.Update(r.Context(), guestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("PUT /guests/{id} - Guest not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, guests.ErrDuplicateEmail):
			h.logger.Warn("PUT /guests/{id} - Duplicate email: guest_id=%d", guestID)
			handlers.RespondConflict(w, msgDuplicateEmail)

		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("PUT /guests/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /guests/{id} - Failed to update guest: guest_id=%d, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /guests/{id} - Guest updated successfully: guest_id=%d", guestID)
	handlers.RespondJSON(w, http.StatusOK, guest)
}
