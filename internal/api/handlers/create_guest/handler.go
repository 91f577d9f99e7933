package create_guest

import (
	"errors"
	"net/http"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/service/guests"
	"github.com/hotelpms/reservation-service/internal/service/guests/models"
)

const (
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
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

// Handle POST /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	guest, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrDuplicateEmail):
			h.logger.Warn("POST /guests - Duplicate email: email=%s", req.Email)
			handlers.RespondConflict(w, msgDuplicateEmail)

		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("POST /guests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /guests - Failed to create guest: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guests - Guest created successfully: guest_id=%d", guest.ID)
	handlers.RespondJSON(w, http.StatusCreated, guest)
}
