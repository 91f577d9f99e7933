package create_room

import (
	"errors"
	"net/http"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/service/rooms"
	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody  = "요청 본문이 올바르지 않습니다"
	msgDuplicateRoomNumber = "이미 존재하는 객실 번호입니다"
	msgInvalidStatus       = "객실 상태가 올바르지 않습니다"
	msgInvalidInput        = "입력값이 올바르지 않습니다"
)

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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrDuplicateRoomNumber):
			h.logger.Warn("POST /rooms - Duplicate room number: room_number=%s", req.RoomNumber)
			handlers.RespondConflict(w, msgDuplicateRoomNumber)

		case errors.Is(err, rooms.ErrInvalidStatus):
			h.logger.Warn("POST /rooms - Invalid status: room_number=%s", req.RoomNumber)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: room_number=%s, error=%v", req.RoomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%d, room_number=%s", room.ID, room.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
