package update_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/service/rooms"
	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

const (
	msgInvalidRoomID       = "객실 ID가 올바르지 않습니다"
	msgInvalidRequestBody  = "요청 본문이 올바르지 않습니다"
	msgNotFound            = "객실을 찾을 수 없습니다"
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

// Handle PUT /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrDuplicateRoomNumber):
			h.logger.Warn("PUT /rooms/{id} - Duplicate room number: room_id=%d", roomID)
			handlers.RespondConflict(w, msgDuplicateRoomNumber)

		case errors.Is(err, rooms.ErrInvalidStatus):
			h.logger.Warn("PUT /rooms/{id} - Invalid status: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /rooms/{id} - Failed to update room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id} - Room updated successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
