package create_reservation

import (
	"errors"
	"net/http"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/api/middleware"
	"github.com/hotelpms/reservation-service/internal/availability"
	createReservation "github.com/hotelpms/reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
	msgInvalidDate        = "날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식이어야 합니다"
	msgRoomNotFound       = "객실을 찾을 수 없습니다"
	msgGuestNotFound      = "고객을 찾을 수 없습니다"
	msgRoomNotBookable    = "예약할 수 없는 객실입니다"
	msgCapacityExceeded   = "객실 정원을 초과했습니다"
	msgInvalidInterval    = "체크인 날짜는 체크아웃 날짜보다 앞서야 합니다"
	msgPastCheckIn        = "지난 날짜로는 예약할 수 없습니다"
	msgRoomUnavailable    = "선택한 기간에 이미 예약이 있습니다"
	msgInvalidInput       = "입력값이 올바르지 않습니다"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unavailable *availability.RoomUnavailableError
		switch {
		case errors.As(err, &unavailable):
			h.logger.Warn("POST /reservations - Room unavailable: room_id=%d, conflicts=%v",
				unavailable.RoomID, unavailable.ConflictingIDs)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrGuestNotFound):
			h.logger.Warn("POST /reservations - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createReservation.ErrRoomNotBookable):
			h.logger.Warn("POST /reservations - Room not bookable: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomNotBookable)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, availability.ErrInvalidInterval):
			h.logger.Warn("POST /reservations - Invalid interval: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, availability.ErrPastCheckIn):
			h.logger.Warn("POST /reservations - Past check-in: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			requestID, _ := middleware.GetRequestID(r.Context())
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, guest_id=%d, request_id=%s, error=%v",
				req.RoomID, req.GuestID, requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%d, guest_id=%d",
		result.ID, result.RoomID, result.GuestID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
