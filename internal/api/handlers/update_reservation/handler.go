package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/availability"
	updateReservation "github.com/hotelpms/reservation-service/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "예약 ID가 올바르지 않습니다"
	msgInvalidRequestBody   = "요청 본문이 올바르지 않습니다"
	msgInvalidDate          = "날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식이어야 합니다"
	msgNotFound             = "예약을 찾을 수 없습니다"
	msgRoomNotFound         = "객실을 찾을 수 없습니다"
	msgNotEditable          = "이미 진행 중이거나 종료된 예약은 수정할 수 없습니다"
	msgRoomNotBookable      = "예약할 수 없는 객실입니다"
	msgCapacityExceeded     = "객실 정원을 초과했습니다"
	msgInvalidInterval      = "체크인 날짜는 체크아웃 날짜보다 앞서야 합니다"
	msgPastCheckIn          = "지난 날짜로는 예약할 수 없습니다"
	msgRoomUnavailable      = "선택한 기간에 이미 예약이 있습니다"
	msgInvalidInput         = "입력값이 올바르지 않습니다"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unavailable *availability.RoomUnavailableError
		switch {
		case errors.As(err, &unavailable):
			h.logger.Warn("PUT /reservations/{id} - Room unavailable: reservation_id=%d, conflicts=%v",
				reservationID, unavailable.ConflictingIDs)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrRoomNotFound):
			h.logger.Warn("PUT /reservations/{id} - Room not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PUT /reservations/{id} - Not editable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateReservation.ErrRoomNotBookable):
			h.logger.Warn("PUT /reservations/{id} - Room not bookable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgRoomNotBookable)

		case errors.Is(err, updateReservation.ErrCapacityExceeded):
			h.logger.Warn("PUT /reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, availability.ErrInvalidInterval):
			h.logger.Warn("PUT /reservations/{id} - Invalid interval: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, availability.ErrPastCheckIn):
			h.logger.Warn("PUT /reservations/{id} - Past check-in: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
