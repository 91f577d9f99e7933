package find_available_rooms

import (
	"errors"
	"net/http"

	"github.com/hotelpms/reservation-service/internal/api/handlers"
	"github.com/hotelpms/reservation-service/internal/domain"
	findAvailableRooms "github.com/hotelpms/reservation-service/internal/usecase/find_available_rooms"
)

const (
	msgInvalidQuery = "검색 조건이 올바르지 않습니다. checkIn과 checkOut은 YYYY-MM-DD 형식이어야 합니다"
	msgInvalidInput = "입력값이 올바르지 않습니다"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/available - Failed to find available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - Found %d available rooms for %s to %s",
		len(result.Rooms), result.CheckIn.Format(domain.DateFormat), result.CheckOut.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
