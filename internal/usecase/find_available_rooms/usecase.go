package find_available_rooms

import (
	"context"
	"fmt"

	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

// UseCase lists the rooms free for a whole stay interval.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
	}
}

// Execute returns the bookable rooms with no active reservation intersecting
// [checkIn, checkOut), ordered by room number. The read is a snapshot: a
// returned room can still be taken before the caller books it, which the
// create usecase handles with its locked re-check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableRooms: checkIn=%s, checkOut=%s",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	// 2. Fetch candidate rooms, ordered by room number
	rooms, err := uc.roomRepo.List(ctx, roomRepo.Filter{RoomType: req.RoomType})
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 3. Fetch active reservations overlapping the interval. EndDate is
	// inclusive in the filter, and stays ending on checkIn never conflict,
	// so the window [checkIn, checkOut-1] covers every possible conflict.
	lastNight := checkOut.AddDate(0, 0, -1)
	reservations, err := uc.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		StartDate:       &checkIn,
		EndDate:         &lastNight,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Filter to rooms free for the whole interval
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	available := make([]AvailableRoom, 0)
	for room := range availability.FindAvailableRooms(rooms, checkIn, checkOut, reservations) {
		if req.MinCapacity != nil && room.Capacity < *req.MinCapacity {
			continue
		}
		available = append(available, AvailableRoom{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			Floor:      room.Floor(),
			Capacity:   room.Capacity,
			Price:      room.Price,
			TotalPrice: room.Price * float64(nights),
		})
	}

	uc.logger.Info("FindAvailableRooms: %d of %d rooms available", len(available), len(rooms))

	return &Response{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   nights,
		Rooms:    available,
	}, nil
}
