package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/domain"
	guestRepo "github.com/hotelpms/reservation-service/internal/infra/storage/guest"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

// UseCase creates a reservation.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	guestRepo       GuestRepository
	txManager       TransactionManager
	validator       availability.Validator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	txManager TransactionManager,
	validator availability.Validator,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		txManager:       txManager,
		validator:       validator,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute creates a reservation.
// The conflict check and insert run in a serializable transaction with the
// room's reservations locked, so two requests for the same room cannot both
// pass validation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, guest=%d, checkIn=%s, checkOut=%s",
		req.RoomID, req.GuestID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if err := validateStayLength(req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("CreateReservation: stay length validation failed: %v", err)
		return nil, err
	}

	// 2. Current time for the past-date policy
	now := uc.timeProvider.Now()

	// 3. Fetch the guest
	if _, err := uc.guestRepo.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			uc.logger.Warn("CreateReservation: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Error("CreateReservation: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	// 4. Fetch the room
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 5. Maintenance and out-of-order rooms never take bookings
	if !room.IsBookable() {
		uc.logger.Warn("CreateReservation: room id=%d has status %s", room.ID, room.Status)
		return nil, ErrRoomNotBookable
	}

	// 6. Capacity check
	if err := validateCapacity(room, req.Adults, req.Children); err != nil {
		uc.logger.Warn("CreateReservation: capacity check failed for room id=%d: %v", room.ID, err)
		return nil, err
	}

	status := domain.StatusPending
	if req.Confirmed {
		status = domain.StatusConfirmed
	}

	var result *domain.Reservation

	// 7. Conflict check and insert in a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Lock the room's active reservations (FOR UPDATE)
		filter := domain.ReservationsFilter{
			RoomID:          &req.RoomID,
			IncludeInactive: false,
		}

		existing, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 7.2. Interval validity, past-date policy, overlap check
		if err := uc.validator.ValidateBooking(req.RoomID, req.CheckIn, req.CheckOut, existing, 0, now); err != nil {
			uc.logger.Warn("CreateReservation: booking validation failed for room id=%d: %v", req.RoomID, err)
			return err
		}

		// 7.3. Insert
		reservation := &domain.Reservation{
			RoomID:          req.RoomID,
			GuestID:         req.GuestID,
			CheckIn:         domain.DateOnly(req.CheckIn),
			CheckOut:        domain.DateOnly(req.CheckOut),
			Adults:          req.Adults,
			Children:        req.Children,
			Status:          status,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		RoomID:          result.RoomID,
		GuestID:         result.GuestID,
		CheckIn:         result.CheckIn,
		CheckOut:        result.CheckOut,
		Nights:          result.Nights(),
		Adults:          result.Adults,
		Children:        result.Children,
		Status:          string(result.Status),
		TotalPrice:      room.Price * float64(result.Nights()),
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
