package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/domain"
	reservationRepo "github.com/hotelpms/reservation-service/internal/infra/storage/reservation"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
)

// UseCase edits a pending or confirmed reservation's room, dates or party.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	validator       availability.Validator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	validator availability.Validator,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		validator:       validator,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute applies the edits. The availability re-check excludes the
// reservation's own id, so keeping the same dates never conflicts with
// itself. Runs in a serializable transaction with the target room's
// reservations locked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ReservationID)

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time for the past-date policy
	now := uc.timeProvider.Now()

	var result *domain.Reservation

	// 3. Fetch, re-validate and update in a serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Fetch the reservation
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3.2. Only pending and confirmed reservations are editable
		if !res.CanBeUpdated() {
			uc.logger.Warn("UpdateReservation: reservation id=%d has status %s", res.ID, res.Status)
			return ErrNotEditable
		}

		roomChanged := req.RoomID != nil && *req.RoomID != res.RoomID
		datesChanged := req.CheckIn != nil || req.CheckOut != nil

		// 3.3. Apply the edits in memory
		applyEdits(res, req)

		if err := validateStayLength(res.CheckIn, res.CheckOut); err != nil {
			uc.logger.Warn("UpdateReservation: stay length validation failed: %v", err)
			return err
		}

		// 3.4. Fetch the (possibly new) room
		room, err := uc.roomRepo.GetByID(txCtx, res.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateReservation: room id=%d not found", res.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get room id=%d: %v", res.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.5. Moving to a maintenance or out-of-order room is rejected
		if roomChanged && !room.IsBookable() {
			uc.logger.Warn("UpdateReservation: room id=%d has status %s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		// 3.6. Capacity check against the target room
		if res.Adults+res.Children > room.Capacity {
			uc.logger.Warn("UpdateReservation: party of %d exceeds capacity %d of room id=%d",
				res.Adults+res.Children, room.Capacity, room.ID)
			return ErrCapacityExceeded
		}

		// 3.7. Re-check availability when the room or the dates changed,
		// excluding this reservation so it never conflicts with itself
		if roomChanged || datesChanged {
			filter := domain.ReservationsFilter{
				RoomID:          &res.RoomID,
				IncludeInactive: false,
			}

			existing, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("UpdateReservation: failed to list reservations: %v", err)
				return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
			}

			if err := uc.validator.ValidateBooking(res.RoomID, res.CheckIn, res.CheckOut, existing, res.ID, now); err != nil {
				uc.logger.Warn("UpdateReservation: booking validation failed for room id=%d: %v", res.RoomID, err)
				return err
			}
		}

		// 3.8. Persist
		if err := uc.reservationRepo.Update(txCtx, res); err != nil {
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

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
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
