package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelpms/reservation-service/internal/domain"
	reservationRepo "github.com/hotelpms/reservation-service/internal/infra/storage/reservation"
	"github.com/hotelpms/reservation-service/internal/service/reservations/models"
)

// Service manages the reservation lifecycle after creation: lookups,
// cancellation and the check-in/check-out transitions.
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the reservations service.
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID fetches a reservation by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List fetches reservations with flexible filtering: by room, guest, status
// and overlap with a date range. Inactive reservations are excluded unless
// IncludeInactive is set.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, room=%v, guest=%v, status=%v, includeInactive=%v",
		req.RoomID, req.GuestID, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Cancel cancels a pending or confirmed reservation. Checked-in stays and
// terminal reservations are rejected.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	res, err := s.getForUpdate(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, domain.StatusCancelled, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// CheckIn moves a reservation to checked_in. Rejected before the stay's
// check-in date; a pending reservation is auto-confirmed on the way.
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	return s.transition(ctx, "CheckIn", id, domain.StatusCheckedIn)
}

// CheckOut moves a checked-in reservation to checked_out.
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	return s.transition(ctx, "CheckOut", id, domain.StatusCheckedOut)
}

// MarkNoShow marks a pending or confirmed reservation as a no-show.
func (s *Service) MarkNoShow(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	return s.transition(ctx, "MarkNoShow", id, domain.StatusNoShow)
}

// UpdateStatus moves a reservation to an arbitrary target status, subject to
// the state machine.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	status, ok := domain.ValidReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}
	return s.transition(ctx, "UpdateStatus", id, status)
}

// TodayArrivals lists reservations checking in today.
func (s *Service) TodayArrivals(ctx context.Context) (*models.ReservationListResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())
	s.logger.Info("TodayArrivals: fetching arrivals for %s", today.Format(domain.DateFormat))

	list, err := s.reservationRepo.GetArrivals(ctx, today)
	if err != nil {
		s.logger.Error("TodayArrivals: repository error: %v", err)
		return nil, fmt.Errorf("%w: TodayArrivals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// TodayDepartures lists reservations checking out today.
func (s *Service) TodayDepartures(ctx context.Context) (*models.ReservationListResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())
	s.logger.Info("TodayDepartures: fetching departures for %s", today.Format(domain.DateFormat))

	list, err := s.reservationRepo.GetDepartures(ctx, today)
	if err != nil {
		s.logger.Error("TodayDepartures: repository error: %v", err)
		return nil, fmt.Errorf("%w: TodayDepartures - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// transition applies a state machine transition and persists the new status.
func (s *Service) transition(ctx context.Context, op string, id int64, to domain.ReservationStatus) (*models.ReservationResponse, error) {
	s.logger.Info("%s: moving reservation id=%d to status=%s", op, id, to)

	res, err := s.getForUpdate(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if err := res.Transition(to, s.timeProvider.Now()); err != nil {
		s.logger.Warn("%s: reservation id=%d cannot move from %s to %s", op, id, res.Status, to)
		return nil, ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, res.Status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: reservation id=%d is now %s", op, id, res.Status)
	return models.FromDomainReservation(res), nil
}

func (s *Service) getForUpdate(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return res, nil
}
