package guests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hotelpms/reservation-service/internal/domain"
	guestRepo "github.com/hotelpms/reservation-service/internal/infra/storage/guest"
	"github.com/hotelpms/reservation-service/internal/service/guests/models"
	reservationModels "github.com/hotelpms/reservation-service/internal/service/reservations/models"
)

// Service manages the guest registry.
type Service struct {
	guestRepo       GuestRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates the guests service.
func NewService(guestRepo GuestRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		guestRepo:       guestRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create registers a guest. Email must be unique.
func (s *Service) Create(ctx context.Context, req *models.CreateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Create: registering guest email=%s", req.Email)

	guest := &domain.Guest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(strings.ToLower(req.Email)),
		Phone: strings.TrimSpace(req.Phone),
	}

	if err := validateGuest(guest); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Pre-check gives a clean error; the unique index stays the backstop
	// against concurrent registrations.
	if _, err := s.guestRepo.GetByEmail(ctx, guest.Email); err == nil {
		s.logger.Warn("Create: email=%s already registered", guest.Email)
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, guestRepo.ErrGuestNotFound) {
		s.logger.Error("Create: failed to check email=%s: %v", guest.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created, err := s.guestRepo.Create(ctx, guest)
	if err != nil {
		if errors.Is(err, guestRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email=%s already registered", guest.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered guest id=%d", created.ID)
	return models.FromDomainGuest(created), nil
}

// GetByID fetches a guest by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GuestResponse, error) {
	guest, err := s.getGuest(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainGuest(guest), nil
}

// Search lists guests whose name contains the query, case-insensitive.
// An empty query lists everyone.
func (s *Service) Search(ctx context.Context, name string) (*models.GuestListResponse, error) {
	list, err := s.guestRepo.Search(ctx, strings.TrimSpace(name))
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGuestList(list), nil
}

// Update edits a guest's contact details.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateGuestRequest) (*models.GuestResponse, error) {
	s.logger.Info("Update: updating guest id=%d", id)

	guest, err := s.getGuest(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		guest.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		guest.Email = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if req.Phone != nil {
		guest.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := validateGuest(guest); err != nil {
		s.logger.Warn("Update: validation failed for guest id=%d: %v", id, err)
		return nil, err
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		switch {
		case errors.Is(err, guestRepo.ErrGuestNotFound):
			return nil, ErrGuestNotFound
		case errors.Is(err, guestRepo.ErrDuplicateEmail):
			s.logger.Warn("Update: email=%s already registered", guest.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Update: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainGuest(guest), nil
}

// Delete removes a guest. Refused while any reservation references the
// guest, so stay history is never orphaned.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting guest id=%d", id)

	list, err := s.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		GuestID:         &id,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("Delete: failed to list reservations for guest id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if len(list) > 0 {
		s.logger.Warn("Delete: guest id=%d has %d reservations", id, len(list))
		return ErrGuestHasReservations
	}

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("Delete: guest id=%d not found", id)
			return ErrGuestNotFound
		}
		s.logger.Error("Delete: repository error for guest id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted guest id=%d", id)
	return nil
}

// History lists every reservation of a guest, cancelled and past stays
// included, ordered by check-in date.
func (s *Service) History(ctx context.Context, id int64) (*reservationModels.ReservationListResponse, error) {
	if _, err := s.getGuest(ctx, "History", id); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		GuestID:         &id,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("History: repository error for guest id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	return reservationModels.FromDomainReservationList(list), nil
}

func (s *Service) getGuest(ctx context.Context, op string, id int64) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, guestRepo.ErrGuestNotFound) {
			s.logger.Warn("%s: guest id=%d not found", op, id)
			return nil, ErrGuestNotFound
		}
		s.logger.Error("%s: repository error for guest id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return guest, nil
}

func validateGuest(g *domain.Guest) error {
	if g.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(g.Name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}
	if g.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(g.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	return nil
}
