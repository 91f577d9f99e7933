package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

// Service manages the room catalog and the per-date status board.
type Service struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the rooms service.
func NewService(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Create adds a room to the catalog.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room number=%s, type=%s", req.RoomNumber, req.RoomType)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	status := domain.RoomAvailable
	if req.Status != nil {
		parsed := domain.RoomStatus(*req.Status)
		if !domain.ValidIntrinsicStatus(parsed) {
			s.logger.Warn("Create: invalid status=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		status = parsed
	}

	room := &domain.Room{
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		RoomType:   strings.TrimSpace(req.RoomType),
		Capacity:   req.Capacity,
		Price:      req.Price,
		Status:     status,
	}

	// Pre-check gives a clean error; the unique index stays the backstop
	// against concurrent creates.
	if _, err := s.roomRepo.GetByNumber(ctx, room.RoomNumber); err == nil {
		s.logger.Warn("Create: room number=%s already exists", room.RoomNumber)
		return nil, ErrDuplicateRoomNumber
	} else if !errors.Is(err, roomRepo.ErrRoomNotFound) {
		s.logger.Error("Create: failed to check room number=%s: %v", room.RoomNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoomNumber) {
			s.logger.Warn("Create: room number=%s already exists", req.RoomNumber)
			return nil, ErrDuplicateRoomNumber
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// GetByID fetches a room by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// List fetches rooms, optionally filtered by type and intrinsic status.
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter := roomRepo.Filter{RoomType: req.RoomType}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !domain.ValidIntrinsicStatus(status) {
			s.logger.Warn("List: invalid status filter=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	list, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(list), nil
}

// Update edits a room's attributes. Nil fields keep their current values.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", id)

	room, err := s.getRoom(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		room.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.RoomType != nil {
		room.RoomType = strings.TrimSpace(*req.RoomType)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Status != nil {
		status := domain.RoomStatus(*req.Status)
		if !domain.ValidIntrinsicStatus(status) {
			s.logger.Warn("Update: invalid status=%s for room id=%d", *req.Status, id)
			return nil, ErrInvalidStatus
		}
		room.Status = status
	}

	if err := validateRoomAttributes(room); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrDuplicateRoomNumber):
			s.logger.Warn("Update: room number=%s already exists", room.RoomNumber)
			return nil, ErrDuplicateRoomNumber
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(room), nil
}

// UpdateStatus sets the intrinsic status. Only available, maintenance and
// out_of_order may be stored; booked and occupied are derived.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: setting room id=%d to status=%s", id, req.Status)

	status := domain.RoomStatus(req.Status)
	if !domain.ValidIntrinsicStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for room id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.roomRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateStatus: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("UpdateStatus: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete removes a room. Refused while active reservations reference it, so
// history for past stays is never orphaned by accident.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	active, err := s.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		RoomID:          &id,
		IncludeInactive: false,
	})
	if err != nil {
		s.logger.Error("Delete: failed to list reservations for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if len(active) > 0 {
		s.logger.Warn("Delete: room id=%d has %d active reservations", id, len(active))
		return ErrRoomHasReservations
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// StatusBoard derives each room's effective status for the date: intrinsic
// maintenance/out_of_order first, then occupied or booked from the active
// reservation covering the date, otherwise available. Defaults to today.
func (s *Service) StatusBoard(ctx context.Context, date *time.Time) (*models.StatusBoardResponse, error) {
	reference := domain.DateOnly(s.timeProvider.Now())
	if date != nil {
		reference = domain.DateOnly(*date)
	}
	s.logger.Info("StatusBoard: deriving statuses for %s", reference.Format(domain.DateFormat))

	rooms, err := s.roomRepo.List(ctx, roomRepo.Filter{})
	if err != nil {
		s.logger.Error("StatusBoard: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: StatusBoard - repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		StartDate:       &reference,
		EndDate:         &reference,
		IncludeInactive: false,
	})
	if err != nil {
		s.logger.Error("StatusBoard: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: StatusBoard - repository error: %v", ErrInternal, err)
	}

	entries := make([]models.RoomStatusEntry, 0, len(rooms))
	for _, room := range rooms {
		entries = append(entries, models.RoomStatusEntry{
			ID:              room.ID,
			RoomNumber:      room.RoomNumber,
			RoomType:        room.RoomType,
			Floor:           room.Floor(),
			EffectiveStatus: string(availability.EffectiveStatus(room, reference, reservations)),
		})
	}

	return &models.StatusBoardResponse{
		Date:  reference.Format(domain.DateFormat),
		Rooms: entries,
	}, nil
}

func (s *Service) getRoom(ctx context.Context, op string, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

func validateCreateRequest(req *models.CreateRoomRequest) error {
	room := &domain.Room{
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		RoomType:   strings.TrimSpace(req.RoomType),
		Capacity:   req.Capacity,
		Price:      req.Price,
	}
	return validateRoomAttributes(room)
}

func validateRoomAttributes(room *domain.Room) error {
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}
	if len(room.RoomNumber) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: roomNumber must not exceed %d characters", ErrInvalidInput, domain.MaxRoomNumberLength)
	}
	if room.RoomType == "" {
		return fmt.Errorf("%w: roomType is required", ErrInvalidInput)
	}
	if len(room.RoomType) > domain.MaxRoomTypeLength {
		return fmt.Errorf("%w: roomType must not exceed %d characters", ErrInvalidInput, domain.MaxRoomTypeLength)
	}
	if room.Capacity < domain.MinCapacity || room.Capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}
	if room.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
