package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
	"github.com/hotelpms/reservation-service/pkg/ptr"
)

type fakeRoomRepo struct {
	byID     map[int64]*domain.Room
	byNumber map[string]*domain.Room
	list     []*domain.Room
	created  *domain.Room
	deleted  int64

	createErr error
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	room.ID = 1
	f.created = room
	return room, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.byID[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) GetByNumber(_ context.Context, roomNumber string) (*domain.Room, error) {
	room, ok := f.byNumber[roomNumber]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) List(_ context.Context, _ roomRepo.Filter) ([]*domain.Room, error) {
	return f.list, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, _ *domain.Room) error { return nil }

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, _ int64, _ domain.RoomStatus) error {
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(rooms *fakeRoomRepo, reservations *fakeReservationRepo) *Service {
	svc := NewService(rooms, reservations, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: date(2025, time.August, 21)}
	return svc
}

func TestCreate(t *testing.T) {
	t.Run("defaults to available", func(t *testing.T) {
		repo := &fakeRoomRepo{}
		svc := newTestService(repo, &fakeReservationRepo{})

		resp, err := svc.Create(context.Background(), &models.CreateRoomRequest{
			RoomNumber: "101",
			RoomType:   "standard",
			Capacity:   2,
			Price:      120,
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoomAvailable), resp.Status)
		assert.Equal(t, 1, resp.Floor)
	})

	t.Run("derived status rejected", func(t *testing.T) {
		svc := newTestService(&fakeRoomRepo{}, &fakeReservationRepo{})

		_, err := svc.Create(context.Background(), &models.CreateRoomRequest{
			RoomNumber: "101",
			RoomType:   "standard",
			Capacity:   2,
			Price:      120,
			Status:     ptr.Ptr("occupied"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo := &fakeRoomRepo{byNumber: map[string]*domain.Room{
			"101": {ID: 1, RoomNumber: "101"},
		}}
		svc := newTestService(repo, &fakeReservationRepo{})

		_, err := svc.Create(context.Background(), &models.CreateRoomRequest{
			RoomNumber: "101",
			RoomType:   "standard",
			Capacity:   2,
			Price:      120,
		})
		assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
		assert.Nil(t, repo.created)
	})

	t.Run("duplicate number lost race", func(t *testing.T) {
		svc := newTestService(&fakeRoomRepo{createErr: roomRepo.ErrDuplicateRoomNumber}, &fakeReservationRepo{})

		_, err := svc.Create(context.Background(), &models.CreateRoomRequest{
			RoomNumber: "101",
			RoomType:   "standard",
			Capacity:   2,
			Price:      120,
		})
		assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
	})

	t.Run("invalid attributes", func(t *testing.T) {
		svc := newTestService(&fakeRoomRepo{}, &fakeReservationRepo{})

		tests := []struct {
			name string
			req  *models.CreateRoomRequest
		}{
			{"empty number", &models.CreateRoomRequest{RoomType: "standard", Capacity: 2, Price: 100}},
			{"empty type", &models.CreateRoomRequest{RoomNumber: "101", Capacity: 2, Price: 100}},
			{"zero capacity", &models.CreateRoomRequest{RoomNumber: "101", RoomType: "standard", Price: 100}},
			{"oversized capacity", &models.CreateRoomRequest{RoomNumber: "101", RoomType: "standard", Capacity: 11, Price: 100}},
			{"negative price", &models.CreateRoomRequest{RoomNumber: "101", RoomType: "standard", Capacity: 2, Price: -1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(context.Background(), tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestUpdateStatus_IntrinsicOnly(t *testing.T) {
	svc := newTestService(&fakeRoomRepo{byID: map[int64]*domain.Room{1: {ID: 1}}}, &fakeReservationRepo{})

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "maintenance"}))
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "booked"}), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "occupied"}), ErrInvalidStatus)
}

func TestDelete(t *testing.T) {
	t.Run("blocked by active reservations", func(t *testing.T) {
		reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
			{ID: 9, RoomID: 1, Status: domain.StatusConfirmed},
		}}
		svc := newTestService(&fakeRoomRepo{}, reservations)

		err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrRoomHasReservations)
	})

	t.Run("allowed without active reservations", func(t *testing.T) {
		repo := &fakeRoomRepo{}
		svc := newTestService(repo, &fakeReservationRepo{})

		require.NoError(t, svc.Delete(context.Background(), 1))
		assert.Equal(t, int64(1), repo.deleted)
	})
}

func TestStatusBoard(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, RoomNumber: "101", RoomType: "standard", Status: domain.RoomAvailable},
		{ID: 2, RoomNumber: "102", RoomType: "standard", Status: domain.RoomAvailable},
		{ID: 3, RoomNumber: "103", RoomType: "standard", Status: domain.RoomMaintenance},
		{ID: 4, RoomNumber: "104", RoomType: "standard", Status: domain.RoomAvailable},
	}
	reservations := []*domain.Reservation{
		{ID: 1, RoomID: 1, CheckIn: date(2025, time.August, 20), CheckOut: date(2025, time.August, 22), Status: domain.StatusCheckedIn},
		{ID: 2, RoomID: 2, CheckIn: date(2025, time.August, 21), CheckOut: date(2025, time.August, 23), Status: domain.StatusConfirmed},
		// Covers room 3 but maintenance dominates.
		{ID: 3, RoomID: 3, CheckIn: date(2025, time.August, 20), CheckOut: date(2025, time.August, 22), Status: domain.StatusCheckedIn},
		// Ends today, so the checkout day itself is free.
		{ID: 4, RoomID: 4, CheckIn: date(2025, time.August, 19), CheckOut: date(2025, time.August, 21), Status: domain.StatusCheckedIn},
	}

	svc := newTestService(&fakeRoomRepo{list: rooms}, &fakeReservationRepo{reservations: reservations})

	resp, err := svc.StatusBoard(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-21", resp.Date)
	require.Len(t, resp.Rooms, 4)
	assert.Equal(t, "occupied", resp.Rooms[0].EffectiveStatus)
	assert.Equal(t, "booked", resp.Rooms[1].EffectiveStatus)
	assert.Equal(t, "maintenance", resp.Rooms[2].EffectiveStatus)
	assert.Equal(t, "available", resp.Rooms[3].EffectiveStatus)
}
