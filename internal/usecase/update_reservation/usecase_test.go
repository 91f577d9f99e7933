package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/domain"
	reservationRepo "github.com/hotelpms/reservation-service/internal/infra/storage/reservation"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
	"github.com/hotelpms/reservation-service/pkg/ptr"
)

type fakeReservationRepo struct {
	byID     map[int64]*domain.Reservation
	existing []*domain.Reservation
	updated  *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	f.updated = res
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:       5,
		RoomID:   1,
		GuestID:  7,
		CheckIn:  date(2025, time.August, 20),
		CheckOut: date(2025, time.August, 22),
		Adults:   2,
		Status:   domain.StatusPending,
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, rooms *fakeRoomRepo) *UseCase {
	uc := NewUseCase(resRepo, rooms, fakeTxManager{}, availability.Validator{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: date(2025, time.August, 1)}
	return uc
}

func defaultRooms() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, RoomNumber: "101", Capacity: 2, Price: 120, Status: domain.RoomAvailable},
		2: {ID: 2, RoomNumber: "102", Capacity: 4, Price: 180, Status: domain.RoomAvailable},
		3: {ID: 3, RoomNumber: "103", Capacity: 2, Price: 120, Status: domain.RoomMaintenance},
	}}
}

func TestExecute_MoveDates(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{5: pendingReservation()}}
	uc := newTestUseCase(resRepo, defaultRooms())

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		CheckIn:       ptr.Ptr(date(2025, time.September, 1)),
		CheckOut:      ptr.Ptr(date(2025, time.September, 4)),
	})
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.September, 1), resp.CheckIn)
	assert.Equal(t, 3, resp.Nights)
	require.NotNil(t, resRepo.updated)
	assert.Equal(t, date(2025, time.September, 4), resRepo.updated.CheckOut)
}

func TestExecute_SameDatesExcludeSelf(t *testing.T) {
	current := pendingReservation()
	resRepo := &fakeReservationRepo{
		byID:     map[int64]*domain.Reservation{5: current},
		existing: []*domain.Reservation{current},
	}
	uc := newTestUseCase(resRepo, defaultRooms())

	// Resubmitting the same dates must not conflict with the reservation itself.
	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		CheckIn:       ptr.Ptr(current.CheckIn),
		CheckOut:      ptr.Ptr(current.CheckOut),
	})
	require.NoError(t, err)
}

func TestExecute_MoveRoomConflict(t *testing.T) {
	resRepo := &fakeReservationRepo{
		byID: map[int64]*domain.Reservation{5: pendingReservation()},
		existing: []*domain.Reservation{
			{
				ID:       9,
				RoomID:   2,
				CheckIn:  date(2025, time.August, 21),
				CheckOut: date(2025, time.August, 25),
				Status:   domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(resRepo, defaultRooms())

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		RoomID:        ptr.Ptr(int64(2)),
	})

	var unavailable *availability.RoomUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []int64{9}, unavailable.ConflictingIDs)
	assert.Nil(t, resRepo.updated)
}

func TestExecute_MoveToMaintenanceRoomRejected(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{5: pendingReservation()}}
	uc := newTestUseCase(resRepo, defaultRooms())

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		RoomID:        ptr.Ptr(int64(3)),
	})
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestExecute_NotEditable(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			res := pendingReservation()
			res.Status = status
			resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{5: res}}
			uc := newTestUseCase(resRepo, defaultRooms())

			_, err := uc.Execute(context.Background(), &Request{
				ReservationID: 5,
				Adults:        ptr.Ptr(1),
			})
			assert.ErrorIs(t, err, ErrNotEditable)
		})
	}
}

func TestExecute_CapacityExceededOnTargetRoom(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{5: pendingReservation()}}
	uc := newTestUseCase(resRepo, defaultRooms())

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		Adults:        ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{}}
	uc := newTestUseCase(resRepo, defaultRooms())

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 404, Adults: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{5: pendingReservation()}}
	uc := newTestUseCase(resRepo, defaultRooms())

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero reservation id", &Request{ReservationID: 0}},
		{"non-positive room id", &Request{ReservationID: 5, RoomID: ptr.Ptr(int64(0))}},
		{"zero adults", &Request{ReservationID: 5, Adults: ptr.Ptr(0)}},
		{"negative children", &Request{ReservationID: 5, Children: ptr.Ptr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_InvertedIntervalRejected(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{5: pendingReservation()}}
	uc := newTestUseCase(resRepo, defaultRooms())

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 5,
		CheckIn:       ptr.Ptr(date(2025, time.August, 25)),
	})
	assert.ErrorIs(t, err, availability.ErrInvalidInterval)
}
