package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/domain"
	reservationRepo "github.com/hotelpms/reservation-service/internal/infra/storage/reservation"
	"github.com/hotelpms/reservation-service/internal/service/reservations/models"
	"github.com/hotelpms/reservation-service/pkg/ptr"
)

type fakeRepo struct {
	byID map[int64]*domain.Reservation
	list []*domain.Reservation

	updatedID     int64
	updatedStatus domain.ReservationStatus
	cancelledID   int64
	cancelReason  string
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.list, nil
}

func (f *fakeRepo) GetArrivals(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.list, nil
}

func (f *fakeRepo) GetDepartures(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, _ domain.ReservationStatus, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
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

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func reservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:       5,
		RoomID:   1,
		GuestID:  7,
		CheckIn:  date(2025, time.August, 20),
		CheckOut: date(2025, time.August, 22),
		Adults:   2,
		Status:   status,
	}
}

func TestCheckIn(t *testing.T) {
	t.Run("on the check-in date", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusConfirmed)}}
		svc := newTestService(repo, date(2025, time.August, 20))

		resp, err := svc.CheckIn(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
		assert.Equal(t, domain.StatusCheckedIn, repo.updatedStatus)
	})

	t.Run("early check-in rejected", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusConfirmed)}}
		svc := newTestService(repo, date(2025, time.August, 19))

		_, err := svc.CheckIn(context.Background(), 5)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("pending checks in directly", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusPending)}}
		svc := newTestService(repo, date(2025, time.August, 21))

		resp, err := svc.CheckIn(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("checked-in stay", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusCheckedIn)}}
		svc := newTestService(repo, date(2025, time.August, 22))

		resp, err := svc.CheckOut(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCheckedOut), resp.Status)
	})

	t.Run("never checked in", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusConfirmed)}}
		svc := newTestService(repo, date(2025, time.August, 22))

		_, err := svc.CheckOut(context.Background(), 5)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	t.Run("confirmed reservation", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusConfirmed)}}
		svc := newTestService(repo, date(2025, time.August, 10))

		err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{CancellationReason: "plans changed"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.cancelledID)
		assert.Equal(t, "plans changed", repo.cancelReason)
	})

	t.Run("checked-in stay cannot be cancelled", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusCheckedIn)}}
		svc := newTestService(repo, date(2025, time.August, 21))

		err := svc.Cancel(context.Background(), 5, &models.CancelReservationRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(&fakeRepo{byID: map[int64]*domain.Reservation{}}, date(2025, time.August, 10))

		err := svc.Cancel(context.Background(), 404, &models.CancelReservationRequest{})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestMarkNoShow(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusConfirmed)}}
	svc := newTestService(repo, date(2025, time.August, 21))

	resp, err := svc.MarkNoShow(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), resp.Status)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("confirm pending", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusPending)}}
		svc := newTestService(repo, date(2025, time.August, 10))

		resp, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusPending)}}
		svc := newTestService(repo, date(2025, time.August, 10))

		_, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "sleeping"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("terminal state rejected", func(t *testing.T) {
		repo := &fakeRepo{byID: map[int64]*domain.Reservation{5: reservation(domain.StatusCancelled)}}
		svc := newTestService(repo, date(2025, time.August, 10))

		_, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&fakeRepo{}, date(2025, time.August, 10))

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("체크인")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_MapsDomainToDTO(t *testing.T) {
	cancelledAt := date(2025, time.August, 5)
	res := reservation(domain.StatusCancelled)
	res.CancellationReason = ptr.Ptr("duplicate booking")
	res.CancelledAt = &cancelledAt

	svc := newTestService(&fakeRepo{list: []*domain.Reservation{res}}, date(2025, time.August, 10))

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	got := resp.Reservations[0]
	assert.Equal(t, "2025-08-20", got.CheckIn)
	assert.Equal(t, "2025-08-22", got.CheckOut)
	assert.Equal(t, 2, got.Nights)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, "duplicate booking", *got.CancellationReason)
}
