package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/hotelpms/reservation-service/internal/availability"
	"github.com/hotelpms/reservation-service/internal/domain"
	roomRepo "github.com/hotelpms/reservation-service/internal/infra/storage/room"
	"github.com/hotelpms/reservation-service/internal/service/dashboard/models"
)

// Service aggregates the front-desk dashboard numbers.
type Service struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the dashboard service.
func NewService(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Stats derives today's room status distribution, occupancy rate and
// arrival/departure counts from the same effective status rules the status
// board uses, so the dashboard and the board never disagree.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())
	s.logger.Info("Stats: aggregating dashboard for %s", today.Format(domain.DateFormat))

	rooms, err := s.roomRepo.List(ctx, roomRepo.Filter{})
	if err != nil {
		s.logger.Error("Stats: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		StartDate:       &today,
		EndDate:         &today,
		IncludeInactive: false,
	})
	if err != nil {
		s.logger.Error("Stats: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	arrivals, err := s.reservationRepo.GetArrivals(ctx, today)
	if err != nil {
		s.logger.Error("Stats: failed to list arrivals: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	departures, err := s.reservationRepo.GetDepartures(ctx, today)
	if err != nil {
		s.logger.Error("Stats: failed to list departures: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &models.StatsResponse{
		Date:            today.Format(domain.DateFormat),
		TotalRooms:      len(rooms),
		TodayArrivals:   len(arrivals),
		TodayDepartures: len(departures),
	}

	for _, room := range rooms {
		switch availability.EffectiveStatus(room, today, reservations) {
		case domain.RoomAvailable:
			stats.AvailableRooms++
		case domain.RoomBooked:
			stats.BookedRooms++
		case domain.RoomOccupied:
			stats.OccupiedRooms++
		case domain.RoomMaintenance:
			stats.MaintenanceRooms++
		case domain.RoomOutOfOrder:
			stats.OutOfOrderRooms++
		}
	}

	for _, res := range reservations {
		if res.Status == domain.StatusCheckedIn && res.Covers(today) {
			stats.InHouseGuests += res.Adults + res.Children
		}
	}

	sellable := stats.TotalRooms - stats.MaintenanceRooms - stats.OutOfOrderRooms
	if sellable > 0 {
		rate := float64(stats.OccupiedRooms+stats.BookedRooms) / float64(sellable) * 100
		stats.OccupancyRate = math.Round(rate*10) / 10
	}

	return stats, nil
}
