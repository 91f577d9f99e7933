package models

import (
	"errors"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// ErrInvalidStatus is returned when the status string is not a known
// reservation status.
var ErrInvalidStatus = errors.New("invalid reservation status")

// Request models

// ListReservationsRequest filters a reservation listing.
type ListReservationsRequest struct {
	RoomID          *int64     `json:"roomId,omitempty"`
	GuestID         *int64     `json:"guestId,omitempty"`
	Status          *string    `json:"status,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the domain filter.
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		RoomID:          r.RoomID,
		GuestID:         r.GuestID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ValidReservationStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelReservationRequest carries the cancellation reason.
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest moves a reservation to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// ReservationResponse is the reservation DTO.
type ReservationResponse struct {
	ID       int64  `json:"id"`
	RoomID   int64  `json:"roomId"`
	GuestID  int64  `json:"guestId"`
	CheckIn  string `json:"checkIn"`  // "2025-10-15"
	CheckOut string `json:"checkOut"` // "2025-10-18"
	Nights   int    `json:"nights"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Status   string `json:"status"`

	SpecialRequests    *string `json:"specialRequests,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse is a list of reservation DTOs.
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation converts a domain reservation into the DTO.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 res.ID,
		RoomID:             res.RoomID,
		GuestID:            res.GuestID,
		CheckIn:            res.CheckIn.Format(domain.DateFormat),
		CheckOut:           res.CheckOut.Format(domain.DateFormat),
		Nights:             res.Nights(),
		Adults:             res.Adults,
		Children:           res.Children,
		Status:             string(res.Status),
		SpecialRequests:    res.SpecialRequests,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	if res.CancelledAt != nil {
		cancelledAt := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList converts a list of domain reservations.
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	reservations := make([]ReservationResponse, 0, len(list))
	for _, res := range list {
		reservations = append(reservations, *FromDomainReservation(res))
	}
	return &ReservationListResponse{Reservations: reservations}
}
