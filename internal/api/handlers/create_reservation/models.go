package create_reservation

import (
	"time"

	"github.com/hotelpms/reservation-service/internal/api/statuslabels"
	"github.com/hotelpms/reservation-service/internal/domain"
	createReservation "github.com/hotelpms/reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID          int64   `json:"roomId"`
	GuestID         int64   `json:"guestId"`
	CheckIn         string  `json:"checkIn"`  // "2025-10-15"
	CheckOut        string  `json:"checkOut"` // "2025-10-18"
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Confirmed       bool    `json:"confirmed,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	RoomID          int64   `json:"roomId"`
	GuestID         int64   `json:"guestId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"statusLabel"`
	TotalPrice      float64 `json:"totalPrice"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing the stay dates.
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RoomID:          r.RoomID,
		GuestID:         r.GuestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          r.Adults,
		Children:        r.Children,
		SpecialRequests: r.SpecialRequests,
		Confirmed:       r.Confirmed,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		GuestID:         resp.GuestID,
		CheckIn:         resp.CheckIn.Format(domain.DateFormat),
		CheckOut:        resp.CheckOut.Format(domain.DateFormat),
		Nights:          resp.Nights,
		Adults:          resp.Adults,
		Children:        resp.Children,
		Status:          resp.Status,
		StatusLabel:     statuslabels.Reservation(domain.ReservationStatus(resp.Status)),
		TotalPrice:      resp.TotalPrice,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
