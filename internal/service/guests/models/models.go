package models

import (
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
)

// Request models

// CreateGuestRequest registers a guest.
type CreateGuestRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateGuestRequest edits a guest's contact details. Nil fields keep
// their values.
type UpdateGuestRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Response models

// GuestResponse is the guest DTO.
type GuestResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GuestListResponse is a list of guest DTOs.
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
}

// FromDomainGuest converts a domain guest into the DTO.
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}
	return &GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// FromDomainGuestList converts a list of domain guests.
func FromDomainGuestList(list []*domain.Guest) *GuestListResponse {
	guests := make([]GuestResponse, 0, len(list))
	for _, g := range list {
		guests = append(guests, *FromDomainGuest(g))
	}
	return &GuestListResponse{Guests: guests}
}
