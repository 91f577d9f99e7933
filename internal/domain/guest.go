package domain

import "time"

// Guest represents a hotel guest.
type Guest struct {
	ID    int64
	Name  string
	Email string
	Phone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
