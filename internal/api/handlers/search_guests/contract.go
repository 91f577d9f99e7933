package search_guests

import (
	"context"

	"github.com/hotelpms/reservation-service/internal/service/guests/models"
)

type GuestService interface {
	Search(ctx context.Context, name string) (*models.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
