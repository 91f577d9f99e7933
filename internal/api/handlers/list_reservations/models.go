package list_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
	"github.com/hotelpms/reservation-service/internal/service/reservations/models"
)

// parseQuery builds the service request from the query string. Supported
// parameters: roomId, guestId, status, startDate, endDate, includeInactive.
func parseQuery(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if raw := query.Get("roomId"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	if raw := query.Get("guestId"); raw != "" {
		guestID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GuestID = &guestID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
