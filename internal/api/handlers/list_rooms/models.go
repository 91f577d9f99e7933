package list_rooms

import (
	"net/url"

	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

func parseQuery(values url.Values) *models.ListRoomsRequest {
	req := &models.ListRoomsRequest{}
	if v := values.Get("roomType"); v != "" {
		req.RoomType = &v
	}
	if v := values.Get("status"); v != "" {
		req.Status = &v
	}
	return req
}
