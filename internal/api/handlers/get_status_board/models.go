package get_status_board

import (
	"github.com/hotelpms/reservation-service/internal/api/statuslabels"
	"github.com/hotelpms/reservation-service/internal/domain"
	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

// StatusBoardEntry HTTP response model for one room on the board.
type StatusBoardEntry struct {
	ID              int64  `json:"id"`
	RoomNumber      string `json:"roomNumber"`
	RoomType        string `json:"roomType"`
	Floor           int    `json:"floor"`
	EffectiveStatus string `json:"effectiveStatus"`
	StatusLabel     string `json:"statusLabel"`
}

// StatusBoardResponse HTTP response model
type StatusBoardResponse struct {
	Date  string             `json:"date"`
	Rooms []StatusBoardEntry `json:"rooms"`
}

// FromServiceResponse converts the service response, attaching display labels.
func FromServiceResponse(resp *models.StatusBoardResponse) *StatusBoardResponse {
	entries := make([]StatusBoardEntry, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		entries = append(entries, StatusBoardEntry{
			ID:              room.ID,
			RoomNumber:      room.RoomNumber,
			RoomType:        room.RoomType,
			Floor:           room.Floor,
			EffectiveStatus: room.EffectiveStatus,
			StatusLabel:     statuslabels.Room(domain.RoomStatus(room.EffectiveStatus)),
		})
	}
	return &StatusBoardResponse{
		Date:  resp.Date,
		Rooms: entries,
	}
}
