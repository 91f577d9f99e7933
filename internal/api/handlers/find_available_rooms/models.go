package find_available_rooms

import (
	"net/url"
	"strconv"
	"time"

	"github.com/hotelpms/reservation-service/internal/domain"
	findAvailableRooms "github.com/hotelpms/reservation-service/internal/usecase/find_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
	Nights   int             `json:"nights"`
	Rooms    []AvailableRoom `json:"rooms"`
}

// AvailableRoom HTTP model of one free room
type AvailableRoom struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Floor      int     `json:"floor"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

// parseQuery builds the usecase request from the query string. checkIn and
// checkOut are required; roomType and minCapacity are optional.
func parseQuery(query url.Values) (*findAvailableRooms.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		return nil, err
	}

	req := &findAvailableRooms.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if raw := query.Get("roomType"); raw != "" {
		req.RoomType = &raw
	}

	if raw := query.Get("minCapacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.MinCapacity = &minCapacity
	}

	return req, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *findAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoom, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, AvailableRoom{
			ID:         room.ID,
			RoomNumber: room.RoomNumber,
			RoomType:   room.RoomType,
			Floor:      room.Floor,
			Capacity:   room.Capacity,
			Price:      room.Price,
			TotalPrice: room.TotalPrice,
		})
	}
	return &AvailableRoomsResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Rooms:    rooms,
	}
}
