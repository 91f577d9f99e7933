package models

// StatsResponse is the front-desk dashboard snapshot for a date.
type StatsResponse struct {
	Date string `json:"date"` // "2025-10-15"

	TotalRooms       int `json:"totalRooms"`
	AvailableRooms   int `json:"availableRooms"`
	BookedRooms      int `json:"bookedRooms"`
	OccupiedRooms    int `json:"occupiedRooms"`
	MaintenanceRooms int `json:"maintenanceRooms"`
	OutOfOrderRooms  int `json:"outOfOrderRooms"`

	// OccupancyRate is occupied plus booked over sellable rooms, in percent.
	// Maintenance and out-of-order rooms are not sellable.
	OccupancyRate float64 `json:"occupancyRate"`

	TodayArrivals   int `json:"todayArrivals"`
	TodayDepartures int `json:"todayDepartures"`
	InHouseGuests   int `json:"inHouseGuests"`
}
