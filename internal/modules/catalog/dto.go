package catalog

import "pgconnect/internal/domain"

type ListQuery struct {
	City         string  `form:"city"`
	College      string  `form:"college"`
	PGType       string  `form:"pg_type"`
	MaxRent      float64 `form:"max_rent"`
	Availability string  `form:"availability"`
	Page         int     `form:"page"`
	PerPage      int     `form:"per_page"`
}

// PropertyCard is the compact listing entry for search results.
type PropertyCard struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Address        string   `json:"address"`
	PGType         string   `json:"pg_type"`
	MonthlyRent    float64  `json:"monthly_rent"`
	NearestCollege string   `json:"nearest_college,omitempty"`
	DistanceKm     float64  `json:"distance,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
	Availability   string   `json:"availability"`
	AvailableBeds  int      `json:"available_beds"`
	TotalBeds      int      `json:"total_beds"`
}

// RoomView is a room with its derived status, never the stored one.
type RoomView struct {
	Number      string  `json:"number"`
	Capacity    int     `json:"capacity"`
	SharingType string  `json:"sharing_type"`
	Rent        float64 `json:"rent"`
	Occupied    int     `json:"occupied"`
	Status      string  `json:"status"`
}

type FloorView struct {
	Number int        `json:"number"`
	Rooms  []RoomView `json:"rooms"`
}

type BuildingView struct {
	TotalFloors int         `json:"total_floors"`
	TotalRooms  int         `json:"total_rooms"`
	Generated   bool        `json:"generated"`
	Floors      []FloorView `json:"floors"`
}

// PropertyDetail is the full property page payload.
type PropertyDetail struct {
	Property domain.Property `json:"property"`
	Building BuildingView    `json:"building"`
	Summary  OccupancyView   `json:"summary"`
}

type OccupancyView struct {
	TotalBeds      int `json:"total_beds"`
	OccupiedBeds   int `json:"occupied_beds"`
	AvailableBeds  int `json:"available_beds"`
	RoomsAvailable int `json:"rooms_available"`
	RoomsPartial   int `json:"rooms_partial"`
	RoomsFull      int `json:"rooms_full"`
}
