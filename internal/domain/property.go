package domain

import "time"

type Availability string

const (
	AvailabilityOpen   Availability = "open"
	AvailabilityClosed Availability = "closed"
)

type PGType string

const (
	PGBoys  PGType = "boys"
	PGGirls PGType = "girls"
	PGAny   PGType = "any"
)

// SharingType is the colloquial label for room capacity (1/2/3 beds).
func SharingType(capacity int) string {
	switch capacity {
	case 1:
		return "Single"
	case 2:
		return "Double"
	default:
		return "Triple"
	}
}

type Property struct {
	ID              int64        `json:"id"`
	OwnerID         int64        `json:"owner_id" gorm:"uniqueIndex:idx_owner_property_name"`
	Name            string       `json:"name" validate:"required" gorm:"uniqueIndex:idx_owner_property_name"`
	Description     string       `json:"description,omitempty"`
	Address         string       `json:"address" validate:"required"`
	City            string       `json:"city" validate:"required"`
	State           string       `json:"state,omitempty"`
	Pincode         string       `json:"pincode,omitempty"`
	PGType          PGType       `json:"pg_type"`
	TotalRooms      int          `json:"total_rooms"`
	AvailableRooms  int          `json:"available_rooms"`
	MonthlyRent     float64      `json:"monthly_rent"`
	NearestCollege  string       `json:"nearest_college,omitempty"`
	DistanceKm      float64      `json:"distance,omitempty"`
	Amenities       []string     `json:"amenities,omitempty" gorm:"serializer:json"`
	GateOpening     string       `json:"gate_opening,omitempty"`
	GateClosing     string       `json:"gate_closing,omitempty"`
	SmokingAllowed  bool         `json:"smoking_allowed"`
	DrinkingAllowed bool         `json:"drinking_allowed"`
	Availability    Availability `json:"availability"`
	OwnerName       string       `json:"owner_name,omitempty"`
	OwnerEmail      string       `json:"owner_email,omitempty"`
	OwnerPhone      string       `json:"owner_phone,omitempty"`

	// Building holds the whole floor/room/occupant tree as one JSON
	// document column. Every write replaces the full tree, same as the
	// original Firestore field update (last writer wins, no merge).
	Building *Building `json:"building,omitempty" gorm:"serializer:json"`

	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Building struct {
	TotalFloors int     `json:"total_floors"`
	TotalRooms  int     `json:"total_rooms"`
	Floors      []Floor `json:"floors"`
}

type Floor struct {
	Number int    `json:"number"`
	Rooms  []Room `json:"rooms"`
}

type Room struct {
	Number    string     `json:"number"`
	Capacity  int        `json:"capacity"`
	Rent      float64    `json:"rent,omitempty"` // overrides property MonthlyRent when > 0
	Amenities []string   `json:"amenities,omitempty"`
	Occupants []Occupant `json:"occupants"`
}

type Occupant struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	College        string  `json:"college,omitempty"`
	Year           string  `json:"year,omitempty"`
	RentPaid       bool    `json:"rent_paid"`
	RentDueDate    string  `json:"rent_due_date,omitempty"`
	AdvancePayment float64 `json:"advance_payment,omitempty"`
	JoinedDate     string  `json:"joined_date,omitempty"`
}

// EffectiveRent is the room's own rent when set, else the property base rent.
func (r Room) EffectiveRent(baseRent float64) float64 {
	if r.Rent > 0 {
		return r.Rent
	}
	return baseRent
}
