package manage

import "pgconnect/internal/domain"

type CreatePropertyRequest struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Description     string   `json:"description"`
	Address         string   `json:"address" validate:"required"`
	City            string   `json:"city" validate:"required"`
	State           string   `json:"state"`
	Pincode         string   `json:"pincode"`
	PGType          string   `json:"pg_type" validate:"omitempty,oneof=boys girls any"`
	TotalRooms      int      `json:"total_rooms" validate:"gte=0"`
	MonthlyRent     float64  `json:"monthly_rent" validate:"required,gt=0"`
	NearestCollege  string   `json:"nearest_college"`
	DistanceKm      float64  `json:"distance"`
	Amenities       []string `json:"amenities"`
	GateOpening     string   `json:"gate_opening"`
	GateClosing     string   `json:"gate_closing"`
	SmokingAllowed  bool     `json:"smoking_allowed"`
	DrinkingAllowed bool     `json:"drinking_allowed"`
}

type UpdatePropertyRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Address         *string   `json:"address"`
	City            *string   `json:"city"`
	State           *string   `json:"state"`
	Pincode         *string   `json:"pincode"`
	PGType          *string   `json:"pg_type" binding:"omitempty,oneof=boys girls any"`
	MonthlyRent     *float64  `json:"monthly_rent" binding:"omitempty,gt=0"`
	NearestCollege  *string   `json:"nearest_college"`
	DistanceKm      *float64  `json:"distance"`
	Amenities       *[]string `json:"amenities"`
	GateOpening     *string   `json:"gate_opening"`
	GateClosing     *string   `json:"gate_closing"`
	SmokingAllowed  *bool     `json:"smoking_allowed"`
	DrinkingAllowed *bool     `json:"drinking_allowed"`
	Availability    *string   `json:"availability" binding:"omitempty,oneof=open closed"`
}

// ConfigureBuildingRequest either carries an explicit floor plan or asks
// for a generated one sized by the counts below.
type ConfigureBuildingRequest struct {
	Building      *domain.Building `json:"building"`
	TotalRooms    int              `json:"total_rooms"`
	RoomsPerFloor int              `json:"rooms_per_floor"`
	Seed          int64            `json:"seed"`
}

type AddTenantRequest struct {
	RoomNumber     string  `json:"room_number" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	College        string  `json:"college"`
	Year           string  `json:"year"`
	RentDueDate    string  `json:"rent_due_date"`
	AdvancePayment float64 `json:"advance_payment"`
	JoinedDate     string  `json:"joined_date"`
}

type UpdateTenantRequest struct {
	Phone          *string  `json:"phone"`
	College        *string  `json:"college"`
	Year           *string  `json:"year"`
	RentDueDate    *string  `json:"rent_due_date"`
	AdvancePayment *float64 `json:"advance_payment"`
}

// TenantRef addresses one occupant inside the building tree.
type TenantRef struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
}

type PortfolioStats struct {
	Properties  int                  `json:"properties"`
	Combined    domain.Stats         `json:"combined"`
	PerProperty []PropertyStatsEntry `json:"per_property"`
}

type PropertyStatsEntry struct {
	PropertyID int64        `json:"property_id"`
	Name       string       `json:"name"`
	Stats      domain.Stats `json:"stats"`
}
