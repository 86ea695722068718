package domain

import "errors"

var (
	ErrRoomFull         = errors.New("room is at full capacity")
	ErrInvalidCapacity  = errors.New("room capacity must be at least 1")
	ErrOccupantInvalid  = errors.New("occupant name and email are required")
	ErrOccupantNotFound = errors.New("occupant index out of range")
)

type RoomStatus string

const (
	StatusAvailable RoomStatus = "available"
	StatusPartial   RoomStatus = "partial"
	StatusFull      RoomStatus = "full"
)

// StatusOf derives the room status from the occupant count alone.
// Status is never stored; deriving it here is what keeps the
// 0 <= occupants <= capacity invariant from drifting out of sync
// the way the stored-status variants did.
func StatusOf(r Room) (RoomStatus, error) {
	if r.Capacity < 1 {
		return "", ErrInvalidCapacity
	}
	switch n := len(r.Occupants); {
	case n == 0:
		return StatusAvailable, nil
	case n < r.Capacity:
		return StatusPartial, nil
	default:
		return StatusFull, nil
	}
}

// AssignOccupant adds one occupant and returns the updated room.
// The input room is left untouched; a full room fails with ErrRoomFull.
// Assignments are one-at-a-time, so a room can never jump from
// available straight to full.
func AssignOccupant(r Room, o Occupant) (Room, error) {
	if r.Capacity < 1 {
		return r, ErrInvalidCapacity
	}
	if o.Name == "" || o.Email == "" {
		return r, ErrOccupantInvalid
	}
	if len(r.Occupants) >= r.Capacity {
		return r, ErrRoomFull
	}

	out := r
	out.Occupants = make([]Occupant, 0, len(r.Occupants)+1)
	out.Occupants = append(out.Occupants, r.Occupants...)
	out.Occupants = append(out.Occupants, o)
	return out, nil
}

// VacateOccupant removes the occupant at the given position.
// Hard delete, no history is kept.
func VacateOccupant(r Room, idx int) (Room, error) {
	if idx < 0 || idx >= len(r.Occupants) {
		return r, ErrOccupantNotFound
	}

	out := r
	out.Occupants = make([]Occupant, 0, len(r.Occupants)-1)
	out.Occupants = append(out.Occupants, r.Occupants[:idx]...)
	out.Occupants = append(out.Occupants, r.Occupants[idx+1:]...)
	return out, nil
}

// ToggleRentPaid flips the paid flag. No side effects, no notifications.
func ToggleRentPaid(o Occupant) Occupant {
	o.RentPaid = !o.RentPaid
	return o
}

type Stats struct {
	TotalRooms       int     `json:"total_rooms"`
	TotalBeds        int     `json:"total_beds"`
	OccupiedBeds     int     `json:"occupied_beds"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	RentPaidCount    int     `json:"rent_paid_count"`
	RentPendingCount int     `json:"rent_pending_count"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
}

func (s Stats) Add(other Stats) Stats {
	s.TotalRooms += other.TotalRooms
	s.TotalBeds += other.TotalBeds
	s.OccupiedBeds += other.OccupiedBeds
	s.OccupiedRooms += other.OccupiedRooms
	s.AvailableRooms += other.AvailableRooms
	s.RentPaidCount += other.RentPaidCount
	s.RentPendingCount += other.RentPendingCount
	s.MonthlyRevenue += other.MonthlyRevenue
	return s
}

// FloorStats sums room counters for one floor. Revenue uses the flat
// approximation the owner dashboard always used: a room with any
// occupant contributes its rent exactly once, never per bed.
func FloorStats(f Floor, baseRent float64) Stats {
	var s Stats
	for _, room := range f.Rooms {
		s.TotalRooms++
		s.TotalBeds += room.Capacity
		s.OccupiedBeds += len(room.Occupants)

		if len(room.Occupants) == 0 {
			s.AvailableRooms++
		} else {
			s.OccupiedRooms++
			s.MonthlyRevenue += room.EffectiveRent(baseRent)
		}

		for _, occ := range room.Occupants {
			if occ.RentPaid {
				s.RentPaidCount++
			} else {
				s.RentPendingCount++
			}
		}
	}
	return s
}

// PropertyStats is the floor-by-floor sum, so it stays additive by
// construction. Properties without a building report zero stats.
func PropertyStats(p Property) Stats {
	var s Stats
	if p.Building == nil {
		return s
	}
	for _, f := range p.Building.Floors {
		s = s.Add(FloorStats(f, p.MonthlyRent))
	}
	return s
}
