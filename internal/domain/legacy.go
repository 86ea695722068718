package domain

import "sort"

// Two generations of persisted building documents exist side by side:
// the older "buildingLayout" (flat room list with floorId and a stored
// status/occupied pair) and the newer "buildingConfiguration"
// (floor-nested rooms with rentPaid occupants). Both are accepted on
// read and normalized here, exactly once; nothing past this file ever
// sees a legacy shape.

type LegacyDocument struct {
	BuildingLayout        *LayoutV1 `json:"buildingLayout,omitempty"`
	BuildingConfiguration *ConfigV2 `json:"buildingConfiguration,omitempty"`
}

type LayoutV1 struct {
	Floors        int      `json:"floors"`
	RoomsPerFloor int      `json:"roomsPerFloor"`
	Rooms         []RoomV1 `json:"rooms"`
}

type RoomV1 struct {
	ID          string       `json:"id"`
	Number      string       `json:"number"`
	FloorID     int          `json:"floorId"`
	Rent        float64      `json:"rent"`
	Capacity    int          `json:"capacity"`
	Occupied    int          `json:"occupied"`
	Status      string       `json:"status"`
	Occupants   []OccupantV1 `json:"occupants"`
	Amenities   []string     `json:"amenities"`
	SharingType string       `json:"sharingType"`
}

type OccupantV1 struct {
	Name    string `json:"name"`
	College string `json:"college"`
	Year    string `json:"year"`
}

type ConfigV2 struct {
	TotalFloors int       `json:"totalFloors"`
	TotalRooms  int       `json:"totalRooms"`
	Floors      []FloorV2 `json:"floors"`
}

type FloorV2 struct {
	Number int      `json:"number"`
	Rooms  []RoomV2 `json:"rooms"`
}

type RoomV2 struct {
	ID        string       `json:"id,omitempty"`
	Number    string       `json:"number"`
	Capacity  int          `json:"capacity"`
	Rent      float64      `json:"rent,omitempty"`
	Occupants []OccupantV2 `json:"occupants"`
}

type OccupantV2 struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	RentPaid       bool    `json:"rentPaid"`
	RentStatus     bool    `json:"rentStatus,omitempty"` // older alias of rentPaid
	RentDueDate    string  `json:"rentDueDate,omitempty"`
	AdvancePayment float64 `json:"advancePayment,omitempty"`
	JoinedDate     string  `json:"joinedDate,omitempty"`
}

// Normalize converts whichever legacy shape is present into the
// canonical Building. buildingConfiguration wins when both are stored,
// since it is the shape the tenant screens were writing last.
// Returns false when the document carries no building at all.
func (d LegacyDocument) Normalize() (Building, bool) {
	if d.BuildingConfiguration != nil && len(d.BuildingConfiguration.Floors) > 0 {
		return normalizeConfigV2(*d.BuildingConfiguration), true
	}
	if d.BuildingLayout != nil && len(d.BuildingLayout.Rooms) > 0 {
		return normalizeLayoutV1(*d.BuildingLayout), true
	}
	return Building{}, false
}

func normalizeLayoutV1(l LayoutV1) Building {
	byFloor := make(map[int][]Room)
	for _, rv := range l.Rooms {
		number := rv.Number
		if number == "" {
			number = rv.ID
		}

		room := Room{
			Number:    number,
			Capacity:  repairCapacity(rv.Capacity),
			Rent:      rv.Rent,
			Amenities: rv.Amenities,
		}

		// The stored status/occupied pair was sometimes randomized
		// independently of the occupant list. The occupant list is the
		// source of truth; status is discarded and re-derived.
		for _, ov := range rv.Occupants {
			if len(room.Occupants) >= room.Capacity {
				break
			}
			room.Occupants = append(room.Occupants, Occupant{
				Name:    ov.Name,
				College: ov.College,
				Year:    ov.Year,
			})
		}
		if room.Occupants == nil {
			room.Occupants = []Occupant{}
		}

		byFloor[rv.FloorID] = append(byFloor[rv.FloorID], room)
	}

	floorIDs := make([]int, 0, len(byFloor))
	for id := range byFloor {
		floorIDs = append(floorIDs, id)
	}
	sort.Ints(floorIDs)

	b := Building{Floors: make([]Floor, 0, len(floorIDs))}
	for _, id := range floorIDs {
		// Legacy floorId is zero-based; canonical floor numbers start at 1.
		b.Floors = append(b.Floors, Floor{Number: id + 1, Rooms: byFloor[id]})
		b.TotalRooms += len(byFloor[id])
	}
	b.TotalFloors = len(b.Floors)
	return b
}

func normalizeConfigV2(c ConfigV2) Building {
	b := Building{Floors: make([]Floor, 0, len(c.Floors))}
	for i, fv := range c.Floors {
		number := fv.Number
		if number == 0 {
			number = i + 1
		}

		floor := Floor{Number: number, Rooms: make([]Room, 0, len(fv.Rooms))}
		for _, rv := range fv.Rooms {
			num := rv.Number
			if num == "" {
				num = rv.ID
			}
			room := Room{
				Number:   num,
				Capacity: repairCapacity(rv.Capacity),
				Rent:     rv.Rent,
			}
			for _, ov := range rv.Occupants {
				if len(room.Occupants) >= room.Capacity {
					break
				}
				room.Occupants = append(room.Occupants, Occupant{
					Name:           ov.Name,
					Email:          ov.Email,
					Phone:          ov.Phone,
					RentPaid:       ov.RentPaid || ov.RentStatus,
					RentDueDate:    ov.RentDueDate,
					AdvancePayment: ov.AdvancePayment,
					JoinedDate:     ov.JoinedDate,
				})
			}
			if room.Occupants == nil {
				room.Occupants = []Occupant{}
			}
			floor.Rooms = append(floor.Rooms, room)
		}

		b.Floors = append(b.Floors, floor)
		b.TotalRooms += len(floor.Rooms)
	}
	b.TotalFloors = len(b.Floors)
	return b
}

func repairCapacity(c int) int {
	if c < 1 {
		return 1
	}
	return c
}
