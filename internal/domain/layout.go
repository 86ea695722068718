package domain

import (
	"fmt"
	"math/rand"
)

type LayoutConfig struct {
	TotalRooms    int
	RoomsPerFloor int
	BaseRent      float64
}

var sampleNames = []string{
	"Rahul Sharma", "Amit Kumar", "Priya Singh", "Sneha Patel",
	"Kavya Reddy", "Arjun Nair", "Divya Iyer", "Rohan Gupta",
	"Ananya Das", "Vikram Joshi",
}

var sampleColleges = []string{"RVCE", "PESIT", "Christ University", "NMIT", "IISc"}

var sampleYears = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// GenerateLayout builds a synthetic building tree for demos and for
// properties that were registered without a configured layout.
// Room numbers follow the "{floor}{seq:02d}" convention (101, 102, 201...).
// Occupancy is drawn per room and status is always derived from it, so a
// generated building can never violate the capacity invariant.
// Pure and deterministic for a given rng; no I/O.
func GenerateLayout(cfg LayoutConfig, rng *rand.Rand) Building {
	totalRooms := cfg.TotalRooms
	if totalRooms < 1 {
		totalRooms = 12
	}
	perFloor := cfg.RoomsPerFloor
	if perFloor < 1 {
		perFloor = 6
	}
	baseRent := cfg.BaseRent
	if baseRent <= 0 {
		baseRent = 8500
	}

	floorCount := (totalRooms + perFloor - 1) / perFloor

	b := Building{
		TotalFloors: floorCount,
		TotalRooms:  totalRooms,
		Floors:      make([]Floor, 0, floorCount),
	}

	remaining := totalRooms
	for floor := 0; floor < floorCount; floor++ {
		inFloor := perFloor
		if remaining < perFloor {
			inFloor = remaining
		}

		f := Floor{Number: floor + 1, Rooms: make([]Room, 0, inFloor)}
		for seq := 1; seq <= inFloor; seq++ {
			capacity := rng.Intn(3) + 1
			occupied := rng.Intn(capacity + 1)

			room := Room{
				Number:    fmt.Sprintf("%d%02d", floor+1, seq),
				Capacity:  capacity,
				Rent:      baseRent + float64(rng.Intn(4)*100) - 200,
				Amenities: []string{"WiFi", "AC", "Attached Bathroom", "Balcony"}[:rng.Intn(4)+1],
				Occupants: make([]Occupant, 0, occupied),
			}
			for k := 0; k < occupied; k++ {
				room.Occupants = append(room.Occupants, Occupant{
					Name:     sampleNames[rng.Intn(len(sampleNames))],
					Email:    fmt.Sprintf("student%s.%d@college.edu", room.Number, k+1),
					College:  sampleColleges[rng.Intn(len(sampleColleges))],
					Year:     sampleYears[rng.Intn(len(sampleYears))],
					RentPaid: rng.Intn(2) == 0,
				})
			}

			f.Rooms = append(f.Rooms, room)
		}

		b.Floors = append(b.Floors, f)
		remaining -= inFloor
	}

	return b
}
