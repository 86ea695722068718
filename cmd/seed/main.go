package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"pgconnect/internal/database"
	"pgconnect/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo database: three owners, three students and a handful of
// PGs around Pune with generated floor plans.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "pgconnect.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	students := []domain.User{}
	studentSeeds := []struct {
		name, email, college string
	}{
		{"Rahul Sharma", "rahul@student.test", "COEP Pune"},
		{"Priya Singh", "priya@student.test", "Fergusson College"},
		{"Arjun Nair", "arjun@student.test", "MIT-WPU"},
	}
	for i, s := range studentSeeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         domain.RoleStudent,
			Name:         s.name,
			Phone:        fmt.Sprintf("+91980000%04d", i+1),
			City:         "Pune",
			College:      s.college,
		}
		db.Create(&u)
		students = append(students, u)
	}
	log.Printf("Students created: %d (password student123)", len(students))

	owners := []domain.User{}
	ownerSeeds := []struct {
		name, email string
	}{
		{"Suresh Patil", "suresh@owner.test"},
		{"Meena Kulkarni", "meena@owner.test"},
		{"Rajesh Deshmukh", "rajesh@owner.test"},
	}
	for i, o := range ownerSeeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        o.email,
			PasswordHash: string(hash),
			Role:         domain.RoleOwner,
			Name:         o.name,
			Phone:        fmt.Sprintf("+91987650%04d", i+1),
			City:         "Pune",
		}
		db.Create(&u)
		owners = append(owners, u)
	}
	log.Printf("Owners created: %d (password owner123)", len(owners))

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	propertySeeds := []struct {
		name, area, college string
		pgType              domain.PGType
		rooms               int
		rent                float64
		distance            float64
		amenities           []string
	}{
		{"Green Valley PG", "Shivajinagar", "COEP Pune", domain.PGBoys, 18, 9500, 1.2,
			[]string{"WiFi", "Food", "Laundry", "Power Backup"}},
		{"Sunrise Residency", "Kothrud", "MIT-WPU", domain.PGGirls, 12, 11000, 0.8,
			[]string{"WiFi", "Food", "AC", "CCTV"}},
		{"Shanti Niwas", "Deccan", "Fergusson College", domain.PGAny, 15, 8000, 1.5,
			[]string{"WiFi", "Laundry", "Parking"}},
		{"Campus Corner PG", "Viman Nagar", "Symbiosis", domain.PGBoys, 24, 12500, 2.0,
			[]string{"WiFi", "Food", "Gym", "AC"}},
		{"Lakshmi Heights", "Karve Nagar", "Cummins College", domain.PGGirls, 10, 9000, 1.0,
			[]string{"WiFi", "Food", "CCTV", "Warden"}},
	}

	for i, ps := range propertySeeds {
		owner := owners[i%len(owners)]
		rng := rand.New(rand.NewSource(int64(i + 1)))

		building := domain.GenerateLayout(domain.LayoutConfig{
			TotalRooms: ps.rooms,
			BaseRent:   ps.rent,
		}, rng)

		p := domain.Property{
			OwnerID:        owner.ID,
			Name:           ps.name,
			Description:    fmt.Sprintf("Well maintained PG in %s, walking distance from %s.", ps.area, ps.college),
			Address:        fmt.Sprintf("%d %s Main Road", 10+i*7, ps.area),
			City:           "Pune",
			State:          "Maharashtra",
			Pincode:        fmt.Sprintf("4110%02d", i+1),
			PGType:         ps.pgType,
			TotalRooms:     building.TotalRooms,
			MonthlyRent:    ps.rent,
			NearestCollege: ps.college,
			DistanceKm:     ps.distance,
			Amenities:      ps.amenities,
			GateOpening:    "06:00",
			GateClosing:    "22:30",
			Availability:   domain.AvailabilityOpen,
			OwnerName:      owner.Name,
			OwnerEmail:     owner.Email,
			OwnerPhone:     owner.Phone,
			Building:       &building,
		}
		db.Create(&p)

		stats := domain.PropertyStats(p)
		log.Printf("  %s: %d rooms, %d/%d beds occupied, revenue %.0f",
			p.Name, stats.TotalRooms, stats.OccupiedBeds, stats.TotalBeds, stats.MonthlyRevenue)
	}

	log.Println("Seed complete.")
}
