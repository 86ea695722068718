package manage

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"pgconnect/internal/domain"
	"pgconnect/internal/repository"
)

type ownerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service contains the owner-side business logic. Every operation takes
// the acting owner's ID and refuses to touch properties of other owners.
type Service struct {
	properties PropertyRepositoryInterface
	users      ownerReader
}

func NewService(properties PropertyRepositoryInterface, users ownerReader) *Service {
	return &Service{properties: properties, users: users}
}

/* ---------- PROPERTIES ---------- */

func (s *Service) CreateProperty(ctx context.Context, ownerID int64, req CreatePropertyRequest) (*domain.Property, error) {
	pgType := domain.PGType(req.PGType)
	if pgType == "" {
		pgType = domain.PGAny
	}

	p := &domain.Property{
		OwnerID:         ownerID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		PGType:          pgType,
		TotalRooms:      req.TotalRooms,
		MonthlyRent:     req.MonthlyRent,
		NearestCollege:  req.NearestCollege,
		DistanceKm:      req.DistanceKm,
		Amenities:       req.Amenities,
		GateOpening:     req.GateOpening,
		GateClosing:     req.GateClosing,
		SmokingAllowed:  req.SmokingAllowed,
		DrinkingAllowed: req.DrinkingAllowed,
		Availability:    domain.AvailabilityOpen,
	}
	// owner contacts are denormalized onto the listing
	if owner, err := s.users.GetByID(ctx, ownerID); err == nil {
		p.OwnerName = owner.Name
		p.OwnerEmail = owner.Email
		p.OwnerPhone = owner.Phone
	}

	if err := s.properties.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProperty(ctx context.Context, ownerID, propertyID int64, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.Pincode != nil {
		p.Pincode = *req.Pincode
	}
	if req.PGType != nil {
		p.PGType = domain.PGType(*req.PGType)
	}
	if req.MonthlyRent != nil {
		p.MonthlyRent = *req.MonthlyRent
	}
	if req.NearestCollege != nil {
		p.NearestCollege = *req.NearestCollege
	}
	if req.DistanceKm != nil {
		p.DistanceKm = *req.DistanceKm
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}
	if req.GateOpening != nil {
		p.GateOpening = *req.GateOpening
	}
	if req.GateClosing != nil {
		p.GateClosing = *req.GateClosing
	}
	if req.SmokingAllowed != nil {
		p.SmokingAllowed = *req.SmokingAllowed
	}
	if req.DrinkingAllowed != nil {
		p.DrinkingAllowed = *req.DrinkingAllowed
	}
	if req.Availability != nil {
		p.Availability = domain.Availability(*req.Availability)
	}

	if err := s.properties.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProperty(ctx context.Context, ownerID, propertyID int64) error {
	if _, err := s.getOwned(ctx, ownerID, propertyID); err != nil {
		return err
	}
	return s.properties.SoftDelete(ctx, propertyID)
}

func (s *Service) ListProperties(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	return s.properties.GetByOwnerID(ctx, ownerID)
}

func (s *Service) GetProperty(ctx context.Context, ownerID, propertyID int64) (*domain.Property, error) {
	return s.getOwned(ctx, ownerID, propertyID)
}

/* ---------- BUILDING ---------- */

// ConfigureBuilding installs an explicit floor plan or generates one.
// The incoming tree replaces whatever was stored before.
func (s *Service) ConfigureBuilding(ctx context.Context, ownerID, propertyID int64, req ConfigureBuildingRequest) (*domain.Building, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	var building domain.Building
	if req.Building != nil {
		building = *req.Building
		if err := validateBuilding(&building); err != nil {
			return nil, err
		}
	} else {
		seed := req.Seed
		if seed == 0 {
			seed = propertyID
		}
		totalRooms := req.TotalRooms
		if totalRooms == 0 {
			totalRooms = p.TotalRooms
		}
		building = domain.GenerateLayout(domain.LayoutConfig{
			TotalRooms:    totalRooms,
			RoomsPerFloor: req.RoomsPerFloor,
			BaseRent:      p.MonthlyRent,
		}, rand.New(rand.NewSource(seed)))
	}

	p.Building = &building
	p.TotalRooms = building.TotalRooms
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return &building, nil
}

// ImportBuilding ingests a document in one of the legacy shapes and
// stores the normalized tree.
func (s *Service) ImportBuilding(ctx context.Context, ownerID, propertyID int64, doc domain.LegacyDocument) (*domain.Building, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	building, ok := doc.Normalize()
	if !ok {
		return nil, ErrEmptyDocument
	}

	p.Building = &building
	p.TotalRooms = building.TotalRooms
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return &building, nil
}

/* ---------- TENANTS ---------- */

func (s *Service) AddTenant(ctx context.Context, ownerID, propertyID int64, req AddTenantRequest) (*domain.Room, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	if p.Building == nil {
		return nil, ErrNoBuilding
	}

	fi, ri, ok := findRoom(p.Building, req.RoomNumber)
	if !ok {
		return nil, ErrRoomNotFound
	}

	occupant := domain.Occupant{
		Name:           req.Name,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		College:        req.College,
		Year:           req.Year,
		RentDueDate:    req.RentDueDate,
		AdvancePayment: req.AdvancePayment,
		JoinedDate:     req.JoinedDate,
	}

	updated, err := domain.AssignOccupant(p.Building.Floors[fi].Rooms[ri], occupant)
	if err != nil {
		return nil, err
	}
	p.Building.Floors[fi].Rooms[ri] = updated

	if err := s.properties.UpdateBuilding(ctx, propertyID, p.Building); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) UpdateTenant(ctx context.Context, ownerID, propertyID int64, ref TenantRef, req UpdateTenantRequest) (*domain.Occupant, error) {
	p, fi, ri, oi, err := s.locateTenant(ctx, ownerID, propertyID, ref)
	if err != nil {
		return nil, err
	}

	occupant := p.Building.Floors[fi].Rooms[ri].Occupants[oi]
	if req.Phone != nil {
		occupant.Phone = *req.Phone
	}
	if req.College != nil {
		occupant.College = *req.College
	}
	if req.Year != nil {
		occupant.Year = *req.Year
	}
	if req.RentDueDate != nil {
		occupant.RentDueDate = *req.RentDueDate
	}
	if req.AdvancePayment != nil {
		occupant.AdvancePayment = *req.AdvancePayment
	}
	p.Building.Floors[fi].Rooms[ri].Occupants[oi] = occupant

	if err := s.properties.UpdateBuilding(ctx, propertyID, p.Building); err != nil {
		return nil, err
	}
	return &occupant, nil
}

func (s *Service) VacateTenant(ctx context.Context, ownerID, propertyID int64, ref TenantRef) (*domain.Room, error) {
	p, fi, ri, oi, err := s.locateTenant(ctx, ownerID, propertyID, ref)
	if err != nil {
		return nil, err
	}

	updated, err := domain.VacateOccupant(p.Building.Floors[fi].Rooms[ri], oi)
	if err != nil {
		return nil, err
	}
	p.Building.Floors[fi].Rooms[ri] = updated

	if err := s.properties.UpdateBuilding(ctx, propertyID, p.Building); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) ToggleRentPaid(ctx context.Context, ownerID, propertyID int64, ref TenantRef) (*domain.Occupant, error) {
	p, fi, ri, oi, err := s.locateTenant(ctx, ownerID, propertyID, ref)
	if err != nil {
		return nil, err
	}

	occupant := domain.ToggleRentPaid(p.Building.Floors[fi].Rooms[ri].Occupants[oi])
	p.Building.Floors[fi].Rooms[ri].Occupants[oi] = occupant

	if err := s.properties.UpdateBuilding(ctx, propertyID, p.Building); err != nil {
		return nil, err
	}
	return &occupant, nil
}

/* ---------- STATS ---------- */

func (s *Service) PropertyStats(ctx context.Context, ownerID, propertyID int64) (*domain.Stats, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	stats := domain.PropertyStats(*p)
	return &stats, nil
}

func (s *Service) Portfolio(ctx context.Context, ownerID int64) (*PortfolioStats, error) {
	properties, err := s.properties.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := &PortfolioStats{
		Properties:  len(properties),
		PerProperty: make([]PropertyStatsEntry, 0, len(properties)),
	}
	for _, p := range properties {
		stats := domain.PropertyStats(p)
		out.Combined = out.Combined.Add(stats)
		out.PerProperty = append(out.PerProperty, PropertyStatsEntry{
			PropertyID: p.ID,
			Name:       p.Name,
			Stats:      stats,
		})
	}
	return out, nil
}

/* ---------- helpers ---------- */

func (s *Service) getOwned(ctx context.Context, ownerID, propertyID int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) locateTenant(ctx context.Context, ownerID, propertyID int64, ref TenantRef) (*domain.Property, int, int, int, error) {
	p, err := s.getOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	if p.Building == nil {
		return nil, 0, 0, 0, ErrNoBuilding
	}

	fi, ri, ok := findRoom(p.Building, ref.RoomNumber)
	if !ok {
		return nil, 0, 0, 0, ErrRoomNotFound
	}

	email := strings.ToLower(strings.TrimSpace(ref.Email))
	for oi, o := range p.Building.Floors[fi].Rooms[ri].Occupants {
		if strings.ToLower(o.Email) == email {
			return p, fi, ri, oi, nil
		}
	}
	return nil, 0, 0, 0, domain.ErrOccupantNotFound
}

func findRoom(b *domain.Building, number string) (floorIdx, roomIdx int, ok bool) {
	for fi, f := range b.Floors {
		for ri, r := range f.Rooms {
			if r.Number == number {
				return fi, ri, true
			}
		}
	}
	return 0, 0, false
}

func validateBuilding(b *domain.Building) error {
	if len(b.Floors) == 0 {
		return ErrInvalidLayout
	}
	seen := map[string]bool{}
	total := 0
	for _, f := range b.Floors {
		for _, r := range f.Rooms {
			if r.Number == "" || r.Capacity < 1 {
				return ErrInvalidLayout
			}
			if len(r.Occupants) > r.Capacity {
				return ErrInvalidLayout
			}
			if seen[r.Number] {
				return ErrInvalidLayout
			}
			seen[r.Number] = true
			total++
		}
	}
	b.TotalFloors = len(b.Floors)
	b.TotalRooms = total
	return nil
}
