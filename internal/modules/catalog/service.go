package catalog

import (
	"context"
	"errors"
	"math/rand"

	"pgconnect/internal/domain"
	"pgconnect/internal/repository"
)

var ErrNotFound = errors.New("property not found")

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type propertyReader interface {
	GetAll(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

type Service struct {
	properties propertyReader
}

func NewService(properties propertyReader) *Service {
	return &Service{properties: properties}
}

type ListResult struct {
	Items   []PropertyCard
	Total   int64
	Page    int
	PerPage int
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	filters := repository.PropertyFilters{
		City:           q.City,
		NearestCollege: q.College,
		PGType:         q.PGType,
		MaxRent:        q.MaxRent,
		Availability:   q.Availability,
		Limit:          perPage,
		Offset:         (page - 1) * perPage,
	}

	properties, total, err := s.properties.GetAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	cards := make([]PropertyCard, 0, len(properties))
	for _, p := range properties {
		cards = append(cards, toCard(p))
	}

	return &ListResult{Items: cards, Total: total, Page: page, PerPage: perPage}, nil
}

// Get returns the full property page. Properties registered without a
// configured building get a deterministic sample layout so the floor map
// is never empty; the payload flags it as generated.
func (s *Service) Get(ctx context.Context, id int64) (*PropertyDetail, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	building := p.Building
	generated := false
	if building == nil || len(building.Floors) == 0 {
		// seed with the property ID so repeated views agree
		rng := rand.New(rand.NewSource(p.ID))
		b := domain.GenerateLayout(domain.LayoutConfig{
			TotalRooms: p.TotalRooms,
			BaseRent:   p.MonthlyRent,
		}, rng)
		building = &b
		generated = true
	}

	view := buildView(*building, p.MonthlyRent, generated)

	detail := &PropertyDetail{
		Property: *p,
		Building: view,
		Summary:  summarize(*building),
	}
	// the raw tree with occupant contact details stays server-side
	detail.Property.Building = nil
	return detail, nil
}

func toCard(p domain.Property) PropertyCard {
	card := PropertyCard{
		ID:             p.ID,
		Name:           p.Name,
		City:           p.City,
		Address:        p.Address,
		PGType:         string(p.PGType),
		MonthlyRent:    p.MonthlyRent,
		NearestCollege: p.NearestCollege,
		DistanceKm:     p.DistanceKm,
		Amenities:      p.Amenities,
		Availability:   string(p.Availability),
	}
	if p.Building != nil {
		sum := summarize(*p.Building)
		card.TotalBeds = sum.TotalBeds
		card.AvailableBeds = sum.AvailableBeds
	}
	return card
}

func buildView(b domain.Building, baseRent float64, generated bool) BuildingView {
	view := BuildingView{
		TotalFloors: b.TotalFloors,
		TotalRooms:  b.TotalRooms,
		Generated:   generated,
		Floors:      make([]FloorView, 0, len(b.Floors)),
	}
	for _, f := range b.Floors {
		fv := FloorView{Number: f.Number, Rooms: make([]RoomView, 0, len(f.Rooms))}
		for _, r := range f.Rooms {
			status, err := domain.StatusOf(r)
			if err != nil {
				status = domain.StatusFull
			}
			fv.Rooms = append(fv.Rooms, RoomView{
				Number:      r.Number,
				Capacity:    r.Capacity,
				SharingType: domain.SharingType(r.Capacity),
				Rent:        r.EffectiveRent(baseRent),
				Occupied:    len(r.Occupants),
				Status:      string(status),
			})
		}
		view.Floors = append(view.Floors, fv)
	}
	return view
}

func summarize(b domain.Building) OccupancyView {
	var v OccupancyView
	for _, f := range b.Floors {
		for _, r := range f.Rooms {
			v.TotalBeds += r.Capacity
			v.OccupiedBeds += len(r.Occupants)
			status, err := domain.StatusOf(r)
			if err != nil {
				status = domain.StatusFull
			}
			switch status {
			case domain.StatusAvailable:
				v.RoomsAvailable++
			case domain.StatusPartial:
				v.RoomsPartial++
			default:
				v.RoomsFull++
			}
		}
	}
	v.AvailableBeds = v.TotalBeds - v.OccupiedBeds
	return v
}
