package manage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgconnect/internal/domain"
	"pgconnect/internal/repository"
)

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPropertyRepo) UpdateBuilding(ctx context.Context, id int64, b *domain.Building) error {
	args := m.Called(ctx, id, b)
	return args.Error(0)
}

func (m *mockPropertyRepo) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOwnerReader struct {
	mock.Mock
}

func (m *mockOwnerReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func ownedProperty() *domain.Property {
	return &domain.Property{
		ID:          1,
		OwnerID:     7,
		Name:        "Green Valley PG",
		MonthlyRent: 12000,
		Building: &domain.Building{
			TotalFloors: 1,
			TotalRooms:  2,
			Floors: []domain.Floor{
				{
					Number: 1,
					Rooms: []domain.Room{
						{Number: "101", Capacity: 2, Occupants: []domain.Occupant{
							{Name: "Rahul Sharma", Email: "rahul@example.com", RentPaid: false},
						}},
						{Number: "102", Capacity: 1},
					},
				},
			},
		},
	}
}

func newTestService(repo *mockPropertyRepo) *Service {
	users := new(mockOwnerReader)
	users.On("GetByID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 7, Name: "Suresh", Email: "suresh@example.com", Phone: "+919876543210"}, nil).
		Maybe()
	return NewService(repo, users)
}

func TestService_CreateProperty_DenormalizesOwner(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)
	p, err := svc.CreateProperty(context.Background(), 7, CreatePropertyRequest{
		Name:        "Green Valley PG",
		Address:     "12 MG Road",
		City:        "Pune",
		MonthlyRent: 12000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.OwnerID)
	assert.Equal(t, "Suresh", p.OwnerName)
	assert.Equal(t, domain.PGAny, p.PGType)
	assert.Equal(t, domain.AvailabilityOpen, p.Availability)
}

func TestService_CreateProperty_DuplicateName(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := newTestService(repo)
	_, err := svc.CreateProperty(context.Background(), 7, CreatePropertyRequest{
		Name:        "Green Valley PG",
		Address:     "12 MG Road",
		City:        "Pune",
		MonthlyRent: 12000,
	})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Ownership_Enforced(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)

	svc := newTestService(repo)

	// owner 99 does not own property 1
	_, err := svc.GetProperty(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteProperty(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AddTenant(context.Background(), 99, 1, AddTenantRequest{
		RoomNumber: "102", Name: "X", Email: "x@example.com",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AddTenant_WritesWholeBuilding(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)

	var written *domain.Building
	repo.On("UpdateBuilding", mock.Anything, int64(1), mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(2).(*domain.Building)
		}).
		Return(nil)

	svc := newTestService(repo)
	room, err := svc.AddTenant(context.Background(), 7, 1, AddTenantRequest{
		RoomNumber: "101",
		Name:       "Amit Kumar",
		Email:      "Amit@Example.com",
		College:    "COEP",
	})

	require.NoError(t, err)
	assert.Len(t, room.Occupants, 2)
	assert.Equal(t, "amit@example.com", room.Occupants[1].Email)

	// the persisted tree carries the update, untouched rooms included
	require.NotNil(t, written)
	assert.Len(t, written.Floors[0].Rooms[0].Occupants, 2)
	assert.Len(t, written.Floors[0].Rooms[1].Occupants, 0)
}

func TestService_AddTenant_RoomFull(t *testing.T) {
	p := ownedProperty()
	p.Building.Floors[0].Rooms[1].Occupants = []domain.Occupant{
		{Name: "Priya Singh", Email: "priya@example.com"},
	}

	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(p, nil)

	svc := newTestService(repo)
	_, err := svc.AddTenant(context.Background(), 7, 1, AddTenantRequest{
		RoomNumber: "102", Name: "Extra", Email: "extra@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrRoomFull)
	repo.AssertNotCalled(t, "UpdateBuilding", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AddTenant_RoomMissing(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)

	svc := newTestService(repo)
	_, err := svc.AddTenant(context.Background(), 7, 1, AddTenantRequest{
		RoomNumber: "999", Name: "Ghost", Email: "ghost@example.com",
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_VacateTenant(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)
	repo.On("UpdateBuilding", mock.Anything, int64(1), mock.Anything).Return(nil)

	svc := newTestService(repo)
	room, err := svc.VacateTenant(context.Background(), 7, 1, TenantRef{
		RoomNumber: "101", Email: "rahul@example.com",
	})

	require.NoError(t, err)
	assert.NotNil(t, room.Occupants)
	assert.Len(t, room.Occupants, 0)
}

func TestService_ToggleRentPaid(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)
	repo.On("UpdateBuilding", mock.Anything, int64(1), mock.Anything).Return(nil)

	svc := newTestService(repo)
	occupant, err := svc.ToggleRentPaid(context.Background(), 7, 1, TenantRef{
		RoomNumber: "101", Email: "rahul@example.com",
	})

	require.NoError(t, err)
	assert.True(t, occupant.RentPaid)
}

func TestService_ToggleRentPaid_UnknownTenant(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)

	svc := newTestService(repo)
	_, err := svc.ToggleRentPaid(context.Background(), 7, 1, TenantRef{
		RoomNumber: "101", Email: "nobody@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrOccupantNotFound)
}

func TestService_ConfigureBuilding_Generated(t *testing.T) {
	p := ownedProperty()
	p.Building = nil
	p.TotalRooms = 15

	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(p, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)
	building, err := svc.ConfigureBuilding(context.Background(), 7, 1, ConfigureBuildingRequest{})

	require.NoError(t, err)
	assert.Equal(t, 15, building.TotalRooms)
	assert.Equal(t, 3, building.TotalFloors)
}

func TestService_ConfigureBuilding_ExplicitInvalid(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)

	svc := newTestService(repo)

	// duplicate room numbers are rejected
	_, err := svc.ConfigureBuilding(context.Background(), 7, 1, ConfigureBuildingRequest{
		Building: &domain.Building{
			Floors: []domain.Floor{
				{Number: 1, Rooms: []domain.Room{
					{Number: "101", Capacity: 2},
					{Number: "101", Capacity: 1},
				}},
			},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidLayout)

	// zero capacity is rejected
	_, err = svc.ConfigureBuilding(context.Background(), 7, 1, ConfigureBuildingRequest{
		Building: &domain.Building{
			Floors: []domain.Floor{
				{Number: 1, Rooms: []domain.Room{{Number: "101", Capacity: 0}}},
			},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestService_ImportBuilding_Legacy(t *testing.T) {
	p := ownedProperty()
	p.Building = nil

	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(p, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)
	building, err := svc.ImportBuilding(context.Background(), 7, 1, domain.LegacyDocument{
		BuildingConfiguration: &domain.ConfigV2{
			TotalFloors: 1,
			TotalRooms:  1,
			Floors: []domain.FloorV2{
				{Number: 1, Rooms: []domain.RoomV2{
					{Number: "101", Capacity: 2, Occupants: []domain.OccupantV2{
						{Name: "Sneha Patel", Email: "sneha@example.com", RentStatus: true},
					}},
				}},
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, building.Floors, 1)
	assert.True(t, building.Floors[0].Rooms[0].Occupants[0].RentPaid)
}

func TestService_ImportBuilding_Empty(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(ownedProperty(), nil)

	svc := newTestService(repo)
	_, err := svc.ImportBuilding(context.Background(), 7, 1, domain.LegacyDocument{})

	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestService_Portfolio_Aggregates(t *testing.T) {
	first := *ownedProperty()
	second := domain.Property{
		ID:          2,
		OwnerID:     7,
		Name:        "Sunrise Residency",
		MonthlyRent: 8000,
		Building: &domain.Building{
			Floors: []domain.Floor{
				{Number: 1, Rooms: []domain.Room{
					{Number: "101", Capacity: 3, Occupants: []domain.Occupant{
						{Name: "Kavya Reddy", Email: "kavya@example.com", RentPaid: true},
					}},
				}},
			},
		},
	}

	repo := new(mockPropertyRepo)
	repo.On("GetByOwnerID", mock.Anything, int64(7)).Return([]domain.Property{first, second}, nil)

	svc := newTestService(repo)
	portfolio, err := svc.Portfolio(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 2, portfolio.Properties)
	require.Len(t, portfolio.PerProperty, 2)

	// combined equals the sum of the per-property stats
	sum := portfolio.PerProperty[0].Stats.Add(portfolio.PerProperty[1].Stats)
	assert.Equal(t, sum, portfolio.Combined)

	// one occupied room per property, flat rent counted once per room
	assert.Equal(t, 12000.0+8000.0, portfolio.Combined.MonthlyRevenue)
}
