package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgconnect/internal/domain"
	"pgconnect/internal/repository"
)

type mockPropertyReader struct {
	mock.Mock
}

func (m *mockPropertyReader) GetAll(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *mockPropertyReader) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func configuredProperty() *domain.Property {
	return &domain.Property{
		ID:          1,
		Name:        "Green Valley PG",
		City:        "Pune",
		MonthlyRent: 9000,
		Building: &domain.Building{
			TotalFloors: 1,
			TotalRooms:  2,
			Floors: []domain.Floor{
				{
					Number: 1,
					Rooms: []domain.Room{
						{Number: "101", Capacity: 2, Occupants: []domain.Occupant{
							{Name: "Rahul Sharma", Email: "rahul@example.com"},
						}},
						{Number: "102", Capacity: 1},
					},
				},
			},
		},
	}
}

func TestService_Get_DerivedStatuses(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(1)).Return(configuredProperty(), nil)

	svc := NewService(reader)
	detail, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, detail.Building.Generated)
	require.Len(t, detail.Building.Floors, 1)

	rooms := detail.Building.Floors[0].Rooms
	require.Len(t, rooms, 2)
	assert.Equal(t, "partial", rooms[0].Status)
	assert.Equal(t, "Double", rooms[0].SharingType)
	assert.Equal(t, "available", rooms[1].Status)

	// rooms without their own rent inherit the property rent
	assert.Equal(t, 9000.0, rooms[0].Rent)

	assert.Equal(t, 3, detail.Summary.TotalBeds)
	assert.Equal(t, 1, detail.Summary.OccupiedBeds)
	assert.Equal(t, 2, detail.Summary.AvailableBeds)
}

func TestService_Get_OccupantsNotExposed(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(1)).Return(configuredProperty(), nil)

	svc := NewService(reader)
	detail, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, detail.Property.Building)
}

func TestService_Get_GeneratesLayoutWhenMissing(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(42)).Return(&domain.Property{
		ID:          42,
		Name:        "Sunrise Residency",
		TotalRooms:  12,
		MonthlyRent: 8000,
	}, nil)

	svc := NewService(reader)
	detail, err := svc.Get(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, detail.Building.Generated)
	assert.Equal(t, 2, detail.Building.TotalFloors)
	assert.Equal(t, 12, detail.Building.TotalRooms)

	// same seed, same layout on a second view
	again, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, detail.Building, again.Building)
}

func TestService_Get_NotFound(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	svc := NewService(reader)
	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_PassesFiltersAndPaginates(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetAll", mock.Anything, repository.PropertyFilters{
		City:           "Pune",
		NearestCollege: "COEP",
		MaxRent:        10000,
		Limit:          20,
		Offset:         20,
	}).Return([]domain.Property{*configuredProperty()}, int64(21), nil)

	svc := NewService(reader)
	result, err := svc.List(context.Background(), ListQuery{
		City:    "Pune",
		College: "COEP",
		MaxRent: 10000,
		Page:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), result.Total)
	assert.Equal(t, 2, result.Page)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Green Valley PG", result.Items[0].Name)
	assert.Equal(t, 3, result.Items[0].TotalBeds)
	assert.Equal(t, 2, result.Items[0].AvailableBeds)

	reader.AssertExpectations(t)
}

func TestService_List_ClampsPerPage(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetAll", mock.Anything, mock.MatchedBy(func(f repository.PropertyFilters) bool {
		return f.Limit == 100
	})).Return([]domain.Property{}, int64(0), nil)

	svc := NewService(reader)
	_, err := svc.List(context.Background(), ListQuery{PerPage: 5000})

	require.NoError(t, err)
	reader.AssertExpectations(t)
}
