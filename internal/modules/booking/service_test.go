package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgconnect/internal/domain"
	"pgconnect/internal/repository"
)

type mockPropertyReader struct {
	mock.Mock
}

func (m *mockPropertyReader) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func openProperty() *domain.Property {
	return &domain.Property{
		ID:           3,
		Name:         "Green Valley PG",
		OwnerPhone:   "+919876543210",
		Availability: domain.AvailabilityOpen,
	}
}

func TestService_CreateAndConfirm(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(3)).Return(openProperty(), nil)

	svc := NewService(reader, time.Hour)

	intent, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{
		PropertyID: 3,
		RoomNumber: "101",
		MoveInDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, intent.ID)
	assert.Equal(t, StatusPending, intent.Status)
	assert.Equal(t, "Green Valley PG", intent.PropertyName)

	confirmed, err := svc.Confirm(10, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	// confirmed intents can't be cancelled afterwards
	_, err = svc.Cancel(10, intent.ID)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestService_Create_PropertyClosed(t *testing.T) {
	p := openProperty()
	p.Availability = domain.AvailabilityClosed

	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(3)).Return(p, nil)

	svc := NewService(reader, time.Hour)
	_, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 3})

	assert.ErrorIs(t, err, ErrPropertyClosed)
}

func TestService_Create_PropertyMissing(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

	svc := NewService(reader, time.Hour)
	_, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 99})

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_OtherStudentCannotTouch(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(3)).Return(openProperty(), nil)

	svc := NewService(reader, time.Hour)
	intent, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 3})
	require.NoError(t, err)

	_, err = svc.GetIntent(11, intent.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Confirm(11, intent.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Expiry(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(3)).Return(openProperty(), nil)

	svc := NewService(reader, time.Hour)

	current := time.Now()
	svc.now = func() time.Time { return current }

	intent, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 3})
	require.NoError(t, err)

	// jump past the TTL
	current = current.Add(2 * time.Hour)

	got, err := svc.GetIntent(10, intent.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, got.Status)

	_, err = svc.Confirm(10, intent.ID)
	assert.ErrorIs(t, err, ErrIntentExpired)
}

func TestService_Sweep(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(3)).Return(openProperty(), nil)

	svc := NewService(reader, time.Hour)

	current := time.Now()
	svc.now = func() time.Time { return current }

	intent, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 3})
	require.NoError(t, err)
	_, err = svc.Cancel(10, intent.ID)
	require.NoError(t, err)

	// not old enough yet
	assert.Equal(t, 0, svc.Sweep())

	current = current.Add(3 * time.Hour)
	assert.Equal(t, 1, svc.Sweep())

	_, err = svc.GetIntent(10, intent.ID)
	assert.ErrorIs(t, err, ErrIntentNotFound)
}

func TestService_ListByStudent_NewestFirst(t *testing.T) {
	reader := new(mockPropertyReader)
	reader.On("GetByID", mock.Anything, int64(3)).Return(openProperty(), nil)

	svc := NewService(reader, time.Hour)

	current := time.Now()
	svc.now = func() time.Time { return current }

	first, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 3})
	require.NoError(t, err)

	current = current.Add(time.Minute)
	second, err := svc.CreateIntent(context.Background(), 10, CreateIntentRequest{PropertyID: 3})
	require.NoError(t, err)

	// another student's intent is invisible
	_, err = svc.CreateIntent(context.Background(), 11, CreateIntentRequest{PropertyID: 3})
	require.NoError(t, err)

	list := svc.ListByStudent(10)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
