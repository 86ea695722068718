package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pgconnect/internal/domain"
	"pgconnect/internal/repository"

	"github.com/google/uuid"
)

const DefaultIntentTTL = 48 * time.Hour

type propertyReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Service keeps booking intents in memory. Intents are a simulation of
// the reservation flow: they expire on their own and are lost on
// restart, which is acceptable for follow-up requests.
type Service struct {
	properties propertyReader
	ttl        time.Duration
	now        func() time.Time

	mu      sync.RWMutex
	intents map[string]*Intent
}

func NewService(properties propertyReader, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultIntentTTL
	}
	return &Service{
		properties: properties,
		ttl:        ttl,
		now:        time.Now,
		intents:    make(map[string]*Intent),
	}
}

func (s *Service) CreateIntent(ctx context.Context, studentID int64, req CreateIntentRequest) (*Intent, error) {
	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if property.Availability == domain.AvailabilityClosed {
		return nil, ErrPropertyClosed
	}

	now := s.now()
	intent := &Intent{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		PropertyID:   property.ID,
		PropertyName: property.Name,
		OwnerPhone:   property.OwnerPhone,
		RoomNumber:   req.RoomNumber,
		MoveInDate:   req.MoveInDate,
		Message:      req.Message,
		Status:       StatusPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	s.mu.Lock()
	s.intents[intent.ID] = intent
	s.mu.Unlock()

	return intent, nil
}

func (s *Service) GetIntent(studentID int64, id string) (*Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.intents[id]
	if !ok {
		return nil, ErrIntentNotFound
	}
	if intent.StudentID != studentID {
		return nil, ErrForbidden
	}
	s.expireLocked(intent)

	out := *intent
	return &out, nil
}

func (s *Service) ListByStudent(studentID int64) []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Intent, 0)
	for _, intent := range s.intents {
		if intent.StudentID != studentID {
			continue
		}
		s.expireLocked(intent)
		out = append(out, *intent)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Confirm marks a pending intent as confirmed. There is no payment leg;
// this only signals the owner to reach out.
func (s *Service) Confirm(studentID int64, id string) (*Intent, error) {
	return s.transition(studentID, id, StatusConfirmed)
}

func (s *Service) Cancel(studentID int64, id string) (*Intent, error) {
	return s.transition(studentID, id, StatusCancelled)
}

func (s *Service) transition(studentID int64, id string, to IntentStatus) (*Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.intents[id]
	if !ok {
		return nil, ErrIntentNotFound
	}
	if intent.StudentID != studentID {
		return nil, ErrForbidden
	}
	s.expireLocked(intent)
	if intent.Status == StatusExpired {
		return nil, ErrIntentExpired
	}
	if intent.Status != StatusPending {
		return nil, ErrNotPending
	}

	intent.Status = to
	out := *intent
	return &out, nil
}

// expireLocked lazily flips pending intents past their deadline; the
// caller must hold s.mu.
func (s *Service) expireLocked(intent *Intent) {
	if intent.Status == StatusPending && s.now().After(intent.ExpiresAt) {
		intent.Status = StatusExpired
	}
}

// Sweep drops finished intents older than the TTL. cmd/api runs it on a
// ticker so the map does not grow without bound.
func (s *Service) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, intent := range s.intents {
		s.expireLocked(intent)
		if intent.Status != StatusPending && intent.CreatedAt.Before(cutoff) {
			delete(s.intents, id)
			removed++
		}
	}
	return removed
}
