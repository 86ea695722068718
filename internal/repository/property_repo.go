package repository

import (
	"context"
	"errors"
	"time"

	"pgconnect/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type PropertyFilters struct {
	City           string
	NearestCollege string
	PGType         string
	MaxRent        float64
	Availability   string
	Limit          int
	Offset         int
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetAll returns listed properties with optional filters
func (r *PropertyRepository) GetAll(
	ctx context.Context,
	f PropertyFilters,
) ([]domain.Property, int64, error) {

	var properties []domain.Property
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("deleted_at IS NULL")

	if f.City != "" {
		q = q.Where("LOWER(city) = LOWER(?)", f.City)
	}
	if f.NearestCollege != "" {
		q = q.Where("LOWER(nearest_college) = LOWER(?)", f.NearestCollege)
	}
	if f.PGType != "" {
		q = q.Where("pg_type IN (?, ?)", f.PGType, string(domain.PGAny))
	}
	if f.MaxRent > 0 {
		q = q.Where("monthly_rent <= ?", f.MaxRent)
	}
	if f.Availability != "" {
		q = q.Where("availability = ?", f.Availability)
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	err := q.
		Offset(f.Offset).
		Order("id ASC").
		Find(&properties).Error

	return properties, total, err
}

// GetByID fetches one property by its ID
func (r *PropertyRepository) GetByID(
	ctx context.Context,
	id int64,
) (*domain.Property, error) {

	var p domain.Property

	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&p).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *PropertyRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	var properties []domain.Property
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Order("id ASC").
		Find(&properties).Error
	return properties, err
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	err := r.db.WithContext(ctx).Create(p).Error
	return mapDuplicate(err)
}

// Update saves the whole row, building column included. There is no
// version check: two concurrent editors both read the full tree and the
// later write wins, same as the original document store.
func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return mapDuplicate(r.db.WithContext(ctx).Save(p).Error)
}

// UpdateBuilding replaces the entire floors/rooms/occupants tree in one
// write. Callers must never assume partial merge below the column level.
func (r *PropertyRepository) UpdateBuilding(ctx context.Context, id int64, b *domain.Building) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("building", b)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) SoftDelete(ctx context.Context, id int64) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func mapDuplicate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
