package manage

import (
	"context"

	"pgconnect/internal/domain"
)

// PropertyRepositoryInterface — only the methods the manage service uses
type PropertyRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	Update(ctx context.Context, p *domain.Property) error
	UpdateBuilding(ctx context.Context, id int64, b *domain.Building) error
	SoftDelete(ctx context.Context, id int64) error
}
