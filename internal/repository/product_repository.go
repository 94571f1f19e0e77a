package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
)

// ProductFilter narrows and pages a catalog listing. Nil price bounds mean
// unbounded; Query matches title and description.
type ProductFilter struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// List returns products newest-first.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
