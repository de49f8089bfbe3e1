package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
}
