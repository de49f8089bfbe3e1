package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type Catalog struct {
	repo port.CatalogRepository
}

func NewCatalog(repo port.CatalogRepository) *Catalog {
	return &Catalog{repo: repo}
}

func (s *Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListCategories: %w", err)
	}

	return categories, nil
}

func (s *Catalog) Products(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("categoryId", "is required")
	}

	products, err := s.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("repo.ListProductsByCategory: %w", err)
	}

	return products, nil
}

func (s *Catalog) Product(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	if productID == uuid.Nil {
		return domain.Product{}, domain.NewValidationError("productId", "is required")
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("repo.GetProduct: %w", err)
	}

	return product, nil
}
