package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{q: db.New(pool)}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{
			ID:          row.CategoryID,
			Name:        row.Name,
			Description: row.Description,
		})
	}

	return categories, nil
}

func (r *catalogRepository) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	if categoryID == uuid.Nil {
		return nil, fmt.Errorf("categoryID is empty")
	}

	rows, err := r.q.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("q.ListProductsByCategory: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := mapProductToDomain(productRow(row))
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	if productID == uuid.Nil {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	row, err := r.q.GetProduct(ctx, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	p, err := mapProductToDomain(productRow(row))
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return p, nil
}

// productRow is the column set shared by the product queries.
type productRow struct {
	ProductID     uuid.UUID
	CategoryID    uuid.UUID
	ProductName   string
	Description   string
	PriceAmount   decimal.Decimal
	PriceCurrency string
	Stock         int32
}

func mapProductToDomain(row productRow) (domain.Product, error) {
	unit, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:          row.ProductID,
		CategoryID:  row.CategoryID,
		Name:        row.ProductName,
		Description: row.Description,
		Price:       domain.NewMoney(row.PriceAmount, unit),
		Stock:       int(row.Stock),
	}, nil
}
