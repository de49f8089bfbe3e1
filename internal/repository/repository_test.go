package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_storefront.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

// pgFixture is embedded by every repository suite.
type pgFixture struct {
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
}

func (f *pgFixture) start(t *testing.T) {
	ctx := t.Context()

	container, connStr, err := startPostgres(ctx)
	require.NoError(t, err)
	f.container = container

	f.pool, err = pgxpool.New(ctx, connStr)
	require.NoError(t, err)
}

func (f *pgFixture) stop(t *testing.T) {
	if f.pool != nil {
		f.pool.Close()
	}
	if f.container != nil {
		require.NoError(t, testcontainers.TerminateContainer(f.container))
	}
}

func (f *pgFixture) truncateAll(t *testing.T) {
	_, err := f.pool.Exec(t.Context(),
		"TRUNCATE TABLE order_items, orders, products, categories, customers, kv_store CASCADE")
	require.NoError(t, err)
}

func (f *pgFixture) insertCategory(t *testing.T) domain.Category {
	c := domain.Category{
		Name:        gofakeit.ProductCategory(),
		Description: gofakeit.ProductDescription(),
	}

	err := f.pool.QueryRow(t.Context(),
		"INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING category_id",
		c.Name, c.Description).Scan(&c.ID)
	require.NoError(t, err)

	return c
}

func (f *pgFixture) insertProduct(t *testing.T, categoryID uuid.UUID) domain.Product {
	p := domain.Product{
		CategoryID:  categoryID,
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       randomMoney(),
		Stock:       gofakeit.IntRange(0, 50),
	}

	err := f.pool.QueryRow(t.Context(),
		`INSERT INTO products (category_id, product_name, description, price_amount, price_currency, stock)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING product_id`,
		p.CategoryID, p.Name, p.Description, p.Price.Amount, p.Price.Currency.String(), p.Stock).Scan(&p.ID)
	require.NoError(t, err)

	return p
}

func (f *pgFixture) insertCustomer(t *testing.T) domain.Customer {
	c := domain.Customer{
		Name:        gofakeit.Name(),
		Email:       gofakeit.Email(),
		PhoneNumber: gofakeit.Phone(),
		Address:     gofakeit.Street(),
		City:        gofakeit.City(),
	}

	err := f.pool.QueryRow(t.Context(),
		`INSERT INTO customers (customer_name, email, phone_number, address, city)
		 VALUES ($1, $2, $3, $4, $5) RETURNING customer_id`,
		c.Name, c.Email, c.PhoneNumber, c.Address, c.City).Scan(&c.ID)
	require.NoError(t, err)

	return c
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: inr,
	}
}

var inr = currency.MustParseISO("INR")
