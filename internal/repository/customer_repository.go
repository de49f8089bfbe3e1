package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

const uniqueViolation = "23505"

type customerRepository struct {
	q *db.Queries
}

func NewCustomer(pool *pgxpool.Pool) port.CustomerRepository {
	return &customerRepository{q: db.New(pool)}
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	if email == "" {
		return domain.Customer{}, fmt.Errorf("email is empty")
	}

	row, err := r.q.GetCustomerByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Customer{}, fmt.Errorf("customer[%s]: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.GetCustomerByEmail: %w", err)
	}

	return domain.Customer{
		ID:          row.CustomerID,
		Name:        row.CustomerName,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		Address:     row.Address,
		City:        row.City,
	}, nil
}

func (r *customerRepository) UpdatePersonalDetails(ctx context.Context, email string, details domain.PersonalDetails) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}

	affected, err := r.q.UpdatePersonalDetails(ctx, db.UpdatePersonalDetailsParams{
		CustomerName: details.Name,
		Email:        details.Email,
		PhoneNumber:  details.PhoneNumber,
		CurrentEmail: email,
	})
	if isUniqueViolation(err) {
		return domain.NewValidationError("email", "is already in use")
	}
	if err != nil {
		return fmt.Errorf("q.UpdatePersonalDetails: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer[%s]: %w", email, domain.ErrNotFound)
	}

	return nil
}

func (r *customerRepository) UpdateShippingDetails(ctx context.Context, email string, details domain.ShippingDetails) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}

	affected, err := r.q.UpdateShippingDetails(ctx, db.UpdateShippingDetailsParams{
		Address:      details.Address,
		City:         details.City,
		CurrentEmail: email,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateShippingDetails: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer[%s]: %w", email, domain.ErrNotFound)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
