package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.Customer, error)
	UpdatePersonalDetails(ctx context.Context, email string, details domain.PersonalDetails) error
	UpdateShippingDetails(ctx context.Context, email string, details domain.ShippingDetails) error
}

// Session resolves the user behind the current request.
type Session interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}
