package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

// Profile reads and edits the customer record matching the session email.
type Profile struct {
	session   port.Session
	customers port.CustomerRepository
}

func NewProfile(session port.Session, customers port.CustomerRepository) *Profile {
	return &Profile{
		session:   session,
		customers: customers,
	}
}

func (s *Profile) Get(ctx context.Context) (domain.Customer, error) {
	return currentCustomer(ctx, s.session, s.customers)
}

// UpdatePersonal changes name, email and phone. The returned customer is
// looked up by the new email.
func (s *Profile) UpdatePersonal(ctx context.Context, details domain.PersonalDetails) (domain.Customer, error) {
	if err := details.Validate(); err != nil {
		return domain.Customer{}, err
	}

	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("session.CurrentUser: %w", err)
	}

	if err := s.customers.UpdatePersonalDetails(ctx, user.Email, details); err != nil {
		return domain.Customer{}, fmt.Errorf("customers.UpdatePersonalDetails: %w", err)
	}

	customer, err := s.customers.GetByEmail(ctx, details.Email)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customers.GetByEmail: %w", err)
	}

	return customer, nil
}

func (s *Profile) UpdateShipping(ctx context.Context, details domain.ShippingDetails) (domain.Customer, error) {
	if err := details.Validate(); err != nil {
		return domain.Customer{}, err
	}

	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("session.CurrentUser: %w", err)
	}

	if err := s.customers.UpdateShippingDetails(ctx, user.Email, details); err != nil {
		return domain.Customer{}, fmt.Errorf("customers.UpdateShippingDetails: %w", err)
	}

	customer, err := s.customers.GetByEmail(ctx, user.Email)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customers.GetByEmail: %w", err)
	}

	return customer, nil
}

func currentCustomer(ctx context.Context, session port.Session, customers port.CustomerRepository) (domain.Customer, error) {
	user, err := session.CurrentUser(ctx)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("session.CurrentUser: %w", err)
	}

	customer, err := customers.GetByEmail(ctx, user.Email)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customers.GetByEmail: %w", err)
	}

	return customer, nil
}
