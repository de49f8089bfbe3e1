package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User is the identity behind the current session.
type User struct {
	ID    string
	Email string
}

// Key identifies the user's own state, such as the cart, across tokens.
// Tokens for the same person may carry different subjects, the email is stable.
func (u User) Key() string {
	return strings.ToLower(strings.TrimSpace(u.Email))
}

type Customer struct {
	ID          uuid.UUID `json:"customerId"`
	Name        string    `json:"customerName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
}

type PersonalDetails struct {
	Name        string `json:"customerName" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=7,max=20"`
}

func (d PersonalDetails) Validate() error {
	return validateStruct(d)
}

type ShippingDetails struct {
	Address string `json:"address" validate:"required,max=500"`
	City    string `json:"city" validate:"required,max=120"`
}

func (d ShippingDetails) Validate() error {
	return validateStruct(d)
}
