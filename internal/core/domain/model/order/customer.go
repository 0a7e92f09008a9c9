package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a value object describing the buyer contact details
// denormalized onto the order at checkout.
type Customer struct {
	name  string
	phone string
	email string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer value. Name and phone are required because
// confirmation and carrier handoff both need them; email is optional.
func NewCustomer(name, phone, email string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("phone")
	}

	return Customer{
		name:  name,
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's full name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email address, possibly empty.
func (c Customer) Email() string {
	return c.email
}
