package order

import (
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the contact details of the person who placed an order.
// It is owned exclusively by one Order and persisted as part of it; two orders
// never share a Customer.
//
// Customer is an immutable value object: full name and phone number are
// required, details carries optional free text such as "Very important
// customer".
type Customer struct { //nolint:recvcheck //using for validation
	fullName    string
	phoneNumber string
	details     string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a required full name and phone number.
// Details may be empty.
func NewCustomer(fullName string, phoneNumber string, details string) (Customer, error) {
	customer := Customer{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setFullName(fullName),
		customer.setPhoneNumber(phoneNumber),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// FullName returns the customer's full name.
func (c Customer) FullName() string {
	return c.fullName
}

// PhoneNumber returns the customer's phone number.
func (c Customer) PhoneNumber() string {
	return c.phoneNumber
}

// Details returns optional free-text notes about the customer.
func (c Customer) Details() string {
	return c.details
}

func (c *Customer) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	c.phoneNumber = phoneNumber
	return nil
}
