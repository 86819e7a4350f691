package models

import "errors"

// CustomerInfo holds the checkout step-one form input
type CustomerInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PostalCode string `json:"postal_code"`
}

// Domain errors
var (
	ErrMissingFirstName  = errors.New("first name is required")
	ErrMissingLastName   = errors.New("last name is required")
	ErrMissingPostalCode = errors.New("postal code is required")
)

// Validate checks that all checkout fields are filled in. The application
// under test enforces the same rules server-side; validating locally lets
// the smoke flow fail fast before submitting the form.
func (c CustomerInfo) Validate() error {
	if c.FirstName == "" {
		return ErrMissingFirstName
	}
	if c.LastName == "" {
		return ErrMissingLastName
	}
	if c.PostalCode == "" {
		return ErrMissingPostalCode
	}
	return nil
}
