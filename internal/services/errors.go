// Package services contains the application services of the storefront
// state store: the user directory with its card vaults and auth session,
// the shopping cart, and the simulated payment flow. All domain errors are
// sentinel values matched with errors.Is and are meant to be recovered at
// the call boundary, never to kill the process.
package services

import "errors"

var (
	// Directory errors.
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicatePhone     = errors.New("phone number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProtectedAccount   = errors.New("protected account")

	// Input errors. ErrValidation is wrapped with a human-readable detail.
	ErrValidation = errors.New("validation error")

	// Payment errors.
	ErrPaymentCancelled = errors.New("payment cancelled")
	ErrNoCard           = errors.New("no card selected")
)
