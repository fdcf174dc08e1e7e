package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")

	ErrOrderNotFound = errors.New("order not found")
	ErrConflict      = errors.New("resource already exists")
)
