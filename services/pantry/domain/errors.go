package domain

import "errors"

// Sentinel errors for the pantry domain. Use errors.Is() to check these.
var (
	// ErrProductNameEmpty indicates the product name is empty after trimming.
	ErrProductNameEmpty = errors.New("product name cannot be empty")

	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductStatus indicates a status outside the allowed lifecycle values.
	ErrInvalidProductStatus = errors.New("invalid product status")

	// ErrInvalidOutcome indicates an outcome outside the allowed values.
	ErrInvalidOutcome = errors.New("invalid product outcome")

	// ErrOutcomeRequiresFinishedStatus indicates an attempt to set an outcome
	// on a product that has not been finished. Clearing an outcome is always
	// allowed and never triggers this error.
	ErrOutcomeRequiresFinishedStatus = errors.New("outcome can only be set when product status is finished")
)
