package domain

import "errors"

// Sentinel errors for the suggestion domain. Use errors.Is() to check these.
var (
	// ErrNotEnoughProducts indicates too few active products to suggest from.
	// The GetSuggestions use case returns an empty list instead of this error;
	// it is reserved for API consumers that want a hard failure mode.
	ErrNotEnoughProducts = errors.New("not enough products to generate suggestions")

	// ErrGenerationFailed indicates the generation backend failed. Generator
	// failures always propagate; there is no silent-degradation path for
	// suggestions.
	ErrGenerationFailed = errors.New("failed to generate suggestions")

	// ErrInvalidSuggestion indicates a suggestion that fails factory validation.
	ErrInvalidSuggestion = errors.New("invalid suggestion")
)
