package services

import (
	"context"
	"time"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// Confidence grades how much an expiry estimate should be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// Valid reports whether c is one of the known confidence grades.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceNone:
		return true
	}
	return false
}

// Estimation is an estimator's verdict. A nil Date with ConfidenceNone means
// the estimator could not produce an estimate.
type Estimation struct {
	Date       *time.Time
	Confidence Confidence
}

// NoEstimation is the degraded verdict estimators return when they cannot
// help.
func NoEstimation() Estimation {
	return Estimation{Date: nil, Confidence: ConfidenceNone}
}

// ExpiryEstimator estimates how long a product keeps. Implementations never
// return an error: any internal failure degrades to NoEstimation so the
// caller's flow is unaffected. Location may be nil when the product has no
// storage location.
type ExpiryEstimator interface {
	EstimateExpiryDate(ctx context.Context, name string, status models.Status, location *models.Location) Estimation
}
