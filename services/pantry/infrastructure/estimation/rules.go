// Package estimation provides the ExpiryEstimator adapters: an offline
// rule-based estimator and an OpenAI-backed one.
package estimation

import (
	"context"
	"strings"
	"time"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
	"github.com/ghuser/foodkeeper/services/pantry/domain/services"
)

// RuleEstimator estimates shelf life from conservative food safety
// guidelines. It is fully offline and deterministic, and serves as the
// fallback when no text-generation backend is configured.
//
// Freezer storage is checked first and dominates every category. An opened
// product keeps roughly half as long as a new one.
type RuleEstimator struct{}

// NewRuleEstimator returns the offline rule-based estimator.
func NewRuleEstimator() *RuleEstimator {
	return &RuleEstimator{}
}

var (
	dairyKeywords = []string{
		"milk", "leche", "yogur", "yogurt", "queso", "cheese", "nata", "cream",
	}
	meatKeywords = []string{
		"pollo", "chicken", "carne", "meat", "pescado", "fish", "salmon",
		"cerdo", "pork", "ternera", "beef",
	}
	produceKeywords = []string{
		"tomat", "lettuce", "lechuga", "zanahoria", "carrot", "apple",
		"manzana", "banana", "plátano", "pepper", "pimiento",
	}
	dryGoodKeywords = []string{
		"rice", "arroz", "pasta", "flour", "harina", "bean", "alubia",
		"lentil", "lenteja", "cereal",
	}
)

// EstimateExpiryDate classifies the product name by keyword and combines
// category, storage location, and lifecycle status into a day offset from
// now. It never fails; unrecognized products get a conservative low
// confidence estimate.
func (e *RuleEstimator) EstimateExpiryDate(_ context.Context, name string, status models.Status, location *models.Location) services.Estimation {
	nameLower := strings.ToLower(name)

	if location != nil && *location == models.LocationFreezer {
		return estimate(pickDays(status, 180, 90), services.ConfidenceMedium)
	}

	switch {
	case matchesAny(nameLower, dairyKeywords):
		if !inLocation(location, models.LocationFridge) {
			return estimate(1, services.ConfidenceHigh)
		}
		return estimate(pickDays(status, 7, 3), services.ConfidenceHigh)

	case matchesAny(nameLower, meatKeywords):
		if !inLocation(location, models.LocationFridge) {
			return estimate(0, services.ConfidenceHigh)
		}
		return estimate(pickDays(status, 3, 1), services.ConfidenceHigh)

	case matchesAny(nameLower, produceKeywords):
		base := 5
		if inLocation(location, models.LocationFridge) {
			base = 7
		}
		return estimate(pickDays(status, base, base/2), services.ConfidenceMedium)

	case matchesAny(nameLower, dryGoodKeywords):
		return estimate(pickDays(status, 365, 180), services.ConfidenceMedium)
	}

	switch {
	case inLocation(location, models.LocationFridge):
		return estimate(5, services.ConfidenceLow)
	case inLocation(location, models.LocationPantry):
		return estimate(30, services.ConfidenceLow)
	default:
		return estimate(3, services.ConfidenceLow)
	}
}

func matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func inLocation(location *models.Location, want models.Location) bool {
	return location != nil && *location == want
}

// pickDays returns the shelf life for the status: new products get the full
// span, anything already opened gets the reduced one.
func pickDays(status models.Status, newDays, openedDays int) int {
	if status == models.StatusNew {
		return newDays
	}
	return openedDays
}

func estimate(days int, confidence services.Confidence) services.Estimation {
	date := time.Now().UTC().AddDate(0, 0, days)
	return services.Estimation{Date: &date, Confidence: confidence}
}
