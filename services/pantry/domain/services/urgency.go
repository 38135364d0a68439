package services

import (
	"math"
	"sort"
	"time"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// ExpiringSoonDays is the window, in days, within which a product counts as
// expiring soon.
const ExpiringSoonDays = 2

// UrgencyLevel is the consumption advice derived from a product's urgency.
type UrgencyLevel string

const (
	UrgencyWouldntTrust UrgencyLevel = "wouldnt_trust"
	UrgencyUseToday     UrgencyLevel = "use_today"
	UrgencyUseSoon      UrgencyLevel = "use_soon"
	UrgencyOK           UrgencyLevel = "ok"
)

// EffectiveExpiry returns the date to judge the product by. A manually
// entered expiry date always wins over an estimated one.
func EffectiveExpiry(p models.Product) *time.Time {
	if p.ExpiryDate != nil {
		return p.ExpiryDate
	}
	return p.EstimatedExpiryDate
}

// DaysUntilExpiry returns the signed calendar-day difference between now and
// the product's effective expiry, negative when already past. Both instants
// are normalized to midnight so the time of day never shifts the result.
// Returns ok=false when the product has no expiry date at all.
func DaysUntilExpiry(p models.Product, now time.Time) (int, bool) {
	expiry := EffectiveExpiry(p)
	if expiry == nil {
		return 0, false
	}
	from := midnight(now)
	to := midnight(*expiry)
	days := int(math.Round(to.Sub(from).Hours() / 24))
	return days, true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsExpired reports whether the product's effective expiry lies strictly
// before now.
func IsExpired(p models.Product, now time.Time) bool {
	expiry := EffectiveExpiry(p)
	return expiry != nil && expiry.Before(now)
}

// IsExpiringSoon reports whether the product expires within the next
// ExpiringSoonDays days, counting partial days as whole ones.
func IsExpiringSoon(p models.Product, now time.Time) bool {
	expiry := EffectiveExpiry(p)
	if expiry == nil {
		return false
	}
	days := math.Ceil(expiry.Sub(now).Hours() / 24)
	return days >= 0 && days <= ExpiringSoonDays
}

// UrgencyScore ranks how soon a product should be used, from 0 (most urgent)
// to 4 (no pressure). Expiry beats lifecycle state: an expired product ranks
// ahead of an almost empty one regardless of status.
func UrgencyScore(p models.Product, now time.Time) int {
	switch {
	case IsExpired(p, now):
		return 0
	case IsExpiringSoon(p, now):
		return 1
	case p.Status == models.StatusAlmostEmpty:
		return 2
	case p.Status == models.StatusOpened:
		return 3
	default:
		return 4
	}
}

// UrgencyLevelFor translates a product's state into consumption advice.
func UrgencyLevelFor(p models.Product, now time.Time) UrgencyLevel {
	if IsExpired(p, now) {
		return UrgencyWouldntTrust
	}
	if days, ok := DaysUntilExpiry(p, now); ok && days == 0 {
		return UrgencyUseToday
	}
	if IsExpiringSoon(p, now) {
		return UrgencyUseSoon
	}
	return UrgencyOK
}

// SortByUrgency returns a new slice ordered most urgent first. The sort is
// stable, so products with equal urgency keep their input order. The input
// slice is never mutated.
func SortByUrgency(products []models.Product, now time.Time) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return UrgencyScore(sorted[i], now) < UrgencyScore(sorted[j], now)
	})
	return sorted
}
