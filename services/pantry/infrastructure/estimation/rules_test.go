package estimation

import (
	"context"
	"testing"
	"time"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
	"github.com/ghuser/foodkeeper/services/pantry/domain/services"
)

func loc(l models.Location) *models.Location {
	return &l
}

func TestRuleEstimator_CategoryTable(t *testing.T) {
	tests := []struct {
		name       string
		product    string
		status     models.Status
		location   *models.Location
		wantDays   int
		wantConf   services.Confidence
	}{
		{"new dairy in fridge", "Leche entera", models.StatusNew, loc(models.LocationFridge), 7, services.ConfidenceHigh},
		{"opened dairy in fridge", "Cheese", models.StatusOpened, loc(models.LocationFridge), 3, services.ConfidenceHigh},
		{"dairy outside fridge", "Milk", models.StatusNew, loc(models.LocationPantry), 1, services.ConfidenceHigh},
		{"new meat in fridge", "Pollo", models.StatusNew, loc(models.LocationFridge), 3, services.ConfidenceHigh},
		{"opened meat in fridge", "Chicken breast", models.StatusOpened, loc(models.LocationFridge), 1, services.ConfidenceHigh},
		{"meat outside fridge", "Salmon", models.StatusNew, nil, 0, services.ConfidenceHigh},
		{"new produce in fridge", "Tomate", models.StatusNew, loc(models.LocationFridge), 7, services.ConfidenceMedium},
		{"opened produce no location", "Lettuce", models.StatusOpened, nil, 2, services.ConfidenceMedium},
		{"new dry goods", "Arroz", models.StatusNew, loc(models.LocationPantry), 365, services.ConfidenceMedium},
		{"opened dry goods", "Pasta", models.StatusOpened, loc(models.LocationPantry), 180, services.ConfidenceMedium},
		{"unknown in fridge", "Mystery sauce", models.StatusNew, loc(models.LocationFridge), 5, services.ConfidenceLow},
		{"unknown in pantry", "Mystery sauce", models.StatusNew, loc(models.LocationPantry), 30, services.ConfidenceLow},
		{"unknown no location", "Mystery sauce", models.StatusNew, nil, 3, services.ConfidenceLow},
	}

	estimator := NewRuleEstimator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := estimator.EstimateExpiryDate(context.Background(), tt.product, tt.status, tt.location)
			if got.Confidence != tt.wantConf {
				t.Errorf("confidence: got %q, want %q", got.Confidence, tt.wantConf)
			}
			assertDaysFromNow(t, got.Date, tt.wantDays)
		})
	}
}

func TestRuleEstimator_FreezerDominates(t *testing.T) {
	estimator := NewRuleEstimator()

	got := estimator.EstimateExpiryDate(context.Background(), "Pollo", models.StatusNew, loc(models.LocationFreezer))
	if got.Confidence != services.ConfidenceMedium {
		t.Errorf("confidence: got %q, want medium", got.Confidence)
	}
	assertDaysFromNow(t, got.Date, 180)

	got = estimator.EstimateExpiryDate(context.Background(), "Pollo", models.StatusOpened, loc(models.LocationFreezer))
	assertDaysFromNow(t, got.Date, 90)
}

func assertDaysFromNow(t *testing.T, date *time.Time, want int) {
	t.Helper()
	if date == nil {
		t.Fatal("expected a date")
	}
	got := int(time.Until(*date).Round(24*time.Hour).Hours() / 24)
	if got != want {
		t.Errorf("days from now: got %d, want %d", got, want)
	}
}
