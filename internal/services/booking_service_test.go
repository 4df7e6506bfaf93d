package services

import (
	"testing"

	"backoffice/internal/domain"
)

func TestValidatePaymentDates(t *testing.T) {
	cases := []struct {
		name  string
		dates [3]string
		ok    bool
	}{
		{"increasing", [3]string{"2026-03-01", "2026-04-01", "2026-05-01"}, true},
		{"equal dates", [3]string{"2026-03-01", "2026-03-01", "2026-05-01"}, false},
		{"decreasing", [3]string{"2026-05-01", "2026-04-01", "2026-06-01"}, false},
		{"blanks skipped", [3]string{"2026-03-01", "", "2026-02-01"}, true},
		{"relative markers skipped", [3]string{"2026-03-01", "+ 2 months", "+ 4 months"}, true},
		{"garbage", [3]string{"2026-03-01", "not-a-date", "2026-05-01"}, false},
	}
	for _, c := range cases {
		err := validatePaymentDates(c.dates)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%s: expected error", c.name)
				continue
			}
			if !domain.IsValidation(err) {
				t.Errorf("%s: error %v is not a validation error", c.name, err)
			}
		}
	}
}

func TestValidatePercents(t *testing.T) {
	if err := validatePercents([3]float64{50, 25, 25}); err != nil {
		t.Errorf("valid percents rejected: %v", err)
	}
	if err := validatePercents([3]float64{33.33, 33.33, 33.34}); err != nil {
		t.Errorf("near-exact percents rejected: %v", err)
	}
	if err := validatePercents([3]float64{50, 25, 20}); err == nil {
		t.Error("expected error for percents summing to 95")
	}
	if err := validatePercents([3]float64{120, -10, -10}); err == nil {
		t.Error("expected error for negative percent")
	}
}
