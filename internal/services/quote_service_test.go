package services

import (
	"math"
	"testing"

	"backoffice/internal/pricing"
)

func TestPreviewScheduleModes(t *testing.T) {
	total := 1498.0

	equal := previewSchedule(total, false, [3]float64{}, false)
	if math.Abs(equal[0]+equal[1]+equal[2]-total) > 1e-9 {
		t.Errorf("equal preview sums to %v, want %v", equal[0]+equal[1]+equal[2], total)
	}

	custom := previewSchedule(total, true, [3]float64{50, 25, 25}, false)
	if custom[0] != 749 {
		t.Errorf("custom preview first slot = %v, want 749", custom[0])
	}
	if math.Abs(custom[0]+custom[1]+custom[2]-total) > 1e-9 {
		t.Errorf("custom preview sums to %v, want %v", custom[0]+custom[1]+custom[2], total)
	}

	prov := previewSchedule(total, true, [3]float64{50, 25, 25}, true)
	if math.Abs(prov[0]+prov[1]+prov[2]-total) > 1e-9 {
		t.Errorf("provisional preview sums to %v, want %v", prov[0]+prov[1]+prov[2], total)
	}
	// Provisional wins over the custom-percent toggle and carries the deposit.
	if math.Abs(prov[0]-prov[1]-pricing.ProvisionalDeposit) > 0.011 {
		t.Errorf("provisional deposit gap = %v, want ~%v", prov[0]-prov[1], pricing.ProvisionalDeposit)
	}
}

func TestNormalizePercentsDerivesRemainder(t *testing.T) {
	got := normalizePercents([3]float64{50, 0, 0})
	if got != [3]float64{50, 25, 25} {
		t.Errorf("normalizePercents({50,0,0}) = %v, want [50 25 25]", got)
	}

	got = normalizePercents([3]float64{60, 0, 0})
	if got != [3]float64{60, 20, 20} {
		t.Errorf("normalizePercents({60,0,0}) = %v, want [60 20 20]", got)
	}

	// A fully specified trio is the operator's choice; leave it alone.
	full := [3]float64{50, 30, 20}
	if got = normalizePercents(full); got != full {
		t.Errorf("normalizePercents(%v) = %v, want unchanged", full, got)
	}

	// Derived percents feed straight into the split.
	amounts := previewSchedule(1498, true, normalizePercents([3]float64{50, 0, 0}), false)
	if amounts[0] != 749 || amounts[1] != 374.5 {
		t.Errorf("derived split = %v, want [749 374.5 374.5]", amounts)
	}
	if math.Abs(amounts[0]+amounts[1]+amounts[2]-1498) > 1e-9 {
		t.Errorf("derived split sums to %v, want 1498", amounts[0]+amounts[1]+amounts[2])
	}
}
