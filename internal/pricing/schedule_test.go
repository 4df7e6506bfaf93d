package pricing

import (
	"math"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func sum3(a [3]float64) float64 {
	return a[0] + a[1] + a[2]
}

func TestEqualSplitSumsExactly(t *testing.T) {
	for _, total := range []float64{1498, 100, 0.01, 2100.95, 999999.99} {
		got := EqualSplit(total)
		if math.Abs(sum3(got)-total) > 1e-9 {
			t.Errorf("EqualSplit(%v) = %v, sums to %v", total, got, sum3(got))
		}
	}
}

func TestPercentSplitSumsExactly(t *testing.T) {
	got := PercentSplit(1498, [3]float64{50, 25, 25})
	if got[0] != 749 || got[1] != 374.5 {
		t.Errorf("PercentSplit slots = %v, want [749 374.5 ...]", got)
	}
	if math.Abs(sum3(got)-1498) > 1e-9 {
		t.Errorf("PercentSplit sums to %v, want 1498", sum3(got))
	}
}

func TestDerivePercents(t *testing.T) {
	p := DerivePercents([3]float64{33.33, 33.33, 33.34}, 0, 50)
	if p != [3]float64{50, 25, 25} {
		t.Errorf("editing slot 0 to 50 = %v, want [50 25 25]", p)
	}
	p = DerivePercents(p, 1, 30)
	if p != [3]float64{50, 30, 20} {
		t.Errorf("editing slot 1 to 30 = %v, want [50 30 20]", p)
	}
	if s := p[0] + p[1] + p[2]; s != 100 {
		t.Errorf("percents sum to %v, want 100", s)
	}
}

func TestProvisionalSplit(t *testing.T) {
	got := ProvisionalSplit(1498)
	if math.Abs(sum3(got)-1498) > 1e-9 {
		t.Errorf("ProvisionalSplit sums to %v, want 1498", sum3(got))
	}
	if got[0] <= got[1] {
		t.Errorf("first installment %v should carry the deposit over %v", got[0], got[1])
	}
	if math.Abs(got[0]-got[1]-ProvisionalDeposit) > 0.011 {
		t.Errorf("deposit gap = %v, want ~%v", got[0]-got[1], ProvisionalDeposit)
	}

	small := ProvisionalSplit(60)
	if small != [3]float64{60, 0, 0} {
		t.Errorf("ProvisionalSplit(60) = %v, want [60 0 0]", small)
	}
}

func plan(amounts [3]float64, statuses [3]domain.PaymentStatus) models.PaymentPlan {
	p := models.PaymentPlan{Total: sum3(amounts)}
	for i := range p.Installments {
		p.Installments[i].Amount = amounts[i]
		p.Installments[i].Status = statuses[i]
	}
	return p
}

func TestReallocateDueKeepsPaidUntouched(t *testing.T) {
	orig := plan(
		[3]float64{500, 500, 498},
		[3]domain.PaymentStatus{domain.PaymentPaid, domain.PaymentDue, domain.PaymentDue},
	)
	orig.Installments[0].Date = "2026-03-01"

	out := ReallocateDue(1998, orig)

	if out.Installments[0].Amount != 500 || out.Installments[0].Date != "2026-03-01" {
		t.Errorf("paid installment changed: %+v", out.Installments[0])
	}
	if math.Abs(sum3([3]float64{out.Installments[0].Amount, out.Installments[1].Amount, out.Installments[2].Amount})-1998) > 1e-9 {
		t.Errorf("reallocated plan does not sum to new total: %+v", out.Installments)
	}
	// 1498 remaining over a 500/498 due split.
	if math.Abs(out.Installments[1].Amount-750.5) > 1e-9 {
		t.Errorf("installment 2 = %v, want 750.5", out.Installments[1].Amount)
	}
	if math.Abs(out.Installments[2].Amount-747.5) > 1e-9 {
		t.Errorf("installment 3 = %v, want 747.5", out.Installments[2].Amount)
	}
}

func TestReallocateDueZerosCancelled(t *testing.T) {
	orig := plan(
		[3]float64{500, 500, 498},
		[3]domain.PaymentStatus{domain.PaymentPaid, domain.PaymentCancelled, domain.PaymentDue},
	)
	out := ReallocateDue(1200, orig)
	if out.Installments[1].Amount != 0 {
		t.Errorf("cancelled installment = %v, want 0", out.Installments[1].Amount)
	}
	if out.Installments[2].Amount != 700 {
		t.Errorf("last due installment = %v, want 700", out.Installments[2].Amount)
	}
}

func TestReallocateDueAllPaid(t *testing.T) {
	orig := plan(
		[3]float64{500, 500, 498},
		[3]domain.PaymentStatus{domain.PaymentPaid, domain.PaymentPaid, domain.PaymentPaid},
	)
	out := ReallocateDue(2000, orig)
	for i, inst := range out.Installments {
		if inst.Amount != orig.Installments[i].Amount {
			t.Errorf("paid installment %d changed to %v", i, inst.Amount)
		}
	}
	if out.Total != 2000 {
		t.Errorf("Total = %v, want 2000", out.Total)
	}
}

func TestReallocateDueZeroDueSum(t *testing.T) {
	orig := plan(
		[3]float64{500, 0, 0},
		[3]domain.PaymentStatus{domain.PaymentPaid, domain.PaymentDue, domain.PaymentDue},
	)
	// Due installments are zero: the last one still absorbs nothing but must
	// not divide by zero.
	out := ReallocateDue(500, orig)
	if out.Installments[1].Amount != 0 || out.Installments[2].Amount != 0 {
		t.Errorf("zero due-sum reallocation = %+v", out.Installments)
	}
}
