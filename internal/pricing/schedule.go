package pricing

import (
	"math"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// ProvisionalDeposit is the flat amount taken off the top of a provisional
// booking before the remainder is split.
const ProvisionalDeposit = 100.0

// EqualSplit divides a total into three installments. The third absorbs the
// rounding remainder so the amounts always sum exactly to the total.
func EqualSplit(total float64) [3]float64 {
	share := utils.RoundMinor(total / 3)
	return [3]float64{share, share, total - 2*share}
}

// DerivePercents recomputes the percentage trio after the operator edits one
// slot. Editing slot 0 splits the rest evenly across 1 and 2; editing slot 1
// pushes the remainder into slot 2. Slot 2 is never edited directly.
func DerivePercents(current [3]float64, changed int, value float64) [3]float64 {
	p := current
	switch changed {
	case 0:
		p[0] = value
		p[1] = math.Round((100 - p[0]) / 2)
		p[2] = 100 - p[0] - p[1]
	case 1:
		p[1] = value
		p[2] = 100 - p[0] - p[1]
	}
	return p
}

// PercentSplit allocates by percentages, rounding each slot to the minor
// unit and forcing the third to close the sum exactly.
func PercentSplit(total float64, percents [3]float64) [3]float64 {
	a0 := utils.RoundMinor(total * percents[0] / 100)
	a1 := utils.RoundMinor(total * percents[1] / 100)
	return [3]float64{a0, a1, total - a0 - a1}
}

// ProvisionalSplit takes the flat deposit off the top and splits the rest
// equally; the deposit rides on the first installment so the plan still sums
// to the full total.
func ProvisionalSplit(total float64) [3]float64 {
	if total <= ProvisionalDeposit {
		return [3]float64{total, 0, 0}
	}
	share := utils.RoundMinor((total - ProvisionalDeposit) / 3)
	first := ProvisionalDeposit + share
	return [3]float64{first, share, total - first - share}
}

// ReallocateDue redistributes only the unpaid remainder of a new total
// across Due installments, in proportion to their original due amounts.
// Paid installments keep their amount and date; Cancelled installments get
// zero. A zero due-sum yields zero contributions rather than dividing.
func ReallocateDue(newTotal float64, plan models.PaymentPlan) models.PaymentPlan {
	out := plan
	out.Total = newTotal

	var paid, dueSum float64
	for _, inst := range plan.Installments {
		switch inst.Status {
		case domain.PaymentPaid:
			paid += inst.Amount
		case domain.PaymentDue:
			dueSum += inst.Amount
		}
	}
	remaining := newTotal - paid

	lastDue := -1
	for i, inst := range plan.Installments {
		if inst.Status == domain.PaymentDue {
			lastDue = i
		}
	}

	allocated := 0.0
	for i, inst := range plan.Installments {
		switch inst.Status {
		case domain.PaymentPaid:
			// untouched
		case domain.PaymentCancelled:
			out.Installments[i].Amount = 0
		case domain.PaymentDue:
			if dueSum == 0 {
				out.Installments[i].Amount = 0
				continue
			}
			if i == lastDue {
				out.Installments[i].Amount = remaining - allocated
				continue
			}
			share := utils.RoundMinor(remaining * (inst.Amount / dueSum))
			out.Installments[i].Amount = share
			allocated += share
		}
	}
	return out
}
