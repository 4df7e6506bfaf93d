package domain

import "strings"

// Role drives the pricing view: external resellers pay commission on top.
type Role string

const (
	RoleInternalSales Role = "Internal Sales"
	RoleExternalB2B   Role = "External B2B"
	RoleAdmin         Role = "Admin"
)

// ParseRole normalizes a stored role string; unknown values resolve to
// Internal Sales so pricing never applies a markup by accident.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "external b2b", "external_b2b", "b2b":
		return RoleExternalB2B
	case "admin":
		return RoleAdmin
	default:
		return RoleInternalSales
	}
}

// AppliesCommission reports whether totals shown to this role carry the B2B
// markup. Admin prices as internal unless the caller overrides the view.
func (r Role) AppliesCommission() bool {
	return r == RoleExternalB2B
}

// PaymentStatus for an installment.
type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "Paid"
	PaymentDue       PaymentStatus = "Due"
	PaymentCancelled PaymentStatus = "Cancelled"
)
