package models

import "backoffice/internal/domain"

// Installment is one of the three scheduled payments. Once Status is Paid
// the amount and date are immutable for the rest of the booking's life.
type Installment struct {
	Amount float64              `json:"amount"`
	Date   string               `json:"date"`
	Status domain.PaymentStatus `json:"status"`
}

// PaymentPlan splits a booking total into three installments.
// Invariant at creation: the amounts sum exactly to Total (the third
// installment absorbs any rounding remainder).
type PaymentPlan struct {
	Total        float64        `json:"total"`
	Installments [3]Installment `json:"installments"`
}

// Booking is the persisted record built from a submitted selection.
type Booking struct {
	ID         int64  `json:"id"`
	Ref        string `json:"booking_ref"`
	EventID    int64  `json:"event_id"`
	PackageID  int64  `json:"package_id"`
	EventName  string `json:"event_name"`
	CustomerNm string `json:"customer_name"`
	CustomerPh string `json:"customer_phone"`
	Email      string `json:"customer_email"`

	Selection SelectionSet   `json:"selection"`
	Context   PricingContext `json:"context"`
	Breakdown PriceBreakdown `json:"breakdown"`

	TotalCost   float64 `json:"total_cost"`
	TotalSold   float64 `json:"total_sold"`
	Currency    string  `json:"currency"`
	Provisional bool    `json:"provisional"`

	Plan PaymentPlan `json:"payment_plan"`

	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// BookingUpdate supports PATCH-style edits via key presence.
type BookingUpdate struct {
	CustomerNm *string       `json:"customer_name,omitempty"`
	CustomerPh *string       `json:"customer_phone,omitempty"`
	Email      *string       `json:"customer_email,omitempty"`
	Status     *string       `json:"status,omitempty"`
	Selection  *SelectionSet `json:"selection,omitempty"`
}
