package models

import "backoffice/internal/domain"

// PricingContext carries the reference data a price calculation reads.
// Fetched once per session/currency change; immutable during a calculation.
type PricingContext struct {
	Role              domain.Role `json:"role"`
	TargetCurrency    string      `json:"target_currency"`
	ExchangeRate      float64     `json:"exchange_rate"`
	SpreadPercent     float64     `json:"spread_percent"`
	CommissionPercent float64     `json:"commission_percent"`
}

// PriceBreakdown is the full output of a pricing run, kept at full precision.
// Display rounding happens at render time only.
type PriceBreakdown struct {
	RoomCost            float64 `json:"room_cost"`
	TicketCost          float64 `json:"ticket_cost"`
	CircuitTransferCost float64 `json:"circuit_transfer_cost"`
	AirportTransferCost float64 `json:"airport_transfer_cost"`
	FlightCost          float64 `json:"flight_cost"`
	LoungePassCost      float64 `json:"lounge_pass_cost"`

	RawTotal       float64 `json:"raw_total"`
	RoundedTotal   float64 `json:"rounded_total"`
	WithCommission float64 `json:"with_commission"`
	FinalTotal     float64 `json:"final_total"`
	Currency       string  `json:"currency"`
}

// Quote is a persisted priced selection an operator can hand to a customer.
type Quote struct {
	Ref        string         `json:"ref"`
	EventID    int64          `json:"event_id"`
	PackageID  int64          `json:"package_id"`
	Selection  SelectionSet   `json:"selection"`
	Context    PricingContext `json:"context"`
	Breakdown  PriceBreakdown `json:"breakdown"`
	Schedule   [3]float64     `json:"schedule"`
	CreatedAt  string         `json:"created_at"`
	CreatedBy  string         `json:"created_by"`
	CustomerNm string         `json:"customer_name"`
}
