// Package pricing is the calculation core for quotes and bookings: component
// aggregation, sale-price rounding, B2B commission, and currency conversion.
// Every function is pure; reference data arrives via PricingContext.
package pricing

import (
	"log"
	"math"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// NightsSelected returns the inclusive day difference of the stay range.
// Unparseable or reversed ranges count as zero nights.
func NightsSelected(r models.DateRange) int {
	from, err := time.Parse("2006-01-02", r.From)
	if err != nil {
		return 0
	}
	to, err := time.Parse("2006-01-02", r.To)
	if err != nil {
		return 0
	}
	nights := int(math.Round(to.Sub(from).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// ExtraNights bills only the nights beyond the package's standard stay.
func ExtraNights(sel models.SelectionSet) int {
	extra := NightsSelected(sel.DateRange) - sel.OriginalNights
	if extra < 0 {
		return 0
	}
	return extra
}

// CircuitTransferQuantity always mirrors the ticket count. The transfer is
// priced per traveller and the legacy backend totals it that way, even though
// a separate quantity field exists in the selection. Kept for parity.
func CircuitTransferQuantity(ticketQuantity int) int {
	return ticketQuantity
}

// AirportTransferQuantity derives the vehicle count from the party size.
func AirportTransferQuantity(adults, maxCapacity int) int {
	if adults <= 0 || maxCapacity <= 0 {
		return 0
	}
	return int(math.Ceil(float64(adults) / float64(maxCapacity)))
}

// FlightQuantity defaults to the party size; a guest-booked flight costs 0.
func FlightQuantity(f *models.Flight, requested, adults int) int {
	if f == nil || f.BookedByGuest {
		return 0
	}
	if requested > 0 {
		return requested
	}
	return adults
}

// Aggregate sums the selected components into a raw total at full precision.
// Absent components contribute zero; no error paths exist here.
func Aggregate(sel models.SelectionSet) models.PriceBreakdown {
	var b models.PriceBreakdown

	if sel.Room != nil {
		qty := sel.RoomQuantity
		if qty <= 0 {
			qty = 1
		}
		perRoom := sel.Room.Price + float64(ExtraNights(sel))*sel.Room.ExtraNightPrice
		b.RoomCost = perRoom * float64(qty)
	}

	if sel.Ticket != nil {
		b.TicketCost = sel.Ticket.Price * float64(sel.TicketQuantity)
	}

	if sel.CircuitTransfer != nil {
		b.CircuitTransferCost = sel.CircuitTransfer.Price * float64(CircuitTransferQuantity(sel.TicketQuantity))
	}

	if sel.AirportTransfer != nil {
		vehicles := AirportTransferQuantity(sel.NumberOfAdults, sel.AirportTransfer.MaxCapacity)
		b.AirportTransferCost = sel.AirportTransfer.Price * float64(vehicles)
	}

	if sel.Flight != nil {
		b.FlightCost = sel.Flight.Price * float64(FlightQuantity(sel.Flight, sel.FlightQuantity, sel.NumberOfAdults))
	}

	if sel.LoungePass != nil {
		b.LoungePassCost = sel.LoungePass.Price * float64(sel.LoungePassQuantity)
	}

	b.RawTotal = b.RoomCost + b.TicketCost + b.CircuitTransferCost +
		b.AirportTransferCost + b.FlightCost + b.LoungePassCost
	return b
}

// SalePrice rounds a raw total up to the next hundred minus two, so prices
// end in 98. Persisted values depend on this being bit-exact. Idempotent:
// a value ending in 98 rounds to itself.
func SalePrice(rawTotal float64) float64 {
	if rawTotal <= 0 {
		return 0
	}
	return math.Ceil(rawTotal/100)*100 - 2
}

// ApplyCommission marks up the rounded total for External B2B resellers.
func ApplyCommission(rounded float64, role domain.Role, commissionPercent float64) float64 {
	if !role.AppliesCommission() {
		return rounded
	}
	return rounded * (1 + commissionPercent)
}

// AdjustedRate applies the customer-facing spread on top of the base rate.
func AdjustedRate(baseRate, spreadPercent float64) float64 {
	return baseRate * (1 + spreadPercent)
}

// Convert moves a GBP amount into the target currency. A missing rate
// degrades to 1:1 with a warning; pricing must still render something.
func Convert(amount float64, targetCurrency string, baseRate, spreadPercent float64) float64 {
	if targetCurrency == "" || targetCurrency == "GBP" {
		return amount
	}
	if baseRate <= 0 {
		log.Printf("[PRICING] no GBP->%s rate available, converting 1:1", targetCurrency)
		return amount
	}
	return amount * AdjustedRate(baseRate, spreadPercent)
}

// Compute runs the full pipeline: aggregate, round, commission, convert.
// An empty selection short-circuits every stage to zero.
func Compute(sel models.SelectionSet, ctx models.PricingContext) models.PriceBreakdown {
	b := Aggregate(sel)
	b.Currency = ctx.TargetCurrency
	if b.Currency == "" {
		b.Currency = "GBP"
	}
	if b.RawTotal <= 0 {
		return b
	}
	b.RoundedTotal = SalePrice(b.RawTotal)
	b.WithCommission = ApplyCommission(b.RoundedTotal, ctx.Role, ctx.CommissionPercent)
	b.FinalTotal = Convert(b.WithCommission, ctx.TargetCurrency, ctx.ExchangeRate, ctx.SpreadPercent)
	return b
}
