package pricing

import (
	"math"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func TestSalePriceRoundsUpToNinetyEight(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{1450, 1498},
		{1498, 1498},
		{1500, 1498},
		{1501, 1598},
		{0.01, 98},
		{0, 0},
		{-50, 0},
	}
	for _, c := range cases {
		if got := SalePrice(c.raw); got != c.want {
			t.Errorf("SalePrice(%v) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestSalePriceIdempotent(t *testing.T) {
	for _, raw := range []float64{1, 99, 100, 1450, 12345.67, 999999} {
		once := SalePrice(raw)
		if twice := SalePrice(once); twice != once {
			t.Errorf("SalePrice not idempotent at %v: %v then %v", raw, once, twice)
		}
	}
}

func TestApplyCommissionOnlyForB2B(t *testing.T) {
	if got := ApplyCommission(1498, domain.RoleExternalB2B, 0.10); math.Abs(got-1647.8) > 1e-9 {
		t.Errorf("B2B commission = %v, want 1647.8", got)
	}
	if got := ApplyCommission(1498, domain.RoleInternalSales, 0.10); got != 1498 {
		t.Errorf("internal sales commission = %v, want 1498", got)
	}
	if got := ApplyCommission(1498, domain.RoleAdmin, 0.10); got != 1498 {
		t.Errorf("admin commission = %v, want 1498", got)
	}
}

func TestConvertAppliesSpreadOnRate(t *testing.T) {
	got := Convert(1647.8, "USD", 1.25, 0.02)
	if math.Abs(got-2100.945) > 1e-9 {
		t.Errorf("Convert = %v, want 2100.945", got)
	}
}

func TestConvertGBPPassthrough(t *testing.T) {
	if got := Convert(500, "GBP", 1.25, 0.02); got != 500 {
		t.Errorf("GBP passthrough = %v, want 500", got)
	}
	if got := Convert(500, "", 1.25, 0.02); got != 500 {
		t.Errorf("empty currency passthrough = %v, want 500", got)
	}
}

func TestConvertMissingRateDegrades(t *testing.T) {
	if got := Convert(500, "USD", 0, 0.02); got != 500 {
		t.Errorf("missing rate = %v, want 500 (1:1)", got)
	}
}

func TestAirportTransferQuantity(t *testing.T) {
	cases := []struct {
		adults, cap, want int
	}{
		{7, 4, 2},
		{4, 4, 1},
		{5, 4, 2},
		{1, 4, 1},
		{0, 4, 0},
		{3, 0, 0},
	}
	for _, c := range cases {
		if got := AirportTransferQuantity(c.adults, c.cap); got != c.want {
			t.Errorf("AirportTransferQuantity(%d, %d) = %d, want %d", c.adults, c.cap, got, c.want)
		}
	}
}

func TestFlightQuantityGuestBookedIsZero(t *testing.T) {
	f := &models.Flight{Price: 300, BookedByGuest: true}
	if got := FlightQuantity(f, 2, 4); got != 0 {
		t.Errorf("guest-booked flight quantity = %d, want 0", got)
	}
	f.BookedByGuest = false
	if got := FlightQuantity(f, 0, 4); got != 4 {
		t.Errorf("defaulted flight quantity = %d, want 4", got)
	}
	if got := FlightQuantity(f, 2, 4); got != 2 {
		t.Errorf("requested flight quantity = %d, want 2", got)
	}
	if got := FlightQuantity(nil, 2, 4); got != 0 {
		t.Errorf("nil flight quantity = %d, want 0", got)
	}
}

func TestCircuitTransferMirrorsTickets(t *testing.T) {
	if got := CircuitTransferQuantity(3); got != 3 {
		t.Errorf("CircuitTransferQuantity(3) = %d, want 3", got)
	}
}

func TestExtraNights(t *testing.T) {
	sel := models.SelectionSet{
		DateRange:      models.DateRange{From: "2026-05-20", To: "2026-05-25"},
		OriginalNights: 3,
	}
	if got := ExtraNights(sel); got != 2 {
		t.Errorf("ExtraNights = %d, want 2", got)
	}
	sel.DateRange.To = "2026-05-21"
	if got := ExtraNights(sel); got != 0 {
		t.Errorf("shorter stay extra nights = %d, want 0", got)
	}
	sel.DateRange.From = "bogus"
	if got := ExtraNights(sel); got != 0 {
		t.Errorf("unparseable range extra nights = %d, want 0", got)
	}
}

func TestAggregateSumsComponents(t *testing.T) {
	sel := models.SelectionSet{
		Room:               &models.Room{Price: 900, ExtraNightPrice: 120},
		RoomQuantity:       1,
		Ticket:             &models.Ticket{Price: 150},
		TicketQuantity:     2,
		CircuitTransfer:    &models.CircuitTransfer{Price: 40},
		AirportTransfer:    &models.AirportTransfer{Price: 80, MaxCapacity: 4},
		Flight:             &models.Flight{Price: 200},
		LoungePass:         &models.LoungePass{Price: 50},
		LoungePassQuantity: 2,
		DateRange:          models.DateRange{From: "2026-05-21", To: "2026-05-26"},
		OriginalNights:     4,
		NumberOfAdults:     2,
	}
	b := Aggregate(sel)
	// room 900 + 1 extra night *120 = 1020; tickets 300; circuit 2*40 = 80;
	// airport 1 vehicle * 80; flights 2*200 = 400; lounge 100.
	want := 1020.0 + 300 + 80 + 80 + 400 + 100
	if math.Abs(b.RawTotal-want) > 1e-9 {
		t.Errorf("RawTotal = %v, want %v", b.RawTotal, want)
	}
	if b.RoomCost != 1020 {
		t.Errorf("RoomCost = %v, want 1020", b.RoomCost)
	}
	if b.CircuitTransferCost != 80 {
		t.Errorf("CircuitTransferCost = %v, want 80", b.CircuitTransferCost)
	}
}

func TestComputeEmptySelectionIsZero(t *testing.T) {
	b := Compute(models.SelectionSet{}, models.PricingContext{
		Role:           domain.RoleExternalB2B,
		TargetCurrency: "USD",
		ExchangeRate:   1.25,
		SpreadPercent:  0.02, CommissionPercent: 0.10,
	})
	if b.RawTotal != 0 || b.RoundedTotal != 0 || b.FinalTotal != 0 {
		t.Errorf("empty selection totals = %+v, want zeros", b)
	}
	if b.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", b.Currency)
	}
}

func TestComputeFullPipeline(t *testing.T) {
	sel := models.SelectionSet{
		Room:           &models.Room{Price: 1450},
		RoomQuantity:   1,
		NumberOfAdults: 2,
	}
	ctx := models.PricingContext{
		Role:              domain.RoleExternalB2B,
		TargetCurrency:    "USD",
		ExchangeRate:      1.25,
		SpreadPercent:     0.02,
		CommissionPercent: 0.10,
	}
	b := Compute(sel, ctx)
	if b.RoundedTotal != 1498 {
		t.Errorf("RoundedTotal = %v, want 1498", b.RoundedTotal)
	}
	if math.Abs(b.WithCommission-1647.8) > 1e-9 {
		t.Errorf("WithCommission = %v, want 1647.8", b.WithCommission)
	}
	if math.Abs(b.FinalTotal-2100.945) > 1e-9 {
		t.Errorf("FinalTotal = %v, want 2100.945", b.FinalTotal)
	}
}
