package services

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/bookingref"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

const (
	refFetchRetries = 3
	refFetchBackoff = time.Second
)

// BookingRequest is the submission payload assembled by the booking form.
type BookingRequest struct {
	EventID       int64  `json:"event_id"`
	PackageID     int64  `json:"package_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	Selection      models.SelectionSet `json:"selection"`
	Role           string              `json:"role"`
	TargetCurrency string              `json:"target_currency"`

	AdjustSchedule bool       `json:"adjust_schedule"`
	Percents       [3]float64 `json:"percents"`
	Provisional    bool       `json:"provisional"`

	// Literal YYYY-MM-DD dates, or relative markers like "+ 2 months" on
	// provisional bookings. Markers pass through to storage verbatim.
	PaymentDates [3]string `json:"payment_dates"`
}

// EditRequest changes a booking's components and/or customer fields. A new
// selection triggers recalculation and due-only payment reallocation.
type EditRequest struct {
	CustomerName  *string              `json:"customer_name,omitempty"`
	CustomerPhone *string              `json:"customer_phone,omitempty"`
	CustomerEmail *string              `json:"customer_email,omitempty"`
	Status        *string              `json:"status,omitempty"`
	Selection     *models.SelectionSet `json:"selection,omitempty"`
}

type BookingService struct {
	BookingRepo repositories.BookingRepository
	EventRepo   repositories.EventRepository
	HotelRepo   repositories.HotelRepository
	Rates       RatesService
	RequestID   string

	// Now is injectable for deterministic reference years in tests.
	Now func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking validates, prices, schedules, and persists a submission.
func (s BookingService) CreateBooking(req BookingRequest) (models.Booking, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return models.Booking{}, domain.ValidationError{Field: "customer_name", Msg: "required"}
	}
	if req.Selection.IsEmpty() {
		return models.Booking{}, domain.ValidationError{Field: "selection", Msg: "no components selected"}
	}
	if err := validatePaymentDates(req.PaymentDates); err != nil {
		return models.Booking{}, err
	}
	if req.AdjustSchedule {
		req.Percents = normalizePercents(req.Percents)
		if err := validatePercents(req.Percents); err != nil {
			return models.Booking{}, err
		}
	}

	event, err := s.EventRepo.GetByID(req.EventID)
	if err != nil {
		return models.Booking{}, err
	}

	role := domain.ParseRole(req.Role)
	ctx := s.Rates.Context(role, strings.ToUpper(strings.TrimSpace(req.TargetCurrency)))
	breakdown := pricing.Compute(req.Selection, ctx)

	amounts := previewSchedule(breakdown.FinalTotal, req.AdjustSchedule, req.Percents, req.Provisional)

	ref := s.nextReference(event)

	b := models.Booking{
		Ref:         ref.String(),
		EventID:     event.ID,
		PackageID:   req.PackageID,
		EventName:   event.Name,
		CustomerNm:  strings.TrimSpace(req.CustomerName),
		CustomerPh:  strings.TrimSpace(req.CustomerPhone),
		Email:       strings.TrimSpace(req.CustomerEmail),
		Selection:   req.Selection,
		Context:     ctx,
		Breakdown:   breakdown,
		TotalCost:   breakdown.RawTotal,
		TotalSold:   breakdown.FinalTotal,
		Currency:    breakdown.Currency,
		Provisional: req.Provisional,
		Status:      "Confirmed",
	}
	if req.Provisional {
		b.Status = "Provisional"
	}
	b.Plan.Total = breakdown.FinalTotal
	for i := 0; i < 3; i++ {
		b.Plan.Installments[i] = models.Installment{
			Amount: amounts[i],
			Date:   strings.TrimSpace(req.PaymentDates[i]),
			Status: domain.PaymentDue,
		}
	}

	id, err := s.BookingRepo.Create(b)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to store booking", Err: err}
	}
	b.ID = id

	s.consumeRoomInventory(req.Selection)

	utils.LogEvent(s.RequestID, "bookings", "create",
		fmt.Sprintf("id=%d ref=%s total=%s %s", id, b.Ref, utils.FormatMoney(b.TotalSold), b.Currency))
	return b, nil
}

// EditBooking recomputes the price for a changed selection and redistributes
// only the unpaid remainder across Due installments. Paid installments are
// never touched.
func (s BookingService) EditBooking(id int64, req EditRequest) (models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	if req.CustomerName != nil || req.CustomerPhone != nil || req.CustomerEmail != nil || req.Status != nil {
		upd := models.BookingUpdate{
			CustomerNm: req.CustomerName,
			CustomerPh: req.CustomerPhone,
			Email:      req.CustomerEmail,
			Status:     req.Status,
		}
		if err := s.BookingRepo.UpdateCustomer(id, upd); err != nil {
			return models.Booking{}, domain.InternalError{Msg: "failed to update booking", Err: err}
		}
	}

	if req.Selection != nil {
		oldSel := b.Selection
		b.Selection = *req.Selection

		// Reprice against the stored context so the booking keeps the
		// rate, spread, and commission it was sold at.
		b.Breakdown = pricing.Compute(b.Selection, b.Context)
		b.TotalCost = b.Breakdown.RawTotal
		b.TotalSold = b.Breakdown.FinalTotal
		b.Plan = pricing.ReallocateDue(b.TotalSold, b.Plan)

		if err := s.BookingRepo.UpdatePricing(id, b); err != nil {
			return models.Booking{}, domain.InternalError{Msg: "failed to update booking pricing", Err: err}
		}

		s.releaseRoomInventory(oldSel)
		s.consumeRoomInventory(b.Selection)

		utils.LogEvent(s.RequestID, "bookings", "edit",
			fmt.Sprintf("id=%d new_total=%s %s", id, utils.FormatMoney(b.TotalSold), b.Currency))
	}

	return s.BookingRepo.GetByID(id)
}

func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	return s.BookingRepo.GetByID(id)
}

func (s BookingService) ListBookings(limit, offset int) ([]models.Booking, error) {
	return s.BookingRepo.List(limit, offset)
}

// nextReference fetches all issued refs with retry and derives the next
// sequential code. Exhausted retries degrade to the fallback reference
// rather than blocking booking creation.
func (s BookingService) nextReference(event models.Event) bookingref.Reference {
	refs, ok := utils.FetchWithFallback(s.BookingRepo.ListRefs, nil, refFetchRetries, refFetchBackoff)
	if !ok {
		utils.LogEvent(s.RequestID, "bookings", "reference", "ref lookup failed, using fallback sequence")
		return bookingref.Fallback()
	}
	return bookingref.Generate(event, refs, s.now())
}

func (s BookingService) consumeRoomInventory(sel models.SelectionSet) {
	if sel.Room == nil {
		return
	}
	qty := sel.RoomQuantity
	if qty <= 0 {
		qty = 1
	}
	if err := s.HotelRepo.AdjustRoomRemaining(sel.Room.ID, qty); err != nil {
		utils.LogEvent(s.RequestID, "bookings", "inventory", "room adjust warning: "+err.Error())
	}
}

func (s BookingService) releaseRoomInventory(sel models.SelectionSet) {
	if sel.Room == nil {
		return
	}
	qty := sel.RoomQuantity
	if qty <= 0 {
		qty = 1
	}
	if err := s.HotelRepo.AdjustRoomRemaining(sel.Room.ID, -qty); err != nil {
		utils.LogEvent(s.RequestID, "bookings", "inventory", "room release warning: "+err.Error())
	}
}

// validatePaymentDates requires each literal date to fall strictly after the
// previous one. Relative markers and blanks skip the comparison; marker
// resolution belongs to the finance backend.
func validatePaymentDates(dates [3]string) error {
	for i := 1; i < 3; i++ {
		prev := strings.TrimSpace(dates[i-1])
		cur := strings.TrimSpace(dates[i])
		if prev == "" || cur == "" || utils.IsRelativeDate(prev) || utils.IsRelativeDate(cur) {
			continue
		}
		pt, err := utils.ParseDate(prev)
		if err != nil {
			return domain.ValidationError{Field: fmt.Sprintf("payment_dates[%d]", i-1), Msg: "invalid date"}
		}
		ct, err := utils.ParseDate(cur)
		if err != nil {
			return domain.ValidationError{Field: fmt.Sprintf("payment_dates[%d]", i), Msg: "invalid date"}
		}
		if !ct.After(pt) {
			return domain.ValidationError{
				Field: fmt.Sprintf("payment_dates[%d]", i),
				Msg:   "must be after the previous payment date",
			}
		}
	}
	return nil
}

func validatePercents(p [3]float64) error {
	sum := p[0] + p[1] + p[2]
	if sum < 99.999 || sum > 100.001 {
		return domain.ValidationError{Field: "percents", Msg: "must sum to 100"}
	}
	for i, v := range p {
		if v < 0 {
			return domain.ValidationError{Field: fmt.Sprintf("percents[%d]", i), Msg: "must not be negative"}
		}
	}
	return nil
}
