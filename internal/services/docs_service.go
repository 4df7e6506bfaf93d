package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking confirmations, itineraries, and quote
// documents as PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	QuoteRepo   repositories.QuoteRepository
	Itinerary   ItineraryService
	RequestID   string

	// Loader overrides booking lookup in tests.
	Loader func(int64) (models.Booking, error)
}

func (s DocsService) loadBooking(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.BookingRepo.GetByID(id)
}

func (s DocsService) GenerateConfirmation(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	return buildConfirmationPDF(b)
}

func (s DocsService) GenerateItinerary(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", fmt.Sprintf("booking_id=%d", bookingID))
	return buildItineraryPDF(b, s.Itinerary.Build(b))
}

func (s DocsService) GenerateQuoteDocument(ref string) ([]byte, string, error) {
	q, err := s.QuoteRepo.GetByRef(ref)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_quote", "ref="+ref)
	return buildQuotePDF(q)
}

func buildConfirmationPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref   : %s", safe(b.Ref, "-")),
		fmt.Sprintf("Event         : %s", safe(b.EventName, "-")),
		fmt.Sprintf("Customer      : %s", safe(b.CustomerNm, "-")),
		fmt.Sprintf("Phone         : %s", safe(b.CustomerPh, "-")),
		fmt.Sprintf("Email         : %s", safe(b.Email, "-")),
		fmt.Sprintf("Stay          : %s to %s", safe(b.Selection.DateRange.From, "-"), safe(b.Selection.DateRange.To, "-")),
		fmt.Sprintf("Adults        : %d", b.Selection.NumberOfAdults),
		fmt.Sprintf("Status        : %s", safe(b.Status, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Package components:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range componentLines(b) {
		pdf.MultiCell(0, 6, l, "", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatAmount(b.TotalSold, b.Currency))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment schedule:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, inst := range b.Plan.Installments {
		pdf.Cell(0, 6, fmt.Sprintf("Payment %d: %s  due %s  (%s)",
			i+1, utils.FormatAmount(inst.Amount, b.Currency), safe(inst.Date, "-"), inst.Status))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("CONFIRMATION_%s.pdf", safeFilenamePart(b.Ref))
	return buf.Bytes(), filename, nil
}

func buildItineraryPDF(b models.Booking, lines []ItineraryLine) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("%s  -  %s", safe(b.EventName, "-"), safe(b.Ref, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Guest: "+safe(b.CustomerNm, "-"))
	pdf.Ln(10)

	for _, l := range lines {
		pdf.SetFont("Helvetica", "B", 12)
		header := l.Title
		if l.Day != "" {
			header = l.Day + "  -  " + l.Title
		}
		pdf.Cell(0, 7, header)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, l.Detail, "", "", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ITINERARY_%s.pdf", safeFilenamePart(b.Ref))
	return buf.Bytes(), filename, nil
}

func buildQuotePDF(q models.Quote) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quote", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "QUOTE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Quote Ref : "+safe(q.Ref, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date      : "+utils.FormatDateTime(time.Now()))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Customer  : "+safe(q.CustomerNm, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price breakdown:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	brk := q.Breakdown
	rows := []struct {
		label  string
		amount float64
	}{
		{"Accommodation", brk.RoomCost},
		{"Tickets", brk.TicketCost},
		{"Circuit transfers", brk.CircuitTransferCost},
		{"Airport transfers", brk.AirportTransferCost},
		{"Flights", brk.FlightCost},
		{"Lounge passes", brk.LoungePassCost},
	}
	for _, row := range rows {
		if row.amount <= 0 {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%-18s %s", row.label, utils.FormatAmount(row.amount, "GBP")))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatAmount(brk.FinalTotal, brk.Currency))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Suggested payment schedule:")
	pdf.Ln(7)
	for i, amt := range q.Schedule {
		pdf.Cell(0, 6, fmt.Sprintf("Payment %d: %s", i+1, utils.FormatAmount(amt, brk.Currency)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Quote valid for 7 days. Availability is not held until a booking is confirmed.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("QUOTE_%s.pdf", safeFilenamePart(q.Ref))
	return buf.Bytes(), filename, nil
}

func componentLines(b models.Booking) []string {
	sel := b.Selection
	out := []string{}
	if sel.Room != nil {
		out = append(out, fmt.Sprintf("Room: %s x%d (%d night(s))", sel.Room.Category, maxInt(sel.RoomQuantity, 1), sel.Room.Nights))
	}
	if sel.Ticket != nil {
		out = append(out, fmt.Sprintf("Ticket: %s x%d", sel.Ticket.Name, sel.TicketQuantity))
	}
	if sel.CircuitTransfer != nil {
		out = append(out, fmt.Sprintf("Circuit transfer: %s x%d", sel.CircuitTransfer.Type, sel.TicketQuantity))
	}
	if sel.AirportTransfer != nil {
		out = append(out, fmt.Sprintf("Airport transfer: %s", sel.AirportTransfer.Type))
	}
	if sel.Flight != nil {
		label := fmt.Sprintf("Flight: %s %s / %s", sel.Flight.Airline, sel.Flight.Outbound, sel.Flight.Inbound)
		if sel.Flight.BookedByGuest {
			label += " (booked by guest)"
		}
		out = append(out, label)
	}
	if sel.LoungePass != nil {
		out = append(out, fmt.Sprintf("Lounge pass: %s x%d", sel.LoungePass.Variant, sel.LoungePassQuantity))
	}
	return out
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
