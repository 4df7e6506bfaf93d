package services

import (
	"fmt"

	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/utils"
)

// ItineraryLine is one row of the generated day-by-day plan.
type ItineraryLine struct {
	Day    string `json:"day"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ItineraryService assembles a deterministic day-by-day itinerary from the
// booking's components. Purely derived from stored data; no external calls.
type ItineraryService struct{}

// Build walks the stay range and attaches arrival, race-weekend, transfer,
// and departure entries to the right days.
func (ItineraryService) Build(b models.Booking) []ItineraryLine {
	sel := b.Selection
	lines := []ItineraryLine{}

	nights := pricing.NightsSelected(sel.DateRange)
	start, err := utils.ParseDate(sel.DateRange.From)
	if err != nil || nights == 0 {
		return []ItineraryLine{{
			Day:    "",
			Title:  b.EventName,
			Detail: "Itinerary pending: no stay dates on file.",
		}}
	}

	for i := 0; i <= nights; i++ {
		day := start.AddDate(0, 0, i)
		label := day.Format("Mon 02 Jan 2006")

		switch i {
		case 0:
			detail := "Arrival day."
			if sel.Flight != nil && !sel.Flight.BookedByGuest {
				detail = fmt.Sprintf("Arrive on %s (%s).", sel.Flight.Airline, sel.Flight.Outbound)
			}
			if sel.AirportTransfer != nil {
				vehicles := pricing.AirportTransferQuantity(sel.NumberOfAdults, sel.AirportTransfer.MaxCapacity)
				detail += fmt.Sprintf(" Airport transfer (%s, %d vehicle(s)) to the hotel.", sel.AirportTransfer.Type, vehicles)
			}
			if sel.Room != nil {
				detail += fmt.Sprintf(" Check in: %s room.", sel.Room.Category)
			}
			lines = append(lines, ItineraryLine{Day: label, Title: "Arrival & check-in", Detail: detail})
		case nights:
			detail := "Check out and departure."
			if sel.Flight != nil && !sel.Flight.BookedByGuest {
				detail = fmt.Sprintf("Check out. Return flight on %s (%s).", sel.Flight.Airline, sel.Flight.Inbound)
			}
			if sel.AirportTransfer != nil {
				detail += " Airport transfer from the hotel."
			}
			if sel.LoungePass != nil {
				detail += fmt.Sprintf(" Lounge access: %s.", sel.LoungePass.Variant)
			}
			lines = append(lines, ItineraryLine{Day: label, Title: "Departure", Detail: detail})
		default:
			title := "At leisure"
			detail := "Day at leisure."
			if sel.Ticket != nil {
				title = b.EventName
				detail = fmt.Sprintf("%s (%d ticket(s)).", sel.Ticket.Name, sel.TicketQuantity)
				if sel.CircuitTransfer != nil {
					detail += fmt.Sprintf(" Circuit transfer: %s, %d seat(s).",
						sel.CircuitTransfer.Type, pricing.CircuitTransferQuantity(sel.TicketQuantity))
				}
			}
			lines = append(lines, ItineraryLine{Day: label, Title: title, Detail: detail})
		}
	}
	return lines
}
