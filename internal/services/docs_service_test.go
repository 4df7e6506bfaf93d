package services

import (
	"strings"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func testBooking(id int64) models.Booking {
	b := models.Booking{
		ID:         id,
		Ref:        "MONF1-2024-0004",
		EventName:  "Monaco Grand Prix 2024",
		CustomerNm: "Tester",
		CustomerPh: "0800",
		Email:      "tester@example.com",
		Status:     "Confirmed",
		TotalSold:  1498,
		Currency:   "GBP",
	}
	b.Selection = models.SelectionSet{
		Room:           &models.Room{Category: "Deluxe", Nights: 4, Price: 900},
		RoomQuantity:   1,
		Ticket:         &models.Ticket{Name: "Grandstand K", Price: 150},
		TicketQuantity: 2,
		DateRange:      models.DateRange{From: "2024-05-23", To: "2024-05-27"},
		NumberOfAdults: 2,
	}
	b.Plan = models.PaymentPlan{Total: 1498}
	b.Plan.Installments[0] = models.Installment{Amount: 500, Date: "2024-03-01", Status: domain.PaymentPaid}
	b.Plan.Installments[1] = models.Installment{Amount: 500, Date: "2024-04-01", Status: domain.PaymentDue}
	b.Plan.Installments[2] = models.Installment{Amount: 498, Date: "2024-05-01", Status: domain.PaymentDue}
	return b
}

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.Booking, error) {
			return testBooking(id), nil
		},
	}

	pdf, filename, err := svc.GenerateConfirmation(1)
	if err != nil {
		t.Fatalf("GenerateConfirmation returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateConfirmation returned empty data")
	}
	if !strings.HasPrefix(filename, "CONFIRMATION_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected confirmation filename %q", filename)
	}

	itin, itinName, err := svc.GenerateItinerary(1)
	if err != nil {
		t.Fatalf("GenerateItinerary returned error: %v", err)
	}
	if len(itin) == 0 || itinName == "" {
		t.Fatalf("GenerateItinerary returned empty data")
	}
}

func TestItineraryBuildCoversStay(t *testing.T) {
	svc := ItineraryService{}
	lines := svc.Build(testBooking(1))
	if len(lines) == 0 {
		t.Fatal("expected itinerary lines for a dated booking")
	}

	joined := ""
	for _, l := range lines {
		joined += l.Day + " " + l.Title + " " + l.Detail + "\n"
	}
	if !strings.Contains(joined, "23 May 2024") {
		t.Errorf("itinerary missing arrival day:\n%s", joined)
	}
	if !strings.Contains(joined, "27 May 2024") {
		t.Errorf("itinerary missing departure day:\n%s", joined)
	}
}

func TestItineraryBuildNoDates(t *testing.T) {
	b := testBooking(1)
	b.Selection.DateRange = models.DateRange{}
	lines := ItineraryService{}.Build(b)
	if len(lines) == 0 {
		t.Fatal("expected a fallback line when the stay has no dates")
	}
}
