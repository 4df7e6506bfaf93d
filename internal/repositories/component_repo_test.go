package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func TestComponentRepositoryListTickets(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, event_id, name, (.+) FROM tickets").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "type", "price", "remaining"}).
			AddRow(1, 7, "General Admission", "GA", 150.0, 40).
			AddRow(2, 7, "Grandstand K", "Grandstand", 420.0, 12))

	repo := ComponentRepository{DB: db}
	tickets, err := repo.ListTickets(7)
	if err != nil {
		t.Fatalf("ListTickets error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("got %d tickets, want 2", len(tickets))
	}
	if tickets[1].Name != "Grandstand K" || tickets[1].Price != 420 {
		t.Errorf("second ticket = %+v", tickets[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestComponentRepositoryGetAirportTransferNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM airport_transfers WHERE id=").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "hotel_id", "type", "price", "max_capacity", "remaining"}))

	repo := ComponentRepository{DB: db}
	_, err = repo.GetAirportTransferByID(99)
	if err == nil {
		t.Fatal("expected error for missing transfer")
	}
	if !domain.IsNotFound(err) {
		t.Errorf("error %v is not a NotFoundError", err)
	}
}

func TestComponentRepositoryCreateFlight(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO flights").
		WithArgs(int64(7), "LHR-NCE 08:30", "NCE-LHR 19:10", "BA", "Economy", 240.0, false, 20).
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := ComponentRepository{DB: db}
	id, err := repo.CreateFlight(models.Flight{
		EventID:   7,
		Outbound:  "LHR-NCE 08:30",
		Inbound:   "NCE-LHR 19:10",
		Airline:   "BA",
		Class:     "Economy",
		Price:     240,
		Remaining: 20,
	})
	if err != nil {
		t.Fatalf("CreateFlight error: %v", err)
	}
	if id != 5 {
		t.Errorf("id = %d, want 5", id)
	}
}
