package repositories

import (
	"database/sql"
	"errors"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// ComponentRepository serves the non-room package components: tickets,
// circuit/airport transfers, flights, and lounge passes.
type ComponentRepository struct {
	DB *sql.DB
}

func (r ComponentRepository) ListTickets(eventID int64) ([]models.Ticket, error) {
	rows, err := r.DB.Query(`
		SELECT id, event_id, name, COALESCE(type,''), COALESCE(price,0), COALESCE(remaining,0)
		FROM tickets WHERE event_id=? ORDER BY price
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.EventID, &t.Name, &t.Type, &t.Price, &t.Remaining); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r ComponentRepository) GetTicketByID(id int64) (models.Ticket, error) {
	var t models.Ticket
	err := r.DB.QueryRow(`
		SELECT id, event_id, name, COALESCE(type,''), COALESCE(price,0), COALESCE(remaining,0)
		FROM tickets WHERE id=? LIMIT 1
	`, id).Scan(&t.ID, &t.EventID, &t.Name, &t.Type, &t.Price, &t.Remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "ticket", Err: err}
	}
	return t, err
}

func (r ComponentRepository) CreateTicket(t models.Ticket) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO tickets (event_id, name, type, price, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, t.EventID, t.Name, t.Type, t.Price, t.Remaining)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ComponentRepository) UpdateTicket(id int64, t models.Ticket) error {
	_, err := r.DB.Exec(`
		UPDATE tickets SET name=?, type=?, price=?, remaining=?, updated_at=NOW() WHERE id=?
	`, t.Name, t.Type, t.Price, t.Remaining, id)
	return err
}

func (r ComponentRepository) DeleteTicket(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM tickets WHERE id=?`, id)
	return err
}

func (r ComponentRepository) ListCircuitTransfers(eventID, hotelID int64) ([]models.CircuitTransfer, error) {
	q := `
		SELECT id, event_id, COALESCE(hotel_id,0), COALESCE(type,''), COALESCE(price,0), COALESCE(remaining,0)
		FROM circuit_transfers WHERE event_id=?`
	args := []any{eventID}
	if hotelID > 0 {
		q += ` AND hotel_id=?`
		args = append(args, hotelID)
	}
	rows, err := r.DB.Query(q+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CircuitTransfer{}
	for rows.Next() {
		var t models.CircuitTransfer
		if err := rows.Scan(&t.ID, &t.EventID, &t.HotelID, &t.Type, &t.Price, &t.Remaining); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r ComponentRepository) GetCircuitTransferByID(id int64) (models.CircuitTransfer, error) {
	var t models.CircuitTransfer
	err := r.DB.QueryRow(`
		SELECT id, event_id, COALESCE(hotel_id,0), COALESCE(type,''), COALESCE(price,0), COALESCE(remaining,0)
		FROM circuit_transfers WHERE id=? LIMIT 1
	`, id).Scan(&t.ID, &t.EventID, &t.HotelID, &t.Type, &t.Price, &t.Remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "circuit transfer", Err: err}
	}
	return t, err
}

func (r ComponentRepository) CreateCircuitTransfer(t models.CircuitTransfer) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO circuit_transfers (event_id, hotel_id, type, price, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, t.EventID, t.HotelID, t.Type, t.Price, t.Remaining)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ComponentRepository) UpdateCircuitTransfer(id int64, t models.CircuitTransfer) error {
	_, err := r.DB.Exec(`
		UPDATE circuit_transfers SET hotel_id=?, type=?, price=?, remaining=?, updated_at=NOW() WHERE id=?
	`, t.HotelID, t.Type, t.Price, t.Remaining, id)
	return err
}

func (r ComponentRepository) DeleteCircuitTransfer(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM circuit_transfers WHERE id=?`, id)
	return err
}

func (r ComponentRepository) ListAirportTransfers(eventID, hotelID int64) ([]models.AirportTransfer, error) {
	q := `
		SELECT id, event_id, COALESCE(hotel_id,0), COALESCE(type,''), COALESCE(price,0),
		       COALESCE(max_capacity,0), COALESCE(remaining,0)
		FROM airport_transfers WHERE event_id=?`
	args := []any{eventID}
	if hotelID > 0 {
		q += ` AND hotel_id=?`
		args = append(args, hotelID)
	}
	rows, err := r.DB.Query(q+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AirportTransfer{}
	for rows.Next() {
		var t models.AirportTransfer
		if err := rows.Scan(&t.ID, &t.EventID, &t.HotelID, &t.Type, &t.Price, &t.MaxCapacity, &t.Remaining); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r ComponentRepository) GetAirportTransferByID(id int64) (models.AirportTransfer, error) {
	var t models.AirportTransfer
	err := r.DB.QueryRow(`
		SELECT id, event_id, COALESCE(hotel_id,0), COALESCE(type,''), COALESCE(price,0),
		       COALESCE(max_capacity,0), COALESCE(remaining,0)
		FROM airport_transfers WHERE id=? LIMIT 1
	`, id).Scan(&t.ID, &t.EventID, &t.HotelID, &t.Type, &t.Price, &t.MaxCapacity, &t.Remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "airport transfer", Err: err}
	}
	return t, err
}

func (r ComponentRepository) CreateAirportTransfer(t models.AirportTransfer) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO airport_transfers (event_id, hotel_id, type, price, max_capacity, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, t.EventID, t.HotelID, t.Type, t.Price, t.MaxCapacity, t.Remaining)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ComponentRepository) UpdateAirportTransfer(id int64, t models.AirportTransfer) error {
	_, err := r.DB.Exec(`
		UPDATE airport_transfers SET hotel_id=?, type=?, price=?, max_capacity=?, remaining=?, updated_at=NOW() WHERE id=?
	`, t.HotelID, t.Type, t.Price, t.MaxCapacity, t.Remaining, id)
	return err
}

func (r ComponentRepository) DeleteAirportTransfer(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM airport_transfers WHERE id=?`, id)
	return err
}

func (r ComponentRepository) ListFlights(eventID int64) ([]models.Flight, error) {
	rows, err := r.DB.Query(`
		SELECT id, event_id, COALESCE(outbound,''), COALESCE(inbound,''), COALESCE(airline,''),
		       COALESCE(class,''), COALESCE(price,0), COALESCE(booked_by_guest,0), COALESCE(remaining,0)
		FROM flights WHERE event_id=? ORDER BY price
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Flight{}
	for rows.Next() {
		var f models.Flight
		if err := rows.Scan(&f.ID, &f.EventID, &f.Outbound, &f.Inbound, &f.Airline, &f.Class, &f.Price, &f.BookedByGuest, &f.Remaining); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r ComponentRepository) GetFlightByID(id int64) (models.Flight, error) {
	var f models.Flight
	err := r.DB.QueryRow(`
		SELECT id, event_id, COALESCE(outbound,''), COALESCE(inbound,''), COALESCE(airline,''),
		       COALESCE(class,''), COALESCE(price,0), COALESCE(booked_by_guest,0), COALESCE(remaining,0)
		FROM flights WHERE id=? LIMIT 1
	`, id).Scan(&f.ID, &f.EventID, &f.Outbound, &f.Inbound, &f.Airline, &f.Class, &f.Price, &f.BookedByGuest, &f.Remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return f, domain.NotFoundError{Resource: "flight", Err: err}
	}
	return f, err
}

func (r ComponentRepository) CreateFlight(f models.Flight) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO flights (event_id, outbound, inbound, airline, class, price, booked_by_guest, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, f.EventID, f.Outbound, f.Inbound, f.Airline, f.Class, f.Price, f.BookedByGuest, f.Remaining)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ComponentRepository) UpdateFlight(id int64, f models.Flight) error {
	_, err := r.DB.Exec(`
		UPDATE flights SET outbound=?, inbound=?, airline=?, class=?, price=?, booked_by_guest=?, remaining=?, updated_at=NOW() WHERE id=?
	`, f.Outbound, f.Inbound, f.Airline, f.Class, f.Price, f.BookedByGuest, f.Remaining, id)
	return err
}

func (r ComponentRepository) DeleteFlight(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM flights WHERE id=?`, id)
	return err
}

func (r ComponentRepository) ListLoungePasses(eventID int64) ([]models.LoungePass, error) {
	rows, err := r.DB.Query(`
		SELECT id, event_id, COALESCE(variant,''), COALESCE(price,0), COALESCE(remaining,0)
		FROM lounge_passes WHERE event_id=? ORDER BY price
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.LoungePass{}
	for rows.Next() {
		var p models.LoungePass
		if err := rows.Scan(&p.ID, &p.EventID, &p.Variant, &p.Price, &p.Remaining); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ComponentRepository) GetLoungePassByID(id int64) (models.LoungePass, error) {
	var p models.LoungePass
	err := r.DB.QueryRow(`
		SELECT id, event_id, COALESCE(variant,''), COALESCE(price,0), COALESCE(remaining,0)
		FROM lounge_passes WHERE id=? LIMIT 1
	`, id).Scan(&p.ID, &p.EventID, &p.Variant, &p.Price, &p.Remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.NotFoundError{Resource: "lounge pass", Err: err}
	}
	return p, err
}

func (r ComponentRepository) CreateLoungePass(p models.LoungePass) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO lounge_passes (event_id, variant, price, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, p.EventID, p.Variant, p.Price, p.Remaining)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ComponentRepository) UpdateLoungePass(id int64, p models.LoungePass) error {
	_, err := r.DB.Exec(`
		UPDATE lounge_passes SET variant=?, price=?, remaining=?, updated_at=NOW() WHERE id=?
	`, p.Variant, p.Price, p.Remaining, id)
	return err
}

func (r ComponentRepository) DeleteLoungePass(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM lounge_passes WHERE id=?`, id)
	return err
}
