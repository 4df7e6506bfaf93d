package repositories

import (
	"database/sql"
	"errors"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type EventRepository struct {
	DB *sql.DB
}

func (r EventRepository) List() ([]models.Event, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, sport, venue,
		       COALESCE(start_date, ''), COALESCE(end_date, ''), COALESCE(status, '')
		FROM events
		ORDER BY start_date, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Sport, &e.Venue, &e.StartDate, &e.EndDate, &e.Status); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EventRepository) GetByID(id int64) (models.Event, error) {
	var e models.Event
	err := r.DB.QueryRow(`
		SELECT id, name, sport, venue,
		       COALESCE(start_date, ''), COALESCE(end_date, ''), COALESCE(status, '')
		FROM events WHERE id=? LIMIT 1
	`, id).Scan(&e.ID, &e.Name, &e.Sport, &e.Venue, &e.StartDate, &e.EndDate, &e.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return e, domain.NotFoundError{Resource: "event", Err: err}
	}
	return e, err
}

func (r EventRepository) Create(e models.Event) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO events (name, sport, venue, start_date, end_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, e.Name, e.Sport, e.Venue, intdb.NullIfEmpty(e.StartDate), intdb.NullIfEmpty(e.EndDate), e.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EventRepository) Update(id int64, e models.Event) error {
	_, err := r.DB.Exec(`
		UPDATE events SET name=?, sport=?, venue=?, start_date=?, end_date=?, status=?, updated_at=NOW()
		WHERE id=?
	`, e.Name, e.Sport, e.Venue, intdb.NullIfEmpty(e.StartDate), intdb.NullIfEmpty(e.EndDate), e.Status, id)
	return err
}

func (r EventRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM events WHERE id=?`, id)
	return err
}

func (r EventRepository) ListPackages(eventID int64) ([]models.Package, error) {
	rows, err := r.DB.Query(`
		SELECT id, event_id, name, COALESCE(type,''), COALESCE(status,''), COALESCE(currency,'GBP')
		FROM packages WHERE event_id=? ORDER BY id
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		var p models.Package
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.Type, &p.Status, &p.Currency); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r EventRepository) GetPackageByID(id int64) (models.Package, error) {
	var p models.Package
	err := r.DB.QueryRow(`
		SELECT id, event_id, name, COALESCE(type,''), COALESCE(status,''), COALESCE(currency,'GBP')
		FROM packages WHERE id=? LIMIT 1
	`, id).Scan(&p.ID, &p.EventID, &p.Name, &p.Type, &p.Status, &p.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.NotFoundError{Resource: "package", Err: err}
	}
	return p, err
}

func (r EventRepository) CreatePackage(p models.Package) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO packages (event_id, name, type, status, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, p.EventID, p.Name, p.Type, p.Status, p.Currency)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r EventRepository) UpdatePackage(id int64, p models.Package) error {
	_, err := r.DB.Exec(`
		UPDATE packages SET name=?, type=?, status=?, currency=?, updated_at=NOW() WHERE id=?
	`, p.Name, p.Type, p.Status, p.Currency, id)
	return err
}

func (r EventRepository) DeletePackage(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM packages WHERE id=?`, id)
	return err
}

func (r EventRepository) ListTiers(packageID int64) ([]models.PackageTier, error) {
	rows, err := r.DB.Query(`
		SELECT id, package_id, name,
		       COALESCE(hotel_id,0), COALESCE(room_id,0), COALESCE(ticket_id,0),
		       COALESCE(circuit_transfer_id,0), COALESCE(airport_transfer_id,0)
		FROM package_tiers WHERE package_id=? ORDER BY id
	`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PackageTier{}
	for rows.Next() {
		var t models.PackageTier
		if err := rows.Scan(&t.ID, &t.PackageID, &t.Name, &t.HotelID, &t.RoomID, &t.TicketID, &t.CircuitTransferID, &t.AirportTransferID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
