package repositories

import (
	"database/sql"
	"errors"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) ListByEvent(eventID int64) ([]models.Hotel, error) {
	rows, err := r.DB.Query(`
		SELECT id, event_id, name, COALESCE(stars,0), COALESCE(city,''), COALESCE(info,'')
		FROM hotels WHERE event_id=? ORDER BY name
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.EventID, &h.Name, &h.Stars, &h.City, &h.Info); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r HotelRepository) GetByID(id int64) (models.Hotel, error) {
	var h models.Hotel
	err := r.DB.QueryRow(`
		SELECT id, event_id, name, COALESCE(stars,0), COALESCE(city,''), COALESCE(info,'')
		FROM hotels WHERE id=? LIMIT 1
	`, id).Scan(&h.ID, &h.EventID, &h.Name, &h.Stars, &h.City, &h.Info)
	if errors.Is(err, sql.ErrNoRows) {
		return h, domain.NotFoundError{Resource: "hotel", Err: err}
	}
	return h, err
}

func (r HotelRepository) Create(h models.Hotel) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO hotels (event_id, name, stars, city, info, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, h.EventID, h.Name, h.Stars, h.City, h.Info)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) Update(id int64, h models.Hotel) error {
	_, err := r.DB.Exec(`
		UPDATE hotels SET name=?, stars=?, city=?, info=?, updated_at=NOW() WHERE id=?
	`, h.Name, h.Stars, h.City, h.Info, id)
	return err
}

func (r HotelRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM hotels WHERE id=?`, id)
	return err
}

func (r HotelRepository) ListRooms(hotelID int64) ([]models.Room, error) {
	rows, err := r.DB.Query(`
		SELECT id, hotel_id, category,
		       COALESCE(check_in,''), COALESCE(check_out,''), COALESCE(nights,0),
		       COALESCE(price,0), COALESCE(extra_night_price,0), COALESCE(remaining,0)
		FROM rooms WHERE hotel_id=? ORDER BY price
	`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Room{}
	for rows.Next() {
		var m models.Room
		if err := rows.Scan(&m.ID, &m.HotelID, &m.Category, &m.CheckIn, &m.CheckOut, &m.Nights, &m.Price, &m.ExtraNightPrice, &m.Remaining); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r HotelRepository) GetRoomByID(id int64) (models.Room, error) {
	var m models.Room
	err := r.DB.QueryRow(`
		SELECT id, hotel_id, category,
		       COALESCE(check_in,''), COALESCE(check_out,''), COALESCE(nights,0),
		       COALESCE(price,0), COALESCE(extra_night_price,0), COALESCE(remaining,0)
		FROM rooms WHERE id=? LIMIT 1
	`, id).Scan(&m.ID, &m.HotelID, &m.Category, &m.CheckIn, &m.CheckOut, &m.Nights, &m.Price, &m.ExtraNightPrice, &m.Remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return m, domain.NotFoundError{Resource: "room", Err: err}
	}
	return m, err
}

func (r HotelRepository) CreateRoom(m models.Room) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO rooms (hotel_id, category, check_in, check_out, nights, price, extra_night_price, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, m.HotelID, m.Category, m.CheckIn, m.CheckOut, m.Nights, m.Price, m.ExtraNightPrice, m.Remaining)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) UpdateRoom(id int64, m models.Room) error {
	_, err := r.DB.Exec(`
		UPDATE rooms SET category=?, check_in=?, check_out=?, nights=?, price=?, extra_night_price=?, remaining=?, updated_at=NOW()
		WHERE id=?
	`, m.Category, m.CheckIn, m.CheckOut, m.Nights, m.Price, m.ExtraNightPrice, m.Remaining, id)
	return err
}

func (r HotelRepository) DeleteRoom(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM rooms WHERE id=?`, id)
	return err
}

// AdjustRoomRemaining decrements availability when a booking consumes rooms.
// Negative qty releases inventory back (booking cancelled or edited down).
func (r HotelRepository) AdjustRoomRemaining(id int64, qty int) error {
	_, err := r.DB.Exec(`
		UPDATE rooms SET remaining = GREATEST(remaining - ?, 0), updated_at=NOW() WHERE id=?
	`, qty, id)
	return err
}
