package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// Create persists a booking with its three payment columns flattened the way
// the shared finance schema expects them.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	selJSON, err := json.Marshal(b.Selection)
	if err != nil {
		return 0, err
	}
	ctxJSON, err := json.Marshal(b.Context)
	if err != nil {
		return 0, err
	}
	brkJSON, err := json.Marshal(b.Breakdown)
	if err != nil {
		return 0, err
	}

	res, err := r.DB.Exec(`
		INSERT INTO bookings (
			booking_ref, event_id, package_id, event_name,
			customer_name, customer_phone, customer_email,
			selection_json, context_json, breakdown_json,
			total_cost, total_sold, currency, provisional,
			payment_1_amount, payment_1_date, payment_1_status,
			payment_2_amount, payment_2_date, payment_2_status,
			payment_3_amount, payment_3_date, payment_3_status,
			status, created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,NOW(),NOW())
	`,
		b.Ref, b.EventID, b.PackageID, b.EventName,
		b.CustomerNm, b.CustomerPh, b.Email,
		string(selJSON), string(ctxJSON), string(brkJSON),
		b.TotalCost, b.TotalSold, b.Currency, b.Provisional,
		b.Plan.Installments[0].Amount, b.Plan.Installments[0].Date, string(b.Plan.Installments[0].Status),
		b.Plan.Installments[1].Amount, b.Plan.Installments[1].Date, string(b.Plan.Installments[1].Status),
		b.Plan.Installments[2].Amount, b.Plan.Installments[2].Date, string(b.Plan.Installments[2].Status),
		b.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	var selJSON, ctxJSON, brkJSON string
	var st [3]string

	err := r.DB.QueryRow(`
		SELECT id, booking_ref, event_id, package_id, COALESCE(event_name,''),
		       COALESCE(customer_name,''), COALESCE(customer_phone,''), COALESCE(customer_email,''),
		       COALESCE(selection_json,'{}'), COALESCE(context_json,'{}'), COALESCE(breakdown_json,'{}'),
		       COALESCE(total_cost,0), COALESCE(total_sold,0), COALESCE(currency,'GBP'), COALESCE(provisional,0),
		       COALESCE(payment_1_amount,0), COALESCE(payment_1_date,''), COALESCE(payment_1_status,'Due'),
		       COALESCE(payment_2_amount,0), COALESCE(payment_2_date,''), COALESCE(payment_2_status,'Due'),
		       COALESCE(payment_3_amount,0), COALESCE(payment_3_date,''), COALESCE(payment_3_status,'Due'),
		       COALESCE(status,''), COALESCE(created_at,''), COALESCE(updated_at,'')
		FROM bookings WHERE id=? LIMIT 1
	`, id).Scan(
		&b.ID, &b.Ref, &b.EventID, &b.PackageID, &b.EventName,
		&b.CustomerNm, &b.CustomerPh, &b.Email,
		&selJSON, &ctxJSON, &brkJSON,
		&b.TotalCost, &b.TotalSold, &b.Currency, &b.Provisional,
		&b.Plan.Installments[0].Amount, &b.Plan.Installments[0].Date, &st[0],
		&b.Plan.Installments[1].Amount, &b.Plan.Installments[1].Date, &st[1],
		&b.Plan.Installments[2].Amount, &b.Plan.Installments[2].Date, &st[2],
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return b, err
	}

	_ = json.Unmarshal([]byte(selJSON), &b.Selection)
	_ = json.Unmarshal([]byte(ctxJSON), &b.Context)
	_ = json.Unmarshal([]byte(brkJSON), &b.Breakdown)
	for i := range st {
		b.Plan.Installments[i].Status = domain.PaymentStatus(st[i])
	}
	b.Plan.Total = b.TotalSold
	return b, nil
}

func (r BookingRepository) List(limit, offset int) ([]models.Booking, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.DB.Query(`
		SELECT id FROM bookings ORDER BY id DESC LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		b, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// UpdateCustomer applies PATCH-style customer field edits.
func (r BookingRepository) UpdateCustomer(id int64, u models.BookingUpdate) error {
	sets := []string{}
	args := []any{}
	if u.CustomerNm != nil {
		sets = append(sets, "customer_name=?")
		args = append(args, *u.CustomerNm)
	}
	if u.CustomerPh != nil {
		sets = append(sets, "customer_phone=?")
		args = append(args, *u.CustomerPh)
	}
	if u.Email != nil {
		sets = append(sets, "customer_email=?")
		args = append(args, *u.Email)
	}
	if u.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *u.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

// UpdatePricing rewrites the priced state after an edit: new selection,
// breakdown, totals, and the reallocated payment plan.
func (r BookingRepository) UpdatePricing(id int64, b models.Booking) error {
	selJSON, err := json.Marshal(b.Selection)
	if err != nil {
		return err
	}
	brkJSON, err := json.Marshal(b.Breakdown)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE bookings SET
			selection_json=?, breakdown_json=?,
			total_cost=?, total_sold=?, currency=?,
			payment_1_amount=?, payment_1_date=?, payment_1_status=?,
			payment_2_amount=?, payment_2_date=?, payment_2_status=?,
			payment_3_amount=?, payment_3_date=?, payment_3_status=?,
			updated_at=NOW()
		WHERE id=?
	`,
		string(selJSON), string(brkJSON),
		b.TotalCost, b.TotalSold, b.Currency,
		b.Plan.Installments[0].Amount, b.Plan.Installments[0].Date, string(b.Plan.Installments[0].Status),
		b.Plan.Installments[1].Amount, b.Plan.Installments[1].Date, string(b.Plan.Installments[1].Status),
		b.Plan.Installments[2].Amount, b.Plan.Installments[2].Date, string(b.Plan.Installments[2].Status),
		id,
	)
	return err
}

// ListRefs collects every issued booking reference, including the legacy
// provisional collection when that table is still around.
func (r BookingRepository) ListRefs() ([]string, error) {
	refs, err := r.scanRefs(`SELECT booking_ref FROM bookings WHERE booking_ref <> ''`)
	if err != nil {
		return nil, err
	}
	if intdb.HasTable(r.DB, "provisional_bookings") {
		prov, err := r.scanRefs(`SELECT booking_ref FROM provisional_bookings WHERE booking_ref <> ''`)
		if err != nil {
			return nil, err
		}
		refs = append(refs, prov...)
	}
	return refs, nil
}

func (r BookingRepository) scanRefs(query string) ([]string, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}
