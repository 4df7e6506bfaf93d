package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type QuoteRepository struct {
	DB *sql.DB
}

func (r QuoteRepository) Create(q models.Quote) error {
	selJSON, err := json.Marshal(q.Selection)
	if err != nil {
		return err
	}
	ctxJSON, err := json.Marshal(q.Context)
	if err != nil {
		return err
	}
	brkJSON, err := json.Marshal(q.Breakdown)
	if err != nil {
		return err
	}
	schedJSON, err := json.Marshal(q.Schedule)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO quotes (ref, event_id, package_id, customer_name, created_by,
			selection_json, context_json, breakdown_json, schedule_json, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,NOW())
	`, q.Ref, q.EventID, q.PackageID, q.CustomerNm, q.CreatedBy,
		string(selJSON), string(ctxJSON), string(brkJSON), string(schedJSON))
	return err
}

func (r QuoteRepository) GetByRef(ref string) (models.Quote, error) {
	var q models.Quote
	var selJSON, ctxJSON, brkJSON, schedJSON string

	err := r.DB.QueryRow(`
		SELECT ref, event_id, package_id, COALESCE(customer_name,''), COALESCE(created_by,''),
		       COALESCE(selection_json,'{}'), COALESCE(context_json,'{}'),
		       COALESCE(breakdown_json,'{}'), COALESCE(schedule_json,'[0,0,0]'),
		       COALESCE(created_at,'')
		FROM quotes WHERE ref=? LIMIT 1
	`, ref).Scan(&q.Ref, &q.EventID, &q.PackageID, &q.CustomerNm, &q.CreatedBy,
		&selJSON, &ctxJSON, &brkJSON, &schedJSON, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return q, domain.NotFoundError{Resource: "quote", Err: err}
	}
	if err != nil {
		return q, err
	}

	_ = json.Unmarshal([]byte(selJSON), &q.Selection)
	_ = json.Unmarshal([]byte(ctxJSON), &q.Context)
	_ = json.Unmarshal([]byte(brkJSON), &q.Breakdown)
	_ = json.Unmarshal([]byte(schedJSON), &q.Schedule)
	return q, nil
}
