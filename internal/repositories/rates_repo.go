package repositories

import (
	"database/sql"
	"fmt"

	intdb "backoffice/internal/db"
	"backoffice/internal/utils"
)

// RatesRepository reads the FX and commission reference data. The legacy
// finance tables store decimals as strings; values are parsed on the way out.
type RatesRepository struct {
	DB *sql.DB
}

// GetRate returns the base GBP->target rate. sql.ErrNoRows surfaces to the
// caller, which decides the degradation policy.
func (r RatesRepository) GetRate(from, to string) (float64, error) {
	var raw string
	err := r.DB.QueryRow(`
		SELECT rate FROM fx_rates WHERE from_currency=? AND to_currency=? LIMIT 1
	`, from, to).Scan(&raw)
	if err != nil {
		return 0, err
	}
	return utils.ParseDecimal(raw)
}

// GetSpread returns the customer-facing FX spread. First row wins, matching
// the legacy fx-spread collection.
func (r RatesRepository) GetSpread() (float64, error) {
	var raw string
	err := r.DB.QueryRow(`SELECT spread FROM pricing_config ORDER BY id LIMIT 1`).Scan(&raw)
	if err != nil {
		return 0, err
	}
	return utils.ParseDecimal(raw)
}

// GetCommissionPercent returns the B2B commission. The legacy finance
// schema misspells the column as b2b_commision; deployments that fixed the
// spelling are detected via information_schema so both keep working.
func (r RatesRepository) GetCommissionPercent() (float64, error) {
	col := "b2b_commision"
	if !intdb.HasColumn(r.DB, "pricing_config", col) &&
		intdb.HasColumn(r.DB, "pricing_config", "b2b_commission") {
		col = "b2b_commission"
	}
	var raw string
	err := r.DB.QueryRow(`SELECT ` + col + ` FROM pricing_config ORDER BY id LIMIT 1`).Scan(&raw)
	if err != nil {
		return 0, err
	}
	return utils.ParseDecimal(raw)
}

// ListRates returns all configured rate rows for the rates endpoint.
func (r RatesRepository) ListRates() ([]FXRate, error) {
	rows, err := r.DB.Query(`SELECT from_currency, to_currency, rate FROM fx_rates ORDER BY to_currency`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []FXRate{}
	for rows.Next() {
		var fr FXRate
		var raw string
		if err := rows.Scan(&fr.From, &fr.To, &raw); err != nil {
			return nil, err
		}
		rate, err := utils.ParseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("bad rate row %s->%s: %w", fr.From, fr.To, err)
		}
		fr.Rate = rate
		out = append(out, fr)
	}
	return out, rows.Err()
}

type FXRate struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}
