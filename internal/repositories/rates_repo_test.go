package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRatesRepositoryGetRate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT rate FROM fx_rates").WithArgs("GBP", "USD").
		WillReturnRows(sqlmock.NewRows([]string{"rate"}).AddRow("1.2500"))

	repo := RatesRepository{DB: db}
	rate, err := repo.GetRate("GBP", "USD")
	if err != nil {
		t.Fatalf("GetRate error: %v", err)
	}
	if rate != 1.25 {
		t.Errorf("rate = %v, want 1.25", rate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRatesRepositoryGetRateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT rate FROM fx_rates").WithArgs("GBP", "AUD").
		WillReturnRows(sqlmock.NewRows([]string{"rate"}))

	repo := RatesRepository{DB: db}
	if _, err := repo.GetRate("GBP", "AUD"); err == nil {
		t.Fatal("expected error for missing rate row")
	}
}

func TestRatesRepositorySpreadAndCommission(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT spread FROM pricing_config").
		WillReturnRows(sqlmock.NewRows([]string{"spread"}).AddRow("0.02"))
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("pricing_config", "b2b_commision").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("b2b_commision"))
	mock.ExpectQuery("SELECT b2b_commision FROM pricing_config").
		WillReturnRows(sqlmock.NewRows([]string{"b2b_commision"}).AddRow("0.10"))

	repo := RatesRepository{DB: db}
	spread, err := repo.GetSpread()
	if err != nil {
		t.Fatalf("GetSpread error: %v", err)
	}
	if spread != 0.02 {
		t.Errorf("spread = %v, want 0.02", spread)
	}

	commission, err := repo.GetCommissionPercent()
	if err != nil {
		t.Fatalf("GetCommissionPercent error: %v", err)
	}
	if commission != 0.10 {
		t.Errorf("commission = %v, want 0.10", commission)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRatesRepositoryCommissionCorrectedSpelling(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Schema without the legacy misspelled column, only the corrected one.
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("pricing_config", "b2b_commision").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectQuery("FROM information_schema.columns").WithArgs("pricing_config", "b2b_commission").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("b2b_commission"))
	mock.ExpectQuery("SELECT b2b_commission FROM pricing_config").
		WillReturnRows(sqlmock.NewRows([]string{"b2b_commission"}).AddRow("0.12"))

	repo := RatesRepository{DB: db}
	commission, err := repo.GetCommissionPercent()
	if err != nil {
		t.Fatalf("GetCommissionPercent error: %v", err)
	}
	if commission != 0.12 {
		t.Errorf("commission = %v, want 0.12", commission)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRatesRepositoryListRates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT from_currency, to_currency, rate FROM fx_rates").
		WillReturnRows(sqlmock.NewRows([]string{"from_currency", "to_currency", "rate"}).
			AddRow("GBP", "EUR", "1.1700").
			AddRow("GBP", "USD", "1.2500"))

	repo := RatesRepository{DB: db}
	rates, err := repo.ListRates()
	if err != nil {
		t.Fatalf("ListRates error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("got %d rates, want 2", len(rates))
	}
	if rates[1].To != "USD" || rates[1].Rate != 1.25 {
		t.Errorf("second rate = %+v, want GBP->USD 1.25", rates[1])
	}
}
