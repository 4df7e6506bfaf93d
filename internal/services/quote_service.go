package services

import (
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/google/uuid"
)

// QuoteRequest carries the operator's selection plus the pricing view.
type QuoteRequest struct {
	EventID        int64               `json:"event_id"`
	PackageID      int64               `json:"package_id"`
	CustomerName   string              `json:"customer_name"`
	Selection      models.SelectionSet `json:"selection"`
	Role           string              `json:"role"`
	TargetCurrency string              `json:"target_currency"`

	// Optional schedule preview controls.
	AdjustSchedule bool       `json:"adjust_schedule"`
	Percents       [3]float64 `json:"percents"`
	Provisional    bool       `json:"provisional"`
}

type QuoteService struct {
	Rates     RatesService
	QuoteRepo repositories.QuoteRepository
	RequestID string
}

// BuildQuote prices a selection and persists the result under a fresh ref.
func (s QuoteService) BuildQuote(req QuoteRequest, operator string) (models.Quote, error) {
	if req.Selection.IsEmpty() {
		return models.Quote{}, domain.ValidationError{Field: "selection", Msg: "no components selected"}
	}

	role := domain.ParseRole(req.Role)
	ctx := s.Rates.Context(role, strings.ToUpper(strings.TrimSpace(req.TargetCurrency)))
	breakdown := pricing.Compute(req.Selection, ctx)

	if req.AdjustSchedule {
		req.Percents = normalizePercents(req.Percents)
	}
	schedule := previewSchedule(breakdown.FinalTotal, req.AdjustSchedule, req.Percents, req.Provisional)

	q := models.Quote{
		Ref:        uuid.NewString(),
		EventID:    req.EventID,
		PackageID:  req.PackageID,
		Selection:  req.Selection,
		Context:    ctx,
		Breakdown:  breakdown,
		Schedule:   schedule,
		CreatedBy:  operator,
		CustomerNm: strings.TrimSpace(req.CustomerName),
	}
	if err := s.QuoteRepo.Create(q); err != nil {
		return models.Quote{}, domain.InternalError{Msg: "failed to store quote", Err: err}
	}

	utils.LogEvent(s.RequestID, "quotes", "build", "ref="+q.Ref)
	return q, nil
}

func (s QuoteService) GetQuote(ref string) (models.Quote, error) {
	return s.QuoteRepo.GetByRef(ref)
}

func previewSchedule(total float64, adjust bool, percents [3]float64, provisional bool) [3]float64 {
	switch {
	case provisional:
		return pricing.ProvisionalSplit(total)
	case adjust:
		return pricing.PercentSplit(total, percents)
	default:
		return pricing.EqualSplit(total)
	}
}

// normalizePercents fills the derived slots when the operator only set the
// first percentage: editing payment 1 splits the remainder evenly across
// payments 2 and 3, matching the adjust-schedule form. A fully specified
// trio passes through untouched.
func normalizePercents(p [3]float64) [3]float64 {
	if p[0] > 0 && p[1] == 0 && p[2] == 0 {
		return pricing.DerivePercents(p, 0, p[0])
	}
	return p
}
