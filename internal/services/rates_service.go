package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/redis/go-redis/v9"
)

// Fallback constants used when the reference-data fetch fails. These are
// deliberate degraded values, never silent zeros: a quote still renders.
const (
	FallbackSpreadPercent     = 0.02
	FallbackCommissionPercent = 0.10
	FallbackRate              = 1.0

	rateCacheTTL = 5 * time.Minute
)

// RatesService assembles the PricingContext from the FX/commission reference
// data, caching reads in Redis when a client is configured.
type RatesService struct {
	Repo      repositories.RatesRepository
	Cache     *redis.Client
	RequestID string
}

// SpreadPercent returns the configured FX spread or the fallback.
func (s RatesService) SpreadPercent() float64 {
	v, ok := s.cached("rates:spread", s.Repo.GetSpread)
	if !ok {
		utils.LogEvent(s.RequestID, "rates", "spread", fmt.Sprintf("using fallback %.2f", FallbackSpreadPercent))
		return FallbackSpreadPercent
	}
	return v
}

// CommissionPercent returns the B2B commission or the fallback.
func (s RatesService) CommissionPercent() float64 {
	v, ok := s.cached("rates:commission", s.Repo.GetCommissionPercent)
	if !ok {
		utils.LogEvent(s.RequestID, "rates", "commission", fmt.Sprintf("using fallback %.2f", FallbackCommissionPercent))
		return FallbackCommissionPercent
	}
	return v
}

// Rate returns the base GBP->target rate, or zero when no row matches so the
// conversion stage can degrade to 1:1 with its own warning.
func (s RatesService) Rate(target string) float64 {
	if target == "" || target == "GBP" {
		return FallbackRate
	}
	v, ok := s.cached("rates:fx:"+target, func() (float64, error) {
		return s.Repo.GetRate("GBP", target)
	})
	if !ok {
		return 0
	}
	return v
}

// Context builds an immutable PricingContext for one calculation run.
func (s RatesService) Context(role domain.Role, targetCurrency string) models.PricingContext {
	if targetCurrency == "" {
		targetCurrency = "GBP"
	}
	return models.PricingContext{
		Role:              role,
		TargetCurrency:    targetCurrency,
		ExchangeRate:      s.Rate(targetCurrency),
		SpreadPercent:     s.SpreadPercent(),
		CommissionPercent: s.CommissionPercent(),
	}
}

// cached reads through Redis when available; a nil client or cache miss goes
// straight to MySQL. Cache failures never fail the lookup.
func (s RatesService) cached(key string, fetch func() (float64, error)) (float64, bool) {
	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		raw, err := s.Cache.Get(ctx, key).Result()
		cancel()
		if err == nil {
			if v, perr := strconv.ParseFloat(raw, 64); perr == nil {
				return v, true
			}
		}
	}

	v, ok := utils.FetchWithFallback(fetch, 0, 0, 0)
	if !ok {
		return 0, false
	}

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		_ = s.Cache.Set(ctx, key, strconv.FormatFloat(v, 'f', -1, 64), rateCacheTTL).Err()
		cancel()
	}
	return v, true
}
