package handlers

import (
	"net/http"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/http/middleware"
	"backoffice/internal/pricing"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func ratesService(c *gin.Context) services.RatesService {
	return services.RatesService{
		Repo:      repositories.RatesRepository{DB: intconfig.DB},
		Cache:     Cache,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/rates/fx?currency=USD
// Returns the base rate plus the customer-facing adjusted rate.
func GetFXRate(c *gin.Context) {
	currency := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	if currency == "" {
		RespondError(c, http.StatusBadRequest, "currency is required", nil)
		return
	}

	svc := ratesService(c)
	base := svc.Rate(currency)
	spread := svc.SpreadPercent()

	adjusted := pricing.AdjustedRate(base, spread)
	if base <= 0 {
		adjusted = 1
	}
	c.JSON(http.StatusOK, gin.H{
		"currency":       currency,
		"base_rate":      base,
		"spread":         spread,
		"adjusted_rate":  adjusted,
		"rate_available": base > 0,
	})
}

// GET /api/rates/spread
func GetSpread(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"spread": ratesService(c).SpreadPercent()})
}

// GET /api/rates/commission
func GetCommission(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commission": ratesService(c).CommissionPercent()})
}

// GET /api/rates
func ListRates(c *gin.Context) {
	rates, err := repositories.RatesRepository{DB: intconfig.DB}.ListRates()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}
