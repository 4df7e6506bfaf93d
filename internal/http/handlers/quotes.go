package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func quoteService(c *gin.Context) services.QuoteService {
	reqID := middleware.GetRequestID(c)
	return services.QuoteService{
		Rates:     ratesService(c),
		QuoteRepo: repositories.QuoteRepository{DB: intconfig.DB},
		RequestID: reqID,
	}
}

// POST /api/quotes
func CreateQuote(c *gin.Context) {
	var req services.QuoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	// The authenticated role wins over the payload; only Admin may ask
	// for a different pricing view (e.g. a B2B preview).
	authRole := middleware.GetRole(c)
	if authRole != domain.RoleAdmin || req.Role == "" {
		req.Role = string(authRole)
	}

	operator := strconv.FormatInt(middleware.GetUserID(c), 10)
	q, err := quoteService(c).BuildQuote(req, operator)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// GET /api/quotes/:ref
func GetQuote(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		RespondError(c, http.StatusBadRequest, "invalid ref", nil)
		return
	}
	q, err := quoteService(c).GetQuote(ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// GET /api/quotes/:ref/document
func GetQuoteDocument(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		RespondError(c, http.StatusBadRequest, "invalid ref", nil)
		return
	}
	svc := services.DocsService{
		QuoteRepo: repositories.QuoteRepository{DB: intconfig.DB},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateQuoteDocument(ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
