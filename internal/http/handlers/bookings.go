package handlers

import (
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{DB: intconfig.DB},
		EventRepo:   repositories.EventRepository{DB: intconfig.DB},
		HotelRepo:   repositories.HotelRepository{DB: intconfig.DB},
		Rates:       ratesService(c),
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req services.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	authRole := middleware.GetRole(c)
	if authRole != domain.RoleAdmin || req.Role == "" {
		req.Role = string(authRole)
	}

	b, err := bookingService(c).CreateBooking(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	bookings, err := bookingService(c).ListBookings(limit, offset)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	b, err := bookingService(c).GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req services.EditRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := bookingService(c).EditBooking(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		BookingRepo: repositories.BookingRepository{DB: intconfig.DB},
		QuoteRepo:   repositories.QuoteRepository{DB: intconfig.DB},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/bookings/:id/confirmation
func GetBookingConfirmationPDF(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	pdf, filename, err := docsService(c).GenerateConfirmation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:id/itinerary
func GetBookingItineraryPDF(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	pdf, filename, err := docsService(c).GenerateItinerary(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
