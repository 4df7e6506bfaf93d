package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func NewRouter(env intconfig.Env, cache *redis.Client) *gin.Engine {
	h.JWTSecret = []byte(env.JWTSecret)
	h.Cache = cache

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth(h.JWTSecret))

		// Events & packages
		events := secured.Group("/events")
		events.GET("", h.GetEvents)
		events.GET("/:id", h.GetEventByID)
		events.POST("", h.CreateEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
		events.GET("/:id/packages", h.GetEventPackages)

		packages := secured.Group("/packages")
		packages.GET("/:id", h.GetPackageByID)
		packages.POST("", h.CreatePackage)
		packages.PUT("/:id", h.UpdatePackage)
		packages.DELETE("/:id", h.DeletePackage)
		packages.GET("/:id/tiers", h.GetPackageTiers)

		// Hotels & rooms
		hotels := secured.Group("/hotels")
		hotels.GET("", h.GetHotels)
		hotels.GET("/:id", h.GetHotelByID)
		hotels.POST("", h.CreateHotel)
		hotels.PUT("/:id", h.UpdateHotel)
		hotels.DELETE("/:id", h.DeleteHotel)
		hotels.GET("/:id/rooms", h.GetHotelRooms)

		rooms := secured.Group("/rooms")
		rooms.GET("/:id", h.GetRoomByID)
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)

		// Tickets, transfers, flights, lounge passes
		tickets := secured.Group("/tickets")
		tickets.GET("", h.GetTickets)
		tickets.GET("/:id", h.GetTicketByID)
		tickets.POST("", h.CreateTicket)
		tickets.PUT("/:id", h.UpdateTicket)
		tickets.DELETE("/:id", h.DeleteTicket)

		circuit := secured.Group("/circuit-transfers")
		circuit.GET("", h.GetCircuitTransfers)
		circuit.GET("/:id", h.GetCircuitTransferByID)
		circuit.POST("", h.CreateCircuitTransfer)
		circuit.PUT("/:id", h.UpdateCircuitTransfer)
		circuit.DELETE("/:id", h.DeleteCircuitTransfer)

		airport := secured.Group("/airport-transfers")
		airport.GET("", h.GetAirportTransfers)
		airport.GET("/:id", h.GetAirportTransferByID)
		airport.POST("", h.CreateAirportTransfer)
		airport.PUT("/:id", h.UpdateAirportTransfer)
		airport.DELETE("/:id", h.DeleteAirportTransfer)

		flights := secured.Group("/flights")
		flights.GET("", h.GetFlights)
		flights.GET("/:id", h.GetFlightByID)
		flights.POST("", h.CreateFlight)
		flights.PUT("/:id", h.UpdateFlight)
		flights.DELETE("/:id", h.DeleteFlight)

		lounges := secured.Group("/lounge-passes")
		lounges.GET("", h.GetLoungePasses)
		lounges.GET("/:id", h.GetLoungePassByID)
		lounges.POST("", h.CreateLoungePass)
		lounges.PUT("/:id", h.UpdateLoungePass)
		lounges.DELETE("/:id", h.DeleteLoungePass)

		// FX & commission reference data
		rates := secured.Group("/rates")
		rates.GET("", h.ListRates)
		rates.GET("/fx", h.GetFXRate)
		rates.GET("/spread", h.GetSpread)
		rates.GET("/commission", h.GetCommission)

		// Quotes
		quotes := secured.Group("/quotes")
		quotes.POST("", h.CreateQuote)
		quotes.GET("/:ref", h.GetQuote)
		quotes.GET("/:ref/document", h.GetQuoteDocument)

		// Bookings
		bookings := secured.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.GET("/:id/confirmation", h.GetBookingConfirmationPDF)
		bookings.GET("/:id/itinerary", h.GetBookingItineraryPDF)
	}

	return r
}
