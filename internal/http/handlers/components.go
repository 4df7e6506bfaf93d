package handlers

import (
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

func componentRepo() repositories.ComponentRepository {
	return repositories.ComponentRepository{DB: intconfig.DB}
}

func queryEventID(c *gin.Context) (int64, bool) {
	eventID, _ := strconv.ParseInt(c.Query("event_id"), 10, 64)
	if eventID <= 0 {
		RespondError(c, http.StatusBadRequest, "event_id is required", nil)
		return 0, false
	}
	return eventID, true
}

// GET /api/tickets?event_id=N
func GetTickets(c *gin.Context) {
	eventID, ok := queryEventID(c)
	if !ok {
		return
	}
	tickets, err := componentRepo().ListTickets(eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GET /api/tickets/:id
func GetTicketByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	t, err := componentRepo().GetTicketByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/tickets
func CreateTicket(c *gin.Context) {
	var t models.Ticket
	if !BindJSONOrError(c, &t) {
		return
	}
	id, err := componentRepo().CreateTicket(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, t)
}

// PUT /api/tickets/:id
func UpdateTicket(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var t models.Ticket
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := componentRepo().UpdateTicket(id, t); err != nil {
		RespondDomainError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusOK, t)
}

// DELETE /api/tickets/:id
func DeleteTicket(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := componentRepo().DeleteTicket(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/circuit-transfers?event_id=N&hotel_id=M
func GetCircuitTransfers(c *gin.Context) {
	eventID, ok := queryEventID(c)
	if !ok {
		return
	}
	hotelID, _ := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	transfers, err := componentRepo().ListCircuitTransfers(eventID, hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

// GET /api/circuit-transfers/:id
func GetCircuitTransferByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	t, err := componentRepo().GetCircuitTransferByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/circuit-transfers
func CreateCircuitTransfer(c *gin.Context) {
	var t models.CircuitTransfer
	if !BindJSONOrError(c, &t) {
		return
	}
	id, err := componentRepo().CreateCircuitTransfer(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, t)
}

// PUT /api/circuit-transfers/:id
func UpdateCircuitTransfer(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var t models.CircuitTransfer
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := componentRepo().UpdateCircuitTransfer(id, t); err != nil {
		RespondDomainError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusOK, t)
}

// DELETE /api/circuit-transfers/:id
func DeleteCircuitTransfer(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := componentRepo().DeleteCircuitTransfer(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/airport-transfers?event_id=N&hotel_id=M
func GetAirportTransfers(c *gin.Context) {
	eventID, ok := queryEventID(c)
	if !ok {
		return
	}
	hotelID, _ := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	transfers, err := componentRepo().ListAirportTransfers(eventID, hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

// GET /api/airport-transfers/:id
func GetAirportTransferByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	t, err := componentRepo().GetAirportTransferByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// POST /api/airport-transfers
func CreateAirportTransfer(c *gin.Context) {
	var t models.AirportTransfer
	if !BindJSONOrError(c, &t) {
		return
	}
	id, err := componentRepo().CreateAirportTransfer(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, t)
}

// PUT /api/airport-transfers/:id
func UpdateAirportTransfer(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var t models.AirportTransfer
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := componentRepo().UpdateAirportTransfer(id, t); err != nil {
		RespondDomainError(c, err)
		return
	}
	t.ID = id
	c.JSON(http.StatusOK, t)
}

// DELETE /api/airport-transfers/:id
func DeleteAirportTransfer(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := componentRepo().DeleteAirportTransfer(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/flights?event_id=N
func GetFlights(c *gin.Context) {
	eventID, ok := queryEventID(c)
	if !ok {
		return
	}
	flights, err := componentRepo().ListFlights(eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

// GET /api/flights/:id
func GetFlightByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	f, err := componentRepo().GetFlightByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// POST /api/flights
func CreateFlight(c *gin.Context) {
	var f models.Flight
	if !BindJSONOrError(c, &f) {
		return
	}
	id, err := componentRepo().CreateFlight(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	f.ID = id
	c.JSON(http.StatusCreated, f)
}

// PUT /api/flights/:id
func UpdateFlight(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var f models.Flight
	if !BindJSONOrError(c, &f) {
		return
	}
	if err := componentRepo().UpdateFlight(id, f); err != nil {
		RespondDomainError(c, err)
		return
	}
	f.ID = id
	c.JSON(http.StatusOK, f)
}

// DELETE /api/flights/:id
func DeleteFlight(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := componentRepo().DeleteFlight(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/lounge-passes?event_id=N
func GetLoungePasses(c *gin.Context) {
	eventID, ok := queryEventID(c)
	if !ok {
		return
	}
	passes, err := componentRepo().ListLoungePasses(eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, passes)
}

// GET /api/lounge-passes/:id
func GetLoungePassByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	p, err := componentRepo().GetLoungePassByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/lounge-passes
func CreateLoungePass(c *gin.Context) {
	var p models.LoungePass
	if !BindJSONOrError(c, &p) {
		return
	}
	id, err := componentRepo().CreateLoungePass(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

// PUT /api/lounge-passes/:id
func UpdateLoungePass(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var p models.LoungePass
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := componentRepo().UpdateLoungePass(id, p); err != nil {
		RespondDomainError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusOK, p)
}

// DELETE /api/lounge-passes/:id
func DeleteLoungePass(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := componentRepo().DeleteLoungePass(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
