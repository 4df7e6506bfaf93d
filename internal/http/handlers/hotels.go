package handlers

import (
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

func hotelRepo() repositories.HotelRepository {
	return repositories.HotelRepository{DB: intconfig.DB}
}

// GET /api/hotels?event_id=N
func GetHotels(c *gin.Context) {
	eventID, _ := strconv.ParseInt(c.Query("event_id"), 10, 64)
	if eventID <= 0 {
		RespondError(c, http.StatusBadRequest, "event_id is required", nil)
		return
	}
	hotels, err := hotelRepo().ListByEvent(eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /api/hotels/:id
func GetHotelByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	h, err := hotelRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

// POST /api/hotels
func CreateHotel(c *gin.Context) {
	var h models.Hotel
	if !BindJSONOrError(c, &h) {
		return
	}
	id, err := hotelRepo().Create(h)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.ID = id
	c.JSON(http.StatusCreated, h)
}

// PUT /api/hotels/:id
func UpdateHotel(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var h models.Hotel
	if !BindJSONOrError(c, &h) {
		return
	}
	if err := hotelRepo().Update(id, h); err != nil {
		RespondDomainError(c, err)
		return
	}
	h.ID = id
	c.JSON(http.StatusOK, h)
}

// DELETE /api/hotels/:id
func DeleteHotel(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := hotelRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/hotels/:id/rooms
func GetHotelRooms(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	rooms, err := hotelRepo().ListRooms(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func GetRoomByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	m, err := hotelRepo().GetRoomByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/rooms
func CreateRoom(c *gin.Context) {
	var m models.Room
	if !BindJSONOrError(c, &m) {
		return
	}
	id, err := hotelRepo().CreateRoom(m)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	m.ID = id
	c.JSON(http.StatusCreated, m)
}

// PUT /api/rooms/:id
func UpdateRoom(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var m models.Room
	if !BindJSONOrError(c, &m) {
		return
	}
	if err := hotelRepo().UpdateRoom(id, m); err != nil {
		RespondDomainError(c, err)
		return
	}
	m.ID = id
	c.JSON(http.StatusOK, m)
}

// DELETE /api/rooms/:id
func DeleteRoom(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := hotelRepo().DeleteRoom(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
