package handlers

import (
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"

	"github.com/gin-gonic/gin"
)

func eventRepo() repositories.EventRepository {
	return repositories.EventRepository{DB: intconfig.DB}
}

// GET /api/events
func GetEvents(c *gin.Context) {
	events, err := eventRepo().List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /api/events/:id
func GetEventByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	ev, err := eventRepo().GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// POST /api/events
func CreateEvent(c *gin.Context) {
	var ev models.Event
	if !BindJSONOrError(c, &ev) {
		return
	}
	id, err := eventRepo().Create(ev)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	ev.ID = id
	c.JSON(http.StatusCreated, ev)
}

// PUT /api/events/:id
func UpdateEvent(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var ev models.Event
	if !BindJSONOrError(c, &ev) {
		return
	}
	if err := eventRepo().Update(id, ev); err != nil {
		RespondDomainError(c, err)
		return
	}
	ev.ID = id
	c.JSON(http.StatusOK, ev)
}

// DELETE /api/events/:id
func DeleteEvent(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := eventRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/events/:id/packages
func GetEventPackages(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	pkgs, err := eventRepo().ListPackages(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GET /api/packages/:id
func GetPackageByID(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	p, err := eventRepo().GetPackageByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/packages
func CreatePackage(c *gin.Context) {
	var p models.Package
	if !BindJSONOrError(c, &p) {
		return
	}
	id, err := eventRepo().CreatePackage(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

// PUT /api/packages/:id
func UpdatePackage(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var p models.Package
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := eventRepo().UpdatePackage(id, p); err != nil {
		RespondDomainError(c, err)
		return
	}
	p.ID = id
	c.JSON(http.StatusOK, p)
}

// DELETE /api/packages/:id
func DeletePackage(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := eventRepo().DeletePackage(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GET /api/packages/:id/tiers
func GetPackageTiers(c *gin.Context) {
	id := paramID(c)
	if id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	tiers, err := eventRepo().ListTiers(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tiers)
}

func paramID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}
