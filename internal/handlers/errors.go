package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/middleware"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

// respondError maps service and store errors onto HTTP statuses. Anything
// unexpected is logged and reported without details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, database.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": database.ErrEmailTaken.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, msg string, err error) {
	log.Printf("[%s] bad request on %s: %v", middleware.GetRequestID(c), c.Request.URL.Path, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func currentOwner(c *gin.Context) (int, bool) {
	id, ok := middleware.OwnerID(c)
	if !ok {
		respondError(c, service.ErrUnauthenticated)
	}
	return id, ok
}

// entityID reads the id from the path, falling back to the one in the body.
func entityID(c *gin.Context, bodyID int) (int, bool) {
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			badRequest(c, "Invalid id", err)
			return 0, false
		}
		return id, true
	}
	if bodyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return 0, false
	}
	return bodyID, true
}

// targetID reads the id from the path, or from a JSON body {"id": n} on the
// bare collection route.
func targetID(c *gin.Context) (int, bool) {
	var req struct {
		ID int `json:"id"`
	}
	if c.Param("id") == "" {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request", err)
			return 0, false
		}
	}
	return entityID(c, req.ID)
}
