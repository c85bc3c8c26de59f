package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
	"github.com/valeriaulyamaeva/living-budget/models"
)

func GetSettingsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		settings, err := svc.Settings(c.Request.Context(), ownerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

func SaveSettingsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var in models.Settings
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid settings", err)
			return
		}
		saved, err := svc.SaveSettings(c.Request.Context(), ownerID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// PreviewSettingsHandler shows what an unsaved plan leaves for living costs.
func PreviewSettingsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentOwner(c); !ok {
			return
		}
		var in models.Settings
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid settings", err)
			return
		}
		c.JSON(http.StatusOK, svc.PreviewAllocation(in))
	}
}
