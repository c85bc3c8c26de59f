package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

func DashboardHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		dash, err := svc.Dashboard(c.Request.Context(), ownerID, c.Query("month"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dash)
	}
}

func GetRolloverHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		r, err := svc.PendingRollover(c.Request.Context(), ownerID, c.Query("month"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// RolloverHandler only acts on {"confirm": true}; the amount is never read
// from the request.
func RolloverHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req struct {
			Confirm bool   `json:"confirm"`
			Month   string `json:"month"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request", err)
			return
		}
		item, err := svc.Rollover(c.Request.Context(), ownerID, req.Month, req.Confirm)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// CategoriesHandler lists the icon catalogue and quick-add presets for forms.
func CategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": finance.Categories,
			"quick_adds": finance.QuickAdds,
		})
	}
}
