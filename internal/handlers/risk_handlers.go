package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

type riskItemRequest struct {
	ID int `json:"id"`
	service.RiskItemInput
}

func ListRiskItemsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		items, err := svc.RiskItems(c.Request.Context(), ownerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func CreateRiskItemHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req riskItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid risk item", err)
			return
		}
		item, err := svc.AddRiskItem(c.Request.Context(), ownerID, req.RiskItemInput)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func UpdateRiskItemHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req riskItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid risk item", err)
			return
		}
		id, ok := entityID(c, req.ID)
		if !ok {
			return
		}
		item, err := svc.EditRiskItem(c.Request.Context(), ownerID, id, req.RiskItemInput)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func DeleteRiskItemHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		id, ok := targetID(c)
		if !ok {
			return
		}
		if err := svc.DeleteRiskItem(c.Request.Context(), ownerID, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Risk item deleted"})
	}
}
