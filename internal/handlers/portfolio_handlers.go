package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

type holdingRequest struct {
	ID int `json:"id"`
	service.HoldingInput
}

func ListHoldingsHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		holdings, err := svc.Holdings(c.Request.Context(), ownerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, holdings)
	}
}

func BuyHoldingHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req holdingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid holding", err)
			return
		}
		h, err := svc.BuyHolding(c.Request.Context(), ownerID, req.HoldingInput)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, h)
	}
}

func EditHoldingHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req holdingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid holding", err)
			return
		}
		id, ok := entityID(c, req.ID)
		if !ok {
			return
		}
		h, err := svc.EditHolding(c.Request.Context(), ownerID, id, req.HoldingInput)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, h)
	}
}

func SellHoldingHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		id, ok := targetID(c)
		if !ok {
			return
		}
		if err := svc.SellHolding(c.Request.Context(), ownerID, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Holding sold"})
	}
}
