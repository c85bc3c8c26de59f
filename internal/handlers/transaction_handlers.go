package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

type transactionRequest struct {
	ID int `json:"id"`
	service.TransactionInput
}

func GetSpendHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		summary, err := svc.MonthSummary(c.Request.Context(), ownerID, c.Query("month"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func CreateTransactionHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req transactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid transaction", err)
			return
		}
		if req.Month == "" {
			req.Month = c.Query("month")
		}
		tx, err := svc.AddTransaction(c.Request.Context(), ownerID, req.TransactionInput)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}

func UpdateTransactionHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req transactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid transaction", err)
			return
		}
		id, ok := entityID(c, req.ID)
		if !ok {
			return
		}
		tx, err := svc.UpdateTransaction(c.Request.Context(), ownerID, id, req.TransactionInput)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

// DeleteTransactionHandler answers with the removed entry.
func DeleteTransactionHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		id, ok := targetID(c)
		if !ok {
			return
		}
		tx, err := svc.DeleteTransaction(c.Request.Context(), ownerID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

func QuickAddHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		var req struct {
			Preset *int   `json:"preset" binding:"required"`
			Month  string `json:"month"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "preset is required", err)
			return
		}
		tx, err := svc.QuickAdd(c.Request.Context(), ownerID, *req.Preset, req.Month)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}
