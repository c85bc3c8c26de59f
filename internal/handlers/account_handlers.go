package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

func RegisterHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.Credentials
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid registration data", err)
			return
		}
		sess, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sess)
	}
}

func LoginHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.Credentials
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid login data", err)
			return
		}
		sess, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func ResetHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		if err := svc.Reset(c.Request.Context(), ownerID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All records cleared"})
	}
}

// ExportHandler serves every record the owner has as a downloadable file.
func ExportHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := currentOwner(c)
		if !ok {
			return
		}
		exp, err := svc.Export(c.Request.Context(), ownerID)
		if err != nil {
			respondError(c, err)
			return
		}
		data, err := json.MarshalIndent(exp, "", "  ")
		if err != nil {
			respondError(c, fmt.Errorf("encode export: %w", err))
			return
		}
		filename := fmt.Sprintf("living-budget-%s.json", exp.ExportedAt.Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	}
}
