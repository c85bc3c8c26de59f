package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/handlers"
	"github.com/valeriaulyamaeva/living-budget/internal/middleware"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

// SetupRouter wires every endpoint. Everything under /api needs a bearer token.
func SetupRouter(r *gin.Engine, svc *service.Service, tokens middleware.TokenParser) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/register", handlers.RegisterHandler(svc))
	r.POST("/login", handlers.LoginHandler(svc))

	api := r.Group("/api", middleware.AuthMiddleware(tokens))

	api.GET("/budget", handlers.GetSettingsHandler(svc))
	api.POST("/budget", handlers.SaveSettingsHandler(svc))
	api.POST("/budget/preview", handlers.PreviewSettingsHandler(svc))

	api.GET("/spend", handlers.GetSpendHandler(svc))
	api.POST("/spend", handlers.CreateTransactionHandler(svc))
	api.PUT("/spend", handlers.UpdateTransactionHandler(svc))
	api.PUT("/spend/:id", handlers.UpdateTransactionHandler(svc))
	api.DELETE("/spend", handlers.DeleteTransactionHandler(svc))
	api.DELETE("/spend/:id", handlers.DeleteTransactionHandler(svc))
	api.POST("/spend/quick", handlers.QuickAddHandler(svc))

	api.GET("/investment", handlers.ListHoldingsHandler(svc))
	api.POST("/investment", handlers.BuyHoldingHandler(svc))
	api.PUT("/investment", handlers.EditHoldingHandler(svc))
	api.PUT("/investment/:id", handlers.EditHoldingHandler(svc))
	api.DELETE("/investment", handlers.SellHoldingHandler(svc))
	api.DELETE("/investment/:id", handlers.SellHoldingHandler(svc))

	api.GET("/risk", handlers.ListRiskItemsHandler(svc))
	api.POST("/risk", handlers.CreateRiskItemHandler(svc))
	api.PUT("/risk", handlers.UpdateRiskItemHandler(svc))
	api.PUT("/risk/:id", handlers.UpdateRiskItemHandler(svc))
	api.DELETE("/risk", handlers.DeleteRiskItemHandler(svc))
	api.DELETE("/risk/:id", handlers.DeleteRiskItemHandler(svc))

	api.GET("/dashboard", handlers.DashboardHandler(svc))
	api.GET("/rollover", handlers.GetRolloverHandler(svc))
	api.POST("/rollover", handlers.RolloverHandler(svc))
	api.GET("/categories", handlers.CategoriesHandler())
	api.POST("/reset", handlers.ResetHandler(svc))
	api.GET("/export", handlers.ExportHandler(svc))
}
