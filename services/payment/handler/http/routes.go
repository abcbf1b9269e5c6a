package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/0xgaut85/r1x-pay/internal/pkg/middleware"
)

// RegisterRoutes wires the payment API onto the echo instance. Operator
// surfaces (catalog mutations, fee reconciliation) sit behind the X-API-Key
// middleware; the payment flow itself is open to payers.
func RegisterRoutes(e *echo.Echo, paymentHandler *PaymentHandler, serviceHandler *ServiceHandler, apiKey string) {
	api := e.Group("/api/v1")

	// Payment flow
	api.POST("/pay", paymentHandler.Pay)
	api.POST("/verify", paymentHandler.Verify)
	api.GET("/payments/supported", paymentHandler.Supported)

	// Ledger reads (collaborator surface)
	api.GET("/transactions", paymentHandler.ListTransactions)
	api.GET("/transactions/:id", paymentHandler.GetTransaction)

	// Service catalog
	api.GET("/services", serviceHandler.ListServices)
	api.GET("/services/:id", serviceHandler.GetService)

	operator := api.Group("", middleware.RequireAPIKey(apiKey))
	operator.POST("/services", serviceHandler.CreateService)
	operator.PATCH("/services/:id", serviceHandler.UpdateService)
	operator.GET("/fees/pending", paymentHandler.ListPendingFees)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
