package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)

	payments.POST("", paymentHandler.ProcessPayment)
	payments.GET("", paymentHandler.History)
}
