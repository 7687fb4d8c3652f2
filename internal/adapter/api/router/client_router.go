package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupClientRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	clientHandler := handler.GetClientHandler()
	paymentHandler := handler.GetPaymentHandler()

	clients := e.Group("/v1/admin/clients")
	clients.Use(authMiddleware.Authenticate)
	clients.Use(adminMiddleware.AdminOnly)

	clients.GET("", clientHandler.ListClients)
	clients.POST("", clientHandler.CreateClient)
	clients.GET("/:id", clientHandler.GetClient)
	clients.GET("/:id/projects", clientHandler.ListClientProjects)
	clients.GET("/:id/payments", paymentHandler.ClientHistory)
}
