package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupEventRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	eventHandler := handler.GetEventHandler()

	events := e.Group("/v1/events")
	events.Use(authMiddleware.Authenticate)

	events.GET("", eventHandler.ListUpcoming)
	events.POST("", eventHandler.CreateEvent, adminMiddleware.AdminOnly)
	events.DELETE("/:id", eventHandler.DeleteEvent, adminMiddleware.AdminOnly)
}
