package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupDocumentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	documentHandler := handler.GetDocumentHandler()

	documents := e.Group("/v1/documents")
	documents.Use(authMiddleware.Authenticate)

	documents.GET("", documentHandler.List)
	documents.POST("", documentHandler.Upload)
	documents.DELETE("", documentHandler.Delete)
}
