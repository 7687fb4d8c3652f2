package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	projectHandler := handler.GetProjectHandler()

	// Client portal: own projects only
	e.GET("/v1/projects", projectHandler.ListMyProjects, authMiddleware.Authenticate)

	admin := e.Group("/v1/admin/projects")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", projectHandler.CreateProject)
	admin.PUT("/:id/progress", projectHandler.UpdateProgress)
}
