package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/v1/dashboard")
	dashboard.Use(authMiddleware.Authenticate)

	dashboard.GET("/me", dashboardHandler.ClientSummary)
	dashboard.GET("/me/activity", dashboardHandler.MyActivity)
	dashboard.GET("/admin", dashboardHandler.AdminSummary, adminMiddleware.AdminOnly)
	dashboard.GET("/admin/activity", dashboardHandler.RecentActivity, adminMiddleware.AdminOnly)
}
