package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupClientRouter(e, authMiddleware, adminMiddleware)
	SetupProjectRouter(e, authMiddleware, adminMiddleware)
	SetupEventRouter(e, authMiddleware, adminMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupDocumentRouter(e, authMiddleware)
	SetupDashboardRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
