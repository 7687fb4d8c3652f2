package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/usecase"
	"tutorhub/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) AdminSummary(c echo.Context) error {
	return response.Success(c, h.dashboardUseCase.AdminSummary(c.Request().Context()))
}

func (h *DashboardHandler) ClientSummary(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, err := h.dashboardUseCase.ClientSummary(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *DashboardHandler) RecentActivity(c echo.Context) error {
	activities, err := h.dashboardUseCase.RecentActivity(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, activities)
}

func (h *DashboardHandler) MyActivity(c echo.Context) error {
	uid := c.Get("uid").(string)

	activities, err := h.dashboardUseCase.UserActivity(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, activities)
}
