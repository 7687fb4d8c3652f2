package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/usecase"
	"tutorhub/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		UserType: user.UserType,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateSettingsRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"omitempty"`
	BusinessHours string `json:"business_hours" validate:"omitempty"`
}

func (h *UserHandler) UpdateSettings(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateSettings(c.Request().Context(), uid, usecase.UpdateSettingsInput{
		Name:          req.Name,
		Phone:         req.Phone,
		BusinessHours: req.BusinessHours,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type changePasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.ChangePassword(c.Request().Context(), uid, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated successfully!",
	})
}
