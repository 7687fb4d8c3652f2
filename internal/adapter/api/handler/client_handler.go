package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/usecase"
	"tutorhub/pkg/response"
)

// ClientHandler serves the admin portal's client management views.
type ClientHandler struct {
	userUseCase    *usecase.UserUseCase
	projectUseCase *usecase.ProjectUseCase
}

func NewClientHandler(userUseCase *usecase.UserUseCase, projectUseCase *usecase.ProjectUseCase) *ClientHandler {
	return &ClientHandler{
		userUseCase:    userUseCase,
		projectUseCase: projectUseCase,
	}
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.userUseCase.ListClients(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, clients)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	client, err := h.userUseCase.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, client)
}

type createClientRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	client, err := h.userUseCase.CreateClient(c.Request().Context(), usecase.CreateClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, client)
}

func (h *ClientHandler) ListClientProjects(c echo.Context) error {
	projects, err := h.projectUseCase.ListByClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, projects)
}
