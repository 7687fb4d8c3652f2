package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/usecase"
	"tutorhub/pkg/response"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

type createProjectRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.CreateProject(c.Request().Context(), usecase.CreateProjectInput{
		ClientID: req.ClientID,
		Title:    req.Title,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, project)
}

// ListMyProjects serves the client portal's project list.
func (h *ProjectHandler) ListMyProjects(c echo.Context) error {
	uid := c.Get("uid").(string)

	projects, err := h.projectUseCase.ListByClient(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, projects)
}

type updateProgressRequest struct {
	Progress int    `json:"progress" validate:"min=0,max=100"`
	Status   string `json:"status" validate:"required"`
	Notes    string `json:"notes" validate:"omitempty"`
}

func (h *ProjectHandler) UpdateProgress(c echo.Context) error {
	var req updateProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.UpdateProgress(c.Request().Context(), usecase.UpdateProgressInput{
		ProjectID: c.Param("id"),
		Progress:  req.Progress,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}
