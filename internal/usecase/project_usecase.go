package usecase

import (
	"context"
	"fmt"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type ProjectUseCase struct {
	projectRepo  repository.ProjectRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo:  projectRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

type CreateProjectInput struct {
	ClientID string
	Title    string
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error) {
	if _, err := uc.userRepo.GetByID(ctx, input.ClientID); err != nil {
		return nil, errors.NotFound("Client", err)
	}

	project := &entity.Project{
		ClientID: input.ClientID,
		Title:    input.Title,
		Progress: 0,
		Status:   entity.ProjectStatusNotStarted,
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) ListByClient(ctx context.Context, clientID string) ([]*entity.Project, error) {
	return uc.projectRepo.ListByClient(ctx, clientID)
}

type UpdateProgressInput struct {
	ProjectID string
	Progress  int
	Status    string
	Notes     string
}

// UpdateProgress records the admin's progress update and appends an activity
// entry to the client's feed.
func (uc *ProjectUseCase) UpdateProgress(ctx context.Context, input UpdateProgressInput) (*entity.Project, error) {
	if input.Progress < 0 || input.Progress > 100 {
		return nil, errors.BadRequest("Progress must be between 0 and 100", nil)
	}

	project, err := uc.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	project.Progress = input.Progress
	project.Status = input.Status
	project.Notes = input.Notes

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	activity := &entity.Activity{
		UserID:  project.ClientID,
		Message: fmt.Sprintf("Project progress updated to %d%% - %s", input.Progress, input.Status),
	}
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn("Failed to record progress activity: %v", err)
	}

	return project, nil
}
