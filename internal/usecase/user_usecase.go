package usecase

import (
	"context"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	firebaseAuth FirebaseAuthClient
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	firebaseAuth FirebaseAuthClient,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		firebaseAuth: firebaseAuth,
	}
}

type UpdateSettingsInput struct {
	Name          string
	Phone         string
	BusinessHours string
}

func (uc *UserUseCase) UpdateSettings(ctx context.Context, uid string, input UpdateSettingsInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	user.Name = input.Name
	user.Phone = input.Phone
	if user.IsAdmin() {
		user.BusinessHours = input.BusinessHours
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update settings", err)
	}

	return user, nil
}

func (uc *UserUseCase) ChangePassword(ctx context.Context, uid, newPassword string) error {
	if len(newPassword) < 6 {
		return errors.BadRequest("Password must be at least 6 characters long.", nil)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

type CreateClientInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// CreateClient provisions a client account on behalf of the admin.
func (uc *UserUseCase) CreateClient(ctx context.Context, input CreateClientInput) (*entity.User, error) {
	if len(input.Password) < 6 {
		return nil, errors.BadRequest("Password must be at least 6 characters long.", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.BadRequest("An error occurred. Please try again.", err)
	}

	user := &entity.User{
		ID:                uid,
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		UserType:          entity.UserTypeClient,
		ActiveProjects:    []string{},
		CompletedProjects: []string{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create client profile", err)
	}

	activity := &entity.Activity{
		UserID:  uid,
		Message: "Account created by admin",
	}
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn("Failed to record account activity: %v", err)
	}

	return user, nil
}

func (uc *UserUseCase) ListClients(ctx context.Context) ([]*entity.User, error) {
	clients, err := uc.userRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (uc *UserUseCase) GetClient(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Client", err)
	}
	if user.IsAdmin() {
		return nil, errors.NotFound("Client", nil)
	}
	return user, nil
}
