package usecase

import (
	"context"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates a client account: an auth user plus the profile document
// the portals read.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
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
		return nil, errors.Internal("Failed to create user profile", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, err
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.Unauthorized("User profile not found. Please contact support.", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
