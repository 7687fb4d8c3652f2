package usecase

import (
	"context"
	"fmt"
	"time"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo  repository.PaymentRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

type ProcessPaymentInput struct {
	Amount float64
	Method string
}

// ProcessPayment records a payment and settles it against the client's
// balance. No optimistic state: a failed write surfaces as an error with
// nothing applied locally.
func (uc *PaymentUseCase) ProcessPayment(ctx context.Context, userID string, input ProcessPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Amount must be greater than zero", nil)
	}
	if input.Method == "" {
		return nil, errors.BadRequest("Please fill in all fields", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	payment := &entity.Payment{
		UserID:      userID,
		Amount:      input.Amount,
		Method:      input.Method,
		Date:        time.Now(),
		Description: "Service Payment",
		Status:      "completed",
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	user.Balance -= input.Amount
	user.TotalSpent += input.Amount
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update balance", err)
	}

	activity := &entity.Activity{
		UserID:  userID,
		Message: fmt.Sprintf("Payment of R%.2f processed successfully", input.Amount),
	}
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn("Failed to record payment activity: %v", err)
	}

	return payment, nil
}

func (uc *PaymentUseCase) History(ctx context.Context, userID string) ([]*entity.Payment, error) {
	return uc.paymentRepo.ListByUser(ctx, userID)
}

// MonthlyRevenue sums the current calendar month's payments.
func (uc *PaymentUseCase) MonthlyRevenue(ctx context.Context) (float64, error) {
	payments, err := uc.paymentRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var total float64
	for _, p := range payments {
		if p.Date.Month() == now.Month() && p.Date.Year() == now.Year() {
			total += p.Amount
		}
	}

	return total, nil
}
