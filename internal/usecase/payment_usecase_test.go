package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub/internal/domain/entity"
	apperrors "tutorhub/pkg/errors"
)

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListAll(ctx context.Context) ([]*entity.Payment, error) {
	return r.payments, nil
}

func TestProcessPaymentSettlesBalance(t *testing.T) {
	client := &entity.User{ID: "c1", UserType: entity.UserTypeClient, Balance: 500, TotalSpent: 100}
	userRepo := newFakeUserRepo(client)
	paymentRepo := &fakePaymentRepo{}
	activityRepo := &fakeActivityRepo{}

	uc := NewPaymentUseCase(paymentRepo, userRepo, activityRepo)

	payment, err := uc.ProcessPayment(context.Background(), "c1", ProcessPaymentInput{
		Amount: 150,
		Method: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, "Service Payment", payment.Description)
	assert.Equal(t, "completed", payment.Status)

	updated, err := userRepo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, float64(350), updated.Balance)
	assert.Equal(t, float64(250), updated.TotalSpent)

	require.Len(t, activityRepo.activities, 1)
	assert.Equal(t, "Payment of R150.00 processed successfully", activityRepo.activities[0].Message)
}

func TestProcessPaymentRejectsNonPositiveAmount(t *testing.T) {
	uc := NewPaymentUseCase(&fakePaymentRepo{}, newFakeUserRepo(), &fakeActivityRepo{})

	_, err := uc.ProcessPayment(context.Background(), "c1", ProcessPaymentInput{
		Amount: 0,
		Method: "card",
	})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "BAD_REQUEST", appErr.Code)
}
