package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

func (r *firestorePaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Internal("Failed to create payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Payment, error) {
	query := r.client.Collection("payments").
		Where("userId", "==", userID).
		OrderBy("date", firestore.Desc)
	return r.collect(ctx, query)
}

func (r *firestorePaymentRepository) ListAll(ctx context.Context) ([]*entity.Payment, error) {
	return r.collect(ctx, r.client.Collection("payments").Query)
}

func (r *firestorePaymentRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Payment, error) {
	iter := query.Documents(ctx)
	var payments []*entity.Payment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while listing payments: %v", err)
			return nil, errors.Internal("Failed to list payments", err)
		}

		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			logger.Warn("Skipping malformed payment %s: %v", doc.Ref.ID, err)
			continue
		}
		payment.ID = doc.Ref.ID
		payments = append(payments, &payment)
	}

	return payments, nil
}
