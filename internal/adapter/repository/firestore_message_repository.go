package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	// Timestamp is left zero so the serverTimestamp tag assigns it on commit.
	_, err := r.client.Collection("chats").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) participantQuery(key string) firestore.Query {
	return r.client.Collection("chats").
		Where("participants", "array-contains", key).
		OrderBy("timestamp", firestore.Asc)
}

func (r *firestoreMessageRepository) ListByParticipant(ctx context.Context, key string) ([]*entity.Message, error) {
	iter := r.participantQuery(key).Documents(ctx)
	messages, err := collectMessages(iter)
	if err != nil {
		logger.Error("Firestore error while listing messages for %s: %v", key, err)
		return nil, errors.Internal("Failed to list messages", err)
	}
	return messages, nil
}

func (r *firestoreMessageRepository) ListUnread(ctx context.Context, key, senderID string) ([]*entity.Message, error) {
	query := r.client.Collection("chats").
		Where("participants", "array-contains", key).
		Where("senderId", "==", senderID).
		Where("read", "==", false)

	iter := query.Documents(ctx)
	messages, err := collectMessages(iter)
	if err != nil {
		logger.Error("Firestore error while listing unread messages for %s: %v", key, err)
		return nil, errors.Internal("Failed to list unread messages", err)
	}
	return messages, nil
}

func (r *firestoreMessageRepository) MarkRead(ctx context.Context, messageID string) error {
	_, err := r.client.Collection("chats").Doc(messageID).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Message", err)
		}
		return errors.Internal("Failed to mark message as read", err)
	}
	return nil
}

func (r *firestoreMessageRepository) Subscribe(ctx context.Context, key string, onChange func(messages []*entity.Message)) (repository.CancelFunc, error) {
	subCtx, cancel := context.WithCancel(ctx)
	snapshots := r.participantQuery(key).Snapshots(subCtx)

	go func() {
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("Message subscription for %s failed: %v", key, err)
				return
			}

			messages, err := collectMessages(snap.Documents)
			if err != nil {
				logger.Error("Failed to read snapshot for %s: %v", key, err)
				continue
			}
			onChange(messages)
		}
	}()

	return repository.CancelFunc(cancel), nil
}

func collectMessages(iter *firestore.DocumentIterator) ([]*entity.Message, error) {
	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message %s: %v", doc.Ref.ID, err)
			continue
		}
		messages = append(messages, &message)
	}
	return messages, nil
}
