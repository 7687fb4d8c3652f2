package repository

import (
	"context"

	"tutorhub/internal/domain/entity"
)

// CancelFunc tears down a live subscription. Safe to call more than once.
type CancelFunc func()

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByParticipant returns every message whose participants array
	// contains key, ordered by timestamp ascending.
	ListByParticipant(ctx context.Context, key string) ([]*entity.Message, error)

	// ListUnread returns the unread messages in the conversation identified
	// by key that were authored by senderID.
	ListUnread(ctx context.Context, key, senderID string) ([]*entity.Message, error)

	// MarkRead flips a message's read flag to true.
	MarkRead(ctx context.Context, messageID string) error

	// Subscribe opens a live query equivalent to ListByParticipant and
	// invokes onChange with the full ordered result set on every change,
	// until the returned CancelFunc is called.
	Subscribe(ctx context.Context, key string, onChange func(messages []*entity.Message)) (CancelFunc, error)
}
