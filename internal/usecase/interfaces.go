package usecase

import (
	"context"

	"tutorhub/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

// PortalNotifier delivers chat renders to a viewer's open portal. The
// WebSocket layer implements it; tests substitute a recorder.
type PortalNotifier interface {
	ConversationRendered(viewerID, conversationKey string, messages []*entity.Message)
	InboxRendered(viewerID string, conversations []*entity.Conversation, unreadCount int)
}
