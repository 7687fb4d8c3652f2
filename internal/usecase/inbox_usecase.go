package usecase

import (
	"context"
	"sort"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/logger"
)

// InboxUseCase folds the viewer-scoped message stream into an ordered
// conversation list with unread markers.
type InboxUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifier    PortalNotifier
}

func NewInboxUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	notifier PortalNotifier,
) *InboxUseCase {
	return &InboxUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// Watch subscribes to every message the viewer participates in and pushes a
// re-folded inbox to the viewer's portal on each emission. The returned
// cancel function ends the watch.
func (uc *InboxUseCase) Watch(ctx context.Context, viewer *entity.User) (repository.CancelFunc, error) {
	viewerKey := viewer.ChatKey()

	return uc.messageRepo.Subscribe(ctx, viewerKey, func(messages []*entity.Message) {
		conversations := uc.Fold(viewerKey, messages)
		uc.resolveDisplayNames(ctx, conversations)
		uc.notifier.InboxRendered(viewer.ID, conversations, UnreadCount(conversations))
	})
}

// List folds a one-off query instead of a live stream; read failures degrade
// to an empty inbox.
func (uc *InboxUseCase) List(ctx context.Context, viewer *entity.User) []*entity.Conversation {
	viewerKey := viewer.ChatKey()

	messages, err := uc.messageRepo.ListByParticipant(ctx, viewerKey)
	if err != nil {
		logger.Error("Failed to load inbox for %s: %v", viewer.ID, err)
		return nil
	}

	conversations := uc.Fold(viewerKey, messages)
	uc.resolveDisplayNames(ctx, conversations)
	return conversations
}

// Fold groups messages by counterpart and derives each conversation's
// summary. Messages without a resolvable counterpart are discarded. The last
// message fields only move forward: an incoming timestamp must be strictly
// greater than the stored one, and a pending timestamp never overwrites an
// assigned one. Unread is sticky within a fold; only a re-fold after the
// read-state tracker ran can clear it.
func (uc *InboxUseCase) Fold(viewerKey string, messages []*entity.Message) []*entity.Conversation {
	byKey := make(map[string]*entity.Conversation)
	var order []string

	for _, m := range messages {
		key := counterpartOf(viewerKey, m)
		if key == "" {
			continue
		}

		conv, ok := byKey[key]
		if !ok {
			conv = &entity.Conversation{
				ClientID:             key,
				DisplayName:          fallbackName(viewerKey, m),
				LastMessageText:      m.Text,
				LastMessageTimestamp: m.Timestamp,
			}
			byKey[key] = conv
			order = append(order, key)
		} else if m.HasTimestamp() && m.Timestamp.After(conv.LastMessageTimestamp) {
			conv.LastMessageText = m.Text
			conv.LastMessageTimestamp = m.Timestamp
		}

		if !m.Read && m.SenderID != viewerKey {
			conv.HasUnread = true
		}
	}

	conversations := make([]*entity.Conversation, 0, len(order))
	for _, key := range order {
		conversations = append(conversations, byKey[key])
	}

	// Newest first; ties keep insertion order.
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessageTimestamp.After(conversations[j].LastMessageTimestamp)
	})

	return conversations
}

// UnreadCount is the inbox badge value.
func UnreadCount(conversations []*entity.Conversation) int {
	count := 0
	for _, conv := range conversations {
		if conv.HasUnread {
			count++
		}
	}
	return count
}

// resolveDisplayNames enriches conversations with profile names. A failed
// lookup keeps the fallback label and never aborts the rest of the listing.
func (uc *InboxUseCase) resolveDisplayNames(ctx context.Context, conversations []*entity.Conversation) {
	for _, conv := range conversations {
		user, err := uc.userRepo.GetByID(ctx, conv.ClientID)
		if err != nil {
			logger.Warn("Failed to resolve name for %s: %v", conv.ClientID, err)
			continue
		}
		if user.Name != "" {
			conv.DisplayName = user.Name
		}
	}
}

func counterpartOf(viewerKey string, m *entity.Message) string {
	if m.SenderID == viewerKey {
		return m.ReceiverID
	}
	return m.SenderID
}

func fallbackName(viewerKey string, m *entity.Message) string {
	if m.SenderID != viewerKey && m.SenderName != "" {
		return m.SenderName
	}
	return "Client"
}
