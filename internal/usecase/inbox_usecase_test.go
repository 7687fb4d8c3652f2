package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub/internal/domain/entity"
)

var foldBase = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func inboxMsg(sender, receiver, text string, at time.Time, read bool) *entity.Message {
	return &entity.Message{
		Text:         text,
		SenderID:     sender,
		ReceiverID:   receiver,
		Participants: []string{sender, receiver},
		Timestamp:    at,
		Read:         read,
	}
}

func newInboxUseCase(users ...*entity.User) (*InboxUseCase, *fakeMessageRepo, *fakeNotifier) {
	messageRepo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	uc := NewInboxUseCase(messageRepo, newFakeUserRepo(users...), notifier)
	return uc, messageRepo, notifier
}

func TestFoldPartitionsByCounterpart(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "hello", foldBase, true),
		inboxMsg(entity.AdminKey, "c1", "hi there", foldBase.Add(time.Minute), true),
		inboxMsg("c2", entity.AdminKey, "question", foldBase.Add(2*time.Minute), true),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	require.Len(t, conversations, 2)
	assert.Equal(t, "c2", conversations[0].ClientID)
	assert.Equal(t, "c1", conversations[1].ClientID)
	assert.Equal(t, "hi there", conversations[1].LastMessageText)
}

func TestFoldDiscardsUnresolvableCounterpart(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg(entity.AdminKey, "", "orphaned", foldBase, true),
		inboxMsg("c1", entity.AdminKey, "kept", foldBase.Add(time.Minute), true),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "c1", conversations[0].ClientID)
}

func TestFoldLastMessageOnlyMovesForward(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "newest", foldBase.Add(time.Hour), true),
		inboxMsg("c1", entity.AdminKey, "older", foldBase, true),
		inboxMsg("c1", entity.AdminKey, "same instant", foldBase.Add(time.Hour), true),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "newest", conversations[0].LastMessageText)
	assert.Equal(t, foldBase.Add(time.Hour), conversations[0].LastMessageTimestamp)
}

func TestFoldPendingTimestampNeverOverwrites(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "assigned", foldBase, true),
		inboxMsg("c1", entity.AdminKey, "pending", time.Time{}, true),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	require.Len(t, conversations, 1)
	assert.Equal(t, "assigned", conversations[0].LastMessageText)
	assert.Equal(t, foldBase, conversations[0].LastMessageTimestamp)
}

func TestFoldUnreadStickyWithinFold(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "unseen", foldBase, false),
		inboxMsg("c1", entity.AdminKey, "seen later", foldBase.Add(time.Minute), true),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	require.Len(t, conversations, 1)
	assert.True(t, conversations[0].HasUnread)
}

func TestFoldOwnMessagesNeverCountAsUnread(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg(entity.AdminKey, "c1", "sent by viewer", foldBase, false),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	require.Len(t, conversations, 1)
	assert.False(t, conversations[0].HasUnread)
}

func TestFoldClearsUnreadAfterMessagesRead(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "first", foldBase, false),
		inboxMsg("c1", entity.AdminKey, "second", foldBase.Add(time.Minute), false),
	}

	assert.True(t, uc.Fold(entity.AdminKey, messages)[0].HasUnread)

	for _, m := range messages {
		m.Read = true
	}

	assert.False(t, uc.Fold(entity.AdminKey, messages)[0].HasUnread)
}

func TestUnreadCountCountsConversationsNotMessages(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	messages := []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "one", foldBase, false),
		inboxMsg("c1", entity.AdminKey, "two", foldBase.Add(time.Second), false),
		inboxMsg("c2", entity.AdminKey, "three", foldBase.Add(2*time.Second), false),
		inboxMsg("c3", entity.AdminKey, "four", foldBase.Add(3*time.Second), true),
	}

	conversations := uc.Fold(entity.AdminKey, messages)

	assert.Equal(t, 2, UnreadCount(conversations))
}

func TestUnreadBadgeDropsAfterOpeningOneConversation(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	fromX := inboxMsg("x", entity.AdminKey, "from x", foldBase, false)
	fromY := inboxMsg("y", entity.AdminKey, "from y", foldBase.Add(time.Second), false)
	messages := []*entity.Message{fromX, fromY}

	assert.Equal(t, 2, UnreadCount(uc.Fold(entity.AdminKey, messages)))

	// Opening x's conversation runs the read tracker over it.
	fromX.Read = true

	assert.Equal(t, 1, UnreadCount(uc.Fold(entity.AdminKey, messages)))
}

func TestFoldUsesSenderNameAsFallback(t *testing.T) {
	uc, _, _ := newInboxUseCase()

	named := inboxMsg("c1", entity.AdminKey, "hello", foldBase, true)
	named.SenderName = "Thabo M"

	conversations := uc.Fold(entity.AdminKey, []*entity.Message{named})

	require.Len(t, conversations, 1)
	assert.Equal(t, "Thabo M", conversations[0].DisplayName)
}

func TestWatchPushesFoldedInbox(t *testing.T) {
	admin := &entity.User{ID: "admin-1", Name: "Admin", UserType: entity.UserTypeAdmin}
	client := &entity.User{ID: "c1", Name: "Alice", UserType: entity.UserTypeClient}

	uc, messageRepo, notifier := newInboxUseCase(admin, client)

	cancel, err := uc.Watch(context.Background(), admin)
	require.NoError(t, err)

	require.Len(t, messageRepo.subscriptions, 1)
	sub := messageRepo.subscriptions[0]
	assert.Equal(t, entity.AdminKey, sub.key)

	messageRepo.emit(sub, []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "hello", foldBase, false),
	})

	require.Len(t, notifier.inboxes, 1)
	render := notifier.inboxes[0]
	assert.Equal(t, "admin-1", render.viewerID)
	assert.Equal(t, 1, render.unreadCount)
	require.Len(t, render.conversations, 1)
	assert.Equal(t, "Alice", render.conversations[0].DisplayName)

	cancel()
	assert.Equal(t, 1, sub.cancelled)
}

func TestListFoldsOneOffQuery(t *testing.T) {
	client := &entity.User{ID: "c1", Name: "Alice", UserType: entity.UserTypeClient}

	uc, messageRepo, _ := newInboxUseCase(client)

	messageRepo.messages = []*entity.Message{
		inboxMsg(entity.AdminKey, "c1", "welcome", foldBase, false),
	}

	conversations := uc.List(context.Background(), client)

	require.Len(t, conversations, 1)
	assert.Equal(t, entity.AdminKey, conversations[0].ClientID)
	assert.True(t, conversations[0].HasUnread)
}
