package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub/internal/domain/entity"
	apperrors "tutorhub/pkg/errors"
)

func newChatFixture(users ...*entity.User) (*ChatUseCase, *fakeMessageRepo, *fakeStorage, *fakeActivityRepo, *fakeNotifier) {
	messageRepo := &fakeMessageRepo{}
	storage := &fakeStorage{}
	activityRepo := &fakeActivityRepo{}
	notifier := &fakeNotifier{}

	uc := NewChatUseCase(messageRepo, newFakeUserRepo(users...), activityRepo, storage, notifier)
	return uc, messageRepo, storage, activityRepo, notifier
}

func adminViewer() *entity.User {
	return &entity.User{ID: "admin-1", Name: "Admin", UserType: entity.UserTypeAdmin}
}

func clientViewer() *entity.User {
	return &entity.User{ID: "c1", Name: "Alice", UserType: entity.UserTypeClient}
}

func TestOpenConversationCancelsPreviousSubscription(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))
	require.NoError(t, session.OpenConversation(context.Background(), "c2"))

	require.Len(t, messageRepo.subscriptions, 2)
	assert.Equal(t, 1, messageRepo.subscriptions[0].cancelled)
	assert.Equal(t, 0, messageRepo.subscriptions[1].cancelled)
	assert.Equal(t, "c2", messageRepo.subscriptions[1].key)
}

func TestOpenConversationClientKeysOwnThread(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	session := uc.NewSession(clientViewer())

	require.NoError(t, session.OpenConversation(context.Background(), entity.AdminKey))

	require.Len(t, messageRepo.subscriptions, 1)
	assert.Equal(t, "c1", messageRepo.subscriptions[0].key)
}

func TestOpenConversationIgnoresStaleEmissions(t *testing.T) {
	uc, messageRepo, _, _, notifier := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))
	require.NoError(t, session.OpenConversation(context.Background(), "c2"))

	stale := messageRepo.subscriptions[0]
	messageRepo.emit(stale, []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "late arrival", foldBase, true),
	})

	assert.Empty(t, notifier.conversations)
}

func TestOpenConversationRendersOrderedStream(t *testing.T) {
	uc, messageRepo, _, _, notifier := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))

	pending := inboxMsg("c1", entity.AdminKey, "still pending", time.Time{}, true)
	late := inboxMsg("c1", entity.AdminKey, "later", foldBase.Add(time.Minute), true)
	early := inboxMsg("c1", entity.AdminKey, "earlier", foldBase, true)

	messageRepo.emit(messageRepo.subscriptions[0], []*entity.Message{pending, late, early})

	require.Len(t, notifier.conversations, 1)
	render := notifier.conversations[0]
	assert.Equal(t, "admin-1", render.viewerID)
	assert.Equal(t, "c1", render.key)

	require.Len(t, render.messages, 3)
	assert.Equal(t, "earlier", render.messages[0].Text)
	assert.Equal(t, "later", render.messages[1].Text)
	assert.Equal(t, "still pending", render.messages[2].Text)
}

func TestOpenConversationMarksCounterpartMessagesRead(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()

	messageRepo.messages = []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "unread one", foldBase, false),
		inboxMsg("c1", entity.AdminKey, "unread two", foldBase.Add(time.Second), false),
		inboxMsg(entity.AdminKey, "c1", "own message", foldBase.Add(2*time.Second), false),
	}

	session := uc.NewSession(adminViewer())
	require.NoError(t, session.OpenConversation(context.Background(), "c1"))

	assert.Equal(t, 2, messageRepo.markReadCalls)
	assert.True(t, messageRepo.messages[0].Read)
	assert.True(t, messageRepo.messages[1].Read)
	assert.False(t, messageRepo.messages[2].Read)
}

func TestMarkConversationReadIsIdempotent(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	viewer := adminViewer()

	messageRepo.messages = []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "unread", foldBase, false),
	}

	require.NoError(t, uc.MarkConversationRead(context.Background(), "c1", viewer))
	assert.Equal(t, 1, messageRepo.markReadCalls)

	require.NoError(t, uc.MarkConversationRead(context.Background(), "c1", viewer))
	assert.Equal(t, 1, messageRepo.markReadCalls)
}

func TestSendMessageRequiresOpenConversation(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	err := session.SendMessage(context.Background(), SendMessageInput{Text: "hello"})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "Please select a client first", appErr.Message)
	assert.Equal(t, 0, messageRepo.creates)
}

func TestSendMessagePersistsWithoutOptimisticRender(t *testing.T) {
	uc, messageRepo, _, _, notifier := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))
	require.NoError(t, session.SendMessage(context.Background(), SendMessageInput{Text: "hello"}))

	require.Len(t, messageRepo.messages, 1)
	sent := messageRepo.messages[0]
	assert.Equal(t, entity.AdminKey, sent.SenderID)
	assert.Equal(t, "c1", sent.ReceiverID)
	assert.ElementsMatch(t, []string{entity.AdminKey, "c1"}, sent.Participants)
	assert.False(t, sent.Read)
	assert.True(t, sent.Timestamp.IsZero())

	// The send itself renders nothing; only a store emission does.
	assert.Empty(t, notifier.conversations)
}

func TestClientSendMessageAddressesAdmin(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	session := uc.NewSession(clientViewer())

	require.NoError(t, session.OpenConversation(context.Background(), entity.AdminKey))
	require.NoError(t, session.SendMessage(context.Background(), SendMessageInput{Text: "help please"}))

	require.Len(t, messageRepo.messages, 1)
	sent := messageRepo.messages[0]
	assert.Equal(t, "c1", sent.SenderID)
	assert.Equal(t, entity.AdminKey, sent.ReceiverID)
}

func TestAdminSendRecordsClientActivity(t *testing.T) {
	uc, _, _, activityRepo, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))
	require.NoError(t, session.SendMessage(context.Background(), SendMessageInput{Text: "update"}))

	require.Len(t, activityRepo.activities, 1)
	assert.Equal(t, "c1", activityRepo.activities[0].UserID)
	assert.Equal(t, "Admin sent a message", activityRepo.activities[0].Message)
}

func TestSendAttachmentsUploadsThenSends(t *testing.T) {
	uc, messageRepo, storage, _, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))

	var fractions []float64
	errs := session.SendAttachments(context.Background(), []AttachmentInput{
		{FileName: "notes.pdf", Content: strings.NewReader("12345678"), Size: 8},
	}, func(fileName string, fraction float64) {
		fractions = append(fractions, fraction)
	})

	assert.Empty(t, errs)

	require.Len(t, storage.uploads, 1)
	assert.True(t, strings.HasPrefix(storage.uploads[0].path, "admin-chat-files/"))
	assert.True(t, strings.HasSuffix(storage.uploads[0].path, "_notes.pdf"))

	require.NotEmpty(t, fractions)
	assert.Equal(t, 1.0, fractions[len(fractions)-1])

	require.Len(t, messageRepo.messages, 1)
	sent := messageRepo.messages[0]
	assert.Equal(t, "Sent a file: notes.pdf", sent.Text)
	assert.Equal(t, "notes.pdf", sent.FileName)
	assert.Equal(t, "https://files.test/"+storage.uploads[0].path, sent.FileURL)
}

func TestClientAttachmentUploadsToOwnFolder(t *testing.T) {
	uc, _, storage, _, _ := newChatFixture()
	session := uc.NewSession(clientViewer())

	require.NoError(t, session.OpenConversation(context.Background(), entity.AdminKey))

	errs := session.SendAttachments(context.Background(), []AttachmentInput{
		{FileName: "homework.docx", Content: strings.NewReader("abcd"), Size: 4},
	}, nil)

	assert.Empty(t, errs)
	require.Len(t, storage.uploads, 1)
	assert.True(t, strings.HasPrefix(storage.uploads[0].path, "chat-files/c1/"))
}

func TestAttachmentSendFailureLeavesUploadedBlob(t *testing.T) {
	uc, messageRepo, storage, _, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))

	messageRepo.createErr = apperrors.Internal("store down", nil)

	errs := session.SendAttachments(context.Background(), []AttachmentInput{
		{FileName: "report.pdf", Content: strings.NewReader("abcd"), Size: 4},
	}, nil)

	require.Len(t, errs, 1)
	assert.Len(t, storage.uploads, 1)
	assert.Empty(t, storage.deletes)
	assert.Empty(t, messageRepo.messages)
}

func TestSendAttachmentsFailuresAreIndependent(t *testing.T) {
	uc, messageRepo, storage, _, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))

	storage.failSubstring = "bad.bin"

	errs := session.SendAttachments(context.Background(), []AttachmentInput{
		{FileName: "bad.bin", Content: strings.NewReader("x"), Size: 1},
		{FileName: "good.txt", Content: strings.NewReader("ok"), Size: 2},
	}, nil)

	require.Len(t, errs, 1)
	assert.Len(t, storage.uploads, 1)
	require.Len(t, messageRepo.messages, 1)
	assert.Equal(t, "Sent a file: good.txt", messageRepo.messages[0].Text)
}

func TestCloseConversationIsIdempotent(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	session := uc.NewSession(adminViewer())

	session.CloseConversation()

	require.NoError(t, session.OpenConversation(context.Background(), "c1"))
	session.CloseConversation()
	session.CloseConversation()

	assert.Equal(t, 1, messageRepo.subscriptions[0].cancelled)

	err := session.SendMessage(context.Background(), SendMessageInput{Text: "hello"})
	require.Error(t, err)
	assert.Equal(t, 0, messageRepo.creates)
}

func TestListMessagesOrdersPendingLast(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()

	messageRepo.messages = []*entity.Message{
		inboxMsg("c1", entity.AdminKey, "pending", time.Time{}, true),
		inboxMsg("c1", entity.AdminKey, "second", foldBase.Add(time.Minute), true),
		inboxMsg("c1", entity.AdminKey, "first", foldBase, true),
	}

	messages, err := uc.ListMessages(context.Background(), "c1")
	require.NoError(t, err)

	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "pending", messages[2].Text)
}
