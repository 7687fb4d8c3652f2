package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/domain/service"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type ChatUseCase struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	storage      service.FileStorage
	notifier     PortalNotifier
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	storage service.FileStorage,
	notifier PortalNotifier,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		storage:      storage,
		notifier:     notifier,
	}
}

type sessionState int

const (
	stateClosed sessionState = iota
	stateSubscribing
	stateStreaming
)

// ChatSession holds one viewer's chat state: the selected conversation and
// its single live subscription. Lifecycle is bound to the portal connection;
// Close on disconnect cancels the subscription.
type ChatSession struct {
	uc     *ChatUseCase
	viewer *entity.User

	mu           sync.Mutex
	conversation string
	state        sessionState
	cancel       repository.CancelFunc
}

func (uc *ChatUseCase) NewSession(viewer *entity.User) *ChatSession {
	return &ChatSession{
		uc:     uc,
		viewer: viewer,
	}
}

// OpenConversation switches the session to the conversation with
// counterpartID. Any prior subscription is cancelled first so at most one
// stream renders at a time. Every emission re-renders the full ordered
// message list; the viewer's own sends appear only once the store echoes
// them back.
func (s *ChatSession) OpenConversation(ctx context.Context, counterpartID string) error {
	key := counterpartID
	if key == entity.AdminKey {
		// A client's thread is keyed by their own ID.
		key = s.viewer.ID
	}
	if key == "" {
		return errors.BadRequest("Missing conversation identifier", nil)
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.conversation = key
	s.state = stateSubscribing
	s.mu.Unlock()

	cancel, err := s.uc.messageRepo.Subscribe(ctx, key, func(messages []*entity.Message) {
		s.mu.Lock()
		if s.conversation != key {
			// Stale emission from a conversation that was switched away.
			s.mu.Unlock()
			return
		}
		s.state = stateStreaming
		s.mu.Unlock()

		sortByTimestamp(messages)
		s.uc.notifier.ConversationRendered(s.viewer.ID, key, messages)
	})
	if err != nil {
		s.mu.Lock()
		s.conversation = ""
		s.state = stateClosed
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	if err := s.uc.MarkConversationRead(ctx, key, s.viewer); err != nil {
		logger.Warn("Failed to mark conversation %s as read: %v", key, err)
	}

	return nil
}

// CloseConversation cancels the active subscription. No-op when nothing is
// open.
func (s *ChatSession) CloseConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.conversation = ""
	s.state = stateClosed
}

// Close ends the session. Called on logout or portal disconnect.
func (s *ChatSession) Close() {
	s.CloseConversation()
}

type SendMessageInput struct {
	Text     string
	FileURL  string
	FileName string
}

// SendMessage persists a message to the open conversation. The write is not
// rendered optimistically; the live subscription's next emission shows it.
func (s *ChatSession) SendMessage(ctx context.Context, input SendMessageInput) error {
	s.mu.Lock()
	key := s.conversation
	s.mu.Unlock()

	if key == "" {
		return errors.BadRequest("Please select a client first", nil)
	}

	senderKey := s.viewer.ChatKey()
	receiverKey := key
	if !s.viewer.IsAdmin() {
		receiverKey = entity.AdminKey
	}

	message := &entity.Message{
		Text:         input.Text,
		SenderID:     senderKey,
		SenderName:   s.viewer.Name,
		ReceiverID:   receiverKey,
		Participants: []string{senderKey, receiverKey},
		FileURL:      input.FileURL,
		FileName:     input.FileName,
		Read:         false,
	}

	if err := s.uc.messageRepo.Create(ctx, message); err != nil {
		return err
	}

	if s.viewer.IsAdmin() {
		activity := &entity.Activity{
			UserID:  key,
			Message: "Admin sent a message",
		}
		if err := s.uc.activityRepo.Create(ctx, activity); err != nil {
			logger.Warn("Failed to record message activity: %v", err)
		}
	}

	return nil
}

// MarkConversationRead flips every unread message authored by the
// counterpart in the conversation keyed by key. Idempotent: nothing unread
// means zero writes.
func (uc *ChatUseCase) MarkConversationRead(ctx context.Context, key string, viewer *entity.User) error {
	counterpartKey := key
	if !viewer.IsAdmin() {
		counterpartKey = entity.AdminKey
	}

	unread, err := uc.messageRepo.ListUnread(ctx, key, counterpartKey)
	if err != nil {
		return err
	}

	for _, m := range unread {
		if err := uc.messageRepo.MarkRead(ctx, m.ID); err != nil {
			logger.Warn("Failed to mark message %s as read: %v", m.ID, err)
		}
	}

	return nil
}

// ListMessages is a one-off ordered read of a conversation, for portals
// that render history before the live stream attaches.
func (uc *ChatUseCase) ListMessages(ctx context.Context, key string) ([]*entity.Message, error) {
	messages, err := uc.messageRepo.ListByParticipant(ctx, key)
	if err != nil {
		return nil, err
	}
	sortByTimestamp(messages)
	return messages, nil
}

type AttachmentInput struct {
	FileName string
	Content  io.Reader
	Size     int64
}

// SendAttachments runs the two-phase upload-then-send pipeline for each file
// in turn. A failure aborts only that file's send; if the message write
// fails after the upload succeeded, the blob stays where it is.
func (s *ChatSession) SendAttachments(ctx context.Context, files []AttachmentInput, onProgress func(fileName string, fraction float64)) []error {
	var errs []error
	for _, file := range files {
		if err := s.sendAttachment(ctx, file, onProgress); err != nil {
			logger.Error("Failed to send attachment %s: %v", file.FileName, err)
			errs = append(errs, err)
		}
	}
	return errs
}

func (s *ChatSession) sendAttachment(ctx context.Context, file AttachmentInput, onProgress func(string, float64)) error {
	var progress service.ProgressFunc
	if onProgress != nil {
		progress = func(fraction float64) {
			onProgress(file.FileName, fraction)
		}
	}

	url, err := s.uc.storage.Upload(ctx, s.uploadPath(file.FileName), file.Content, file.Size, progress)
	if err != nil {
		return errors.UploadFailed("Failed to upload file", err)
	}

	return s.SendMessage(ctx, SendMessageInput{
		Text:     fmt.Sprintf("Sent a file: %s", file.FileName),
		FileURL:  url,
		FileName: file.FileName,
	})
}

func (s *ChatSession) uploadPath(fileName string) string {
	millis := time.Now().UnixMilli()
	if s.viewer.IsAdmin() {
		return fmt.Sprintf("admin-chat-files/%d_%s", millis, fileName)
	}
	return fmt.Sprintf("chat-files/%s/%d_%s", s.viewer.ID, millis, fileName)
}

// sortByTimestamp orders messages ascending with pending timestamps last.
func sortByTimestamp(messages []*entity.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		a, b := messages[i], messages[j]
		if !a.HasTimestamp() {
			return false
		}
		if !b.HasTimestamp() {
			return true
		}
		return a.Timestamp.Before(b.Timestamp)
	})
}
