package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/internal/domain/service"
	"tutorhub/pkg/errors"
)

type fakeSubscription struct {
	key       string
	onChange  func([]*entity.Message)
	cancelled int
}

type fakeMessageRepo struct {
	mu            sync.Mutex
	messages      []*entity.Message
	creates       int
	createErr     error
	markReadCalls int
	subscribeErr  error
	subscriptions []*fakeSubscription
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	r.creates++
	message.ID = fmt.Sprintf("msg-%d", r.creates)
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByParticipant(ctx context.Context, key string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Message
	for _, m := range r.messages {
		for _, p := range m.Participants {
			if p == key {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListUnread(ctx context.Context, key, senderID string) ([]*entity.Message, error) {
	all, err := r.ListByParticipant(ctx, key)
	if err != nil {
		return nil, err
	}

	var out []*entity.Message
	for _, m := range all {
		if !m.Read && m.SenderID == senderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(ctx context.Context, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.markReadCalls++
	for _, m := range r.messages {
		if m.ID == messageID {
			m.Read = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) Subscribe(ctx context.Context, key string, onChange func([]*entity.Message)) (repository.CancelFunc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subscribeErr != nil {
		return nil, r.subscribeErr
	}

	sub := &fakeSubscription{key: key, onChange: onChange}
	r.subscriptions = append(r.subscriptions, sub)

	return func() {
		r.mu.Lock()
		sub.cancelled++
		r.mu.Unlock()
	}, nil
}

func (r *fakeMessageRepo) emit(sub *fakeSubscription, messages []*entity.Message) {
	sub.onChange(messages)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ListClients(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.User
	for _, u := range r.users {
		if !u.IsAdmin() {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities []*entity.Activity
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, activity)
	return nil
}

func (r *fakeActivityRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.activities) <= limit {
		return r.activities, nil
	}
	return r.activities[len(r.activities)-limit:], nil
}

func (r *fakeActivityRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Activity
	for _, a := range r.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUpload struct {
	path      string
	fractions []float64
}

type fakeStorage struct {
	mu            sync.Mutex
	uploads       []*fakeUpload
	uploadErr     error
	failSubstring string
	deletes       []string
}

func (s *fakeStorage) Upload(ctx context.Context, path string, file io.Reader, size int64, onProgress service.ProgressFunc) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if s.failSubstring != "" && strings.Contains(path, s.failSubstring) {
		return "", errors.Internal("bucket unavailable", nil)
	}

	upload := &fakeUpload{path: path}

	buf := make([]byte, 4)
	var written int64
	for {
		n, err := file.Read(buf)
		if n > 0 {
			written += int64(n)
			if onProgress != nil && size > 0 {
				fraction := float64(written) / float64(size)
				upload.fractions = append(upload.fractions, fraction)
				onProgress(fraction)
			}
		}
		if err != nil {
			break
		}
	}

	s.uploads = append(s.uploads, upload)
	return "https://files.test/" + path, nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, path)
	return nil
}

func (s *fakeStorage) List(ctx context.Context, prefix string) ([]*entity.StoredFile, error) {
	return nil, nil
}

func (s *fakeStorage) Close() error {
	return nil
}

type conversationRender struct {
	viewerID string
	key      string
	messages []*entity.Message
}

type inboxRender struct {
	viewerID      string
	conversations []*entity.Conversation
	unreadCount   int
}

type fakeNotifier struct {
	mu            sync.Mutex
	conversations []conversationRender
	inboxes       []inboxRender
}

func (n *fakeNotifier) ConversationRendered(viewerID, conversationKey string, messages []*entity.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.conversations = append(n.conversations, conversationRender{
		viewerID: viewerID,
		key:      conversationKey,
		messages: messages,
	})
}

func (n *fakeNotifier) InboxRendered(viewerID string, conversations []*entity.Conversation, unreadCount int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inboxes = append(n.inboxes, inboxRender{
		viewerID:      viewerID,
		conversations: conversations,
		unreadCount:   unreadCount,
	})
}
