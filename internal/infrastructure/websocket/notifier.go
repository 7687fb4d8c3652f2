package websocket

import (
	"encoding/json"
	"time"

	"tutorhub/internal/domain/entity"
	"tutorhub/pkg/logger"
)

// Event types pushed to portal clients.
const (
	EventTypeConversation   = "conversation"
	EventTypeInbox          = "inbox"
	EventTypeNotice         = "notice"
	EventTypeError          = "error"
	EventTypeUploadProgress = "upload_progress"
)

type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type ConversationData struct {
	ConversationKey string            `json:"conversation_key"`
	Messages        []*entity.Message `json:"messages"`
}

type InboxData struct {
	Conversations []*entity.Conversation `json:"conversations"`
	UnreadCount   int                    `json:"unread_count"`
}

// Notifier pushes chat renders to viewers over their WebSocket connection.
type Notifier struct {
	manager *Manager
}

func NewNotifier(manager *Manager) *Notifier {
	return &Notifier{manager: manager}
}

func (n *Notifier) ConversationRendered(viewerID, conversationKey string, messages []*entity.Message) {
	n.push(viewerID, Event{
		Type: EventTypeConversation,
		Data: ConversationData{
			ConversationKey: conversationKey,
			Messages:        messages,
		},
	})
}

func (n *Notifier) InboxRendered(viewerID string, conversations []*entity.Conversation, unreadCount int) {
	n.push(viewerID, Event{
		Type: EventTypeInbox,
		Data: InboxData{
			Conversations: conversations,
			UnreadCount:   unreadCount,
		},
	})
}

func (n *Notifier) Notice(viewerID, message string) {
	n.push(viewerID, Event{
		Type: EventTypeNotice,
		Data: map[string]string{"message": message},
	})
}

func (n *Notifier) ErrorNotice(viewerID, message string) {
	n.push(viewerID, Event{
		Type: EventTypeError,
		Data: map[string]string{"message": message},
	})
}

// UploadProgress reports a chat attachment's upload fraction in [0, 1].
func (n *Notifier) UploadProgress(viewerID, fileName string, fraction float64) {
	n.push(viewerID, Event{
		Type: EventTypeUploadProgress,
		Data: map[string]interface{}{
			"file_name": fileName,
			"fraction":  fraction,
		},
	})
}

func (n *Notifier) push(viewerID string, event Event) {
	event.Timestamp = time.Now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal %s event for %s: %v", event.Type, viewerID, err)
		return
	}

	n.manager.SendToUser(viewerID, payload)
}
