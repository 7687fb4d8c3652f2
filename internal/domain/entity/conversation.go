package entity

import "time"

// Conversation is a projection folded from the message set. It is never
// persisted; it is recomputed on every stream emission.
type Conversation struct {
	ClientID             string    `json:"client_id"`
	DisplayName          string    `json:"display_name"`
	LastMessageText      string    `json:"last_message_text"`
	LastMessageTimestamp time.Time `json:"last_message_timestamp"`
	HasUnread            bool      `json:"has_unread"`
}
