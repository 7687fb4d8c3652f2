package entity

import "time"

// AdminKey is the fixed participant identifier used for the admin side of
// every conversation. The non-admin participant's user ID is the
// conversation key.
const AdminKey = "admin"

type Message struct {
	ID           string    `json:"id" firestore:"id"`
	Text         string    `json:"text" firestore:"text"`
	SenderID     string    `json:"sender_id" firestore:"senderId"`
	SenderName   string    `json:"sender_name" firestore:"senderName"`
	ReceiverID   string    `json:"receiver_id" firestore:"receiverId"`
	Participants []string  `json:"participants" firestore:"participants"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	FileURL      string    `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	FileName     string    `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	Read         bool      `json:"read" firestore:"read"`
}

// HasTimestamp reports whether the server has assigned a timestamp yet.
// A freshly written message may be observed before the server resolves it.
func (m *Message) HasTimestamp() bool {
	return !m.Timestamp.IsZero()
}

// ConversationKey returns the identifier of the conversation this message
// belongs to: the non-admin participant. Empty when unresolvable.
func (m *Message) ConversationKey() string {
	if m.SenderID == AdminKey {
		return m.ReceiverID
	}
	return m.SenderID
}
