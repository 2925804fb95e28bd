package types

import (
	"encoding/json"
	"time"
)

// NotificationType drives the toast styling in the frontend feed.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification is one user-facing event. UserID is nil for broadcast
// notifications. The struct holds one canonical value per concept; the
// legacy duplicate wire fields (text/message, read/is_read, time/created_at)
// exist only in the JSON encoding, kept for compatibility with the existing
// frontend.
type Notification struct {
	ID        int
	UserID    *int
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}

type notificationWire struct {
	ID        int              `json:"id"`
	UserID    *int             `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Text      string           `json:"text"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	IsRead    int              `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
	Time      time.Time        `json:"time"`
}

func (n Notification) MarshalJSON() ([]byte, error) {
	isRead := 0
	if n.Read {
		isRead = 1
	}
	return json.Marshal(notificationWire{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Text:      n.Message,
		Type:      n.Type,
		Read:      n.Read,
		IsRead:    isRead,
		CreatedAt: n.CreatedAt,
		Time:      n.CreatedAt,
	})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	var w struct {
		ID        int              `json:"id"`
		UserID    *int             `json:"user_id"`
		Title     string           `json:"title"`
		Message   *string          `json:"message"`
		Text      *string          `json:"text"`
		Type      NotificationType `json:"type"`
		Read      *bool            `json:"read"`
		IsRead    *int             `json:"is_read"`
		CreatedAt *time.Time       `json:"created_at"`
		Time      *time.Time       `json:"time"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.ID = w.ID
	n.UserID = w.UserID
	n.Title = w.Title
	n.Type = w.Type
	switch {
	case w.Message != nil:
		n.Message = *w.Message
	case w.Text != nil:
		n.Message = *w.Text
	}
	switch {
	case w.Read != nil:
		n.Read = *w.Read
	case w.IsRead != nil:
		n.Read = *w.IsRead != 0
	}
	switch {
	case w.CreatedAt != nil:
		n.CreatedAt = *w.CreatedAt
	case w.Time != nil:
		n.CreatedAt = *w.Time
	}
	return nil
}
