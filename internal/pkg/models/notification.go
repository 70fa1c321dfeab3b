package models

import (
	"time"

	"github.com/google/uuid"
)

// UserNotification is the payload published to the notification subject.
// Delivery (push/WebSocket/email) is handled by the notification service.
type UserNotification struct {
	UserID    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	EventType string            `json:"event_type,omitempty"`
	Link      string            `json:"link,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	IssuedAt  time.Time         `json:"issued_at"`
}

// AuditEvent is the payload published to the audit subject
type AuditEvent struct {
	UserID   uuid.UUID `json:"user_id"`
	Action   string    `json:"action"`
	Status   string    `json:"status"`
	Details  string    `json:"details,omitempty"`
	IssuedAt time.Time `json:"issued_at"`
}
