package constants

// NATS subjects for outbound events. Lifecycle events ride inside the
// notification payload as EventType; only these two subjects are published.
const (
	SubjectUserNotification = "notification.user"
	SubjectAuditLog         = "audit.action"
)
