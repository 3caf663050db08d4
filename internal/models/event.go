package models

// Auth event actions published to Kafka.
const (
	ActionRegistered     = "user.registered"
	ActionLogin          = "user.login"
	ActionFederatedLogin = "user.federated_login"
)

// AuthEvent is the message published to Kafka after a successful
// registration or login.
type AuthEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}
