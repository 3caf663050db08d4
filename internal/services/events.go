package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-auth-service/internal/logger"
	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishAuthEvent publishes an authentication event to Kafka.
// Publishing is best-effort: a broker failure never fails the request.
func publishAuthEvent(ctx context.Context, w KafkaWriter, userID uuid.UUID, email, action string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action)
		return
	}

	ev := models.AuthEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		Email:     email,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal auth event", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.UserID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish auth event", "event_id", ev.EventID, "action", action, "error", err)
	} else {
		logger.Log.Infow("auth event published", "event_id", ev.EventID, "action", action)
	}
}
