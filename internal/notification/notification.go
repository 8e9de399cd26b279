package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Message is a push notification addressed to a member or an owner.
type Message struct {
	UserID   uuid.UUID
	UserRole string
	Title    string
	Body     string
	Type     string
	Data     map[string]string
}

// Sender delivers a message to the user's devices. Delivery transport lives
// behind this interface; the scheduler only emits messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender writes notifications to the log instead of a push gateway.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log.With().Str("component", "notification").Logger()}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.Info().
		Str("user_id", msg.UserID.String()).
		Str("role", msg.UserRole).
		Str("type", msg.Type).
		Str("title", msg.Title).
		Msg(msg.Body)
	return nil
}
