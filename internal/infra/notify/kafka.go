package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bikeshare-api/internal/pkg/config"
	"bikeshare-api/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Kind values routed by the notifier.
const (
	KindBookingConfirmation = "BOOKING_CONFIRMATION"
	KindConcernRaised       = "CONCERN_RAISED"
)

// KafkaNotifier publishes out-of-band messages: booking confirmations to the
// notifications topic and concern tickets to the operators' topic. Delivery
// is at-most-once from the caller's point of view; callers treat Dispatch
// errors as non-fatal.
type KafkaNotifier struct {
	notifications *kafka.Writer
	concerns      *kafka.Writer
}

func NewKafkaNotifier(cfg config.KafkaConfig) (*KafkaNotifier, func(), error) {
	brokers := cfg.BrokerList()
	if len(brokers) == 0 {
		return nil, nil, fmt.Errorf("at least one kafka broker is required")
	}

	n := &KafkaNotifier{
		notifications: newWriter(brokers, cfg.NotificationsTopic),
		concerns:      newWriter(brokers, cfg.ConcernsTopic),
	}

	cleanup := func() {
		_ = n.notifications.Close()
		_ = n.concerns.Close()
	}
	return n, cleanup, nil
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash by key for ordering
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}), // Silence default logger
	}
}

func (n *KafkaNotifier) Dispatch(ctx context.Context, kind string, recipient string, payload any) error {
	writer := n.writerFor(kind)
	if writer == nil {
		return errs.New("unknown notification kind: " + kind)
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	msg := kafka.Message{
		Key:   []byte(recipient),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(kind)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}

func (n *KafkaNotifier) writerFor(kind string) *kafka.Writer {
	switch kind {
	case KindBookingConfirmation:
		return n.notifications
	case KindConcernRaised:
		return n.concerns
	default:
		return nil
	}
}
