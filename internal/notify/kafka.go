package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type notificationEvent struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
}

// KafkaSink publishes notification events to a Kafka topic, keyed by
// recipient so one recipient's notifications stay ordered.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  SplitBrokers(brokers),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		}),
	}
}

func (s *KafkaSink) Notify(ctx context.Context, recipientID, content string) error {
	payload, err := json.Marshal(notificationEvent{
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipientID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("appointment.booked.v1")},
		},
	})
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
