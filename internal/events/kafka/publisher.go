package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
)

// Publisher is an audit sink that writes each record to a Kafka topic, keyed by action.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) Create(ctx context.Context, l models.AuditLog) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(l.Action),
		Value: data,
	})
}

func (p *Publisher) Close() error { return p.writer.Close() }

var _ repository.AuditLogs = (*Publisher)(nil)
