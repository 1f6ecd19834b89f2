package kafka

import (
	"context"

	"github.com/iwtcode/robotAdapter/internal/config"
	"github.com/iwtcode/robotAdapter/internal/interfaces"

	"github.com/segmentio/kafka-go"
)

type EventProducer struct {
	writer *kafka.Writer
}

// NewEventProducer создает продюсера событий действий и статуса.
// Подключение к брокеру ленивое: ошибки всплывают при первой отправке.
func NewEventProducer(cfg *config.AppConfig) (interfaces.KafkaService, error) {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	return &EventProducer{writer: writer}, nil
}

// Produce отправляет сообщение в Kafka.
func (p *EventProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka.
func (p *EventProducer) Close() error {
	return p.writer.Close()
}
