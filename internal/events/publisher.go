package events

import (
	"context"
	"encoding/json"
	"fmt"

	"kingroad/internal/config"

	"github.com/segmentio/kafka-go"
)

// kafkaPublisher публикует события оформления в Kafka.
type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher создает продюсер событий оформления.
func NewKafkaPublisher(cfg config.KafkaConfig) Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.CheckoutTopic,
		Balancer: &kafka.LeastBytes{},
	}
	return &kafkaPublisher{writer: writer}
}

// Publish отправляет событие. Ключ - идентификатор сессии, чтобы события
// одной сессии попадали в одну партицию и сохраняли порядок.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ошибка сериализации события: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("ошибка отправки события: %w", err)
	}
	return nil
}

// Close закрывает Kafka writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
