package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"kingroad/internal/config"
	"kingroad/internal/generator"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Simulator изображает вебхук платежного провайдера: периодически
// публикует подтверждения оплаты в Kafka, чтобы прогнать консюмер.
type Simulator struct {
	writer *kafka.Writer
}

// NewSimulator создает и настраивает новый экземпляр симулятора.
func NewSimulator(brokers []string, topic string) *Simulator {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Simulator{writer: writer}
}

// Run запускает бесконечный цикл отправки подтверждений.
func (s *Simulator) Run(ctx context.Context, interval time.Duration) {
	log.Println("Симулятор оплат запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Симулятор останавливается.")
			return
		case <-ticker.C:
			conf := generator.NewConfirmation(uuid.New().String())
			confBytes, err := json.Marshal(conf)
			if err != nil {
				log.Printf("Ошибка сериализации подтверждения: %v", err)
				continue
			}

			err = s.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(conf.SessionID),
				Value: confBytes,
			})

			if err != nil {
				log.Printf("Ошибка отправки сообщения: %v", err)
			} else {
				fmt.Printf("Отправлено подтверждение оплаты заказа %s\n", conf.OrderNumber)
			}
		}
	}
}

func (s *Simulator) Close() {
	if err := s.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer: %v", err)
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Get()
	simulator := NewSimulator(cfg.Kafka.Brokers, cfg.Kafka.ConfirmationsTopic)
	defer simulator.Close()

	simulator.Run(ctx, 2*time.Second)
}
