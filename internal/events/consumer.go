package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"kingroad/internal/cache"
	"kingroad/internal/client"
	"kingroad/internal/config"
	"kingroad/internal/metrics"
	"kingroad/internal/model"
	"kingroad/internal/storage"
	"kingroad/internal/validator"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Reader определяет используемую часть kafka.Reader.
// Интерфейс нужен, чтобы тесты могли подставить заглушку.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает подтверждения оплаты из Kafka и выполняет отложенную
// очистку карточного пути: удаляет черновик из обоих ярусов, очищает
// серверную корзину и кэширует подтвержденный заказ. Это тот самый
// "коллаборатор страницы успеха", который карточный путь оставляет
// после редиректа.
type Consumer struct {
	reader     Reader
	dlqWriter  *kafka.Writer // Продюсер для отправки "битых" сообщений в DLQ
	drafts     storage.DraftRepository
	api        client.StoreAPI
	cache      cache.Cache
	tracer     trace.Tracer // Для трассировки
	maxRetries int          // Количество попыток очистки для временных ошибок
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig, drafts storage.DraftRepository, api client.StoreAPI, orderCache cache.Cache) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.ConfirmationsTopic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты будут выполняться вручную после успешной обработки.
	})

	// Продюсер для DLQ
	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Consumer{
		reader:     reader,
		dlqWriter:  dlqWriter,
		drafts:     drafts,
		api:        api,
		cache:      orderCache,
		tracer:     otel.Tracer("payment-confirmation-consumer"),
		maxRetries: 3, // 3 попытки на очистку
	}
}

// Run запускает цикл чтения подтверждений оплаты.
func (c *Consumer) Run(ctx context.Context) {
	log.Println("Консюмер подтверждений оплаты запущен...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("Консюмер подтверждений оплаты останавливается.")
			return
		default:
			// FetchMessage используется для ручного контроля коммитов
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
				continue
			}

			// Обрабатываем сообщение
			procErr := c.processMessage(ctx, msg)

			if procErr != nil {
				// Ошибка = нужна повторная обработка.
				// Мы НЕ коммитим сообщение, Kafka доставит его повторно.
				log.Printf("Ошибка обработки подтверждения (ключ: %s): %v. Не коммитим, ждем retry.", string(msg.Key), procErr)
			} else {
				// nil = обработка успешна (в т.ч. уход в DLQ).
				// Коммитим, чтобы Kafka не присылала его снова.
				if err := c.reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("Ошибка коммита сообщения: %v", err)
				}
			}
		}
	}
}

// processMessage выполняет десериализацию, валидацию и отложенную очистку.
// Возвращает nil, если обработка успешна или сообщение ушло в DLQ.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var conf model.PaymentConfirmation
	if err := json.Unmarshal(msg.Value, &conf); err != nil {
		log.Printf("Невалидное JSON-сообщение, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil // Коммитим (не ретраим "битый" JSON)
	}

	// Валидация данных
	if err := validator.ValidateStruct(&conf); err != nil {
		log.Printf("Ошибка валидации подтверждения для заказа %s, отправка в DLQ: %v", conf.OrderNumber, err)
		c.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return nil // Коммитим (не ретраим невалидные данные)
	}

	// Очистка с внутренним Retry-циклом. Этот цикл относится только к
	// обработке событий: сам поток оформления работает без ретраев.
	var cleanErr error
	for i := 0; i < c.maxRetries; i++ {
		cleanErr = c.cleanup(ctx, &conf)
		if cleanErr == nil {
			break // Успешно
		}
		log.Printf("Ошибка очистки после оплаты (попытка %d/%d): %v", i+1, c.maxRetries, cleanErr)
		time.Sleep(time.Second * time.Duration(i+1)) // Простой backoff
	}

	// Если после всех попыток ошибка осталась
	if cleanErr != nil {
		log.Printf("Не удалось выполнить очистку для заказа %s после %d попыток, отправка в DLQ.", conf.OrderNumber, c.maxRetries)
		c.sendToDLQ(ctx, msg, "cleanup_error", cleanErr)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_cleanup_error").Inc()
		return nil // Коммитим (не ретраим, т.к. исчерпали попытки)
	}

	// Кэшируем подтвержденный заказ для гостевого поиска
	order := &model.Order{ID: conf.OrderID, Number: conf.OrderNumber, Status: "paid"}
	c.cache.Set(ctx, conf.OrderNumber, order)
	log.Printf("Оплата заказа %s подтверждена, очистка выполнена.", conf.OrderNumber)
	metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()

	return nil
}

// cleanup выполняет отложенную очистку карточного пути: черновик
// удаляется из обоих ярусов, серверная корзина очищается.
func (c *Consumer) cleanup(ctx context.Context, conf *model.PaymentConfirmation) error {
	if err := c.drafts.Delete(ctx, conf.SessionID); err != nil {
		return err
	}
	return c.api.ClearCart(ctx, conf.SessionID)
}

// sendToDLQ отправляет "битое" сообщение в DLQ топик.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	// Отправляем сообщение в DLQ с доп. заголовками об ошибке
	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить сообщение %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
	} else {
		log.Printf("Сообщение %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
