package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	cache_mocks "kingroad/internal/cache/mocks"
	client_mocks "kingroad/internal/client/mocks"
	"kingroad/internal/model"
	storage_mocks "kingroad/internal/storage/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.uber.org/mock/gomock"
)

type NoOpReader struct{}

func (r *NoOpReader) FetchMessage(context.Context) (kafka.Message, error) {
	return kafka.Message{}, nil
}
func (r *NoOpReader) CommitMessages(context.Context, ...kafka.Message) error {
	return nil
}
func (r *NoOpReader) Close() error { return nil }

// setupConsumerAndMocks - хелпер для инициализации консюмера и моков
func setupConsumerAndMocks(t *testing.T) (*gomock.Controller, *Consumer, *storage_mocks.MockDraftRepository, *client_mocks.MockStoreAPI, *cache_mocks.MockCache) {
	ctrl := gomock.NewController(t)
	mockDrafts := storage_mocks.NewMockDraftRepository(ctrl)
	mockAPI := client_mocks.NewMockStoreAPI(ctrl)
	mockCache := cache_mocks.NewMockCache(ctrl)

	// Используем NoOpReader
	consumer := &Consumer{
		reader:     &NoOpReader{},
		dlqWriter:  &kafka.Writer{}, // Инициализируем, чтобы избежать nil panic в тестах на DLQ
		drafts:     mockDrafts,
		api:        mockAPI,
		cache:      mockCache,
		tracer:     otel.Tracer("test-tracer"),
		maxRetries: 3, // Устанавливаем значение, как в NewConsumer
	}

	return ctrl, consumer, mockDrafts, mockAPI, mockCache
}

// helperTestConfirmation - валидное подтверждение оплаты для тестов
var helperTestConfirmation = model.PaymentConfirmation{
	OrderID:     42,
	OrderNumber: "KR-000042",
	SessionID:   "sess-1",
	ProviderRef: "pay_8f3b2c",
	PaidAt:      parseTime("2025-06-15T12:05:00Z"),
}

func parseTime(ts string) time.Time {
	t, _ := time.Parse(time.RFC3339, ts)
	return t
}

func TestConsumer_ProcessMessage_Success(t *testing.T) {
	ctrl, consumer, mockDrafts, mockAPI, mockCache := setupConsumerAndMocks(t)
	defer ctrl.Finish()

	confBytes, _ := json.Marshal(helperTestConfirmation)
	msg := kafka.Message{Value: confBytes}

	// 1. Ожидаем удаление черновика из обоих ярусов
	mockDrafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
	// 2. Ожидаем очистку серверной корзины
	mockAPI.EXPECT().ClearCart(gomock.Any(), "sess-1").Return(nil)
	// 3. Ожидаем кэширование оплаченного заказа по номеру
	mockCache.EXPECT().Set(gomock.Any(), "KR-000042", gomock.Any()).Do(
		func(_ context.Context, _ string, value interface{}) {
			order := value.(*model.Order)
			assert.Equal(t, int64(42), order.ID)
			assert.Equal(t, "paid", order.Status)
		})

	err := consumer.processMessage(context.Background(), msg)
	assert.NoError(t, err)
}

func TestConsumer_ProcessMessage_CleanupError(t *testing.T) {
	ctrl, consumer, mockDrafts, mockAPI, mockCache := setupConsumerAndMocks(t)
	defer ctrl.Finish()

	confBytes, _ := json.Marshal(helperTestConfirmation)
	msg := kafka.Message{Value: confBytes}
	storageErr := errors.New("database connection failed")

	consumer.maxRetries = 3

	mockDrafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(storageErr).Times(consumer.maxRetries)
	mockAPI.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Times(0)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := consumer.processMessage(context.Background(), msg)

	// Ошибка не должна быть возвращена, т.к. сообщение ушло в DLQ
	assert.NoError(t, err)
}

func TestConsumer_ProcessMessage_CleanupError_RetryLogic(t *testing.T) {
	ctrl, consumer, mockDrafts, mockAPI, mockCache := setupConsumerAndMocks(t)
	defer ctrl.Finish()

	confBytes, _ := json.Marshal(helperTestConfirmation)
	msg := kafka.Message{Value: confBytes}
	tempErr := errors.New("temp storage error")

	consumer.maxRetries = 3

	// 1. Ожидаем 2 неудачных вызова
	mockDrafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(tempErr).Times(2)
	// 2. Ожидаем 1 удачный вызов
	mockDrafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil).Times(1)
	mockAPI.EXPECT().ClearCart(gomock.Any(), "sess-1").Return(nil).Times(1)
	// 3. Ожидаем Set в кэш
	mockCache.EXPECT().Set(gomock.Any(), "KR-000042", gomock.Any()).Times(1)

	err := consumer.processMessage(context.Background(), msg)

	// Ошибки нет, т.к. ретрай удался
	assert.NoError(t, err)
}

func TestConsumer_ProcessMessage_BadJSON(t *testing.T) {
	ctrl, consumer, mockDrafts, mockAPI, mockCache := setupConsumerAndMocks(t)
	defer ctrl.Finish()

	msg := kafka.Message{Value: []byte("this is not json")}

	// Не ожидаем ни очистки, ни кэширования
	mockDrafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	mockAPI.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Times(0)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := consumer.processMessage(context.Background(), msg)

	// Ошибка не должна быть возвращена, т.к. это "poison pill"
	// Сообщение будет закоммичено (т.к. err == nil)
	assert.NoError(t, err)
}

func TestConsumer_ProcessMessage_ValidationError(t *testing.T) {
	ctrl, consumer, mockDrafts, mockAPI, mockCache := setupConsumerAndMocks(t)
	defer ctrl.Finish()

	// Создаем невалидное подтверждение (SessionID отсутствует)
	invalidConf := helperTestConfirmation
	invalidConf.SessionID = ""

	confBytes, _ := json.Marshal(invalidConf)
	msg := kafka.Message{Value: confBytes}

	// Не ожидаем ни очистки, ни кэширования
	mockDrafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	mockAPI.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Times(0)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := consumer.processMessage(context.Background(), msg)

	// Ошибка не должна быть возвращена, т.к. это "poison pill"
	assert.NoError(t, err)
}
