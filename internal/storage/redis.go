package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"kingroad/internal/metrics"
	"kingroad/internal/model"

	"github.com/redis/go-redis/v9"
)

// redisSessionStore - сессионный ярус хранения на Redis с TTL.
// Хранит копию черновика на время редиректа на платежную страницу
// и маркеры незавершенной оплаты. Раскладка ключей:
//
//	checkout:draft:<session_id>         - JSON черновика (копия для редиректа)
//	checkout:pending_order:<session_id> - id заказа строкой
//	checkout:pending_time:<session_id>  - метка времени в миллисекундах строкой
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSession создает сессионный ярус поверх переданного клиента Redis.
func NewRedisSession(client *redis.Client, ttl time.Duration) *redisSessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("checkout:draft:%s", sessionID)
}

func pendingOrderKey(sessionID string) string {
	return fmt.Sprintf("checkout:pending_order:%s", sessionID)
}

func pendingTimeKey(sessionID string) string {
	return fmt.Sprintf("checkout:pending_time:%s", sessionID)
}

// SaveDraft сохраняет копию черновика с TTL сессии.
func (r *redisSessionStore) SaveDraft(ctx context.Context, draft *model.CheckoutDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("ошибка сериализации черновика: %w", err)
	}

	if err := r.client.Set(ctx, draftKey(draft.SessionID), data, r.ttl).Err(); err != nil {
		metrics.StorageErrors.WithLabelValues("session", "save_draft").Inc()
		return fmt.Errorf("ошибка записи черновика в Redis: %w", err)
	}
	return nil
}

// GetDraft читает копию черновика из сессионного яруса.
func (r *redisSessionStore) GetDraft(ctx context.Context, sessionID string) (*model.CheckoutDraft, error) {
	data, err := r.client.Get(ctx, draftKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		metrics.StorageErrors.WithLabelValues("session", "get_draft").Inc()
		return nil, fmt.Errorf("ошибка чтения черновика из Redis: %w", err)
	}

	var draft model.CheckoutDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("ошибка десериализации черновика: %w", err)
	}

	return &draft, nil
}

// DeleteDraft удаляет копию черновика. Отсутствие ключа не ошибка.
func (r *redisSessionStore) DeleteDraft(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		metrics.StorageErrors.WithLabelValues("session", "delete_draft").Inc()
		return fmt.Errorf("ошибка удаления черновика из Redis: %w", err)
	}
	return nil
}

// SavePendingMarker пишет маркер незавершенной оплаты двумя ключами:
// id заказа и метка времени в миллисекундах, обе строками.
func (r *redisSessionStore) SavePendingMarker(ctx context.Context, sessionID string, marker *model.PendingPaymentMarker) error {
	orderID := strconv.FormatInt(marker.OrderID, 10)
	millis := strconv.FormatInt(marker.CreatedAt.UnixMilli(), 10)

	if err := r.client.Set(ctx, pendingOrderKey(sessionID), orderID, r.ttl).Err(); err != nil {
		metrics.StorageErrors.WithLabelValues("session", "save_marker").Inc()
		return fmt.Errorf("ошибка записи маркера оплаты: %w", err)
	}
	if err := r.client.Set(ctx, pendingTimeKey(sessionID), millis, r.ttl).Err(); err != nil {
		metrics.StorageErrors.WithLabelValues("session", "save_marker").Inc()
		return fmt.Errorf("ошибка записи времени маркера оплаты: %w", err)
	}
	return nil
}

// GetPendingMarker восстанавливает маркер из двух ключей.
func (r *redisSessionStore) GetPendingMarker(ctx context.Context, sessionID string) (*model.PendingPaymentMarker, error) {
	orderID, err := r.client.Get(ctx, pendingOrderKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMarkerNotFound
	}
	if err != nil {
		metrics.StorageErrors.WithLabelValues("session", "get_marker").Inc()
		return nil, fmt.Errorf("ошибка чтения маркера оплаты: %w", err)
	}

	millis, err := r.client.Get(ctx, pendingTimeKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMarkerNotFound
	}
	if err != nil {
		metrics.StorageErrors.WithLabelValues("session", "get_marker").Inc()
		return nil, fmt.Errorf("ошибка чтения времени маркера оплаты: %w", err)
	}

	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("некорректный id заказа в маркере: %w", err)
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("некорректная метка времени в маркере: %w", err)
	}

	return &model.PendingPaymentMarker{
		OrderID:   id,
		CreatedAt: time.UnixMilli(ms).UTC(),
	}, nil
}

// Close закрывает клиент Redis.
func (r *redisSessionStore) Close() error {
	return r.client.Close()
}
