package storage

import (
	"context"
	"testing"
	"time"

	"kingroad/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis поднимает miniredis и возвращает сессионный ярус поверх него
func setupTestRedis(t *testing.T) (*redisSessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSession(client, time.Hour), mr
}

func TestRedisSession_DraftRoundtrip(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	draft := &model.CheckoutDraft{
		SessionID: "sess-1",
		Items:     []model.CartItem{{ProductID: "p1", Quantity: 2, UnitPrice: 50, Name: "Brake Pad"}},
		Name:      "Ali",
		Phone:     "501234567",
		Address: model.Address{
			Kind:        model.AddressKindHouse,
			Street:      "Al Wasl Road",
			HouseNumber: "12",
		},
		Subtotal:    100,
		DeliveryFee: 20,
		Total:       120,
		CreatedAt:   time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.SaveDraft(ctx, draft))

	got, err := store.GetDraft(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestRedisSession_DraftNotFound(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.GetDraft(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisSession_DraftTTL(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	draft := &model.CheckoutDraft{SessionID: "sess-1", Phone: "501234567"}
	require.NoError(t, store.SaveDraft(ctx, draft))

	// Копия черновика живет ровно TTL сессии
	mr.FastForward(time.Hour + time.Second)

	got, err := store.GetDraft(ctx, "sess-1")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisSession_DeleteDraft(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDraft(ctx, &model.CheckoutDraft{SessionID: "sess-1"}))
	require.NoError(t, store.DeleteDraft(ctx, "sess-1"))

	_, err := store.GetDraft(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// Повторное удаление отсутствующего ключа не ошибка
	assert.NoError(t, store.DeleteDraft(ctx, "sess-1"))
}

func TestRedisSession_MarkerRoundtrip(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	createdAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	marker := &model.PendingPaymentMarker{OrderID: 42, CreatedAt: createdAt}

	require.NoError(t, store.SavePendingMarker(ctx, "sess-1", marker))

	// Маркер хранится двумя строковыми ключами
	orderID, err := mr.Get("checkout:pending_order:sess-1")
	require.NoError(t, err)
	assert.Equal(t, "42", orderID)

	millis, err := mr.Get("checkout:pending_time:sess-1")
	require.NoError(t, err)
	assert.Equal(t, "1749988800000", millis)

	got, err := store.GetPendingMarker(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.OrderID)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestRedisSession_MarkerNotFound(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.GetPendingMarker(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrMarkerNotFound)
}

func TestRedisSession_MarkerCorruptedOrderID(t *testing.T) {
	store, mr := setupTestRedis(t)

	// Испорченный id заказа дает ошибку, а не нулевой маркер
	require.NoError(t, mr.Set("checkout:pending_order:sess-1", "not-a-number"))
	require.NoError(t, mr.Set("checkout:pending_time:sess-1", "1749988800000"))

	got, err := store.GetPendingMarker(context.Background(), "sess-1")

	assert.Nil(t, got)
	assert.Error(t, err)
}
