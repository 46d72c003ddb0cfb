package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"kingroad/internal/config"
	"kingroad/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient поднимает httptest-сервер и клиент поверх него
func newTestClient(handler http.Handler) (StoreAPI, *httptest.Server) {
	server := httptest.NewServer(handler)
	api := New(config.StoreAPIConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return api, server
}

func TestStoreAPI_ValidateCart_Success(t *testing.T) {
	var calls atomic.Int32
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		// Проверяем контракт запроса
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/validate", r.URL.Path)
		assert.Equal(t, "sess-1", r.Header.Get("X-Session-ID"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"valid": true},
		})
	}))
	defer server.Close()

	result, err := api.ValidateCart(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStoreAPI_ValidateCart_InvalidCart(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"valid":  false,
				"errors": []string{"Item out of stock", "Price changed"},
			},
		})
	}))
	defer server.Close()

	result, err := api.ValidateCart(context.Background(), "sess-1")

	// Невалидная корзина - это успешный ответ с valid=false,
	// причины передаются без изменений
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Item out of stock", "Price changed"}, result.Errors)
}

func TestStoreAPI_CreateOrder_Success(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		// Позиции заказа не содержат цен
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		items := payload["items"].([]interface{})
		first := items[0].(map[string]interface{})
		assert.NotContains(t, first, "unit_price")
		assert.Equal(t, "p1", first["product_id"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 42, "number": "KR-000042"},
		})
	}))
	defer server.Close()

	payload := &model.OrderPayload{
		Name:          "Ali",
		Phone:         "501234567",
		PaymentMethod: model.PaymentCashOnDelivery,
		Items:         []model.OrderItem{{ProductID: "p1", Quantity: 2}},
	}
	created, err := api.CreateOrder(context.Background(), "sess-1", payload)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "KR-000042", created.Number)
}

func TestStoreAPI_CreateOrder_ServerError_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "internal error",
		})
	}))
	defer server.Close()

	created, err := api.CreateOrder(context.Background(), "sess-1", &model.OrderPayload{})

	// Сбой не повторяется: ровно один запрос
	assert.Nil(t, created)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "internal error", apiErr.Message)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStoreAPI_CreateOrder_EnvelopeFailure(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 OK, но success=false в конверте - тоже ошибка
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "cart is empty",
		})
	}))
	defer server.Close()

	created, err := api.CreateOrder(context.Background(), "sess-1", &model.OrderPayload{})

	assert.Nil(t, created)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "cart is empty", apiErr.Message)
}

func TestStoreAPI_CreatePaymentSession(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/session", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(42), body["order_id"])
		assert.Equal(t, "http://shop.test/success", body["success_url"])
		assert.Equal(t, "http://shop.test/cancel", body["cancel_url"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"checkout_url": "https://pay.test/session/abc"},
		})
	}))
	defer server.Close()

	checkoutURL, err := api.CreatePaymentSession(context.Background(), 42, "http://shop.test/success", "http://shop.test/cancel")

	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/session/abc", checkoutURL)
}

func TestStoreAPI_CreatePaymentSession_EmptyURL(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{},
		})
	}))
	defer server.Close()

	checkoutURL, err := api.CreatePaymentSession(context.Background(), 42, "s", "c")

	assert.Empty(t, checkoutURL)
	assert.Error(t, err)
}

func TestStoreAPI_GetOrderByNumber(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders/KR-000042", r.URL.Path)
		assert.Equal(t, "501234567", r.URL.Query().Get("phone"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 42, "number": "KR-000042", "phone": "501234567", "status": "paid"},
		})
	}))
	defer server.Close()

	order, err := api.GetOrderByNumber(context.Background(), "KR-000042", "501234567")

	require.NoError(t, err)
	assert.Equal(t, "KR-000042", order.Number)
	assert.Equal(t, "paid", order.Status)
}

func TestStoreAPI_ClearCart(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "sess-1", r.Header.Get("X-Session-ID"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	assert.NoError(t, api.ClearCart(context.Background(), "sess-1"))
}

func TestStoreAPI_NetworkError(t *testing.T) {
	api, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Сервер недоступен

	err := api.ClearCart(context.Background(), "sess-1")

	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
