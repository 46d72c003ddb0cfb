package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"kingroad/internal/config"
	"kingroad/internal/metrics"
	"kingroad/internal/model"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=storeapi.go -destination=./mocks/storeapi_mock.go -package=mocks StoreAPI

// CartValidation - результат удаленной проверки корзины.
// Errors содержит человекочитаемые причины в порядке, выданном сервером.
type CartValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// OrderCreated - ответ API на создание заказа.
type OrderCreated struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

// StoreAPI определяет интерфейс удаленного REST API магазина.
// Политика вызовов: ровно одна попытка, без ретраев и без бэкоффа.
// Восстановление после сбоя всегда инициируется пользователем.
type StoreAPI interface {
	ValidateCart(ctx context.Context, sessionID string) (*CartValidation, error)
	CreateOrder(ctx context.Context, sessionID string, payload *model.OrderPayload) (*OrderCreated, error)
	CreatePaymentSession(ctx context.Context, orderID int64, successURL, cancelURL string) (string, error)
	GetOrderByNumber(ctx context.Context, number, phone string) (*model.Order, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// APIError - ошибка уровня API: не-2xx статус или success=false в конверте.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ошибка API магазина (%d): %s", e.StatusCode, e.Message)
}

// envelope - форма всех ответов API: {success, data, message}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// storeAPIClient - HTTP-клиент API магазина. Каждый вызов делает ровно
// один запрос; circuit breaker лишь отсекает вызовы при серии сбоев,
// но никогда не повторяет их.
type storeAPIClient struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	tracer  trace.Tracer // Для трассировки
}

// New создает клиент API магазина с otel-инструментированным транспортом.
func New(cfg config.StoreAPIConfig) StoreAPI {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name: "store-api",
	})

	return &storeAPIClient{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		breaker: breaker,
		tracer:  otel.Tracer("store-api-client"), // Инициализация трейсера
	}
}

// doJSON выполняет один запрос и раскрывает конверт ответа.
func (c *storeAPIClient) doJSON(ctx context.Context, method, path, sessionID string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.http.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("запрос к API магазина не выполнен: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("ошибка разбора конверта ответа: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return env.Data, nil
}

// ValidateCart проверяет актуальность серверной корзины (остатки, цены).
// Обязательный шлюз перед созданием заказа.
func (c *storeAPIClient) ValidateCart(ctx context.Context, sessionID string) (*CartValidation, error) {
	ctx, span := c.tracer.Start(ctx, "StoreAPI.ValidateCart")
	defer span.End()

	data, err := c.doJSON(ctx, http.MethodPost, "/cart/validate", sessionID, nil)
	if err != nil {
		metrics.StoreAPIErrors.WithLabelValues("validate_cart").Inc()
		return nil, fmt.Errorf("ошибка проверки корзины: %w", err)
	}

	var result CartValidation
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("ошибка разбора результата проверки корзины: %w", err)
	}

	return &result, nil
}

// CreateOrder отправляет финальный заказ. Сервер пересчитывает суммы сам,
// клиентские цены в payload не входят.
func (c *storeAPIClient) CreateOrder(ctx context.Context, sessionID string, payload *model.OrderPayload) (*OrderCreated, error) {
	ctx, span := c.tracer.Start(ctx, "StoreAPI.CreateOrder")
	defer span.End()

	data, err := c.doJSON(ctx, http.MethodPost, "/orders", sessionID, payload)
	if err != nil {
		metrics.StoreAPIErrors.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("ошибка создания заказа: %w", err)
	}

	var created OrderCreated
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа создания заказа: %w", err)
	}

	return &created, nil
}

// CreatePaymentSession запрашивает URL платежной страницы для заказа.
// Контракт редиректа: id заказа + success/cancel URL на входе,
// URL платежной страницы на выходе.
func (c *storeAPIClient) CreatePaymentSession(ctx context.Context, orderID int64, successURL, cancelURL string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "StoreAPI.CreatePaymentSession")
	defer span.End()

	body := map[string]interface{}{
		"order_id":    orderID,
		"success_url": successURL,
		"cancel_url":  cancelURL,
	}

	data, err := c.doJSON(ctx, http.MethodPost, "/payments/session", "", body)
	if err != nil {
		metrics.StoreAPIErrors.WithLabelValues("create_payment_session").Inc()
		return "", fmt.Errorf("ошибка создания платежной сессии: %w", err)
	}

	var resp struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("ошибка разбора ответа платежной сессии: %w", err)
	}
	if resp.CheckoutURL == "" {
		return "", &APIError{StatusCode: http.StatusBadGateway, Message: "пустой URL платежной страницы"}
	}

	return resp.CheckoutURL, nil
}

// GetOrderByNumber ищет заказ по номеру и телефону (гостевой поиск
// для страницы подтверждения).
func (c *storeAPIClient) GetOrderByNumber(ctx context.Context, number, phone string) (*model.Order, error) {
	ctx, span := c.tracer.Start(ctx, "StoreAPI.GetOrderByNumber")
	defer span.End()

	path := fmt.Sprintf("/orders/%s?phone=%s", url.PathEscape(number), url.QueryEscape(phone))
	data, err := c.doJSON(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		metrics.StoreAPIErrors.WithLabelValues("get_order").Inc()
		return nil, fmt.Errorf("ошибка поиска заказа: %w", err)
	}

	var order model.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("ошибка разбора заказа: %w", err)
	}

	return &order, nil
}

// ClearCart очищает серверную корзину после успешного создания заказа
// наличными или после подтверждения оплаты.
func (c *storeAPIClient) ClearCart(ctx context.Context, sessionID string) error {
	ctx, span := c.tracer.Start(ctx, "StoreAPI.ClearCart")
	defer span.End()

	if _, err := c.doJSON(ctx, http.MethodDelete, "/cart", sessionID, nil); err != nil {
		metrics.StoreAPIErrors.WithLabelValues("clear_cart").Inc()
		return fmt.Errorf("ошибка очистки корзины: %w", err)
	}
	return nil
}
