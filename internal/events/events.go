package events

import (
	"context"
	"time"
)

//go:generate mockgen -source=events.go -destination=./mocks/publisher_mock.go -package=mocks Publisher

// Тип события жизненного цикла оформления заказа.
const (
	TypeOrderCreated    = "order_created"
	TypePaymentRedirect = "payment_redirect"
)

// Event - событие жизненного цикла оформления заказа.
// Публикуется в Kafka и потребляется админ-панелью.
type Event struct {
	Type        string    `json:"type"`
	SessionID   string    `json:"session_id"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Method      string    `json:"method"`
	At          time.Time `json:"at"`
}

// Publisher определяет интерфейс публикации событий оформления.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
