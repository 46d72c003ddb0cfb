package model

import "time"

// PaymentMethod - способ оплаты, выбранный пользователем.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentCard           PaymentMethod = "card"
	PaymentApplePay       PaymentMethod = "apple_pay"
)

// RequiresRedirect сообщает, нужен ли редирект на внешнюю платежную страницу.
func (m PaymentMethod) RequiresRedirect() bool {
	return m == PaymentCard || m == PaymentApplePay
}

// Valid проверяет, что способ оплаты известен.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentApplePay:
		return true
	}
	return false
}

// CheckoutState - состояние конечного автомата отправки заказа.
type CheckoutState string

const (
	StateIdle                  CheckoutState = "idle"
	StateValidating            CheckoutState = "validating"
	StateCreatingOrder         CheckoutState = "creating_order"
	StateCashComplete          CheckoutState = "cash_complete"
	StateAwaitingHostedPayment CheckoutState = "awaiting_hosted_payment"
)

// IsTerminal сообщает, является ли состояние конечным для успешной отправки.
func (s CheckoutState) IsTerminal() bool {
	return s == StateCashComplete || s == StateAwaitingHostedPayment
}

func (s CheckoutState) String() string {
	return string(s)
}

// OrderItem - позиция заказа в отправляемом на сервер виде.
// Намеренно без цены: сервер пересчитывает стоимость сам,
// клиентские цены не являются доверенными.
type OrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderPayload - плоский запрос создания заказа, собираемый из черновика.
type OrderPayload struct {
	Name          string        `json:"name" validate:"required"`
	Phone         string        `json:"phone" validate:"required"`
	Email         string        `json:"email,omitempty" validate:"omitempty,email"`
	Address       Address       `json:"address" validate:"required"`
	DeliveryFee   int           `json:"delivery_fee" validate:"gte=0"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required"`
	Items         []OrderItem   `json:"items" validate:"required,min=1,dive"`
}

// Order - заказ со стороны сервера. Для этого сервиса он read-only:
// идентификатор и номер приходят из ответа API создания заказа.
type Order struct {
	ID     int64  `json:"id" validate:"required"`
	Number string `json:"number" validate:"required"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// PaymentConfirmation - событие подтверждения оплаты из Kafka.
// Публикуется вебхук-коллаборатором платежного провайдера.
type PaymentConfirmation struct {
	OrderID     int64     `json:"order_id" validate:"required"`
	OrderNumber string    `json:"order_number" validate:"required"`
	SessionID   string    `json:"session_id" validate:"required"`
	ProviderRef string    `json:"provider_ref" validate:"required"`
	PaidAt      time.Time `json:"paid_at" validate:"required"`
}
