package model

import "time"

// DraftTTL - максимальный возраст черновика с момента создания.
// Просроченный черновик отклоняется независимо от содержимого.
const DraftTTL = 3600 * time.Second

// PendingMarkerWindow - окно, в течение которого маркер незавершенной
// оплаты считается актуальным для информационного сообщения.
const PendingMarkerWindow = 30 * time.Minute

// AddressKind - тип адреса доставки. Каждый тип требует свой набор полей.
type AddressKind string

const (
	AddressKindHouse     AddressKind = "house"
	AddressKindApartment AddressKind = "apartment"
	AddressKindOffice    AddressKind = "office"
)

// Address - структурированный адрес доставки, дискриминированный по Kind.
// Теги required_if описывают обязательные поля для каждого типа.
type Address struct {
	Kind        AddressKind `json:"kind" db:"kind" validate:"required,oneof=house apartment office"`
	Street      string      `json:"street" db:"street" validate:"required"`
	HouseNumber string      `json:"house_number,omitempty" db:"house_number" validate:"required_if=Kind house"`
	Building    string      `json:"building,omitempty" db:"building" validate:"required_if=Kind apartment,required_if=Kind office"`
	Floor       string      `json:"floor,omitempty" db:"floor" validate:"required_if=Kind apartment,required_if=Kind office"`
	Apartment   string      `json:"apartment,omitempty" db:"apartment" validate:"required_if=Kind apartment"`
	Office      string      `json:"office,omitempty" db:"office" validate:"required_if=Kind office"`
}

// CartItem - позиция корзины внутри черновика. Цена здесь только для
// отображения: в заказ она не передается, сервер пересчитывает суммы сам.
type CartItem struct {
	ProductID string `json:"product_id" db:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" db:"quantity" validate:"required,gt=0"`
	UnitPrice int    `json:"unit_price" db:"unit_price" validate:"gte=0"`
	Name      string `json:"name" db:"name"`
}

// CheckoutDraft - клиентский снимок оформляемого заказа до отправки.
// Живет в двухъярусном хранилище (durable + session) и переживает
// редирект на внешнюю платежную страницу.
type CheckoutDraft struct {
	SessionID   string     `json:"session_id" db:"session_id" validate:"required"`
	Items       []CartItem `json:"items" db:"items" validate:"required,min=1,dive"`
	Name        string     `json:"name" db:"name" validate:"required"`
	Phone       string     `json:"phone" db:"phone" validate:"required"`
	Email       string     `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Address     Address    `json:"address" db:"address" validate:"required"`
	Subtotal    int        `json:"subtotal" db:"subtotal" validate:"gte=0"`
	DeliveryFee int        `json:"delivery_fee" db:"delivery_fee" validate:"gte=0"`
	Total       int        `json:"total" db:"total" validate:"gte=0"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" validate:"required"`
}

// ExpiredAt сообщает, просрочен ли черновик на момент now.
func (d *CheckoutDraft) ExpiredAt(now time.Time) bool {
	return now.Sub(d.CreatedAt) > DraftTTL
}

// PendingPaymentMarker - "хлебная крошка" о том, что был редирект на
// платежную страницу, но подтверждение оплаты еще не получено.
// Маркер не очищается автоматически, он истекает вместе с TTL сессии.
type PendingPaymentMarker struct {
	OrderID   int64     `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Advisory сообщает, нужно ли показывать информационное сообщение:
// маркер моложе 30 минут. Сообщение не блокирует дальнейшие действия.
func (m *PendingPaymentMarker) Advisory(now time.Time) bool {
	return now.Sub(m.CreatedAt) < PendingMarkerWindow
}
