package generator

import (
	"fmt"
	"time"

	"kingroad/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// NewDraft создает и возвращает один полностью случайный черновик заказа.
// Эта функция инкапсулирует всю логику генерации тестовых данных.
func NewDraft() model.CheckoutDraft {
	// Инициализируем gofakeit, если это еще не сделано (на всякий случай)
	gofakeit.Seed(0)

	subtotal := 0

	// 1. Генерируем позиции корзины
	var items []model.CartItem
	itemCount := gofakeit.Number(1, 4) // От 1 до 4 позиций

	for i := 0; i < itemCount; i++ {
		price := gofakeit.Number(50, 2500)
		qty := gofakeit.Number(1, 3)
		subtotal += price * qty

		item := model.CartItem{
			ProductID: uuid.New().String(),
			Quantity:  qty,
			UnitPrice: price,
			Name:      gofakeit.CarMaker() + " " + gofakeit.ProductName(),
		}
		items = append(items, item)
	}

	// 2. Генерируем адрес, согласованный с типом
	kind := model.AddressKind(gofakeit.RandomString([]string{"house", "apartment", "office"}))
	address := model.Address{
		Kind:   kind,
		Street: gofakeit.Street(),
	}
	switch kind {
	case model.AddressKindHouse:
		address.HouseNumber = fmt.Sprintf("%d", gofakeit.Number(1, 200))
	case model.AddressKindApartment:
		address.Building = gofakeit.RandomString([]string{"Al Noor Tower", "Marina Heights", "Golden Plaza"})
		address.Floor = fmt.Sprintf("%d", gofakeit.Number(1, 40))
		address.Apartment = fmt.Sprintf("%d", gofakeit.Number(1, 99))
	case model.AddressKindOffice:
		address.Building = gofakeit.RandomString([]string{"Business Bay Center", "City Gate", "Al Reem Office Park"})
		address.Floor = fmt.Sprintf("%d", gofakeit.Number(1, 25))
		address.Office = fmt.Sprintf("%d", gofakeit.Number(100, 999))
	}

	// 3. Собираем финальный черновик
	deliveryFee := gofakeit.Number(15, 60)
	draft := model.CheckoutDraft{
		SessionID:   uuid.New().String(),
		Items:       items,
		Name:        gofakeit.Name(),
		Phone:       fmt.Sprintf("5%08d", gofakeit.Number(0, 99999999)), // Локальный формат: 5XXXXXXXX
		Email:       gofakeit.Email(),
		Address:     address,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
		CreatedAt:   time.Now().Add(-time.Duration(gofakeit.Number(1, 30)) * time.Minute),
	}

	return draft
}

// NewConfirmation создает случайное подтверждение оплаты для сессии.
func NewConfirmation(sessionID string) model.PaymentConfirmation {
	gofakeit.Seed(0)

	orderID := int64(gofakeit.Number(1000, 999999))
	return model.PaymentConfirmation{
		OrderID:     orderID,
		OrderNumber: fmt.Sprintf("KR-%06d", orderID),
		SessionID:   sessionID,
		ProviderRef: uuid.New().String(),
		PaidAt:      time.Now().Add(-time.Duration(gofakeit.Number(1, 10)) * time.Minute),
	}
}
