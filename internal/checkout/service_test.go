package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"kingroad/internal/client"
	client_mocks "kingroad/internal/client/mocks"
	"kingroad/internal/clock"
	"kingroad/internal/config"
	events_mocks "kingroad/internal/events/mocks"
	"kingroad/internal/model"
	"kingroad/internal/storage"
	storage_mocks "kingroad/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// testNow - фиксированный момент времени для всех тестов
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// helperTestDraft возвращает валидный черновик, созданный "только что"
func helperTestDraft() *model.CheckoutDraft {
	return &model.CheckoutDraft{
		SessionID: "sess-1",
		Items: []model.CartItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 50, Name: "Brake Pad"},
		},
		Name:  "Ali",
		Phone: "501234567",
		Address: model.Address{
			Kind:        model.AddressKindHouse,
			Street:      "Al Wasl Road",
			HouseNumber: "12",
		},
		Subtotal:    100,
		DeliveryFee: 20,
		Total:       120,
		CreatedAt:   testNow,
	}
}

// setupServiceAndMocks - хелпер для инициализации сервиса и моков
func setupServiceAndMocks(t *testing.T) (*gomock.Controller, *Service, *storage_mocks.MockDraftRepository, *storage_mocks.MockMarkerStore, *client_mocks.MockStoreAPI, *events_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	mockDrafts := storage_mocks.NewMockDraftRepository(ctrl)
	mockMarkers := storage_mocks.NewMockMarkerStore(ctrl)
	mockAPI := client_mocks.NewMockStoreAPI(ctrl)
	mockPublisher := events_mocks.NewMockPublisher(ctrl)

	cfg := config.StoreAPIConfig{
		SuccessURL: "http://shop.test/checkout/success",
		CancelURL:  "http://shop.test/checkout/confirm",
	}
	service := NewService(mockDrafts, mockMarkers, mockAPI, mockPublisher, clock.NewFixed(testNow), cfg)

	return ctrl, service, mockDrafts, mockMarkers, mockAPI, mockPublisher
}

func TestService_Submit_CashComplete(t *testing.T) {
	ctrl, service, mockDrafts, mockMarkers, mockAPI, mockPublisher := setupServiceAndMocks(t)
	defer ctrl.Finish()

	draft := helperTestDraft()
	created := &client.OrderCreated{ID: 42, Number: "KR-000042"}

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draft, nil)
	mockAPI.EXPECT().ValidateCart(gomock.Any(), "sess-1").Return(&client.CartValidation{Valid: true}, nil)

	// Проверяем, что в заказ уходят только product_id и количество - без цен
	mockAPI.EXPECT().CreateOrder(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload *model.OrderPayload) (*client.OrderCreated, error) {
			assert.Equal(t, []model.OrderItem{{ProductID: "p1", Quantity: 2}}, payload.Items)
			assert.Equal(t, model.PaymentCashOnDelivery, payload.PaymentMethod)
			assert.Equal(t, "Ali", payload.Name)
			assert.Equal(t, "501234567", payload.Phone)
			return created, nil
		})

	// Корзина и черновик очищаются ровно один раз
	mockAPI.EXPECT().ClearCart(gomock.Any(), "sess-1").Return(nil).Times(1)
	mockDrafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil).Times(1)
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	// Маркер оплаты на наличном пути не пишется никогда
	mockMarkers.EXPECT().SavePendingMarker(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockDrafts.EXPECT().SaveSessionCopy(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentCashOnDelivery)

	assert.NoError(t, err)
	assert.Equal(t, model.StateCashComplete, result.State)
	assert.Equal(t, "KR-000042", result.OrderNumber)
	assert.Equal(t, "501234567", result.Phone)
	assert.Empty(t, result.RedirectURL)
}

func TestService_Submit_HostedPayment(t *testing.T) {
	ctrl, service, mockDrafts, mockMarkers, mockAPI, mockPublisher := setupServiceAndMocks(t)
	defer ctrl.Finish()

	draft := helperTestDraft()
	created := &client.OrderCreated{ID: 77, Number: "KR-000077"}

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draft, nil)
	mockAPI.EXPECT().ValidateCart(gomock.Any(), "sess-1").Return(&client.CartValidation{Valid: true}, nil)
	mockAPI.EXPECT().CreateOrder(gomock.Any(), "sess-1", gomock.Any()).Return(created, nil)
	mockAPI.EXPECT().CreatePaymentSession(gomock.Any(), int64(77), "http://shop.test/checkout/success", "http://shop.test/checkout/confirm").
		Return("https://pay.test/session/abc", nil)

	// Оба сессионных маркера пишутся до возврата URL редиректа
	mockDrafts.EXPECT().SaveSessionCopy(gomock.Any(), draft).Return(nil).Times(1)
	mockMarkers.EXPECT().SavePendingMarker(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, marker *model.PendingPaymentMarker) error {
			assert.Equal(t, int64(77), marker.OrderID)
			assert.Equal(t, testNow, marker.CreatedAt)
			return nil
		})
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	// Корзина и черновик до навигации НЕ очищаются
	mockAPI.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Times(0)
	mockDrafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentCard)

	assert.NoError(t, err)
	assert.Equal(t, model.StateAwaitingHostedPayment, result.State)
	assert.Equal(t, "https://pay.test/session/abc", result.RedirectURL)
}

func TestService_Submit_ExpiredDraft(t *testing.T) {
	ctrl, service, mockDrafts, _, mockAPI, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Черновик двухчасовой давности
	draft := helperTestDraft()
	draft.CreatedAt = testNow.Add(-2 * time.Hour)

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draft, nil)

	// Никаких сетевых вызовов при просроченном черновике
	mockAPI.EXPECT().ValidateCart(gomock.Any(), gomock.Any()).Times(0)
	mockAPI.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentCashOnDelivery)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDraftExpired)
}

func TestService_Submit_EmptyCart(t *testing.T) {
	ctrl, service, mockDrafts, _, mockAPI, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Черновик без позиций отклоняется, даже если остальное валидно
	draft := helperTestDraft()
	draft.Items = nil

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draft, nil)
	mockAPI.EXPECT().ValidateCart(gomock.Any(), gomock.Any()).Times(0)
	mockAPI.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentCashOnDelivery)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDraftInvalid)
}

func TestService_Submit_CartInvalid(t *testing.T) {
	ctrl, service, mockDrafts, _, mockAPI, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(helperTestDraft(), nil)
	mockAPI.EXPECT().ValidateCart(gomock.Any(), "sess-1").
		Return(&client.CartValidation{Valid: false, Errors: []string{"Item out of stock"}}, nil)

	// Создание заказа не вызывается, если корзина не прошла проверку
	mockAPI.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentCard)

	assert.Nil(t, result)
	var cartErr *CartInvalidError
	assert.ErrorAs(t, err, &cartErr)
	assert.Equal(t, []string{"Item out of stock"}, cartErr.Reasons)
	assert.Contains(t, err.Error(), "Item out of stock")
}

func TestService_Submit_NoPaymentMethod(t *testing.T) {
	ctrl, service, _, _, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Без выбранного способа оплаты автомат не стартует
	result, err := service.Submit(context.Background(), "sess-1", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoPaymentMethod)
}

func TestService_Submit_OrderCreationError(t *testing.T) {
	ctrl, service, mockDrafts, _, mockAPI, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(helperTestDraft(), nil)
	mockAPI.EXPECT().ValidateCart(gomock.Any(), "sess-1").Return(&client.CartValidation{Valid: true}, nil)
	mockAPI.EXPECT().CreateOrder(gomock.Any(), "sess-1", gomock.Any()).Return(nil, errors.New("server error"))

	// При сбое ничего не очищается - автомат возвращается в idle
	mockAPI.EXPECT().ClearCart(gomock.Any(), gomock.Any()).Times(0)
	mockDrafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentCashOnDelivery)

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestService_Submit_PaymentSessionError(t *testing.T) {
	ctrl, service, mockDrafts, mockMarkers, mockAPI, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	created := &client.OrderCreated{ID: 77, Number: "KR-000077"}

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(helperTestDraft(), nil)
	mockAPI.EXPECT().ValidateCart(gomock.Any(), "sess-1").Return(&client.CartValidation{Valid: true}, nil)
	mockAPI.EXPECT().CreateOrder(gomock.Any(), "sess-1", gomock.Any()).Return(created, nil)
	mockAPI.EXPECT().CreatePaymentSession(gomock.Any(), int64(77), gomock.Any(), gomock.Any()).
		Return("", errors.New("provider unavailable"))

	// Маркеры не пишутся, если платежная сессия не создана
	mockDrafts.EXPECT().SaveSessionCopy(gomock.Any(), gomock.Any()).Times(0)
	mockMarkers.EXPECT().SavePendingMarker(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := service.Submit(context.Background(), "sess-1", model.PaymentApplePay)

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestService_LoadDraft_NotFound(t *testing.T) {
	ctrl, service, mockDrafts, _, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-x").Return(nil, storage.ErrDraftNotFound)

	draft, err := service.LoadDraft(context.Background(), "sess-x")

	assert.Nil(t, draft)
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}

func TestService_LoadDraft_MissingContact(t *testing.T) {
	ctrl, service, mockDrafts, _, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Черновик без телефона некорректен
	draft := helperTestDraft()
	draft.Phone = ""

	mockDrafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draft, nil)

	result, err := service.LoadDraft(context.Background(), "sess-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDraftInvalid)
}

func TestService_SaveDraft_SetsCreatedAt(t *testing.T) {
	ctrl, service, mockDrafts, _, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	draft := helperTestDraft()
	draft.CreatedAt = time.Time{}

	mockDrafts.EXPECT().Save(gomock.Any(), draft).Return(nil)

	err := service.SaveDraft(context.Background(), draft)

	assert.NoError(t, err)
	assert.Equal(t, testNow, draft.CreatedAt)
}

func TestService_SaveDraft_Invalid(t *testing.T) {
	ctrl, service, mockDrafts, _, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Для типа house обязателен номер дома
	draft := helperTestDraft()
	draft.Address.HouseNumber = ""

	mockDrafts.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	err := service.SaveDraft(context.Background(), draft)

	assert.ErrorIs(t, err, ErrDraftInvalid)
}

func TestService_CheckPendingPayment_FreshMarker(t *testing.T) {
	ctrl, service, _, mockMarkers, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Маркер десятиминутной давности - сообщение показывается
	marker := &model.PendingPaymentMarker{OrderID: 42, CreatedAt: testNow.Add(-10 * time.Minute)}
	mockMarkers.EXPECT().GetPendingMarker(gomock.Any(), "sess-1").Return(marker, nil)

	advisory, err := service.CheckPendingPayment(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.NotNil(t, advisory)
	assert.Equal(t, int64(42), advisory.OrderID)
	assert.NotEmpty(t, advisory.Message)
}

func TestService_CheckPendingPayment_StaleMarker(t *testing.T) {
	ctrl, service, _, mockMarkers, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	// Маркер старше 30 минут - сообщения нет, но маркер не очищается
	marker := &model.PendingPaymentMarker{OrderID: 42, CreatedAt: testNow.Add(-40 * time.Minute)}
	mockMarkers.EXPECT().GetPendingMarker(gomock.Any(), "sess-1").Return(marker, nil)

	advisory, err := service.CheckPendingPayment(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Nil(t, advisory)
}

func TestService_CheckPendingPayment_NoMarker(t *testing.T) {
	ctrl, service, _, mockMarkers, _, _ := setupServiceAndMocks(t)
	defer ctrl.Finish()

	mockMarkers.EXPECT().GetPendingMarker(gomock.Any(), "sess-1").Return(nil, storage.ErrMarkerNotFound)

	advisory, err := service.CheckPendingPayment(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.Nil(t, advisory)
}
