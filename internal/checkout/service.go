package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"kingroad/internal/client"
	"kingroad/internal/clock"
	"kingroad/internal/config"
	"kingroad/internal/events"
	"kingroad/internal/metrics"
	"kingroad/internal/model"
	"kingroad/internal/storage"
	"kingroad/internal/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// SubmitResult - итог прохода конечного автомата отправки заказа.
// RedirectURL заполнен только для состояния awaiting_hosted_payment.
type SubmitResult struct {
	State       model.CheckoutState `json:"state"`
	OrderID     int64               `json:"order_id,omitempty"`
	OrderNumber string              `json:"order_number,omitempty"`
	Phone       string              `json:"phone,omitempty"`
	RedirectURL string              `json:"redirect_url,omitempty"`
}

// Advisory - информационное сообщение о незавершенной оплате.
// Оно не блокирует действия пользователя и не очищает маркер.
type Advisory struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// Service - оркестратор оформления заказа. Каждый вызов Submit проходит
// конечный автомат idle -> validating -> creating_order ->
// {cash_complete | awaiting_hosted_payment}; любая ошибка возвращает
// автомат в idle, повторная попытка всегда инициируется пользователем.
type Service struct {
	drafts     storage.DraftRepository
	markers    storage.MarkerStore
	api        client.StoreAPI
	publisher  events.Publisher
	clk        clock.Clock
	successURL string
	cancelURL  string
	tracer     trace.Tracer // Для трассировки
}

// NewService собирает оркестратор оформления заказа.
func NewService(drafts storage.DraftRepository, markers storage.MarkerStore, api client.StoreAPI, publisher events.Publisher, clk clock.Clock, cfg config.StoreAPIConfig) *Service {
	return &Service{
		drafts:     drafts,
		markers:    markers,
		api:        api,
		publisher:  publisher,
		clk:        clk,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		tracer:     otel.Tracer("checkout-service"), // Инициализация трейсера
	}
}

// SaveDraft проверяет черновик по тегам и сохраняет его в durable-ярус.
// Момент создания фиксируется здесь, если клиент его не передал.
func (s *Service) SaveDraft(ctx context.Context, draft *model.CheckoutDraft) error {
	ctx, span := s.tracer.Start(ctx, "Checkout.SaveDraft")
	defer span.End()

	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = s.clk.Now()
	}

	if err := validator.ValidateStruct(draft); err != nil {
		metrics.DraftValidationFailures.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: %v", ErrDraftInvalid, err)
	}

	return s.drafts.Save(ctx, draft)
}

// LoadDraft реализует data bridge: чтение из durable-яруса с фолбэком
// на сессионный, затем проверка содержимого и возраста. Любая ошибка
// терминальна для этой загрузки - ретраев нет, пользователя возвращают
// на страницу корзины.
func (s *Service) LoadDraft(ctx context.Context, sessionID string) (*model.CheckoutDraft, error) {
	ctx, span := s.tracer.Start(ctx, "Checkout.LoadDraft")
	defer span.End()

	draft, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrDraftNotFound) {
			metrics.DraftValidationFailures.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// validateDraft проверяет инварианты черновика перед отправкой:
// непустая корзина, тип адреса, имя, телефон, возраст не старше 3600 секунд.
func (s *Service) validateDraft(draft *model.CheckoutDraft) error {
	if len(draft.Items) == 0 || draft.Address.Kind == "" || draft.Name == "" || draft.Phone == "" {
		metrics.DraftValidationFailures.WithLabelValues("invalid").Inc()
		return ErrDraftInvalid
	}

	// Просрочка проверяется последней: просроченный, но целый черновик
	// отклоняется именно как просроченный.
	if draft.ExpiredAt(s.clk.Now()) {
		metrics.DraftValidationFailures.WithLabelValues("expired").Inc()
		return ErrDraftExpired
	}

	return nil
}

// Submit проводит заказ через конечный автомат отправки.
// Порядок строго последовательный: проверка корзины обязана завершиться
// успехом до создания заказа, создание заказа - до запроса платежной
// сессии. Каждый сетевой вызов выполняется ровно один раз.
func (s *Service) Submit(ctx context.Context, sessionID string, method model.PaymentMethod) (*SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "Checkout.Submit")
	defer span.End()

	// idle: без выбранного способа оплаты автомат не стартует
	if !method.Valid() {
		return nil, ErrNoPaymentMethod
	}

	// Просроченный или некорректный черновик отклоняется до любых
	// сетевых вызовов.
	draft, err := s.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// idle -> validating
	validation, err := s.api.ValidateCart(ctx, sessionID)
	if err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("order_error").Inc()
		return nil, fmt.Errorf("проверка корзины не выполнена: %w", err)
	}
	if !validation.Valid {
		metrics.CheckoutSubmissions.WithLabelValues("cart_invalid").Inc()
		return nil, &CartInvalidError{Reasons: validation.Errors}
	}

	// validating -> creating_order
	created, err := s.api.CreateOrder(ctx, sessionID, buildOrderPayload(draft, method))
	if err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("order_error").Inc()
		return nil, fmt.Errorf("заказ не создан: %w", err)
	}

	if method.RequiresRedirect() {
		return s.dispatchHostedPayment(ctx, sessionID, draft, created, method)
	}
	return s.completeCash(ctx, sessionID, draft, created, method)
}

// completeCash завершает наличный путь: корзина и durable-черновик
// очищаются ровно один раз, маркер оплаты не пишется. Подтверждение
// ищется по номеру заказа и телефону (гостевой поиск).
func (s *Service) completeCash(ctx context.Context, sessionID string, draft *model.CheckoutDraft, created *client.OrderCreated, method model.PaymentMethod) (*SubmitResult, error) {
	if err := s.api.ClearCart(ctx, sessionID); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("order_error").Inc()
		return nil, fmt.Errorf("корзина не очищена: %w", err)
	}
	if err := s.drafts.Delete(ctx, sessionID); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("order_error").Inc()
		return nil, fmt.Errorf("черновик не удален: %w", err)
	}

	s.publishEvent(ctx, events.TypeOrderCreated, sessionID, created, method)
	metrics.CheckoutSubmissions.WithLabelValues("cash_complete").Inc()
	log.Printf("Заказ %s создан (наличные), сессия %s.", created.Number, sessionID)

	return &SubmitResult{
		State:       model.StateCashComplete,
		OrderID:     created.ID,
		OrderNumber: created.Number,
		Phone:       draft.Phone,
	}, nil
}

// dispatchHostedPayment ведет карточный путь: запрашивает URL платежной
// страницы, затем до возврата URL пишет сессионную копию черновика и
// маркер незавершенной оплаты. Корзина и черновик намеренно не
// очищаются - это сделает консюмер подтверждений после оплаты.
func (s *Service) dispatchHostedPayment(ctx context.Context, sessionID string, draft *model.CheckoutDraft, created *client.OrderCreated, method model.PaymentMethod) (*SubmitResult, error) {
	checkoutURL, err := s.api.CreatePaymentSession(ctx, created.ID, s.successURL, s.cancelURL)
	if err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("payment_session_error").Inc()
		return nil, fmt.Errorf("платежная сессия не создана: %w", err)
	}

	if err := s.drafts.SaveSessionCopy(ctx, draft); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("payment_session_error").Inc()
		return nil, fmt.Errorf("сессионная копия черновика не сохранена: %w", err)
	}

	marker := &model.PendingPaymentMarker{OrderID: created.ID, CreatedAt: s.clk.Now()}
	if err := s.markers.SavePendingMarker(ctx, sessionID, marker); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues("payment_session_error").Inc()
		return nil, fmt.Errorf("маркер оплаты не сохранен: %w", err)
	}

	s.publishEvent(ctx, events.TypePaymentRedirect, sessionID, created, method)
	metrics.CheckoutSubmissions.WithLabelValues("awaiting_hosted_payment").Inc()
	log.Printf("Заказ %s создан, редирект на платежную страницу, сессия %s.", created.Number, sessionID)

	return &SubmitResult{
		State:       model.StateAwaitingHostedPayment,
		OrderID:     created.ID,
		OrderNumber: created.Number,
		Phone:       draft.Phone,
		RedirectURL: checkoutURL,
	}, nil
}

// publishEvent отправляет событие жизненного цикла. Сбой публикации
// не прерывает оформление: событие вторично по отношению к заказу.
func (s *Service) publishEvent(ctx context.Context, eventType, sessionID string, created *client.OrderCreated, method model.PaymentMethod) {
	event := events.Event{
		Type:        eventType,
		SessionID:   sessionID,
		OrderID:     created.ID,
		OrderNumber: created.Number,
		Method:      string(method),
		At:          s.clk.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Ошибка публикации события %s для заказа %s: %v", eventType, created.Number, err)
	}
}

// CheckPendingPayment реализует сверку после возврата с платежной
// страницы: маркер моложе 30 минут дает информационное сообщение.
// Маркер не очищается и статус оплаты не проверяется - сообщение
// только советует повторить оплату или выбрать другой способ.
func (s *Service) CheckPendingPayment(ctx context.Context, sessionID string) (*Advisory, error) {
	ctx, span := s.tracer.Start(ctx, "Checkout.CheckPendingPayment")
	defer span.End()

	marker, err := s.markers.GetPendingMarker(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrMarkerNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !marker.Advisory(s.clk.Now()) {
		return nil, nil
	}

	return &Advisory{
		OrderID: marker.OrderID,
		Message: "Оплата заказа не была завершена. Попробуйте оплатить еще раз или выберите другой способ оплаты.",
	}, nil
}

// buildOrderPayload собирает плоский запрос создания заказа из черновика.
// Позиции сводятся к product_id и количеству: клиентские цены не
// передаются, сервер пересчитывает стоимость сам.
func buildOrderPayload(draft *model.CheckoutDraft, method model.PaymentMethod) *model.OrderPayload {
	items := make([]model.OrderItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &model.OrderPayload{
		Name:          draft.Name,
		Phone:         draft.Phone,
		Email:         draft.Email,
		Address:       draft.Address,
		DeliveryFee:   draft.DeliveryFee,
		PaymentMethod: method,
		Items:         items,
	}
}
