package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"kingroad/internal/checkout"
	"kingroad/internal/metrics"
	"kingroad/internal/model"
	"kingroad/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutHandler обрабатывает HTTP-запросы потока оформления заказа.
type CheckoutHandler struct {
	checkout checkout.CheckoutService // Используем интерфейс
}

// NewCheckoutHandler создает новый экземпляр CheckoutHandler.
func NewCheckoutHandler(service checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: service}
}

// sessionID извлекает идентификатор сессии из заголовка или query-параметра.
func sessionID(r *http.Request) string {
	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return r.URL.Query().Get("session_id")
}

// SaveDraft сохраняет черновик заказа в durable-ярус.
func (h *CheckoutHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	handlerName := "SaveDraft"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration() // Замеряем длительность запроса

	var draft model.CheckoutDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", handlerName)
		return
	}
	if sid := sessionID(r); sid != "" {
		draft.SessionID = sid
	}

	if err := h.checkout.SaveDraft(r.Context(), &draft); err != nil {
		if errors.Is(err, checkout.ErrDraftInvalid) {
			respondWithError(w, http.StatusUnprocessableEntity, "Черновик заказа некорректен", handlerName)
			return
		}
		log.Printf("Ошибка сохранения черновика: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось сохранить черновик", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, map[string]string{"session_id": draft.SessionID})
}

// LoadDraft реализует HTTP-контракт data bridge: при любой ошибке
// валидации клиент получает подсказку вернуться на страницу корзины.
func (h *CheckoutHandler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	handlerName := "LoadDraft"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration() // Замеряем длительность запроса

	sid := sessionID(r)
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "Идентификатор сессии не указан", handlerName)
		return
	}

	draft, err := h.checkout.LoadDraft(r.Context(), sid)
	if err != nil {
		h.respondDraftError(w, err, handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, draft)
}

// respondDraftError переводит ошибки черновика в HTTP-статусы.
// Отсутствие, просрочка и некорректность - разные статусы, но один
// редирект: обратно в корзину.
func (h *CheckoutHandler) respondDraftError(w http.ResponseWriter, err error, handlerName string) {
	redirect := map[string]string{"redirect": "/cart"}

	switch {
	case errors.Is(err, storage.ErrDraftNotFound):
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "404").Inc()
		respondWithJSON(w, http.StatusNotFound, redirect)
	case errors.Is(err, checkout.ErrDraftExpired):
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "410").Inc()
		respondWithJSON(w, http.StatusGone, redirect)
	case errors.Is(err, checkout.ErrDraftInvalid):
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "422").Inc()
		respondWithJSON(w, http.StatusUnprocessableEntity, redirect)
	default:
		log.Printf("Ошибка загрузки черновика: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось загрузить черновик", handlerName)
	}
}

// submitRequest - тело запроса отправки заказа.
type submitRequest struct {
	PaymentMethod model.PaymentMethod `json:"payment_method"`
}

// Submit запускает конечный автомат отправки заказа.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	handlerName := "Submit"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration() // Замеряем длительность запроса

	sid := sessionID(r)
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "Идентификатор сессии не указан", handlerName)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", handlerName)
		return
	}

	result, err := h.checkout.Submit(r.Context(), sid, req.PaymentMethod)
	if err != nil {
		h.respondSubmitError(w, err, handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, result)
}

// respondSubmitError переводит ошибки отправки в HTTP-статусы.
// Ошибки корзины несут каждую серверную причину отдельно; сетевые
// ошибки дают общий ответ, и клиент может повторить отправку.
func (h *CheckoutHandler) respondSubmitError(w http.ResponseWriter, err error, handlerName string) {
	var cartErr *checkout.CartInvalidError

	switch {
	case errors.Is(err, checkout.ErrNoPaymentMethod):
		respondWithError(w, http.StatusBadRequest, "Способ оплаты не выбран", handlerName)
	case errors.As(err, &cartErr):
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "422").Inc()
		respondWithJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": cartErr.Reasons})
	case errors.Is(err, storage.ErrDraftNotFound), errors.Is(err, checkout.ErrDraftExpired), errors.Is(err, checkout.ErrDraftInvalid):
		h.respondDraftError(w, err, handlerName)
	default:
		log.Printf("Ошибка отправки заказа: %v", err)
		respondWithError(w, http.StatusBadGateway, "Не удалось отправить заказ. Попробуйте еще раз.", handlerName)
	}
}

// PendingPayment возвращает информационное сообщение о незавершенной
// оплате, если маркер моложе 30 минут.
func (h *CheckoutHandler) PendingPayment(w http.ResponseWriter, r *http.Request) {
	handlerName := "PendingPayment"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration() // Замеряем длительность запроса

	sid := sessionID(r)
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "Идентификатор сессии не указан", handlerName)
		return
	}

	advisory, err := h.checkout.CheckPendingPayment(r.Context(), sid)
	if err != nil {
		log.Printf("Ошибка проверки маркера оплаты: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось проверить статус оплаты", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	if advisory == nil {
		respondWithJSON(w, http.StatusOK, map[string]bool{"pending": false})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"pending":  true,
		"order_id": advisory.OrderID,
		"message":  advisory.Message,
	})
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(code)).Inc()
	http.Error(w, message, code)
}
