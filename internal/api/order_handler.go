package api

import (
	"log"
	"net/http"

	"kingroad/internal/cache"
	"kingroad/internal/client"
	"kingroad/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// OrderHandler обрабатывает гостевой поиск заказа по номеру и телефону.
type OrderHandler struct {
	api   client.StoreAPI // Используем интерфейс
	cache cache.Cache     // Используем интерфейс
}

// NewOrderHandler создает новый экземпляр OrderHandler.
func NewOrderHandler(api client.StoreAPI, orderCache cache.Cache) *OrderHandler {
	return &OrderHandler{api: api, cache: orderCache}
}

// GetByNumber ищет заказ по номеру сначала в кэше, затем через API магазина.
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	// Метрики и трассировка
	handlerName := "GetByNumber"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration() // Замеряем длительность запроса

	number := chi.URLParam(r, "orderNumber")
	if number == "" {
		respondWithError(w, http.StatusBadRequest, "Номер заказа не указан", handlerName)
		return
	}
	phone := r.URL.Query().Get("phone")

	// Поиск в кэше. Передаем контекст (r.Context()) для трейсинга.
	if order, found := h.cache.Get(r.Context(), number); found {
		log.Printf("КЭШ ХИТ: %s", number)
		metrics.CacheHits.Inc()
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
		respondWithJSON(w, http.StatusOK, order)
		return
	}

	// Поиск через API магазина
	log.Printf("КЭШ ПРОМАХ: %s. Запрос к API магазина.", number)
	metrics.CacheMisses.Inc()

	order, err := h.api.GetOrderByNumber(r.Context(), number, phone)
	if err != nil {
		log.Printf("Ошибка поиска заказа: %v", err)
		respondWithError(w, http.StatusNotFound, "Заказ не найден", handlerName)
		return
	}

	// Сохранение в кэш. Передаем контекст.
	h.cache.Set(r.Context(), number, order)
	log.Printf("Заказ %s добавлен в кэш.", number)

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, order)
}
