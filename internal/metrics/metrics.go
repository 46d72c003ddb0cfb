package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal - Счетчик HTTP-запросов
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"handler", "status"}, // Метки: хэндлер и http-статус
	)

	// HttpRequestDuration - Гистограмма длительности HTTP-запросов
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Длительность HTTP запросов",
		},
		[]string{"handler"}, // Метки: хэндлер
	)

	// CheckoutSubmissions - Счетчик попыток отправки заказа по исходам
	CheckoutSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Количество попыток отправки заказа",
		},
		[]string{"outcome"}, // Метки: "cash_complete", "awaiting_hosted_payment", "cart_invalid", "order_error", "payment_session_error"
	)

	// DraftValidationFailures - Счетчик отклоненных черновиков
	DraftValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_validation_failures_total",
			Help: "Количество отклоненных черновиков заказа",
		},
		[]string{"reason"}, // Метки: "not_found", "expired", "invalid"
	)

	// StoreAPIErrors - Счетчик ошибок удаленного API магазина
	StoreAPIErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_api_errors_total",
			Help: "Количество ошибок при вызовах API магазина",
		},
		[]string{"call"}, // Метки: "validate_cart", "create_order", "create_payment_session", "get_order", "clear_cart"
	)

	// StorageErrors - Счетчик ошибок хранилища черновиков
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_storage_errors_total",
			Help: "Количество ошибок при работе с хранилищем черновиков",
		},
		[]string{"tier", "operation"}, // Метки: ярус ("durable", "session") и операция
	)

	// CacheHits - Счетчик попаданий в кэш заказов
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_cache_hits_total",
			Help: "Количество попаданий в кэш заказов",
		},
	)

	// CacheMisses - Счетчик промахов кэша заказов
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_cache_misses_total",
			Help: "Количество промахов кэша заказов",
		},
	)

	// CacheSize - Датчик (Gauge) текущего размера кэша заказов
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_cache_size_items",
			Help: "Текущий размер кэша заказов в элементах",
		},
	)

	// CacheEvictions - Счетчик вытеснений из кэша (LRU)
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_cache_evictions_total",
			Help: "Количество вытесненных из кэша элементов",
		},
	)

	// KafkaMessagesProcessed - Счетчик обработанных Kafka-сообщений
	KafkaMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Количество обработанных сообщений Kafka",
		},
		[]string{"status"}, // Метки: "success", "dlq_validation", "dlq_cleanup_error", "dlq_failed_write"
	)
)

// Init используется для регистрации метрик.
// promauto регистрирует их автоматически при создании.
func Init() {
	log.Println("Prometheus метрики инициализированы.")
}
