package api

import (
	"fmt"
	"net/http"

	"kingroad/internal/cache"
	"kingroad/internal/checkout"
	"kingroad/internal/client"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server представляет HTTP-сервер.
type Server struct {
	port     string
	router   *chi.Mux
	checkout checkout.CheckoutService
	api      client.StoreAPI
	cache    cache.Cache
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, service checkout.CheckoutService, api client.StoreAPI, orderCache cache.Cache) *Server {
	server := &Server{
		port:     port,
		checkout: service,
		api:      api,
		cache:    orderCache,
	}
	server.router = server.setupRouter()
	return server
}

// Run запускает HTTP-сервер.
func (s *Server) Run() error {
	address := fmt.Sprintf(":%s", s.port)
	fmt.Printf("🚀 HTTP-сервер запущен на http://localhost%s\n", address)
	return http.ListenAndServe(address, s.router)
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Обработчики API оформления заказа
	checkoutHandler := NewCheckoutHandler(s.checkout)
	router.Post("/api/checkout/draft", checkoutHandler.SaveDraft)
	router.Get("/api/checkout/draft", checkoutHandler.LoadDraft)
	router.Post("/api/checkout/submit", checkoutHandler.Submit)
	router.Get("/api/checkout/pending", checkoutHandler.PendingPayment)

	// Гостевой поиск заказа для страницы подтверждения
	orderHandler := NewOrderHandler(s.api, s.cache)
	router.Get("/api/order/{orderNumber}", orderHandler.GetByNumber)

	// Метрики Prometheus
	router.Handle("/metrics", promhttp.Handler())

	return router
}
