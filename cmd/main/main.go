package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kingroad/internal/api"
	"kingroad/internal/cache"
	"kingroad/internal/checkout"
	"kingroad/internal/client"
	"kingroad/internal/clock"
	"kingroad/internal/config"
	"kingroad/internal/events"
	"kingroad/internal/storage"
	"kingroad/internal/tracing"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Get()

	// Инициализация трассировки
	shutdownTracer := tracing.InitTracerProvider("kingroad-checkout")
	defer shutdownTracer()

	// Инициализация durable-яруса хранилища
	// Путь указывает на папку с миграциями
	durable, err := storage.NewPostgres(cfg.Postgres.URL, "./internal/storage/migrations")
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer durable.Close()

	// Инициализация сессионного яруса
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	session := storage.NewRedisSession(redisClient, cfg.Redis.SessionTTL)
	defer session.Close()

	drafts := storage.NewRepository(durable, session)

	// Клиент API магазина и кэш заказов
	storeAPI := client.New(cfg.StoreAPI)
	orderCache := cache.NewLRUCache(cfg.Cache.Size)

	// Продюсер событий оформления
	publisher := events.NewKafkaPublisher(cfg.Kafka)
	defer publisher.Close()

	// Оркестратор оформления заказа
	service := checkout.NewService(drafts, session, storeAPI, publisher, clock.NewSystem(), cfg.StoreAPI)

	// Запуск консюмера подтверждений оплаты
	ctx, cancel := context.WithCancel(context.Background())
	consumer := events.NewConsumer(cfg.Kafka, drafts, storeAPI, orderCache)
	go consumer.Run(ctx)

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, service, storeAPI, orderCache)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	cancel()
	log.Println("Сервис успешно остановлен.")
}
