package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"kingroad/internal/metrics"
	"kingroad/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// postgresDraftStore - durable-ярус хранения черновиков на PostgreSQL.
// Это конкретная реализация интерфейса DraftStore.
type postgresDraftStore struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// NewPostgres создает подключение к БД, применяет миграции и возвращает
// durable-ярус хранилища черновиков.
func NewPostgres(dbURL, migrationsPath string) (DraftStore, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// Запуск миграций
	if err := runMigrations(dbURL, migrationsPath); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresDraftStore{
		db:     db,
		tracer: otel.Tracer("postgres-draft-store"), // Инициализация трейсера
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}

	// Применяем миграции "вверх"
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// SaveDraft сохраняет черновик и его позиции в одной транзакции.
// Повторное сохранение по тому же session_id перезаписывает черновик целиком.
func (s *postgresDraftStore) SaveDraft(ctx context.Context, draft *model.CheckoutDraft) (err error) {
	// Создаем span для трассировки
	ctx, span := s.tracer.Start(ctx, "DB.SaveDraft")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}

	// Используем defer с функцией, чтобы корректно обработать panic и ошибки
	defer func() {
		if p := recover(); p != nil {
			// Если была паника, откатываем
			_ = tx.Rollback()
			panic(p) // Восстанавливаем панику
		} else if err != nil {
			// Если функция завершилась с ошибкой, откатываем
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	// Старый черновик с тем же session_id вытесняется новым
	if _, err = tx.ExecContext(ctx, `DELETE FROM checkout_drafts WHERE session_id = $1`, draft.SessionID); err != nil {
		return fmt.Errorf("ошибка удаления старого черновика: %w", err)
	}

	draftQuery := `INSERT INTO checkout_drafts (session_id, name, phone, email, kind, street, house_number, building, floor, apartment, office, subtotal, delivery_fee, total, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	if _, err = tx.ExecContext(ctx, draftQuery, draft.SessionID, draft.Name, draft.Phone, draft.Email, draft.Address.Kind, draft.Address.Street, draft.Address.HouseNumber, draft.Address.Building, draft.Address.Floor, draft.Address.Apartment, draft.Address.Office, draft.Subtotal, draft.DeliveryFee, draft.Total, draft.CreatedAt); err != nil {
		return fmt.Errorf("ошибка сохранения черновика: %w", err)
	}

	for _, item := range draft.Items {
		itemQuery := `INSERT INTO checkout_draft_items (session_id, product_id, quantity, unit_price, name) VALUES ($1, $2, $3, $4, $5)`
		if _, err = tx.ExecContext(ctx, itemQuery, draft.SessionID, item.ProductID, item.Quantity, item.UnitPrice, item.Name); err != nil {
			return fmt.Errorf("ошибка сохранения позиции черновика: %w", err)
		}
	}

	// Если все успешно, коммитим. Ошибка (nil или реальная) будет возвращена.
	err = tx.Commit()
	return err
}

// GetDraft извлекает черновик вместе с позициями по идентификатору сессии.
func (s *postgresDraftStore) GetDraft(ctx context.Context, sessionID string) (*model.CheckoutDraft, error) {
	// Создаем span для трассировки
	ctx, span := s.tracer.Start(ctx, "DB.GetDraft")
	defer span.End()

	var draft model.CheckoutDraft
	query := `
        SELECT
            d.session_id, d.name, d.phone, d.email, d.subtotal, d.delivery_fee, d.total, d.created_at,
            d.kind "address.kind", d.street "address.street", d.house_number "address.house_number",
            d.building "address.building", d.floor "address.floor",
            d.apartment "address.apartment", d.office "address.office"
        FROM checkout_drafts d
        WHERE d.session_id = $1`

	if err := s.db.GetContext(ctx, &draft, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		metrics.StorageErrors.WithLabelValues("durable", "get_draft").Inc() // Метрика ошибки
		return nil, fmt.Errorf("не удалось получить черновик: %w", err)
	}

	if err := s.db.SelectContext(ctx, &draft.Items, `SELECT product_id, quantity, unit_price, name FROM checkout_draft_items WHERE session_id = $1 ORDER BY id`, sessionID); err != nil {
		metrics.StorageErrors.WithLabelValues("durable", "get_items").Inc() // Метрика ошибки
		return nil, fmt.Errorf("не удалось получить позиции черновика: %w", err)
	}

	return &draft, nil
}

// DeleteDraft удаляет черновик и его позиции. Отсутствие черновика не ошибка.
func (s *postgresDraftStore) DeleteDraft(ctx context.Context, sessionID string) error {
	// Создаем span для трассировки
	ctx, span := s.tracer.Start(ctx, "DB.DeleteDraft")
	defer span.End()

	// Позиции удалит каскад по внешнему ключу
	if _, err := s.db.ExecContext(ctx, `DELETE FROM checkout_drafts WHERE session_id = $1`, sessionID); err != nil {
		metrics.StorageErrors.WithLabelValues("durable", "delete_draft").Inc() // Метрика ошибки
		return fmt.Errorf("не удалось удалить черновик: %w", err)
	}

	return nil
}

// Close закрывает соединение с БД.
func (s *postgresDraftStore) Close() error {
	return s.db.Close()
}
