package storage

import (
	"context"
	"errors"

	"kingroad/internal/model"
)

//go:generate mockgen -source=storage.go -destination=./mocks/storage_mock.go -package=mocks

// ErrDraftNotFound возвращается, когда черновик отсутствует в ярусе хранения.
var ErrDraftNotFound = errors.New("черновик не найден")

// ErrMarkerNotFound возвращается, когда маркер незавершенной оплаты отсутствует.
var ErrMarkerNotFound = errors.New("маркер оплаты не найден")

// DraftStore определяет один ярус хранения черновиков.
// Durable-ярус (Postgres) переживает закрытие сессии,
// session-ярус (Redis с TTL) переживает редирект на платежную страницу.
type DraftStore interface {
	SaveDraft(ctx context.Context, draft *model.CheckoutDraft) error
	GetDraft(ctx context.Context, sessionID string) (*model.CheckoutDraft, error)
	DeleteDraft(ctx context.Context, sessionID string) error
	Close() error
}

// MarkerStore определяет хранилище маркеров незавершенной оплаты.
// Маркеры живут только в сессионном ярусе.
type MarkerStore interface {
	SavePendingMarker(ctx context.Context, sessionID string, marker *model.PendingPaymentMarker) error
	GetPendingMarker(ctx context.Context, sessionID string) (*model.PendingPaymentMarker, error)
}
