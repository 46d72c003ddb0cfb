package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"kingroad/internal/model"
)

//go:generate mockgen -source=repository.go -destination=./mocks/repository_mock.go -package=mocks

// DraftRepository - фасад над двумя ярусами хранения черновиков.
// Порядок чтения зафиксирован: сначала durable-ярус, при отсутствии -
// сессионный. Так черновик переживает возврат с внешней платежной
// страницы, когда durable-контекст мог быть потерян.
type DraftRepository interface {
	Save(ctx context.Context, draft *model.CheckoutDraft) error
	SaveSessionCopy(ctx context.Context, draft *model.CheckoutDraft) error
	Load(ctx context.Context, sessionID string) (*model.CheckoutDraft, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionStore объединяет сессионный ярус черновиков и маркеры оплаты.
type SessionStore interface {
	DraftStore
	MarkerStore
}

// Repository - конкретная реализация DraftRepository.
type Repository struct {
	durable DraftStore
	session SessionStore
}

// NewRepository собирает фасад из durable- и session-ярусов.
func NewRepository(durable DraftStore, session SessionStore) *Repository {
	return &Repository{durable: durable, session: session}
}

// Save пишет черновик в durable-ярус. Сессионная копия создается
// отдельно, непосредственно перед редиректом на платежную страницу.
func (r *Repository) Save(ctx context.Context, draft *model.CheckoutDraft) error {
	return r.durable.SaveDraft(ctx, draft)
}

// SaveSessionCopy пишет копию черновика в сессионный ярус.
func (r *Repository) SaveSessionCopy(ctx context.Context, draft *model.CheckoutDraft) error {
	return r.session.SaveDraft(ctx, draft)
}

// Load читает черновик: durable-ярус, затем сессионный.
func (r *Repository) Load(ctx context.Context, sessionID string) (*model.CheckoutDraft, error) {
	draft, err := r.durable.GetDraft(ctx, sessionID)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, ErrDraftNotFound) {
		return nil, fmt.Errorf("ошибка durable-яруса: %w", err)
	}

	// Черновика нет в durable-ярусе - пробуем сессионную копию
	draft, err = r.session.GetDraft(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("ошибка сессионного яруса: %w", err)
	}

	log.Printf("Черновик %s восстановлен из сессионной копии.", sessionID)
	return draft, nil
}

// Delete удаляет черновик из обоих ярусов.
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := r.durable.DeleteDraft(ctx, sessionID); err != nil {
		return fmt.Errorf("ошибка удаления из durable-яруса: %w", err)
	}
	if err := r.session.DeleteDraft(ctx, sessionID); err != nil {
		return fmt.Errorf("ошибка удаления из сессионного яруса: %w", err)
	}
	return nil
}
