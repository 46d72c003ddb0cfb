package checkout

import (
	"context"

	"kingroad/internal/model"
)

//go:generate mockgen -source=interface.go -destination=./mocks/checkout_mock.go -package=mocks CheckoutService

// CheckoutService определяет интерфейс оркестратора для HTTP-слоя.
type CheckoutService interface {
	SaveDraft(ctx context.Context, draft *model.CheckoutDraft) error
	LoadDraft(ctx context.Context, sessionID string) (*model.CheckoutDraft, error)
	Submit(ctx context.Context, sessionID string, method model.PaymentMethod) (*SubmitResult, error)
	CheckPendingPayment(ctx context.Context, sessionID string) (*Advisory, error)
}
