package txmock

import (
	"context"

	domain "assettrack/internal/domain/transaction"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs; the rest return zero values.
type Repo struct {
	CreateFn              func(ctx context.Context, t *domain.Transaction) error
	GetByTransactionIDFn  func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetPendingByAssetIDFn func(ctx context.Context, assetID uint64) (*domain.Transaction, error)
	ListFn                func(ctx context.Context, f domain.ListFilter) ([]domain.Transaction, error)
	SaveFn                func(ctx context.Context, t *domain.Transaction) error
	UpdateStatusFn        func(ctx context.Context, t *domain.Transaction, from domain.Status) error
	DeleteFn              func(ctx context.Context, t *domain.Transaction, deletedBy uint64) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPendingByAssetID(ctx context.Context, assetID uint64) (*domain.Transaction, error) {
	if m.GetPendingByAssetIDFn != nil {
		return m.GetPendingByAssetIDFn(ctx, assetID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Transaction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) UpdateStatus(ctx context.Context, t *domain.Transaction, from domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, t, from)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, t *domain.Transaction, deletedBy uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, t, deletedBy)
	}
	return nil
}
