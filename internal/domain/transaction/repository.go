package transaction

import "context"

type ListFilter struct {
	AssetID     *uint64
	Status      *Status
	RequestedBy *uint64
	Limit       int
	Offset      int
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	// GetPendingByAssetID returns the most recent pending transaction for the asset.
	GetPendingByAssetID(ctx context.Context, assetID uint64) (*Transaction, error)
	List(ctx context.Context, f ListFilter) ([]Transaction, error)
	Save(ctx context.Context, t *Transaction) error
	// UpdateStatus persists t's status fields with a conditional write matching
	// the expected current status. When the row no longer holds `from` (a
	// concurrent caller won the race) it returns ErrInvalidTransition.
	UpdateStatus(ctx context.Context, t *Transaction, from Status) error
	Delete(ctx context.Context, t *Transaction, deletedBy uint64) error
}
