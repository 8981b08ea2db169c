package mysql

import (
	"context"

	txDomain "assettrack/internal/domain/transaction"

	"gorm.io/gorm"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) Save(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*txDomain.Transaction, error) {
	var out txDomain.Transaction
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	return &out, res.Error
}

func (r *TransactionRepository) GetPendingByAssetID(ctx context.Context, assetID uint64) (*txDomain.Transaction, error) {
	var out txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("asset_id = ? AND status = ?", assetID, txDomain.StatusPending).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *TransactionRepository) List(ctx context.Context, f txDomain.ListFilter) ([]txDomain.Transaction, error) {
	q := r.db.WithContext(ctx).Model(&txDomain.Transaction{})
	if f.AssetID != nil {
		q = q.Where("asset_id = ?", *f.AssetID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.RequestedBy != nil {
		q = q.Where("requested_by = ?", *f.RequestedBy)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []txDomain.Transaction
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// UpdateStatus is a compare-and-swap on the status column: the write only
// lands while the row still holds the expected current status, so at most one
// caller wins a concurrent transition race. The loser gets ErrInvalidTransition.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, t *txDomain.Transaction, from txDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Where("id = ? AND status = ?", t.ID, from).
		Updates(map[string]any{
			"status":                 t.Status,
			"notes":                  t.Notes,
			"admin_notes":            t.AdminNotes,
			"responded_at":           t.RespondedAt,
			"completed_at":           t.CompletedAt,
			"actual_completion_date": t.ActualCompletionDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return txDomain.ErrInvalidTransition
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, t *txDomain.Transaction, deletedBy uint64) error {
	if err := r.db.WithContext(ctx).
		Model(&txDomain.Transaction{}).
		Where("id = ?", t.ID).
		Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(t).Error
}
