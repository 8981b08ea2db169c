package syncmock

import (
	"context"

	tx "assettrack/internal/domain/transaction"
)

// Sync is a function-backed fake for the lifecycle's AssetSync dependency.
type Sync struct {
	ApplyTransitionFn    func(ctx context.Context, assetID uint64, act tx.Action, st tx.Status, requestedTo *uint64) error
	ApplyAcceptFn        func(ctx context.Context, assetID uint64, act tx.Action, acceptorID uint64, requestedTo *uint64) error
	RollbackAssignmentFn func(ctx context.Context, assetID, recipientID uint64) error
}

func (m *Sync) ApplyTransition(ctx context.Context, assetID uint64, act tx.Action, st tx.Status, requestedTo *uint64) error {
	if m.ApplyTransitionFn != nil {
		return m.ApplyTransitionFn(ctx, assetID, act, st, requestedTo)
	}
	return nil
}

func (m *Sync) ApplyAccept(ctx context.Context, assetID uint64, act tx.Action, acceptorID uint64, requestedTo *uint64) error {
	if m.ApplyAcceptFn != nil {
		return m.ApplyAcceptFn(ctx, assetID, act, acceptorID, requestedTo)
	}
	return nil
}

func (m *Sync) RollbackAssignment(ctx context.Context, assetID, recipientID uint64) error {
	if m.RollbackAssignmentFn != nil {
		return m.RollbackAssignmentFn(ctx, assetID, recipientID)
	}
	return nil
}
