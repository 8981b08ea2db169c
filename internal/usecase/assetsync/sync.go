// Package assetsync applies the asset-side effect of a transaction status
// change. Two distinct strategies exist on purpose and must not be merged:
// TransitionEffect is the (action, status) completion mapping used by the
// complete and generic status endpoints, while AcceptEffect is the hand-rolled
// effect the accept endpoint applies, which for repair/return hands the asset
// to the accepting actor rather than leaving the assignment untouched.
package assetsync

import (
	"context"
	"time"

	"assettrack/internal/domain/asset"
	"assettrack/internal/domain/transaction"
)

type Synchronizer struct{ assets asset.Repository }

func New(assets asset.Repository) *Synchronizer { return &Synchronizer{assets: assets} }

// Today returns the current UTC date at midnight, the value stored in the
// date-only columns (assignment_date, actual_completion_date).
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// TransitionEffect mutates a according to the completion mapping for the
// given action and resulting status. It reports whether anything changed.
func TransitionEffect(a *asset.Asset, act transaction.Action, st transaction.Status, requestedTo *uint64, today time.Time) bool {
	switch act {
	case transaction.ActionAssign:
		if st == transaction.StatusCompleted && requestedTo != nil {
			a.Status = asset.StatusAssigned
			a.AssignedTo = requestedTo
			a.AssignmentDate = &today
			return true
		}
	case transaction.ActionReturn:
		// Assignment deliberately untouched here; the accept endpoint has
		// its own policy (see AcceptEffect).
		if st == transaction.StatusAccepted || st == transaction.StatusCompleted {
			a.Status = asset.StatusAssigned
			return true
		}
	case transaction.ActionRepair:
		if st == transaction.StatusAccepted {
			a.Status = asset.StatusInRepair
			return true
		}
		if st == transaction.StatusCompleted {
			a.Status = asset.StatusAvailable
			a.AssignedTo = nil
			a.AssignmentDate = nil
			return true
		}
	case transaction.ActionRetire:
		if st == transaction.StatusCompleted {
			a.Status = asset.StatusRetired
			a.AssignedTo = nil
			a.AssignmentDate = nil
			return true
		}
	case transaction.ActionDispose:
		if st == transaction.StatusCompleted {
			a.Status = asset.StatusDisposed
			a.AssignedTo = nil
			a.AssignmentDate = nil
			return true
		}
	case transaction.ActionTransfer:
		if st == transaction.StatusCompleted && requestedTo != nil {
			a.AssignedTo = requestedTo
			a.AssignmentDate = &today
			return true
		}
	case transaction.ActionMaintenance:
		// No mapping row: the transaction record alone tracks maintenance.
	}
	return false
}

// AcceptEffect mutates a according to the accept endpoint's direct policy.
// repair and return put the asset in the accepting actor's custody.
func AcceptEffect(a *asset.Asset, act transaction.Action, acceptorID uint64, requestedTo *uint64, today time.Time) bool {
	switch act {
	case transaction.ActionAssign:
		if requestedTo != nil {
			a.Status = asset.StatusAssigned
			a.AssignedTo = requestedTo
			a.AssignmentDate = &today
			return true
		}
	case transaction.ActionRepair:
		a.Status = asset.StatusInRepair
		a.AssignedTo = &acceptorID
		a.AssignmentDate = &today
		return true
	case transaction.ActionReturn:
		a.Status = asset.StatusAssigned
		a.AssignedTo = &acceptorID
		a.AssignmentDate = &today
		return true
	}
	return false
}

// ApplyTransition loads the asset and applies the completion mapping.
func (s *Synchronizer) ApplyTransition(ctx context.Context, assetID uint64, act transaction.Action, st transaction.Status, requestedTo *uint64) error {
	a, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if !TransitionEffect(a, act, st, requestedTo, Today()) {
		return nil
	}
	return s.assets.Save(ctx, a)
}

// ApplyAccept loads the asset and applies the accept-path effect.
func (s *Synchronizer) ApplyAccept(ctx context.Context, assetID uint64, act transaction.Action, acceptorID uint64, requestedTo *uint64) error {
	a, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if !AcceptEffect(a, act, acceptorID, requestedTo, Today()) {
		return nil
	}
	return s.assets.Save(ctx, a)
}

// RollbackAssignment reverts the asset to available, but only when it is
// currently assigned to the given recipient. Used when an assign transaction
// is rejected after the accept path already handed the asset over.
func (s *Synchronizer) RollbackAssignment(ctx context.Context, assetID, recipientID uint64) error {
	a, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	if a.AssignedTo == nil || *a.AssignedTo != recipientID {
		return nil
	}
	a.Status = asset.StatusAvailable
	a.AssignedTo = nil
	a.AssignmentDate = nil
	return s.assets.Save(ctx, a)
}
