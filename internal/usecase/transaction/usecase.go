package transaction

import (
	"context"
	"errors"
	"log"
	"time"

	domainAsset "assettrack/internal/domain/asset"
	"assettrack/internal/domain/permission"
	domainTx "assettrack/internal/domain/transaction"
	domainUser "assettrack/internal/domain/user"
	"assettrack/internal/infrastructure/metrics"
	"assettrack/internal/usecase/assetsync"
	"assettrack/pkg/id"

	"gorm.io/gorm"
)

// AssetSync is the slice of the synchronizer the lifecycle needs; tests
// substitute function-backed fakes.
type AssetSync interface {
	ApplyTransition(ctx context.Context, assetID uint64, act domainTx.Action, st domainTx.Status, requestedTo *uint64) error
	ApplyAccept(ctx context.Context, assetID uint64, act domainTx.Action, acceptorID uint64, requestedTo *uint64) error
	RollbackAssignment(ctx context.Context, assetID, recipientID uint64) error
}

type Usecase struct {
	txs    domainTx.Repository
	assets domainAsset.Repository
	users  domainUser.Repository
	gate   permission.Gate
	sync   AssetSync
}

func NewUsecase(txs domainTx.Repository, assets domainAsset.Repository, users domainUser.Repository, gate permission.Gate, sync AssetSync) *Usecase {
	return &Usecase{txs: txs, assets: assets, users: users, gate: gate, sync: sync}
}

func (u *Usecase) Create(ctx context.Context, actor permission.Actor, in CreateInput) (*TransactionDTO, error) {
	if !u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionCreate) {
		return nil, permission.ErrForbidden
	}

	act := domainTx.Action(in.Action)
	if !act.Valid() {
		return nil, domainTx.ErrInvalidAction
	}
	prio := domainTx.PriorityMedium
	if in.Priority != "" {
		prio = domainTx.Priority(in.Priority)
		if !prio.Valid() {
			return nil, domainTx.ErrInvalidPriority
		}
	}

	if _, err := u.assets.GetByID(ctx, in.AssetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainAsset.ErrNotFound
		}
		return nil, err
	}
	if in.RequestedTo != nil {
		if _, err := u.users.GetByID(ctx, *in.RequestedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domainUser.ErrNotFound
			}
			return nil, err
		}
	}

	// Block while the asset already has an open request.
	pending, err := u.txs.GetPendingByAssetID(ctx, in.AssetID)
	switch {
	case err == nil:
		log.Printf("create blocked: asset %d has pending transaction %s", in.AssetID, pending.TransactionID)
		return nil, domainTx.ErrPendingExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	t := &domainTx.Transaction{
		TransactionID:          id.NewID32(),
		AssetID:                in.AssetID,
		RequestedBy:            actor.ID,
		RequestedTo:            in.RequestedTo,
		Action:                 act,
		Status:                 domainTx.StatusPending,
		Priority:               prio,
		FromLocation:           in.FromLocation,
		ToLocation:             in.ToLocation,
		Notes:                  in.Notes,
		ExpectedCompletionDate: in.ExpectedCompletionDate,
	}
	if err := u.txs.Create(ctx, t); err != nil {
		return nil, err
	}
	return u.hydrate(ctx, t), nil
}

func (u *Usecase) Get(ctx context.Context, transactionID string) (*TransactionDTO, error) {
	t, err := u.txs.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainTx.ErrNotFound
		}
		return nil, err
	}
	return u.hydrate(ctx, t), nil
}

func (u *Usecase) List(ctx context.Context, f domainTx.ListFilter) ([]TransactionDTO, error) {
	items, err := u.txs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out, nil
}

// RequestTransition is the generic status-change entry point. Asset effects
// fire only when the new status is completed; acceptance through this path
// deliberately skips the accept endpoint's custody hand-over.
func (u *Usecase) RequestTransition(ctx context.Context, actor permission.Actor, transactionID string, requested domainTx.Status, adminNotes string) (*TransactionDTO, error) {
	if !u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionChangeStatus) {
		return nil, permission.ErrForbidden
	}
	if !requested.Valid() {
		return nil, domainTx.ErrInvalidStatus
	}

	t, err := u.loadForTransition(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	from := t.Status
	if !from.CanTransitionTo(requested) {
		return nil, domainTx.ErrInvalidTransition
	}

	u.stamp(t, from, requested, adminNotes)
	if err := u.txs.UpdateStatus(ctx, t, from); err != nil {
		return nil, err
	}
	metrics.TransitionsTotal.WithLabelValues(string(t.Action), string(requested)).Inc()

	if requested == domainTx.StatusCompleted {
		u.syncCompletion(ctx, t)
	}
	return u.hydrate(ctx, t), nil
}

// Accept moves a pending transaction to accepted and applies the accept-path
// asset effect (repair/return hand custody to the accepting actor).
func (u *Usecase) Accept(ctx context.Context, actor permission.Actor, transactionID, adminNotes string) (*TransactionDTO, error) {
	if !u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionChangeStatus) {
		return nil, permission.ErrForbidden
	}
	t, err := u.loadForTransition(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	from := t.Status
	if from != domainTx.StatusPending {
		return nil, domainTx.ErrInvalidTransition
	}

	u.stamp(t, from, domainTx.StatusAccepted, adminNotes)
	if err := u.txs.UpdateStatus(ctx, t, from); err != nil {
		return nil, err
	}
	metrics.TransitionsTotal.WithLabelValues(string(t.Action), string(domainTx.StatusAccepted)).Inc()

	// Best effort: acceptance stands even if the asset write fails.
	if err := u.sync.ApplyAccept(ctx, t.AssetID, t.Action, actor.ID, t.RequestedTo); err != nil {
		log.Printf("asset sync (accept) failed for transaction %s asset %d: %v", t.TransactionID, t.AssetID, err)
		metrics.AssetSyncFailures.WithLabelValues("accept").Inc()
	}
	return u.hydrate(ctx, t), nil
}

// Reject moves a pending transaction to rejected. An optional reason is
// appended to the notes, and a rejected assign request rolls the asset back
// when it is already in the intended recipient's custody.
func (u *Usecase) Reject(ctx context.Context, actor permission.Actor, transactionID, adminNotes, reason string) (*TransactionDTO, error) {
	if !u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionChangeStatus) {
		return nil, permission.ErrForbidden
	}
	t, err := u.loadForTransition(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	from := t.Status
	if from != domainTx.StatusPending {
		return nil, domainTx.ErrInvalidTransition
	}

	if reason != "" {
		note := "Rejection Reason: " + reason
		if t.Notes != "" {
			t.Notes = t.Notes + "\n\n" + note
		} else {
			t.Notes = note
		}
	}
	u.stamp(t, from, domainTx.StatusRejected, adminNotes)
	if err := u.txs.UpdateStatus(ctx, t, from); err != nil {
		return nil, err
	}
	metrics.TransitionsTotal.WithLabelValues(string(t.Action), string(domainTx.StatusRejected)).Inc()

	if t.Action == domainTx.ActionAssign && t.RequestedTo != nil {
		if err := u.sync.RollbackAssignment(ctx, t.AssetID, *t.RequestedTo); err != nil {
			log.Printf("asset sync (reject rollback) failed for transaction %s asset %d: %v", t.TransactionID, t.AssetID, err)
			metrics.AssetSyncFailures.WithLabelValues("rollback").Inc()
		}
	}
	return u.hydrate(ctx, t), nil
}

// Complete moves a pending or accepted transaction to completed and applies
// the completion mapping to the asset.
func (u *Usecase) Complete(ctx context.Context, actor permission.Actor, transactionID, adminNotes string) (*TransactionDTO, error) {
	if !u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionChangeStatus) {
		return nil, permission.ErrForbidden
	}
	t, err := u.loadForTransition(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	from := t.Status
	if !from.CanTransitionTo(domainTx.StatusCompleted) {
		return nil, domainTx.ErrInvalidTransition
	}

	u.stamp(t, from, domainTx.StatusCompleted, adminNotes)
	if err := u.txs.UpdateStatus(ctx, t, from); err != nil {
		return nil, err
	}
	metrics.TransitionsTotal.WithLabelValues(string(t.Action), string(domainTx.StatusCompleted)).Inc()

	u.syncCompletion(ctx, t)
	return u.hydrate(ctx, t), nil
}

func (u *Usecase) Update(ctx context.Context, actor permission.Actor, transactionID string, in UpdateInput) (*TransactionDTO, error) {
	t, err := u.loadForTransition(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	owner := t.RequestedBy == actor.ID
	if !owner && !u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionUpdate) {
		return nil, permission.ErrForbidden
	}
	if t.Status.Terminal() {
		return nil, domainTx.ErrImmutable
	}

	if in.Priority != nil {
		p := domainTx.Priority(*in.Priority)
		if !p.Valid() {
			return nil, domainTx.ErrInvalidPriority
		}
		t.Priority = p
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
	if in.FromLocation != nil {
		t.FromLocation = *in.FromLocation
	}
	if in.ToLocation != nil {
		t.ToLocation = *in.ToLocation
	}
	if in.ExpectedCompletionDate != nil {
		t.ExpectedCompletionDate = in.ExpectedCompletionDate
	}
	if err := u.txs.Save(ctx, t); err != nil {
		return nil, err
	}
	return u.hydrate(ctx, t), nil
}

// Delete removes a transaction. Privileged roles may delete anything;
// the requester may only delete their own request while it is still pending.
func (u *Usecase) Delete(ctx context.Context, actor permission.Actor, transactionID string) error {
	t, err := u.loadForTransition(ctx, transactionID)
	if err != nil {
		return err
	}
	privileged := u.gate.Allowed(actor.Role, permission.ModuleTransactions, permission.ActionDelete)
	owner := t.RequestedBy == actor.ID
	if !privileged && !(owner && deletableByOwner(t.Status)) {
		return permission.ErrForbidden
	}
	return u.txs.Delete(ctx, t, actor.ID)
}

// deletableByOwner is the status allow-list for requester-initiated deletes.
func deletableByOwner(s domainTx.Status) bool {
	return s == domainTx.StatusPending
}

func (u *Usecase) loadForTransition(ctx context.Context, transactionID string) (*domainTx.Transaction, error) {
	t, err := u.txs.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainTx.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// stamp applies the set-once timestamp semantics and the admin-notes
// overwrite, then sets the new status. Timestamps are only written when
// currently null so replays never rewrite history.
func (u *Usecase) stamp(t *domainTx.Transaction, from, to domainTx.Status, adminNotes string) {
	now := time.Now().UTC()
	if from == domainTx.StatusPending && to != domainTx.StatusPending && t.RespondedAt == nil {
		t.RespondedAt = &now
	}
	if to == domainTx.StatusCompleted {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
		if t.ActualCompletionDate == nil {
			today := assetsync.Today()
			t.ActualCompletionDate = &today
		}
	}
	if adminNotes != "" {
		t.AdminNotes = adminNotes
	}
	t.Status = to
}

// syncCompletion applies the completion mapping best-effort: the transaction
// write already committed and stays authoritative whatever happens here.
func (u *Usecase) syncCompletion(ctx context.Context, t *domainTx.Transaction) {
	if err := u.sync.ApplyTransition(ctx, t.AssetID, t.Action, domainTx.StatusCompleted, t.RequestedTo); err != nil {
		log.Printf("asset sync (completion) failed for transaction %s asset %d: %v", t.TransactionID, t.AssetID, err)
		metrics.AssetSyncFailures.WithLabelValues("completion").Inc()
	}
}

func (u *Usecase) hydrate(ctx context.Context, t *domainTx.Transaction) *TransactionDTO {
	dto := toDTO(t)
	if a, err := u.assets.GetByID(ctx, t.AssetID); err == nil {
		dto.Asset = a
	}
	if u.users != nil {
		if by, err := u.users.GetByID(ctx, t.RequestedBy); err == nil {
			dto.RequestedByUser = by
		}
		if t.RequestedTo != nil {
			if to, err := u.users.GetByID(ctx, *t.RequestedTo); err == nil {
				dto.RequestedToUser = to
			}
		}
	}
	return dto
}

func toDTO(t *domainTx.Transaction) *TransactionDTO {
	return &TransactionDTO{
		TransactionID:          t.TransactionID,
		AssetID:                t.AssetID,
		RequestedBy:            t.RequestedBy,
		RequestedTo:            t.RequestedTo,
		Action:                 string(t.Action),
		Status:                 string(t.Status),
		Priority:               string(t.Priority),
		FromLocation:           t.FromLocation,
		ToLocation:             t.ToLocation,
		Notes:                  t.Notes,
		AdminNotes:             t.AdminNotes,
		RespondedAt:            t.RespondedAt,
		CompletedAt:            t.CompletedAt,
		ExpectedCompletionDate: t.ExpectedCompletionDate,
		ActualCompletionDate:   t.ActualCompletionDate,
		CreatedAt:              t.CreatedAt,
	}
}
