package transaction

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Action string

const (
	ActionAssign      Action = "assign"
	ActionReturn      Action = "return"
	ActionRepair      Action = "repair"
	ActionRetire      Action = "retire"
	ActionDispose     Action = "dispose"
	ActionTransfer    Action = "transfer"
	ActionMaintenance Action = "maintenance"
)

func (a Action) Valid() bool {
	switch a {
	case ActionAssign, ActionReturn, ActionRepair, ActionRetire,
		ActionDispose, ActionTransfer, ActionMaintenance:
		return true
	}
	return false
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted,
		StatusInProgress, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s. Only the
// forward edges are legal; nothing ever moves back to pending.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected || next == StatusCompleted
	case StatusAccepted:
		return next == StatusCompleted
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

var (
	ErrNotFound          = errors.New("transaction not found")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidAction     = errors.New("invalid action value")
	ErrInvalidPriority   = errors.New("invalid priority value")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPendingExists     = errors.New("asset already has a pending transaction")
	ErrImmutable         = errors.New("transaction can no longer be modified")
)

type Transaction struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string `gorm:"size:32;uniqueIndex:ux_transactions_tx_id_active" json:"transaction_id"`
	AssetID       uint64 `gorm:"column:asset_id;not null;index:idx_transactions_asset" json:"asset_id"`
	// Requester (initiator) and optional recipient of the requested change.
	RequestedBy uint64  `gorm:"column:requested_by;not null;index:idx_transactions_requester" json:"requested_by"`
	RequestedTo *uint64 `gorm:"column:requested_to" json:"requested_to,omitempty"`

	Action   Action   `gorm:"type:enum('assign','return','repair','retire','dispose','transfer','maintenance')" json:"action"`
	Status   Status   `gorm:"type:enum('pending','accepted','rejected','completed','in_progress','cancelled');default:'pending';index:idx_transactions_status" json:"status"`
	Priority Priority `gorm:"type:enum('low','medium','high','urgent');default:'medium'" json:"priority"`

	FromLocation string `gorm:"size:255" json:"from_location,omitempty"`
	ToLocation   string `gorm:"size:255" json:"to_location,omitempty"`
	Notes        string `gorm:"type:text" json:"notes,omitempty"`
	AdminNotes   string `gorm:"type:text" json:"admin_notes,omitempty"`

	// RespondedAt is stamped once, the first time status leaves pending.
	// CompletedAt / ActualCompletionDate are stamped once, on entering completed.
	RespondedAt            *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`
	CompletedAt            *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	ExpectedCompletionDate *time.Time `gorm:"column:expected_completion_date;type:date" json:"expected_completion_date,omitempty"`
	ActualCompletionDate   *time.Time `gorm:"column:actual_completion_date;type:date" json:"actual_completion_date,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy *uint64        `gorm:"column:deleted_by" json:"-"`
}

func (Transaction) TableName() string { return "asset_transactions" }
