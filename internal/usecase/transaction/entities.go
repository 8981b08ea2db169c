package transaction

import (
	"time"

	"assettrack/internal/domain/asset"
	"assettrack/internal/domain/user"
)

type CreateInput struct {
	AssetID                uint64     `json:"asset_id"`
	Action                 string     `json:"action"`
	RequestedTo            *uint64    `json:"requested_to,omitempty"`
	FromLocation           string     `json:"from_location,omitempty"`
	ToLocation             string     `json:"to_location,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
	Priority               string     `json:"priority,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`
}

// UpdateInput carries the requester-editable fields; nil means "leave as is".
type UpdateInput struct {
	Notes                  *string    `json:"notes,omitempty"`
	Priority               *string    `json:"priority,omitempty"`
	FromLocation           *string    `json:"from_location,omitempty"`
	ToLocation             *string    `json:"to_location,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`
}

type TransactionDTO struct {
	TransactionID          string     `json:"transaction_id"`
	AssetID                uint64     `json:"asset_id"`
	RequestedBy            uint64     `json:"requested_by"`
	RequestedTo            *uint64    `json:"requested_to,omitempty"`
	Action                 string     `json:"action"`
	Status                 string     `json:"status"`
	Priority               string     `json:"priority"`
	FromLocation           string     `json:"from_location,omitempty"`
	ToLocation             string     `json:"to_location,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
	AdminNotes             string     `json:"admin_notes,omitempty"`
	RespondedAt            *time.Time `json:"responded_at,omitempty"`
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`
	ActualCompletionDate   *time.Time `json:"actual_completion_date,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`

	// Hydrated associations, filled best-effort on reads and transitions.
	Asset           *asset.Asset `json:"asset,omitempty"`
	RequestedByUser *user.User   `json:"requested_by_user,omitempty"`
	RequestedToUser *user.User   `json:"requested_to_user,omitempty"`
}
