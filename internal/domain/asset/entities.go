package asset

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusAssigned    Status = "assigned"
	StatusInRepair    Status = "in_repair"
	StatusRetired     Status = "retired"
	StatusDisposed    Status = "disposed"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusInRepair,
		StatusRetired, StatusDisposed, StatusMaintenance:
		return true
	}
	return false
}

var ErrNotFound = errors.New("asset not found")

type Asset struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	AssetTag     string `gorm:"size:64;uniqueIndex:ux_assets_tag_active" json:"asset_tag"`
	SerialNumber string `gorm:"size:128" json:"serial_number,omitempty"`

	Status Status `gorm:"type:enum('available','assigned','in_repair','retired','disposed','maintenance');default:'available';index:idx_assets_status" json:"status"`
	// AssignedTo is non-null only while the asset is in someone's custody;
	// AssignmentDate records when that custody started.
	AssignedTo     *uint64    `gorm:"column:assigned_to" json:"assigned_to,omitempty"`
	AssignmentDate *time.Time `gorm:"column:assignment_date;type:date" json:"assignment_date,omitempty"`

	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2)" json:"purchase_price"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Asset) TableName() string { return "assets" }
