package permission

import "errors"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleViewer  Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleViewer:
		return true
	}
	return false
}

const ModuleTransactions = "transactions"

const (
	ActionCreate       = "create"
	ActionRead         = "read"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionChangeStatus = "change_status"
)

var ErrForbidden = errors.New("forbidden")

// Actor is the authenticated identity a request acts as. Authentication
// itself happens upstream; handlers only consume the resolved identity.
type Actor struct {
	ID   uint64
	Role Role
}

// Gate answers whether a role may perform an action on a module. Injected so
// tests can substitute fake policies for the static table.
type Gate interface {
	Allowed(role Role, module, action string) bool
}

// StaticPolicy is a pure role→module→action lookup table.
type StaticPolicy map[Role]map[string]map[string]bool

func (p StaticPolicy) Allowed(role Role, module, action string) bool {
	return p[role][module][action]
}

// DefaultPolicy returns the built-in permission table.
func DefaultPolicy() Gate {
	return StaticPolicy{
		RoleAdmin: {
			ModuleTransactions: {
				ActionCreate: true, ActionRead: true, ActionUpdate: true,
				ActionDelete: true, ActionChangeStatus: true,
			},
		},
		RoleManager: {
			ModuleTransactions: {
				ActionCreate: true, ActionRead: true, ActionUpdate: true,
				ActionChangeStatus: true,
			},
		},
		RoleStaff: {
			ModuleTransactions: {
				ActionCreate: true, ActionRead: true,
			},
		},
		RoleViewer: {
			ModuleTransactions: {
				ActionRead: true,
			},
		},
	}
}
