package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*User, error)
}
