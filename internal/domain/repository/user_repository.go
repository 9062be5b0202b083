package repository

import (
	"context"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
)

// UserRepository persists identity records. It is the only path to the
// credential store; nothing else reads password hashes.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
