package repository

import (
	"context"

	"dzdeals/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.User, error)

	// Mutate applies fn to the user document inside a transaction so that
	// read-modify-write sequences (follow toggles, ratings, comments) cannot
	// lose concurrent updates.
	Mutate(ctx context.Context, id string, fn func(*entity.User) error) (*entity.User, error)
}
