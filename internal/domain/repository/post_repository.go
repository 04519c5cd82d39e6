package repository

import (
	"context"

	"dzdeals/internal/domain/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Post, error)
	Delete(ctx context.Context, id string) error

	// Mutate applies fn to the post document inside a transaction; view
	// counting, ratings and order/offer transitions go through here.
	Mutate(ctx context.Context, id string, fn func(*entity.Post) error) (*entity.Post, error)
}
