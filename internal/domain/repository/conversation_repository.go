package repository

import (
	"context"

	"dzdeals/internal/domain/entity"
)

type ConversationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByParticipant(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// GetOrCreateByPair returns the unique conversation for an unordered
	// participant pair, creating it when absent. The boolean reports whether
	// a new conversation was created by this call.
	GetOrCreateByPair(ctx context.Context, a, b string) (*entity.Conversation, bool, error)

	// Mutate applies fn to the conversation document inside a transaction
	// (message appends, read-state updates).
	Mutate(ctx context.Context, id string, fn func(*entity.Conversation) error) (*entity.Conversation, error)
}
