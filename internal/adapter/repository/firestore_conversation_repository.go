package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dzdeals/internal/domain/entity"
	"dzdeals/internal/domain/repository"
	"dzdeals/pkg/errors"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection("conversations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	query := r.client.Collection("conversations").Where("participants", "array-contains", userID)
	iter := query.Documents(ctx)

	var conversations []*entity.Conversation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate conversations", err)
		}

		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			return nil, errors.Internal("Failed to parse conversation data", err)
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, nil
}

// GetOrCreateByPair uses the sorted participant pair as the document ID, so
// the uniqueness check and the create are one transactional create-if-absent
// instead of the racy lookup-then-create of a query-based dedup.
func (r *firestoreConversationRepository) GetOrCreateByPair(ctx context.Context, a, b string) (*entity.Conversation, bool, error) {
	id := entity.PairKey(a, b)
	docRef := r.client.Collection("conversations").Doc(id)

	var conversation entity.Conversation
	created := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		created = false
		doc, err := tx.Get(docRef)
		if err == nil {
			return doc.DataTo(&conversation)
		}
		if status.Code(err) != codes.NotFound {
			return errors.Internal("Failed to get conversation", err)
		}

		now := time.Now()
		conversation = entity.Conversation{
			ID:           id,
			Participants: []string{a, b},
			Messages:     []entity.Message{},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		created = true
		return tx.Set(docRef, &conversation)
	})
	if err != nil {
		return nil, false, err
	}

	return &conversation, created, nil
}

func (r *firestoreConversationRepository) Mutate(ctx context.Context, id string, fn func(*entity.Conversation) error) (*entity.Conversation, error) {
	var mutated entity.Conversation

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("conversations").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Conversation", err)
			}
			return errors.Internal("Failed to get conversation", err)
		}

		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			return errors.Internal("Failed to parse conversation data", err)
		}

		if err := fn(&conversation); err != nil {
			return err
		}

		conversation.UpdatedAt = time.Now()
		mutated = conversation
		return tx.Set(docRef, &conversation)
	})
	if err != nil {
		return nil, err
	}

	return &mutated, nil
}
