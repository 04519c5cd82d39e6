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

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = r.client.Collection("posts").NewDoc().ID
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}

	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection("posts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Post", err)
		}
		return nil, errors.Internal("Failed to get post", err)
	}

	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post data", err)
	}

	return &post, nil
}

func (r *firestorePostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	return r.collect(r.client.Collection("posts").Documents(ctx))
}

func (r *firestorePostRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	query := r.client.Collection("posts").Where("userId", "==", userID)
	return r.collect(query.Documents(ctx))
}

func (r *firestorePostRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Post, error) {
	var posts []*entity.Post

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate posts", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, errors.Internal("Failed to parse post data", err)
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestorePostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("posts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete post", err)
	}

	return nil
}

func (r *firestorePostRepository) Mutate(ctx context.Context, id string, fn func(*entity.Post) error) (*entity.Post, error) {
	var mutated entity.Post

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docRef := r.client.Collection("posts").Doc(id)
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Post", err)
			}
			return errors.Internal("Failed to get post", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return errors.Internal("Failed to parse post data", err)
		}

		if err := fn(&post); err != nil {
			return err
		}

		post.UpdatedAt = time.Now()
		mutated = post
		return tx.Set(docRef, &post)
	})
	if err != nil {
		return nil, err
	}

	return &mutated, nil
}
