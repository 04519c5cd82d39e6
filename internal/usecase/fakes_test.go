package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"dzdeals/internal/domain/entity"
	"dzdeals/pkg/errors"
)

// In-memory repository fakes. They mirror the Firestore implementations'
// contract: copy-on-read, transactional Mutate, NOT_FOUND / CONFLICT codes.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return errors.Conflict("Email already in use")
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memUserRepo) Mutate(ctx context.Context, id string, fn func(*entity.User) error) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	working := *user
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	r.users[id] = &working
	copied := working
	return &copied, nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
	order []string
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]*entity.Post)}
}

func (r *memPostRepo) Create(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	stored := *post
	r.posts[post.ID] = &stored
	r.order = append(r.order, post.ID)
	return nil
}

func (r *memPostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	copied := *post
	return &copied, nil
}

func (r *memPostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Post, 0, len(r.order))
	for _, id := range r.order {
		if post, ok := r.posts[id]; ok {
			copied := *post
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memPostRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	all, _ := r.List(ctx)
	var out []*entity.Post
	for _, post := range all {
		if post.UserID == userID {
			out = append(out, post)
		}
	}
	return out, nil
}

func (r *memPostRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return errors.NotFound("Post", nil)
	}
	delete(r.posts, id)
	return nil
}

func (r *memPostRepo) Mutate(ctx context.Context, id string, fn func(*entity.Post) error) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	working := *post
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	r.posts[id] = &working
	copied := working
	return &copied, nil
}

type memConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*entity.Conversation
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{conversations: make(map[string]*entity.Conversation)}
}

func (r *memConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	copied := *conv
	return &copied, nil
}

func (r *memConversationRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Conversation
	for _, conv := range r.conversations {
		if conv.HasParticipant(userID) {
			copied := *conv
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memConversationRepo) GetOrCreateByPair(ctx context.Context, a, b string) (*entity.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.PairKey(a, b)
	if conv, ok := r.conversations[id]; ok {
		copied := *conv
		return &copied, false, nil
	}

	now := time.Now()
	conv := &entity.Conversation{
		ID:           id,
		Participants: []string{a, b},
		Messages:     []entity.Message{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.conversations[id] = conv
	copied := *conv
	return &copied, true, nil
}

func (r *memConversationRepo) Mutate(ctx context.Context, id string, fn func(*entity.Conversation) error) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	working := *conv
	working.Messages = append([]entity.Message(nil), conv.Messages...)
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	r.conversations[id] = &working
	copied := working
	return &copied, nil
}

// stubTokenManager issues predictable tokens for tests.
type stubTokenManager struct{}

func (stubTokenManager) Issue(userID string) (string, error) {
	return "token-" + userID, nil
}

func (stubTokenManager) Verify(token string) (string, error) {
	const prefix = "token-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", errors.Unauthorized("Invalid token", nil)
	}
	return token[len(prefix):], nil
}

// stubUploader records uploads and hands back deterministic URLs.
type stubUploader struct {
	mu    sync.Mutex
	count int
}

func (u *stubUploader) UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.count++
	return fmt.Sprintf("https://storage.example.com/%s/img-%d", folder, u.count), nil
}

// recordBroadcaster captures broadcast payloads.
type recordBroadcaster struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (b *recordBroadcaster) Broadcast(message []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads = append(b.payloads, message)
}

func (b *recordBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.payloads)
}
