package usecase

import (
	"context"
	"io"
)

// TokenManager issues and verifies the bearer tokens guarding protected
// routes.
type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// FileUploader stores an image in external object storage and returns its
// public URL.
type FileUploader interface {
	UploadImage(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}

// Broadcaster fans a payload out to every connected real-time client.
// Delivery is best-effort, at-most-once.
type Broadcaster interface {
	Broadcast(message []byte)
}
