package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dzdeals/pkg/errors"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemUserRepo()
	uc := NewAuthUseCase(userRepo, stubTokenManager{})

	result, err := uc.Register(ctx, RegisterInput{
		FullName: "Amine B",
		Email:    "amine@example.com",
		Password: "secret123",
		Phone:    "0550123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "token-"+result.User.ID, result.Token)
	assert.NotEqual(t, "secret123", result.User.Password, "password must be hashed")

	login, err := uc.Login(ctx, "amine@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterMissingFields(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), stubTokenManager{})

	_, err := uc.Register(context.Background(), RegisterInput{Email: "x@y.z"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc := NewAuthUseCase(newMemUserRepo(), stubTokenManager{})

	input := RegisterInput{FullName: "A", Email: "dup@example.com", Password: "pass123", Phone: "0550"}
	_, err := uc.Register(ctx, input)
	require.NoError(t, err)

	_, err = uc.Register(ctx, input)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), stubTokenManager{})

	_, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	uc := NewAuthUseCase(newMemUserRepo(), stubTokenManager{})

	_, err := uc.Register(ctx, RegisterInput{FullName: "A", Email: "a@b.c", Password: "correct1", Phone: "0550"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, "a@b.c", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestUpdateProfilePartial(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemUserRepo()
	uc := NewAuthUseCase(userRepo, stubTokenManager{})

	result, err := uc.Register(ctx, RegisterInput{FullName: "Old Name", Email: "p@q.r", Password: "pass123", Phone: "0550"})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(ctx, result.User.ID, UpdateProfileInput{Address: "Alger Centre"})
	require.NoError(t, err)
	assert.Equal(t, "Old Name", updated.FullName)
	assert.Equal(t, "Alger Centre", updated.Address)
	assert.Equal(t, "0550", updated.Phone)
}

func TestUpdateAndVerifyPassword(t *testing.T) {
	ctx := context.Background()
	uc := NewAuthUseCase(newMemUserRepo(), stubTokenManager{})

	result, err := uc.Register(ctx, RegisterInput{FullName: "A", Email: "v@w.x", Password: "first123", Phone: "0550"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdatePassword(ctx, result.User.ID, "second456"))

	ok, err := uc.VerifyPassword(ctx, result.User.ID, "second456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.VerifyPassword(ctx, result.User.ID, "first123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemUserRepo()
	uc := NewAuthUseCase(userRepo, stubTokenManager{})

	result, err := uc.Register(ctx, RegisterInput{FullName: "A", Email: "d@e.f", Password: "pass123", Phone: "0550"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUser(ctx, result.User.ID))

	_, err = userRepo.GetByID(ctx, result.User.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.True(t, errors.Is(uc.DeleteUser(ctx, "missing"), "NOT_FOUND"))
}
