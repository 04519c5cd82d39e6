package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dzdeals/internal/domain/entity"
	"dzdeals/internal/domain/repository"
	"dzdeals/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	Phone       string
	PicturePath string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" || input.Phone == "" {
		return nil, errors.BadRequest("All fields are required", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    string(hashed),
		Phone:       input.Phone,
		PicturePath: input.PicturePath,
		Followers:   []string{},
		Ratings:     []entity.Rating{},
		Comments:    []entity.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, "CONFLICT") {
			return nil, errors.BadRequest("Email already in use", err)
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("Utilisateur", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Mot de passe incorrect", err)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

type UpdateProfileInput struct {
	FullName    string
	Phone       string
	Address     string
	Bio         string
	Profession  string
	PicturePath string
}

// UpdateProfile overwrites only the fields present in the request; empty
// values leave the stored ones untouched.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	return uc.userRepo.Mutate(ctx, userID, func(user *entity.User) error {
		if input.FullName != "" {
			user.FullName = input.FullName
		}
		if input.Phone != "" {
			user.Phone = input.Phone
		}
		if input.Address != "" {
			user.Address = input.Address
		}
		if input.Bio != "" {
			user.Bio = input.Bio
		}
		if input.Profession != "" {
			user.Profession = input.Profession
		}
		if input.PicturePath != "" {
			user.PicturePath = input.PicturePath
		}
		return nil
	})
}

func (uc *AuthUseCase) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if newPassword == "" {
		return errors.BadRequest("Password is required", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	_, err = uc.userRepo.Mutate(ctx, userID, func(user *entity.User) error {
		user.Password = string(hashed)
		return nil
	})
	return err
}

// VerifyPassword reports whether the candidate matches the stored hash.
func (uc *AuthUseCase) VerifyPassword(ctx context.Context, userID, password string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	match := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
	return match, nil
}

// DeleteUser removes the account. Posts, conversations and comments left by
// the user elsewhere are not cascaded.
func (uc *AuthUseCase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, userID)
}
