package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dzdeals/internal/domain/entity"
	"dzdeals/internal/domain/repository"
	"dzdeals/pkg/errors"
)

// UserUseCase covers the social surface: followers, per-user ratings and
// comments.
type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type FollowResult struct {
	Followers []string `json:"followers"`
	Action    string   `json:"action"`
}

// ToggleFollow flips the follower relation: present removes, absent appends.
// Applying it twice from the same follower is a no-op pair.
func (uc *UserUseCase) ToggleFollow(ctx context.Context, followerID, targetID string) (*FollowResult, error) {
	if followerID == "" || targetID == "" {
		return nil, errors.BadRequest("followerId and targetId are required", nil)
	}
	if followerID == targetID {
		return nil, errors.BadRequest("Vous ne pouvez pas vous suivre vous-même", nil)
	}

	action := ""
	target, err := uc.userRepo.Mutate(ctx, targetID, func(user *entity.User) error {
		for i, f := range user.Followers {
			if f == followerID {
				user.Followers = append(user.Followers[:i:i], user.Followers[i+1:]...)
				action = "désabonné"
				return nil
			}
		}
		user.Followers = append(user.Followers, followerID)
		action = "suivi"
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &FollowResult{
		Followers: target.Followers,
		Action:    action,
	}, nil
}

type FollowState struct {
	Following bool     `json:"following"`
	Followers []string `json:"followers"`
}

func (uc *UserUseCase) GetFollowState(ctx context.Context, targetID, followerID string) (*FollowState, error) {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	state := &FollowState{Followers: target.Followers}
	for _, f := range target.Followers {
		if f == followerID {
			state.Following = true
			break
		}
	}
	return state, nil
}

type RatingSummary struct {
	Ratings    []entity.Rating `json:"ratings"`
	UserRating *entity.Rating  `json:"userRating,omitempty"`
	Average    float64         `json:"average"`
}

func (uc *UserUseCase) RateUser(ctx context.Context, targetID, raterID string, value float64) (*RatingSummary, error) {
	if raterID == "" {
		return nil, errors.BadRequest("userId is required", nil)
	}

	target, err := uc.userRepo.Mutate(ctx, targetID, func(user *entity.User) error {
		user.Ratings = entity.ApplyRating(user.Ratings, entity.Rating{UserID: raterID, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RatingSummary{
		Ratings: target.Ratings,
		Average: entity.AverageRating(target.Ratings),
	}, nil
}

func (uc *UserUseCase) GetUserRating(ctx context.Context, targetID, raterID string) (*RatingSummary, error) {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return &RatingSummary{
		Ratings:    target.Ratings,
		UserRating: entity.RatingFor(target.Ratings, raterID),
		Average:    entity.AverageRating(target.Ratings),
	}, nil
}

func (uc *UserUseCase) CommentOnUser(ctx context.Context, targetID, authorID, text string) ([]entity.Comment, error) {
	if authorID == "" || text == "" {
		return nil, errors.BadRequest("userId and comment are required", nil)
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, errors.NotFound("Auteur", err)
	}

	target, err := uc.userRepo.Mutate(ctx, targetID, func(user *entity.User) error {
		user.Comments = append(user.Comments, entity.Comment{
			ID:       uuid.New().String(),
			UserID:   authorID,
			UserName: author.FullName,
			Text:     text,
			Date:     time.Now().Format("2006-01-02"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return target.Comments, nil
}

func (uc *UserUseCase) GetUserComments(ctx context.Context, targetID string) ([]entity.Comment, error) {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return target.Comments, nil
}

func (uc *UserUseCase) DeleteUserComment(ctx context.Context, targetID, commentID string) ([]entity.Comment, error) {
	target, err := uc.userRepo.Mutate(ctx, targetID, func(user *entity.User) error {
		kept, removed := entity.RemoveComment(user.Comments, commentID)
		if !removed {
			return errors.NotFound("Commentaire", nil)
		}
		user.Comments = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target.Comments, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}
