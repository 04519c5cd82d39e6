package handler

import (
	"github.com/labstack/echo/v4"

	"dzdeals/internal/usecase"
	"dzdeals/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

type followRequest struct {
	UserID   string `json:"userId" validate:"required"`
	TargetID string `json:"followedUserId" validate:"required"`
}

func (h *UserHandler) ToggleFollow(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.userUseCase.ToggleFollow(c.Request().Context(), req.UserID, req.TargetID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *UserHandler) GetFollowState(c echo.Context) error {
	state, err := h.userUseCase.GetFollowState(c.Request().Context(), c.Param("id"), c.Param("userid"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}

type rateUserRequest struct {
	TargetID string  `json:"ratedUserId" validate:"required"`
	RaterID  string  `json:"userId" validate:"required"`
	Value    float64 `json:"rating" validate:"min=0,max=5"`
}

func (h *UserHandler) RateUser(c echo.Context) error {
	var req rateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	summary, err := h.userUseCase.RateUser(c.Request().Context(), req.TargetID, req.RaterID, req.Value)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}

type getUserRatingRequest struct {
	TargetID string `json:"ratedUserId" validate:"required"`
	RaterID  string `json:"userId"`
}

func (h *UserHandler) GetUserRating(c echo.Context) error {
	var req getUserRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	summary, err := h.userUseCase.GetUserRating(c.Request().Context(), req.TargetID, req.RaterID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}

type userCommentRequest struct {
	TargetID string `json:"commentedUserId" validate:"required"`
	AuthorID string `json:"userId" validate:"required"`
	Text     string `json:"comment" validate:"required"`
}

func (h *UserHandler) CommentOnUser(c echo.Context) error {
	var req userCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comments, err := h.userUseCase.CommentOnUser(c.Request().Context(), req.TargetID, req.AuthorID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *UserHandler) GetUserComments(c echo.Context) error {
	comments, err := h.userUseCase.GetUserComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *UserHandler) DeleteUserComment(c echo.Context) error {
	comments, err := h.userUseCase.DeleteUserComment(c.Request().Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}
