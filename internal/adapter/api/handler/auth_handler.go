package handler

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"dzdeals/internal/usecase"
	"dzdeals/pkg/errors"
	"dzdeals/pkg/logger"
	"dzdeals/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	uploader    usecase.FileUploader
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, uploader usecase.FileUploader) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		uploader:    uploader,
	}
}

type authResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register accepts a multipart form: text fields plus an optional profile
// picture under "picture".
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	picturePath, err := h.uploadFormImage(c, "picture", "profiles")
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(ctx, usecase.RegisterInput{
		FullName:    c.FormValue("nomComplet"),
		Email:       c.FormValue("email"),
		Password:    c.FormValue("password"),
		Phone:       c.FormValue("telephone"),
		PicturePath: picturePath,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{Token: result.Token, User: result.User})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{Token: result.Token, User: result.User})
}

// UpdateProfile handles the profile edit form; only submitted fields change,
// and a new "picture" file replaces the stored avatar.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")

	picturePath, err := h.uploadFormImage(c, "picture", "profiles")
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		FullName:    c.FormValue("nomComplet"),
		Phone:       c.FormValue("telephone"),
		Address:     c.FormValue("adresse"),
		Bio:         c.FormValue("infos"),
		Profession:  c.FormValue("profession"),
		PicturePath: picturePath,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type passwordRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.UpdatePassword(c.Request().Context(), req.UserID, req.Password); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Mot de passe mis à jour"})
}

func (h *AuthHandler) VerifyPassword(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if req.UserID == "" || req.Password == "" {
		return response.Error(c, errors.BadRequest("userId and password are required", nil))
	}

	ok, err := h.authUseCase.VerifyPassword(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"valid": ok})
}

type deleteAccountRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.DeleteUser(c.Request().Context(), req.UserID); err != nil {
		return response.Error(c, err)
	}

	logger.Info("Account deleted: %s", req.UserID)
	return response.Success(c, map[string]string{"message": "Compte supprimé"})
}

// uploadFormImage pushes the named multipart file to object storage,
// returning "" when the field is absent.
func (h *AuthHandler) uploadFormImage(c echo.Context, field, folder string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.BadRequest("Failed to read uploaded file", err)
	}
	defer func(f multipart.File) { _ = f.Close() }(src)

	return h.uploader.UploadImage(c.Request().Context(), src, fileHeader.Header.Get("Content-Type"), folder)
}
