package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and author-directory endpoints.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, postUC usecase.PostUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		postUC: postUC,
		logger: logger,
	}
}

type createProfileRequest struct {
	Handle      string            `json:"handle" validate:"required,max=64"`
	Bio         string            `json:"bio"`
	SocialLinks map[string]string `json:"social_links"`
}

type updateProfileRequest struct {
	Handle      *string           `json:"handle" validate:"omitempty,max=64"`
	Bio         *string           `json:"bio"`
	SocialLinks map[string]string `json:"social_links"`
}

// Create claims a handle for the signed-in user.
func (h *ProfileHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A handle is required")
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), userID, usecase.CreateProfileInput{
		Handle:      req.Handle,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileView(profile), "Profile created")
}

// UpdateMe applies a partial update to the signed-in user's profile.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid profile input")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Handle:      req.Handle,
		Bio:         req.Bio,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Profile updated")
}

// List returns one page of the public author directory.
func (h *ProfileHandler) List(c echo.Context) error {
	output, err := h.uc.ListProfiles(c.Request().Context(), pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileListView(output), "")
}

// GetByHandle resolves a public author page.
func (h *ProfileHandler) GetByHandle(c echo.Context) error {
	profile, err := h.uc.GetByHandle(c.Request().Context(), c.Param("handle"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "")
}

// ListPostsByHandle returns one page of an author's published posts.
func (h *ProfileHandler) ListPostsByHandle(c echo.Context) error {
	output, err := h.postUC.ListByHandle(c.Request().Context(), c.Param("handle"), pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostListView(output), "")
}

// ReplaceAvatar uploads a new avatar image from a multipart form.
func (h *ProfileHandler) ReplaceAvatar(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "An avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	profile, err := h.uc.ReplaceAvatar(c.Request().Context(), userID, usecase.ReplaceAvatarInput{
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Avatar updated")
}

// RemoveAvatar deletes the signed-in user's avatar.
func (h *ProfileHandler) RemoveAvatar(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	profile, err := h.uc.RemoveAvatar(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile), "Avatar removed")
}

// pageParam reads the ?page query parameter, defaulting to the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}

	return page
}
