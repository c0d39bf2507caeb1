package handler

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post endpoints.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

type createPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
}

type updatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// Create creates a draft or published post.
func (h *PostHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A title and content are required")
	}

	post, err := h.uc.CreatePost(c.Request().Context(), userID, usecase.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostView(post), "Post created")
}

// ListOwn returns one page of the signed-in author's posts, drafts included.
func (h *PostHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	output, err := h.uc.ListOwnPosts(c.Request().Context(), userID, pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostListView(output), "")
}

// Get returns a single post with prev/next navigation. Works for anonymous
// readers; a bearer token lets an author see their own drafts.
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Post not found")
	}

	output, err := h.uc.GetPost(c.Request().Context(), middleware.OptionalUserID(c), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostDetailView(output), "")
}

// Update applies a partial update to a post the signed-in author owns.
func (h *PostHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Post not found")
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid post input")
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), userID, postID, usecase.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostView(post), "Post updated")
}

// Delete permanently removes a post the signed-in author owns.
func (h *PostHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Post not found")
	}

	if err := h.uc.DeletePost(c.Request().Context(), userID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
