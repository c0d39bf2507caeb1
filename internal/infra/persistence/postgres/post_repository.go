package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain's PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a post with its author preloaded, so the domain entity
// carries the author's handle for display.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// ListByAuthor returns one page of an author's posts, newest first.
func (repo *postRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, publishedOnly bool, limit, offset int) ([]*entity.Post, error) {
	query := repo.authorQuery(ctx, authorID, publishedOnly).
		Limit(limit).
		Offset(offset)

	var models []model.PostModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return toPostDomains(models), nil
}

// ListAllByAuthor returns the author's entire ordered collection.
func (repo *postRepository) ListAllByAuthor(ctx context.Context, authorID uuid.UUID, publishedOnly bool) ([]*entity.Post, error) {
	var models []model.PostModel
	if err := repo.authorQuery(ctx, authorID, publishedOnly).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list author collection")
	}

	return toPostDomains(models), nil
}

func (repo *postRepository) authorQuery(ctx context.Context, authorID uuid.UUID, publishedOnly bool) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	return query
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "post references missing author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = postM.CreatedAt
	}
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Save(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes a post permanently.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Author != nil {
		post.AuthorHandle = data.Author.Handle
	}

	return post
}

func toPostDomains(models []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(models))
	for i := range models {
		posts = append(posts, toPostDomain(&models[i]))
	}

	return posts
}

// fromPostDomain converts a domain Post entity to a GORM PostModel.
// AuthorHandle is display-only and never written back.
func fromPostDomain(data *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
	}
}
