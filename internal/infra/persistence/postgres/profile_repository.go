package postgres

import (
	"context"
	"encoding/json"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// profileRepository implements the domain's ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUserID retrieves the profile owned by the given user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

// FindByHandle retrieves a profile by its unique handle.
func (repo *profileRepository) FindByHandle(ctx context.Context, handle string) (*entity.Profile, error) {
	return repo.findOne(ctx, "handle = ?", handle)
}

func (repo *profileRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).Where(cond, arg).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile. Unique violations are split into the two
// domain cases: the handle is taken, or the user already has a profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if uniqueViolationOn(err, "handle") {
			return repository.ErrHandleTaken
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "profile references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile, including avatar link changes.
// Save writes all columns, so clearing the avatar persists empty strings.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if uniqueViolationOn(err, "handle") {
			return repository.ErrHandleTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// List returns profiles ordered by creation time descending.
func (repo *profileRepository) List(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	var models []model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(models))
	for i := range models {
		profiles = append(profiles, toProfileDomain(&models[i]))
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	var links map[string]string
	if len(data.SocialLinks) > 0 {
		// A malformed jsonb value can only come from out-of-band writes;
		// treat it as no links rather than failing the whole read.
		_ = json.Unmarshal(data.SocialLinks, &links)
	}

	var avatar *entity.Avatar
	if data.AvatarPath != "" {
		avatar = &entity.Avatar{Path: data.AvatarPath, URL: data.AvatarURL}
	}

	return &entity.Profile{
		ID:          data.ID,
		UserID:      data.UserID,
		Handle:      data.Handle,
		Bio:         data.Bio,
		SocialLinks: links,
		Avatar:      avatar,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) (*model.ProfileModel, error) {
	var links datatypes.JSON
	if data.SocialLinks != nil {
		raw, err := json.Marshal(data.SocialLinks)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode social links")
		}
		links = datatypes.JSON(raw)
	}

	profileM := &model.ProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Handle:      data.Handle,
		Bio:         data.Bio,
		SocialLinks: links,
		CreatedAt:   data.CreatedAt,
	}
	if data.Avatar != nil {
		profileM.AvatarPath = data.Avatar.Path
		profileM.AvatarURL = data.Avatar.URL
	}

	return profileM, nil
}
