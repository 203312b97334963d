package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"helpugee/internal/auth"
	errs "helpugee/internal/errors"
	"helpugee/internal/model"
)

// FeatureRepository defines persistence operations over map features.
// Features are soft-deleted like users but carry no PII to scrub.
type FeatureRepository interface {
	FindAll(ctx context.Context, category model.Category) ([]model.Feature, error)
	FindByID(ctx context.Context, id uint) (*model.Feature, error)
	Add(ctx context.Context, feature *model.Feature) error
	Edit(ctx context.Context, feature *model.Feature) error
	Remove(ctx context.Context, id uint) error
}

type featureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository builds a GORM-backed feature repository.
func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

// FindAll returns all non-deleted features, optionally filtered by category.
func (r *featureRepository) FindAll(ctx context.Context, category model.Category) ([]model.Feature, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = FALSE")
	if category != "" && category != model.CategoryAll {
		q = q.Where("category = ?", category)
	}
	var features []model.Feature
	if err := q.Order("label").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepository) FindByID(ctx context.Context, id uint) (*model.Feature, error) {
	var feature model.Feature
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = FALSE", id).
		First(&feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrFeatureIDNotPresent
		}
		return nil, err
	}
	return &feature, nil
}

func (r *featureRepository) Add(ctx context.Context, feature *model.Feature) error {
	feature.ID = 0
	feature.CreatedAt = time.Now()
	feature.CreatedBy = auth.UsernameFrom(ctx)
	feature.ModifiedAt = nil
	feature.ModifiedBy = nil
	feature.IsDeleted = false
	return r.db.WithContext(ctx).Create(feature).Error
}

// Edit updates a feature. The soft-delete flag is carried over from the
// stored row so an edit cannot resurrect a deleted feature.
func (r *featureRepository) Edit(ctx context.Context, feature *model.Feature) error {
	old, err := r.FindByID(ctx, feature.ID)
	if err != nil {
		return err
	}
	next := *feature
	next.IsDeleted = old.IsDeleted
	next.CreatedAt = old.CreatedAt
	next.CreatedBy = old.CreatedBy
	stampFeatureModified(ctx, &next)
	return r.db.WithContext(ctx).Save(&next).Error
}

func (r *featureRepository) Remove(ctx context.Context, id uint) error {
	feature, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	feature.IsDeleted = true
	stampFeatureModified(ctx, feature)
	return r.db.WithContext(ctx).Save(feature).Error
}

func stampFeatureModified(ctx context.Context, feature *model.Feature) {
	now := time.Now()
	by := auth.UsernameFrom(ctx)
	feature.ModifiedAt = &now
	feature.ModifiedBy = &by
}
