package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "helpugee/internal/errors"
	"helpugee/internal/model"
)

// SectionRepository reads the sections that grant users their roles.
// Sections are administered out of band; the API never mutates them.
type SectionRepository interface {
	FindAll(ctx context.Context) ([]model.Section, error)
	FindByID(ctx context.Context, id uint) (*model.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository builds a GORM-backed section repository.
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) FindAll(ctx context.Context) ([]model.Section, error) {
	var sections []model.Section
	err := r.db.WithContext(ctx).
		Where("is_deleted = FALSE").
		Order("name").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) FindByID(ctx context.Context, id uint) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = FALSE", id).
		First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSectionIDNotPresent
		}
		return nil, err
	}
	return &section, nil
}
