package service

import (
	"context"

	"helpugee/internal/model"
	"helpugee/internal/repository"
)

// SectionService exposes read access to sections for the admin console.
type SectionService interface {
	ListSections(ctx context.Context) ([]model.Section, error)
	GetSection(ctx context.Context, id uint) (*model.Section, error)
}

type sectionService struct {
	repo repository.SectionRepository
}

// NewSectionService builds a SectionService over the section repository.
func NewSectionService(repo repository.SectionRepository) SectionService {
	return &sectionService{repo: repo}
}

func (s *sectionService) ListSections(ctx context.Context) ([]model.Section, error) {
	return s.repo.FindAll(ctx)
}

func (s *sectionService) GetSection(ctx context.Context, id uint) (*model.Section, error) {
	return s.repo.FindByID(ctx, id)
}
