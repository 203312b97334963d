package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"helpugee/internal/cache"
	"helpugee/internal/model"
	"helpugee/internal/repository"
)

const featureCacheTTL = 5 * time.Minute

// FeatureService exposes map feature operations. The unfiltered list and
// per-id reads are cached in redis to absorb public map traffic; every
// mutation invalidates.
type FeatureService interface {
	ListFeatures(ctx context.Context, category model.Category) ([]model.Feature, error)
	GetFeature(ctx context.Context, id uint) (*model.Feature, error)
	CreateFeature(ctx context.Context, feature *model.Feature) error
	UpdateFeature(ctx context.Context, feature *model.Feature) error
	DeleteFeature(ctx context.Context, id uint) error
}

type featureService struct {
	repo  repository.FeatureRepository
	cache *cache.Client
}

// NewFeatureService builds a FeatureService with repository and cache.
func NewFeatureService(repo repository.FeatureRepository, cache *cache.Client) FeatureService {
	return &featureService{repo: repo, cache: cache}
}

const featureListCacheKey = "features:all"

func featureCacheKey(id uint) string {
	return fmt.Sprintf("feature:%d", id)
}

func (s *featureService) ListFeatures(ctx context.Context, category model.Category) ([]model.Feature, error) {
	// only the unfiltered list is cached; category filters go to the store
	if category == "" || category == model.CategoryAll {
		if data, _ := s.cache.Get(ctx, featureListCacheKey); data != nil {
			var cached []model.Feature
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	features, err := s.repo.FindAll(ctx, category)
	if err != nil {
		return nil, err
	}

	if category == "" || category == model.CategoryAll {
		if payload, err := json.Marshal(features); err == nil {
			_ = s.cache.Set(ctx, featureListCacheKey, payload, featureCacheTTL)
		}
	}
	return features, nil
}

func (s *featureService) GetFeature(ctx context.Context, id uint) (*model.Feature, error) {
	if data, _ := s.cache.Get(ctx, featureCacheKey(id)); data != nil {
		var cached model.Feature
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	feature, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(feature); err == nil {
		_ = s.cache.Set(ctx, featureCacheKey(id), payload, featureCacheTTL)
	}
	return feature, nil
}

func (s *featureService) CreateFeature(ctx context.Context, feature *model.Feature) error {
	if err := s.repo.Add(ctx, feature); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, featureListCacheKey)
	return nil
}

func (s *featureService) UpdateFeature(ctx context.Context, feature *model.Feature) error {
	if err := s.repo.Edit(ctx, feature); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, featureListCacheKey)
	_ = s.cache.Delete(ctx, featureCacheKey(feature.ID))
	return nil
}

func (s *featureService) DeleteFeature(ctx context.Context, id uint) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, featureListCacheKey)
	_ = s.cache.Delete(ctx, featureCacheKey(id))
	return nil
}
