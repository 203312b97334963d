package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "helpugee/internal/errors"
	"helpugee/internal/model"
)

// all tests run with a nil cache client, which degrades to plain
// repository access

func TestFeatureService_ListFeatures(t *testing.T) {
	repo := new(MockFeatureRepository)
	svc := NewFeatureService(repo, nil)

	features := []model.Feature{
		{Base: model.Base{ID: 1}, Label: "Shelter Mitte", Category: model.CategoryRefugeeAccomodation},
	}
	repo.On("FindAll", mock.Anything, model.CategoryRefugeeAccomodation).Return(features, nil)

	got, err := svc.ListFeatures(context.Background(), model.CategoryRefugeeAccomodation)

	assert.NoError(t, err)
	assert.Equal(t, features, got)
}

func TestFeatureService_GetFeature_NotFound(t *testing.T) {
	repo := new(MockFeatureRepository)
	svc := NewFeatureService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, errs.ErrFeatureIDNotPresent)

	got, err := svc.GetFeature(context.Background(), 9)

	assert.Nil(t, got)
	assert.Equal(t, errs.ErrFeatureIDNotPresent, err)
}

func TestFeatureService_CreateFeature(t *testing.T) {
	repo := new(MockFeatureRepository)
	svc := NewFeatureService(repo, nil)

	feature := &model.Feature{Label: "Town hall Mitte", Category: model.CategoryTownHall}
	repo.On("Add", mock.Anything, feature).Return(nil)

	assert.NoError(t, svc.CreateFeature(context.Background(), feature))
	repo.AssertCalled(t, "Add", mock.Anything, feature)
}

func TestFeatureService_DeleteFeature_RepoError(t *testing.T) {
	repo := new(MockFeatureRepository)
	svc := NewFeatureService(repo, nil)

	repo.On("Remove", mock.Anything, uint(3)).Return(errs.ErrFeatureIDNotPresent)

	assert.Equal(t, errs.ErrFeatureIDNotPresent, svc.DeleteFeature(context.Background(), 3))
}
