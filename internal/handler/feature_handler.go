package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	errs "helpugee/internal/errors"
	"helpugee/internal/model"
	"helpugee/internal/service"
)

// FeatureHandler bundles the map feature endpoints.
type FeatureHandler struct {
	svc service.FeatureService
}

// NewFeatureHandler creates a new feature handler.
func NewFeatureHandler(svc service.FeatureService) *FeatureHandler {
	return &FeatureHandler{svc: svc}
}

// FeatureRequest represents a feature create/edit request.
type FeatureRequest struct {
	ID                       uint        `json:"id"`
	Label                    string      `json:"label" validate:"required"`
	Category                 string      `json:"category" validate:"required"`
	Geom                     model.Point `json:"geom"`
	Address                  string      `json:"address"`
	ServiceProduct           string      `json:"serviceProduct"`
	OpeningHours             string      `json:"openingHours"`
	WeSpeak                  string      `json:"weSpeak"`
	SpecificOfferForRefugees string      `json:"specificOfferForRefugees"`
	ContactInformation       string      `json:"contactInformation"`
	FromDate                 *time.Time  `json:"fromDate"`
	UntilDate                *time.Time  `json:"untilDate"`
	Other                    string      `json:"other"`
}

func (req *FeatureRequest) toModel() (*model.Feature, error) {
	category := model.Category(req.Category)
	if !category.Valid() {
		return nil, errs.ErrFeatureNotValid
	}
	return &model.Feature{
		Base:                     model.Base{ID: req.ID},
		Label:                    req.Label,
		Category:                 category,
		Geom:                     req.Geom,
		Address:                  req.Address,
		ServiceProduct:           req.ServiceProduct,
		OpeningHours:             req.OpeningHours,
		WeSpeak:                  req.WeSpeak,
		SpecificOfferForRefugees: req.SpecificOfferForRefugees,
		ContactInformation:       req.ContactInformation,
		FromDate:                 req.FromDate,
		UntilDate:                req.UntilDate,
		Other:                    req.Other,
	}, nil
}

// ListFeatures godoc
// @Summary List map features
// @Tags features
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} model.Feature
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/feature [get]
func (h *FeatureHandler) ListFeatures(c echo.Context) error {
	category := model.Category(c.QueryParam("category"))
	if category != "" && !category.Valid() {
		return fail(c, errs.ErrCategoryNotURLParameter)
	}
	features, err := h.svc.ListFeatures(c.Request().Context(), category)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, features)
}

// GetFeature godoc
// @Summary Get a map feature by id
// @Tags features
// @Produce json
// @Param id path int true "Feature ID"
// @Success 200 {object} model.Feature
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/feature/{id} [get]
func (h *FeatureHandler) GetFeature(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, err)
	}
	feature, err := h.svc.GetFeature(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, feature)
}

// CreateFeature godoc
// @Summary Create a map feature
// @Tags features
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FeatureRequest true "Feature data"
// @Success 200 {object} okResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/feature [post]
func (h *FeatureHandler) CreateFeature(c echo.Context) error {
	feature, err := h.bindFeature(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.svc.CreateFeature(c.Request().Context(), feature); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, responseOK)
}

// UpdateFeature godoc
// @Summary Edit a map feature
// @Tags features
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FeatureRequest true "Feature data"
// @Success 200 {object} okResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/feature [put]
func (h *FeatureHandler) UpdateFeature(c echo.Context) error {
	feature, err := h.bindFeature(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.svc.UpdateFeature(c.Request().Context(), feature); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, responseOK)
}

// DeleteFeature godoc
// @Summary Soft-delete a map feature
// @Tags features
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feature ID"
// @Success 200 {object} okResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/feature/{id} [delete]
func (h *FeatureHandler) DeleteFeature(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.svc.DeleteFeature(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, responseOK)
}

func (h *FeatureHandler) bindFeature(c echo.Context) (*model.Feature, error) {
	var req FeatureRequest
	if err := c.Bind(&req); err != nil {
		return nil, errs.ErrFeatureNotValid
	}
	if err := c.Validate(&req); err != nil {
		return nil, errs.ErrFeatureNotValid
	}
	return req.toModel()
}
