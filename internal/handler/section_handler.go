package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"helpugee/internal/service"
)

// SectionHandler exposes read access to sections for the admin console.
type SectionHandler struct {
	svc service.SectionService
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(svc service.SectionService) *SectionHandler {
	return &SectionHandler{svc: svc}
}

// ListSections godoc
// @Summary List sections
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Section
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /section [get]
func (h *SectionHandler) ListSections(c echo.Context) error {
	sections, err := h.svc.ListSections(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sections)
}

// GetSection godoc
// @Summary Get section by id
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} model.Section
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /section/{id} [get]
func (h *SectionHandler) GetSection(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, err)
	}
	section, err := h.svc.GetSection(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, section)
}
