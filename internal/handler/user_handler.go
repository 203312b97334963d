package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	errs "helpugee/internal/errors"
	"helpugee/internal/model"
	"helpugee/internal/service"
)

// UserHandler bundles the user administration endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user registration request. The password is
// generated server-side, never taken from the request.
type CreateUserRequest struct {
	Username      string  `json:"username" validate:"required"`
	Forename      *string `json:"forename"`
	Surname       *string `json:"surname"`
	Phone         *string `json:"phone"`
	RadioCallName *string `json:"radioCallName"`
	Section       uint    `json:"section" validate:"required"`
	IsActive      bool    `json:"isActive"`
}

// UpdateUserRequest represents a user edit. A non-empty password of at least
// six characters additionally triggers a password change.
type UpdateUserRequest struct {
	ID            uint    `json:"id" validate:"required"`
	Username      string  `json:"username" validate:"required"`
	Password      string  `json:"password"`
	Forename      *string `json:"forename"`
	Surname       *string `json:"surname"`
	Phone         *string `json:"phone"`
	RadioCallName *string `json:"radioCallName"`
	Section       uint    `json:"section" validate:"required"`
	IsActive      bool    `json:"isActive"`
}

// CreatedCredentials echoes the generated temporary password exactly once.
type CreatedCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserResponse is the registration response.
type CreateUserResponse struct {
	Msg  string             `json:"msg"`
	User CreatedCredentials `json:"user"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, err)
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Register a new user with a generated temporary password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User data"
// @Success 200 {object} CreateUserResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.ErrUserNotValid)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, errs.ErrUserNotValid)
	}

	user := &model.User{
		Username:      req.Username,
		Forename:      req.Forename,
		Surname:       req.Surname,
		Phone:         req.Phone,
		RadioCallName: req.RadioCallName,
		SectionID:     req.Section,
		IsActive:      req.IsActive,
	}
	tempPassword, err := h.svc.RegisterUser(c.Request().Context(), user)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, CreateUserResponse{
		Msg: "OK",
		User: CreatedCredentials{
			Username: user.Username,
			Password: tempPassword,
		},
	})
}

// UpdateUser godoc
// @Summary Edit a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "User data"
// @Success 200 {object} okResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.ErrUserNotValid)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, errs.ErrUserNotValid)
	}

	user := &model.User{
		Base:          model.Base{ID: req.ID},
		Username:      req.Username,
		Forename:      req.Forename,
		Surname:       req.Surname,
		Phone:         req.Phone,
		RadioCallName: req.RadioCallName,
		SectionID:     req.Section,
		IsActive:      req.IsActive,
	}
	if err := h.svc.EditUser(c.Request().Context(), user, req.Password); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, responseOK)
}

// DeleteUser godoc
// @Summary Soft-delete a user and scrub its personal data
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} okResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.svc.RemoveUser(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, responseOK)
}

// idParam parses the id path parameter.
func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errs.ErrIDNotURLParameter
	}
	return uint(id), nil
}
