package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "helpugee/internal/errors"
	"helpugee/internal/service"
)

// LoginHandler handles the login endpoint.
type LoginHandler struct {
	authService service.AuthService
}

// NewLoginHandler creates a new login handler.
func NewLoginHandler(authService service.AuthService) *LoginHandler {
	return &LoginHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	JWT string `json:"jwt"`
}

// Login godoc
// @Summary Log in with username and password
// @Tags login
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *LoginHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errs.ErrUserNotValid)
	}
	if req.Username == "" {
		return fail(c, errs.ErrUsernameNotBodyProperty)
	}
	if req.Password == "" {
		return fail(c, errs.ErrPasswordNotBodyProperty)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, LoginResponse{JWT: token})
}
