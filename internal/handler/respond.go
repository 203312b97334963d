package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	errs "helpugee/internal/errors"
)

// okResponse acknowledges a successful mutation.
type okResponse struct {
	Msg string `json:"msg"`
}

var responseOK = okResponse{Msg: "OK"}

// fail writes err as the uniform error envelope. Business failures answer
// with HTTP 500 regardless of cause; the translatable key carries the actual
// error identity. This matches the established API contract of the frontends.
func fail(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, errs.NewResponse(http.StatusInternalServerError, err))
}
