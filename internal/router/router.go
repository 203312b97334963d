package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"helpugee/internal/auth"
	"helpugee/internal/config"
	"helpugee/internal/handler"
	"helpugee/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authMW *auth.Middleware,
	loginHandler *handler.LoginHandler,
	userHandler *handler.UserHandler,
	sectionHandler *handler.SectionHandler,
	featureHandler *handler.FeatureHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/login", loginHandler.Login)

	adminOnly := []model.Role{model.RoleAdministrator}

	// user administration: reads open to any authenticated caller, writes
	// restricted to administrators
	user := e.Group("/user", authMW.VerifyAccess()...)
	user.Use(authMW.Authorize(adminOnly, false))
	user.GET("", userHandler.ListUsers)
	user.GET("/:id", userHandler.GetUser)
	user.POST("", userHandler.CreateUser)
	user.PUT("", userHandler.UpdateUser)
	user.DELETE("/:id", userHandler.DeleteUser)

	section := e.Group("/section", authMW.VerifyAccess()...)
	section.GET("", sectionHandler.ListSections)
	section.GET("/:id", sectionHandler.GetSection)

	// feature reads feed the public map and need no token
	api := e.Group("/api/v1")
	api.GET("/feature", featureHandler.ListFeatures)
	api.GET("/feature/:id", featureHandler.GetFeature)

	featureAdmin := api.Group("/feature", authMW.VerifyAccess()...)
	featureAdmin.Use(authMW.Authorize(adminOnly, false))
	featureAdmin.POST("", featureHandler.CreateFeature)
	featureAdmin.PUT("", featureHandler.UpdateFeature)
	featureAdmin.DELETE("/:id", featureHandler.DeleteFeature)

	// built frontends, when deployed alongside the API
	if cfg.AdminAppDir != "" {
		e.Static("/admin", cfg.AdminAppDir)
	}
	if cfg.WebAppDir != "" {
		e.Static("/", cfg.WebAppDir)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
