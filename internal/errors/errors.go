package errors

// TranslatableError identifies a business failure by a dotted key resolved
// against the static message catalog. The key travels to the client so
// frontends can localize independently of the server text.
type TranslatableError struct {
	Translatable string
}

func (e *TranslatableError) Error() string {
	return Translate(e.Translatable)
}

// NewTranslatable creates an error carrying the given catalog key.
func NewTranslatable(key string) *TranslatableError {
	return &TranslatableError{Translatable: key}
}

var (
	// ErrUserNotActive is returned when a deactivated user tries to log in.
	ErrUserNotActive = NewTranslatable("error.authentication.user_not_active")
	// ErrSectionNotActive is returned when a non-admin logs in through a deactivated section.
	ErrSectionNotActive = NewTranslatable("error.authentication.section_not_active")
	// ErrWrongCredentials is returned when the password comparison fails.
	ErrWrongCredentials = NewTranslatable("error.authentication.wrong_credentials")
	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = NewTranslatable("error.authentication.logout.missing_token")
	// ErrInvalidToken is returned when the bearer token is malformed or not signed by us.
	ErrInvalidToken = NewTranslatable("error.authentication.logout.invalid_token")
	// ErrAccountNotPresent is returned when the user behind a valid token no longer exists.
	ErrAccountNotPresent = NewTranslatable("error.authentication.logout.user_not_present")
	// ErrAccountNotActive is returned when the user behind a valid token was deactivated.
	ErrAccountNotActive = NewTranslatable("error.authentication.logout.user_not_active")
	// ErrUnauthorized is returned when the caller's role is not in the allowed set.
	ErrUnauthorized = NewTranslatable("error.unauthorized")

	// ErrUsernameEmpty is returned when a user is persisted with an empty username.
	ErrUsernameEmpty = NewTranslatable("error.repository.user.username_is_empty")
	// ErrPasswordEmpty is returned when a user is persisted with an empty password.
	ErrPasswordEmpty = NewTranslatable("error.repository.user.password_is_empty")
	// ErrLastAdminRemoved blocks any mutation that would leave zero active administrators.
	ErrLastAdminRemoved = NewTranslatable("error.repository.user.last_admin_removed")

	// ErrUserIDNotPresent is returned when an id lookup does not match exactly one user.
	ErrUserIDNotPresent = NewTranslatable("error.db.user.id_not_present_unique")
	// ErrUsernameNotPresent is returned when a username lookup does not match exactly one user.
	ErrUsernameNotPresent = NewTranslatable("error.db.user.username_not_present_unique")
	// ErrUsernameNotUnique maps the store's unique constraint violation on insert.
	ErrUsernameNotUnique = NewTranslatable("error.db.user.username_is_not_unique")
	// ErrSectionIDNotPresent is returned when an id lookup does not match exactly one section.
	ErrSectionIDNotPresent = NewTranslatable("error.db.section.id_not_present_unique")
	// ErrFeatureIDNotPresent is returned when an id lookup does not match exactly one feature.
	ErrFeatureIDNotPresent = NewTranslatable("error.db.feature.id_not_present_unique")

	// ErrIDNotURLParameter is returned when a path parameter is not an integer id.
	ErrIDNotURLParameter = NewTranslatable("error.service.util.id_is_not_url_parameter")
	// ErrCategoryNotURLParameter is returned when a category parameter is unknown.
	ErrCategoryNotURLParameter = NewTranslatable("error.service.util.category_is_not_url_parameter")
	// ErrUsernameNotBodyProperty is returned when a request body lacks a username.
	ErrUsernameNotBodyProperty = NewTranslatable("error.service.user.username_is_not_body_property")
	// ErrPasswordNotBodyProperty is returned when a request body lacks a password.
	ErrPasswordNotBodyProperty = NewTranslatable("error.service.user.password_is_not_body_property")
	// ErrUserNotValid is returned when a request body does not describe a valid user.
	ErrUserNotValid = NewTranslatable("error.service.user.is_not_valid")
	// ErrFeatureNotValid is returned when a request body does not describe a valid feature.
	ErrFeatureNotValid = NewTranslatable("error.service.feature.is_not_valid")
)

// UnknownKey is the fallback translation key for errors without one.
const UnknownKey = "error.unknown_error"

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMsg     string `json:"error_msg"`
	Translatable string `json:"translatable"`
}

// NewResponse builds the envelope for err with the given HTTP status.
func NewResponse(status int, err error) ErrorResponse {
	return ErrorResponse{
		ErrorCode:    status,
		ErrorMsg:     err.Error(),
		Translatable: Key(err),
	}
}

// Key returns the translation key of err, or the unknown-error fallback.
func Key(err error) string {
	if te, ok := err.(*TranslatableError); ok {
		return te.Translatable
	}
	return UnknownKey
}
