package errors

// catalog maps translation keys to the server-side English message. Clients
// resolve the same keys against their own catalogs.
var catalog = map[string]string{
	"error.unknown_error": "An unknown error occurred.",
	"error.unauthorized":  "Unauthorized!",

	"error.authentication.user_not_active":         "This account is deactivated.",
	"error.authentication.section_not_active":      "The section of this account is deactivated.",
	"error.authentication.wrong_credentials":       "Wrong username or password.",
	"error.authentication.logout.missing_token":    "No access token was provided.",
	"error.authentication.logout.invalid_token":    "The access token is invalid.",
	"error.authentication.logout.user_not_present": "The account behind this token no longer exists.",
	"error.authentication.logout.user_not_active":  "The account behind this token is deactivated.",

	"error.repository.user.username_is_empty":  "The username must not be empty.",
	"error.repository.user.password_is_empty":  "The password must not be empty.",
	"error.repository.user.last_admin_removed": "At least one active administrator must remain.",

	"error.db.user.id_not_present_unique":       "No user exists with this id.",
	"error.db.user.username_not_present_unique": "No user exists with this username.",
	"error.db.user.username_is_not_unique":      "This username is already taken.",
	"error.db.section.id_not_present_unique":    "No section exists with this id.",
	"error.db.feature.id_not_present_unique":    "No feature exists with this id.",

	"error.service.util.id_is_not_url_parameter":       "The id must be an integer.",
	"error.service.util.category_is_not_url_parameter": "Unknown category.",
	"error.service.user.username_is_not_body_property": "The request body must contain a username.",
	"error.service.user.password_is_not_body_property": "The request body must contain a password.",
	"error.service.user.is_not_valid":                  "The request body is not a valid user.",
	"error.service.feature.is_not_valid":               "The request body is not a valid feature.",
}

// Translate resolves a translation key to its server-side message, falling
// back to the unknown-error message for unknown keys.
func Translate(key string) string {
	if msg, ok := catalog[key]; ok {
		return msg
	}
	return catalog[UnknownKey]
}
