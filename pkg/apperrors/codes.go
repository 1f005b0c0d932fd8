package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeTokenMalformed     = "AUTH_TOKEN_MALFORMED"
	ErrCodeTokenMissing       = "AUTH_TOKEN_MISSING"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidInput     = "VALIDATION_INVALID_INPUT"
	ErrCodeEmptyUpdate      = "VALIDATION_EMPTY_UPDATE"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodeUserNotFound      = "RESOURCE_USER_NOT_FOUND"
	ErrCodePostNotFound      = "RESOURCE_POST_NOT_FOUND"
	ErrCodeTestimonialNotFound = "RESOURCE_TESTIMONIAL_NOT_FOUND"
	ErrCodeCaseStudyNotFound = "RESOURCE_CASE_STUDY_NOT_FOUND"
	ErrCodeContactNotFound   = "RESOURCE_CONTACT_NOT_FOUND"
	ErrCodeResourceExists    = "RESOURCE_ALREADY_EXISTS"
)

// Upstream errors (UPSTREAM_*)
const (
	ErrCodeMailSendFailed     = "UPSTREAM_MAIL_SEND_FAILED"
	ErrCodeUpstreamTimeout    = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
