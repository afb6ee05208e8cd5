package utils

import "errors"

var (
	ErrBridgeNotFound     = errors.New("bridge not found")
	ErrDistrictNotFound   = errors.New("district not found")
	ErrInvalidDistrictID  = errors.New("invalid district id")
	ErrInvalidYearBuilt   = errors.New("year built must be a whole number")
	ErrNameRequired       = errors.New("bridge name is required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUploadFailed       = errors.New("upload failed")
	ErrDatabaseError      = errors.New("database error")
)

// IsValidationError reports whether err should be answered with 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDistrictID) ||
		errors.Is(err, ErrInvalidYearBuilt) ||
		errors.Is(err, ErrNameRequired)
}

// IsSubmissionError reports whether a create request was rejected because
// of what the client sent, including a reference to a missing district.
func IsSubmissionError(err error) bool {
	return IsValidationError(err) || errors.Is(err, ErrDistrictNotFound)
}
