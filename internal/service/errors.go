package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so that login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure
	// (expired, wrong issuer, bad signature, malformed) into one class.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotReviewOwner is returned when a user tries to update or delete a
	// review authored by someone else.
	ErrNotReviewOwner = errors.New("you can only modify your own reviews")

	// ErrSearchTermRequired is returned when the review search is called
	// without a search term.
	ErrSearchTermRequired = errors.New("search term is required")

	// ErrVersionIsNotSpecified is returned at startup when the application
	// version is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
