package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTweetEmpty is returned when a tweet has no content.
	ErrTweetEmpty = errors.New("tweet must not be empty")
	// ErrTweetTooLong is returned when a tweet exceeds the length limit.
	ErrTweetTooLong = errors.New("tweet exceeds 300 characters")
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrTweetEmpty:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TWEET_EMPTY")
	case ErrTweetTooLong:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TWEET_TOO_LONG")
	case ErrSelfFollow:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_FOLLOW")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
