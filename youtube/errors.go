package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("youtube api key is not set")
	// ErrInvalidQuery is returned for blank agent or map names.
	ErrInvalidQuery = errors.New("invalid search query")
	// ErrMalformedResponse is returned when the body is not a search result.
	ErrMalformedResponse = errors.New("malformed search response")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("youtube returned status %d", e.Code)
	}
	return fmt.Sprintf("youtube returned status %d: %s", e.Code, e.Message)
}
