package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/mkurosawa/kotoba-api/internal/generation"
)

// classifyAPIError maps a Gemini API error to a generation sentinel.
// Authentication failures are kept distinct; rate limits and server errors
// are transient; everything else is a generic generation failure.
func classifyAPIError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %v", generation.ErrInvalidCredential, err)
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: rate limited: %v", generation.ErrTransientFailure, err)
		case apiErr.Code >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		default:
			return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
	}
	// Network-level errors without an API status are assumed transient.
	return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}

// retryable reports whether a classified error is worth another attempt.
func retryable(err error) bool {
	return errors.Is(err, generation.ErrTransientFailure)
}
