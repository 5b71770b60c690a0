package generation

import "errors"

// Common errors returned by mnemonic generators.
var (
	// ErrGenerationFailed is returned when generation fails for any general
	// reason.
	ErrGenerationFailed = errors.New("failed to generate mnemonic")

	// ErrInvalidResponse is returned when the model response cannot be
	// parsed into the expected shape. Callers treat it like any other
	// unavailability.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due
	// to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might
	// resolve on retry.
	ErrTransientFailure = errors.New("transient error during mnemonic generation")

	// ErrInvalidCredential is returned when the service rejects the API
	// key. Kept distinct so callers can disable further hint attempts and
	// surface a credential banner.
	ErrInvalidCredential = errors.New("language model rejected the API credential")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
