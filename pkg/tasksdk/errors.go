package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field of every failure body.
const (
	ErrorCodeBadRequest         = "bad_request"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Detail)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// IsUnauthenticated is true for 401 responses: the token was missing,
// expired, blacklisted or otherwise rejected.
func IsUnauthenticated(err error) bool {
	return IsCode(err, ErrorCodeUnauthenticated)
}

// DetailOTPRequired is the detail of a login rejected for a missing or
// wrong second factor.
const DetailOTPRequired = "OTP code required or invalid"

// IsOTPRequired reports whether a login failed on the second factor only.
func IsOTPRequired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeInvalidCredentials && apiErr.Detail == DetailOTPRequired
}

// IsNotFound is true when the task does not exist or belongs to someone else.
func IsNotFound(err error) bool {
	return IsCode(err, ErrorCodeNotFound)
}

// parseErrorResponse turns a failure body into an *APIError. Bodies that
// are not JSON still yield an error carrying the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Code != "" {
		return apiErr
	}

	apiErr.Code = ErrorCodeServerError
	if resp.StatusCode == http.StatusUnauthorized {
		apiErr.Code = ErrorCodeUnauthenticated
	}
	apiErr.Detail = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return apiErr
}
