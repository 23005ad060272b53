package service

import "errors"

var (
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not_found")
	ErrBadRequest         = errors.New("bad_request")
)

// DetailError attaches the message shown to the client to one of the
// sentinel kinds above. errors.Is matches the kind.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Kind.Error() + ": " + e.Detail }
func (e *DetailError) Unwrap() error { return e.Kind }

func withDetail(kind error, detail string) error {
	return &DetailError{Kind: kind, Detail: detail}
}

// Detail returns the client-facing message carried by err, if any.
func Detail(err error) string {
	var d *DetailError
	if errors.As(err, &d) {
		return d.Detail
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Message
	}
	return ""
}

// ValidationError reports the first input constraint a request broke.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

var (
	errUserTaken       = withDetail(ErrConflict, "Username or email already registered")
	errBadLogin        = withDetail(ErrInvalidCredentials, "Incorrect username, email or password")
	errBadOTP          = withDetail(ErrInvalidCredentials, "OTP code required or invalid")
	errBadRefresh      = withDetail(ErrUnauthenticated, "Invalid refresh token")
	errRefreshRejected = withDetail(ErrUnauthenticated, "Refresh token expired or invalid")
	errBadToken        = withDetail(ErrUnauthenticated, "Invalid token")
	errBadCredentials  = withDetail(ErrUnauthenticated, "Could not validate credentials")
)
