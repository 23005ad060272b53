package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can turn claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

var (
	ErrUnsupportedAlg = errors.New("jwtx: unsupported algorithm")
	ErrEmptySecret    = errors.New("jwtx: empty secret")
)

// HMAC signs and verifies tokens with a shared secret (HS256, HS384, HS512).
// It satisfies both Signer and Verifier and is safe for concurrent use.
type HMAC struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	parser *jwt.Parser
}

// NewHMAC returns an HMAC signer/verifier. alg is matched case-insensitively;
// an empty alg selects HS256.
func NewHMAC(alg string, secret []byte, leeway time.Duration) (*HMAC, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	var method *jwt.SigningMethodHMAC
	switch strings.ToUpper(strings.TrimSpace(alg)) {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, alg)
	}

	return &HMAC{
		method: method,
		secret: append([]byte(nil), secret...),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(leeway),
		),
	}, nil
}

func (h *HMAC) Alg() string { return h.method.Alg() }

func (h *HMAC) Sign(c Claims) (string, error) {
	tok, err := jwt.NewWithClaims(h.method, c).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return tok, nil
}
