package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHMAC(t *testing.T) {
	for alg, want := range map[string]string{"": "HS256", "hs256": "HS256", "HS384": "HS384", "HS512": "HS512"} {
		h, err := jwtx.NewHMAC(alg, testSecret, 0)
		require.NoError(t, err)
		require.Equal(t, want, h.Alg())
	}

	_, err := jwtx.NewHMAC("RS256", testSecret, 0)
	require.ErrorIs(t, err, jwtx.ErrUnsupportedAlg)

	_, err = jwtx.NewHMAC("HS256", nil, 0)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)
}

func TestHMACSignVerify(t *testing.T) {
	h, err := jwtx.NewHMAC("HS256", testSecret, 0)
	require.NoError(t, err)

	tok, err := h.Sign(jwtx.NewRefreshClaims(7, time.Hour, time.Now()))
	require.NoError(t, err)

	c, err := h.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "7", c.Subject)
	require.True(t, c.IsRefresh())
}

func TestHMACRejects(t *testing.T) {
	h, err := jwtx.NewHMAC("HS256", testSecret, 0)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewAccessClaims(1, time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHMAC("HS256", []byte("another-secret"), 0)
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewAccessClaims(1, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("different hmac algorithm", func(t *testing.T) {
		hs512, err := jwtx.NewHMAC("HS512", testSecret, 0)
		require.NoError(t, err)
		tok, err := hs512.Sign(jwtx.NewAccessClaims(1, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.Error(t, err)
	})

	t.Run("alg none", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewAccessClaims(1, time.Minute, time.Now())).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.Error(t, err)
	})

	t.Run("missing exp", func(t *testing.T) {
		c := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
		tok, err := h.Sign(c)
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestHMACLeeway(t *testing.T) {
	h, err := jwtx.NewHMAC("HS256", testSecret, 30*time.Second)
	require.NoError(t, err)

	// Expired ten seconds ago, inside the leeway.
	tok, err := h.Sign(jwtx.NewAccessClaims(1, time.Minute, time.Now().Add(-70*time.Second)))
	require.NoError(t, err)

	_, err = h.Verify(tok)
	require.NoError(t, err)
}
