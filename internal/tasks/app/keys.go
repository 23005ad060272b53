package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

// InitSigningKey builds the HMAC signer/verifier from TASKS_SECRET_KEY.
//
// In dev an unset secret is replaced by a random one held only in memory,
// so every restart invalidates all issued tokens. Other environments must
// configure a secret.
func InitSigningKey(cfg Config, logger *slog.Logger) (*jwtx.HMAC, error) {
	secret := cfg.SecretKey
	if secret == "" {
		if !cfg.IsDev() {
			return nil, errors.New("TASKS_SECRET_KEY is not set")
		}

		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate ephemeral secret: %w", err)
		}
		secret = generated
		logger.Warn("TASKS_SECRET_KEY not set, using an ephemeral secret; tokens will not survive a restart")
	}

	h, err := jwtx.NewHMAC(cfg.Algorithm, []byte(secret), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise signer: %w", err)
	}

	logger.Info("token signer ready",
		"algorithm", h.Alg(),
		"access_ttl", cfg.AccessTokenTTL,
		"refresh_ttl", cfg.RefreshTokenTTL,
	)
	return h, nil
}
