package taskctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotLoggedIn is returned by commands that need a saved session.
var ErrNotLoggedIn = errors.New("not logged in, run: taskctl login <username>")

// savedSession is the on-disk form of a session. Refresh tokens rotate on
// every use, so it is rewritten after each authenticated command.
type savedSession struct {
	Server       string `json:"server"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func loadSession(path string) (savedSession, error) {
	var s savedSession

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, ErrNotLoggedIn
	}
	if err != nil {
		return s, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse session file %s: %w", path, err)
	}
	if s.RefreshToken == "" && s.AccessToken == "" {
		return s, ErrNotLoggedIn
	}
	return s, nil
}

// saveSession writes s readable by the owner only.
func saveSession(path string, s savedSession) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return os.Rename(tmp, path)
}

func removeSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
