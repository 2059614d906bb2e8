// Package filex contains small filesystem helpers for the client's local
// data directory and its per-install secret.
package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/noteskeeper/internal/common"
)

// EnsureDir creates dir (and parents) if missing and returns its path.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// LoadOrCreateSecret reads the per-install secret from path, generating and
// persisting a new 32-byte secret on first use. The file is created with
// owner-only permissions.
func LoadOrCreateSecret(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read secret %s: %w", path, err)
	}

	if _, err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	secret := common.GenerateRandByteArray(32)
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("write secret %s: %w", path, err)
	}
	return secret, nil
}
