package supervisor

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	secretsFileName  = "secrets.json"
	databaseFileName = "database.db"
)

// DesktopSecrets are generated on the first launch of a desktop install and
// reused on every later one, so sessions and the administrator survive restarts
type DesktopSecrets struct {
	JWTSecret     string `json:"jwtSecret"`
	AdminPassword string `json:"adminPassword"`
}

// SecretsPath is where LoadOrCreateSecrets keeps the secrets of dataDir
func SecretsPath(dataDir string) string {
	return filepath.Join(dataDir, secretsFileName)
}

// LoadOrCreateSecrets reads the secrets stored in dataDir. Missing values are
// generated and written back with owner-only permissions.
func LoadOrCreateSecrets(dataDir string) (*DesktopSecrets, error) {
	path := SecretsPath(dataDir)
	secrets := &DesktopSecrets{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, secrets); err != nil {
			return nil, fmt.Errorf("corrupt desktop secrets in %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read desktop secrets: %w", err)
	}

	changed := false
	if len(secrets.JWTSecret) < 32 {
		if secrets.JWTSecret, err = randomHex(32); err != nil {
			return nil, err
		}
		changed = true
	}
	if secrets.AdminPassword == "" {
		if secrets.AdminPassword, err = randomPassword(18); err != nil {
			return nil, err
		}
		changed = true
	}
	if !changed {
		return secrets, nil
	}

	data, err = json.MarshalIndent(secrets, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to store desktop secrets: %w", err)
	}
	return secrets, nil
}

// DesktopEnv is the environment of a server child keeping its sqlite
// database in dataDir. It passes the production checks of the server
// configuration on an otherwise unconfigured machine.
func DesktopEnv(dataDir string, secrets *DesktopSecrets) []string {
	return []string{
		"FS_APP_ENV=production",
		"FS_DATABASE_DRIVER=sqlite",
		"FS_DATABASE_SQLITE_PATH=" + filepath.Join(dataDir, databaseFileName),
		"FS_DATABASE_AUTO_MIGRATE=true",
		"FS_JWT_SECRET=" + secrets.JWTSecret,
		"FS_APP_ADMIN_PASSWORD=" + secrets.AdminPassword,
	}
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func randomPassword(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
