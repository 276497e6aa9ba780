package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SecretsDir is where Docker mounts secrets.
var SecretsDir = "/run/secrets"

// ErrSecretNotFound is returned when the secret file does not exist.
var ErrSecretNotFound = errors.New("secret not found")

// ReadSecret reads a Docker secret by name.
func ReadSecret(secretName string) (string, error) {
	filePath := filepath.Join(SecretsDir, secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, filePath)
		}
		return "", fmt.Errorf("failed to read secret file %s: %w", filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", filePath)
	}
	return secret, nil
}

// SecretOrEnv returns the value already taken from the environment, or the
// Docker secret when the environment left it empty. A missing secret file
// is not an error.
func SecretOrEnv(envValue, secretName string) (string, error) {
	if envValue != "" {
		return envValue, nil
	}
	secret, err := ReadSecret(secretName)
	if err != nil {
		if errors.Is(err, ErrSecretNotFound) {
			return "", nil
		}
		return "", err
	}
	return secret, nil
}
