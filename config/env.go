package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoEnvFile is returned by LoadEnv when no .env file exists.
var ErrNoEnvFile = errors.New("no .env file found")

// LoadEnv loads environment variables from the first .env file found and
// returns its path. Variables already set in the environment win.
func LoadEnv() (string, error) {
	// Try multiple possible locations for .env file
	possiblePaths := []string{
		os.Getenv("JANSUVIDHA_ENV"),
		".env",
		"../.env",
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			break
		}
	}
	if loadedFile == "" {
		return "", ErrNoEnvFile
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return "", fmt.Errorf("error opening .env file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		// Remove quotes if present
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		os.Setenv(key, value)
	}

	return loadedFile, scanner.Err()
}
