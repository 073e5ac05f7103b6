// Package credentials loads LLM API keys from a TOML file, a .env file, or
// the environment. Loading is explicit: callers invoke it once at startup
// and pass the resulting store down as plain data.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInsecurePermissions is returned when the credentials file is readable
// by group or others.
var ErrInsecurePermissions = fmt.Errorf("credentials file has insecure permissions")

// Store holds API keys by backend family. A missing key is a normal state
// and reads as the empty string, never an error.
type Store struct {
	keys map[string]string
}

// fileSection is one provider block in credentials.toml, e.g.
//
//	[openai]
//	api_key = "sk-..."
type fileSection struct {
	APIKey string `toml:"api_key"`
}

// StandardPaths returns the credential file locations in priority order.
func StandardPaths() []string {
	paths := []string{"credentials.toml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "webbrief", "credentials.toml"),
			filepath.Join(home, ".webbrief", "credentials.toml"),
		)
	}

	return paths
}

// LoadDotEnv loads a .env file into the process environment. A missing file
// is ignored so .env stays optional.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Load returns a store backed by the first credentials file found at a
// standard path, or an env-only store when no file exists (not an error).
func Load() (*Store, string, error) {
	for _, path := range StandardPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		store, err := LoadFile(path)
		if err != nil {
			return nil, path, err
		}
		return store, path, nil
	}
	return &Store{}, "", nil
}

// LoadFile loads credentials from a specific file. The file must be
// owner-read-only (0400) on Unix.
func LoadFile(path string) (*Store, error) {
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if mode := info.Mode().Perm(); mode != 0400 {
			return nil, fmt.Errorf("%w: %s has mode %04o (must be 0400)",
				ErrInsecurePermissions, path, mode)
		}
	}

	var sections map[string]fileSection
	if _, err := toml.DecodeFile(path, &sections); err != nil {
		return nil, err
	}

	store := &Store{keys: make(map[string]string)}
	for name, section := range sections {
		if section.APIKey != "" {
			store.keys[strings.ToLower(name)] = section.APIKey
		}
	}
	return store, nil
}

// APIKey returns the key for a backend family ("openai", "gemini",
// "anthropic"). File sections win over environment variables.
func (s *Store) APIKey(family string) string {
	family = strings.ToLower(family)

	if s != nil {
		if key, ok := s.keys[family]; ok && key != "" {
			return key
		}
	}

	return os.Getenv(envVarForFamily(family))
}

// envVarForFamily maps a backend family to its conventional env var.
func envVarForFamily(family string) string {
	switch family {
	case "openai":
		return "OPENAI_API_KEY"
	case "gemini", "google":
		return "GEMINI_API_KEY"
	case "anthropic", "claude":
		return "ANTHROPIC_API_KEY"
	default:
		return strings.ToUpper(strings.ReplaceAll(family, "-", "_")) + "_API_KEY"
	}
}
