// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the values that may be overridden per run.
type Settings struct {
	Seed         int64  // 0 means time-based
	AudioEnabled bool   // MINE_AUDIO=off disables the speaker entirely
	OreTablePath string // empty means the embedded table
	RowsPerFrame int
	PprofAddr    string // empty disables the profiling listener
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	return Settings{
		AudioEnabled: true,
		RowsPerFrame: RowsPerFrame,
		PprofAddr:    "localhost:6060",
	}
}

// Load reads .env files (if any) into the environment and builds Settings from it.
// A missing .env file is fine; malformed values are not.
func Load(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load env file: %w", err)
	}
	s, err := FromEnv(os.Getenv)
	if err != nil {
		return Settings{}, err
	}
	log.Printf("[Config] seed=%d audio=%t rowsPerFrame=%d oreTable=%q", s.Seed, s.AudioEnabled, s.RowsPerFrame, s.OreTablePath)
	return s, nil
}

// FromEnv builds Settings from a getenv-like lookup.
func FromEnv(getenv func(string) string) (Settings, error) {
	s := DefaultSettings()

	if v := getenv("MINE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid MINE_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}

	if v := getenv("MINE_AUDIO"); v != "" {
		switch strings.ToLower(v) {
		case "off", "0", "false", "no":
			s.AudioEnabled = false
		case "on", "1", "true", "yes":
			s.AudioEnabled = true
		default:
			return Settings{}, fmt.Errorf("invalid MINE_AUDIO %q", v)
		}
	}

	s.OreTablePath = getenv("MINE_ORE_TABLE")

	if v := getenv("MINE_ROWS_PER_FRAME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid MINE_ROWS_PER_FRAME %q: %w", v, err)
		}
		if n < 1 {
			return Settings{}, fmt.Errorf("MINE_ROWS_PER_FRAME must be positive, got %d", n)
		}
		s.RowsPerFrame = n
	}

	if v, ok := lookup(getenv, "MINE_PPROF_ADDR"); ok {
		s.PprofAddr = v
	}

	return s, nil
}

// lookup treats "-" as an explicit empty value so a listener can be switched off.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	if v == "" {
		return "", false
	}
	if v == "-" {
		return "", true
	}
	return v, true
}
