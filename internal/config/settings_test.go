package config

import (
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	s, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	s, err := FromEnv(envMap(map[string]string{
		"MINE_SEED":           "42",
		"MINE_AUDIO":          "off",
		"MINE_ORE_TABLE":      "ores.json",
		"MINE_ROWS_PER_FRAME": "3",
		"MINE_PPROF_ADDR":     "-",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Seed != 42 || s.AudioEnabled || s.OreTablePath != "ores.json" || s.RowsPerFrame != 3 || s.PprofAddr != "" {
		t.Errorf("overrides not applied: %+v", s)
	}
}

func TestFromEnvRejectsMalformed(t *testing.T) {
	cases := []map[string]string{
		{"MINE_SEED": "abc"},
		{"MINE_AUDIO": "maybe"},
		{"MINE_ROWS_PER_FRAME": "0"},
		{"MINE_ROWS_PER_FRAME": "x"},
	}
	for _, c := range cases {
		if _, err := FromEnv(envMap(c)); err == nil {
			t.Errorf("expected error for %v", c)
		}
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("MINE_SEED=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MINE_SEED", "")
	os.Unsetenv("MINE_SEED")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Seed != 7 {
		t.Errorf("expected seed 7 from env file, got %d", s.Seed)
	}
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should not fail: %v", err)
	}
}
