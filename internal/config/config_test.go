package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the user and local config lookups at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultT2048Config().Validate(); err != nil {
		t.Fatalf("DefaultT2048Config().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parseT2048(GetDefaultYAML("2048"))
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultT2048Config()
	if cfg.Board != def.Board || cfg.Theme != def.Theme ||
		cfg.Spawn.StartExponent != def.Spawn.StartExponent || cfg.Spawn.DelayMS != def.Spawn.DelayMS {
		t.Errorf("embedded config = %+v, want %+v", cfg, def)
	}
	if len(cfg.Spawn.Weights) != len(def.Spawn.Weights) {
		t.Fatalf("embedded weights = %v, want %v", cfg.Spawn.Weights, def.Spawn.Weights)
	}
	for i := range def.Spawn.Weights {
		if cfg.Spawn.Weights[i] != def.Spawn.Weights[i] {
			t.Errorf("weights[%d] = %+v, want %+v", i, cfg.Spawn.Weights[i], def.Spawn.Weights[i])
		}
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*T2048Config)
		wantErr string
	}{
		{"default", func(*T2048Config) {}, ""},
		{"size too small", func(c *T2048Config) { c.Board.Size = 1 }, "board.size"},
		{"size too large", func(c *T2048Config) { c.Board.Size = 17 }, "board.size"},
		{"start exponent zero", func(c *T2048Config) { c.Spawn.StartExponent = 0 }, "start_exponent"},
		{"negative delay", func(c *T2048Config) { c.Spawn.DelayMS = -1 }, "delay_ms"},
		{"no weights", func(c *T2048Config) { c.Spawn.Weights = nil }, "empty"},
		{"exponent out of range", func(c *T2048Config) {
			c.Spawn.Weights = []SpawnWeight{{Exponent: 64, Weight: 1}}
		}, "exponent"},
		{"negative weight", func(c *T2048Config) {
			c.Spawn.Weights = []SpawnWeight{{Exponent: 1, Weight: -1}}
		}, "negative"},
		{"zero sum", func(c *T2048Config) {
			c.Spawn.Weights = []SpawnWeight{{Exponent: 1, Weight: 0}}
		}, "sum to zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadT2048WithSource("")
	if err != nil {
		t.Fatalf("LoadT2048WithSource() error = %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, want %q", source, SourceEmbedded)
	}
	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, want 4", cfg.Board.Size)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "board:\n  size: 5\ntheme:\n  scheme: bluered\n")

	cfg, source, err := LoadT2048WithSource(path)
	if err != nil {
		t.Fatalf("LoadT2048WithSource() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Board.Size != 5 || cfg.Theme.Scheme != "bluered" {
		t.Errorf("cfg = %+v, want size 5 and bluered", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Spawn.DelayMS != 100 || len(cfg.Spawn.Weights) != 2 {
		t.Errorf("Spawn = %+v, want defaults", cfg.Spawn)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map")
	if _, err := LoadT2048(bad); err == nil {
		t.Error("malformed custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  size: 1\n")
	if _, err := LoadT2048(invalid); err == nil {
		t.Error("invalid custom file should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)
	userPath := filepath.Join(dir, ".tui2048", "configs", "2048.yaml")
	localPath := filepath.Join("configs", "2048.yaml")

	writeFile(t, filepath.Join(dir, localPath), "board:\n  size: 6\n")
	cfg, source, err := LoadT2048WithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != localPath || cfg.Board.Size != 6 {
		t.Errorf("got size %d from %q, want 6 from %q", cfg.Board.Size, source, localPath)
	}

	writeFile(t, userPath, "board:\n  size: 3\n")
	cfg, source, err = LoadT2048WithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != userPath || cfg.Board.Size != 3 {
		t.Errorf("got size %d from %q, want 3 from %q", cfg.Board.Size, source, userPath)
	}

	// A broken user file is skipped in favour of the next location.
	writeFile(t, userPath, "board:\n  size: 0\n")
	cfg, source, err = LoadT2048WithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != localPath || cfg.Board.Size != 6 {
		t.Errorf("got size %d from %q, want 6 from %q", cfg.Board.Size, source, localPath)
	}
}
