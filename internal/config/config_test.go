package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/foldernorm/internal/naming"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/projects", "/data/projects"},
		{"single trailing slash", "/data/projects/", "/data/projects"},
		{"multiple trailing slashes", "/data/projects///", "/data/projects"},
		{"root path", "/", "/"},
		{"relative path", "fotos", "fotos"},
		{"relative with slash", "fotos/", "fotos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.NormalizationOptions(); got != naming.DefaultOptions() {
		t.Errorf("default options = %+v, want %+v", got, naming.DefaultOptions())
	}
	if cfg.PreserveDots {
		t.Error("default PreserveDots should be false")
	}
	if cfg.Apply {
		t.Error("default Apply should be false (preview only)")
	}
	if cfg.DiskConflictsOnly {
		t.Error("in-batch conflict detection should be on by default")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty color mode", func(c *Config) { c.ColorMode = "" }, true},
		{"unknown color mode", func(c *Config) { c.ColorMode = "sometimes" }, true},
		{"yes without apply", func(c *Config) { c.AssumeYes = true }, true},
		{"yes with apply", func(c *Config) { c.AssumeYes, c.Apply = true, true }, false},
		{"menu with apply", func(c *Config) { c.Menu, c.Apply = true, true }, true},
		{"menu alone", func(c *Config) { c.Menu = true }, false},
		{"xlsx report", func(c *Config) { c.ReportPath = "out/Report.XLSX" }, false},
		{"csv report", func(c *Config) { c.ReportPath = "report.csv" }, false},
		{"txt report", func(c *Config) { c.ReportPath = "report.txt" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizationOptions_FreshValue(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.NormalizationOptions()
	cfg.Lowercase = false
	if !opts.Lowercase {
		t.Error("options value changed after Config was mutated")
	}

	cfg.SetNormalizationOptions(naming.Options{PreserveDots: true})
	if got := cfg.NormalizationOptions(); got != (naming.Options{PreserveDots: true}) {
		t.Errorf("round trip = %+v", got)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c *Config)
	}{
		{"no args keeps defaults", nil, func(t *testing.T, c *Config) {
			if c.NormalizationOptions() != naming.DefaultOptions() || c.Dir != "" {
				t.Errorf("got %+v", c)
			}
		}},
		{"negated switches", []string{"--no-lowercase", "--keep-accents", "--keep-spaces", "--keep-special", "--no-numbers", "--dots"},
			func(t *testing.T, c *Config) {
				want := naming.Options{PreserveDots: true}
				if got := c.NormalizationOptions(); got != want {
					t.Errorf("options = %+v, want %+v", got, want)
				}
			}},
		{"short behavior flags", []string{"-a", "-y", "-v"}, func(t *testing.T, c *Config) {
			if !c.Apply || !c.AssumeYes || !c.Verbose {
				t.Errorf("apply=%v yes=%v verbose=%v", c.Apply, c.AssumeYes, c.Verbose)
			}
		}},
		{"positional dir", []string{"--apply", "/data/fotos/"}, func(t *testing.T, c *Config) {
			if c.Dir != "/data/fotos" {
				t.Errorf("Dir = %q", c.Dir)
			}
		}},
		{"no-color wins over color", []string{"--color", "--no-color"}, func(t *testing.T, c *Config) {
			if c.ColorMode != ColorNever {
				t.Errorf("ColorMode = %q", c.ColorMode)
			}
		}},
		{"outputs", []string{"--report", "r.xlsx", "--journal", "j.db", "-l", "run.log", "--disk-conflicts-only"},
			func(t *testing.T, c *Config) {
				if c.ReportPath != "r.xlsx" || c.JournalPath != "j.db" || c.LogFile != "run.log" || !c.DiskConflictsOnly {
					t.Errorf("got %+v", c)
				}
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			tt.check(t, &cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	var buf bytes.Buffer
	Usage = &buf
	defer func() { Usage = os.Stderr }()

	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"a", "b"}); err == nil {
		t.Error("two positional args should fail")
	}
	if err := ParseFlags(&cfg, []string{"--bogus"}); err == nil {
		t.Error("unknown flag should fail")
	}

	buf.Reset()
	err := ParseFlags(&cfg, []string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("--help error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(buf.String(), "--keep-accents") {
		t.Errorf("usage missing flag list:\n%s", buf.String())
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "FOLDERNORM_DIR=/from/file\nFOLDERNORM_JOURNAL=/tmp/j.db\nFOLDERNORM_COLOR=never\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Process environment wins over the file.
	t.Setenv(EnvDir, "/from/env")
	t.Setenv(EnvVerbose, "yes")
	t.Setenv(EnvJournal, "")
	t.Setenv(EnvColor, "")
	os.Unsetenv(EnvJournal)
	os.Unsetenv(EnvColor)

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, envFile); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Dir != "/from/env" {
		t.Errorf("Dir = %q, want /from/env", cfg.Dir)
	}
	if cfg.JournalPath != "/tmp/j.db" {
		t.Errorf("JournalPath = %q", cfg.JournalPath)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be set from env")
	}
	// Switches are not env-configurable.
	if cfg.NormalizationOptions() != naming.DefaultOptions() {
		t.Error("ApplyEnv must not touch normalization switches")
	}
}

func TestApplyEnv_MissingFileIgnored(t *testing.T) {
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestApplyEnv_BadColor(t *testing.T) {
	t.Setenv(EnvColor, "rainbow")
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("invalid FOLDERNORM_COLOR should fail")
	}
}
