package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/foldernorm/internal/config"
)

func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := quietConfig()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	var buf bytes.Buffer
	l.SetOutput(&buf, &buf)
	l.Info("test message")
	if !strings.Contains(buf.String(), "[INFO] test message") {
		t.Errorf("output: %q", buf.String())
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "foldernorm.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	l.Info("to file")
	l.Conflict("a -> b")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[INFO] to file")) || !bytes.Contains(b, []byte("[CONFLICT] a -> b")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Contains(b, []byte("\033[")) {
		t.Errorf("log file contains ANSI codes: %q", string(b))
	}
}

func TestLogger_Levels(t *testing.T) {
	cfg := quietConfig()
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	l.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }

	l.Success("ok")
	l.Warn("careful")
	l.Error("broken")
	l.Debug(false, "hidden")
	l.DebugV("also hidden")
	l.Debug(true, "shown")

	want := "2026-03-01 09:30:00 [SUCCESS] ok\n" +
		"2026-03-01 09:30:00 [WARN] careful\n" +
		"2026-03-01 09:30:00 [DEBUG] shown\n"
	if out.String() != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", out.String(), want)
	}
	if errOut.String() != "2026-03-01 09:30:00 [ERROR] broken\n" {
		t.Errorf("stderr: %q", errOut.String())
	}
}

func TestLogger_ColorAlways(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		never := quietConfig()
		NewLogger(&never)
	}()

	var buf bytes.Buffer
	l.SetOutput(&buf, &buf)
	l.Conflict("x")
	if !strings.Contains(buf.String(), "\033[1;38;5;208m[CONFLICT]\033[0m x") {
		t.Errorf("colored output: %q", buf.String())
	}
}
