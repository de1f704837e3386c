package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connect4.log")

	log, err := New("debug", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debugw("search finished", "column", 4)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"column":4`) {
		t.Errorf("log output %q should contain the column field", data)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connect4.log")

	log, err := New("warn", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Infow("move applied")
	_ = log.Sync()

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("info line should be filtered at warn level, got %q", data)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", "stderr"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
