package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Bin != "claude" {
		t.Errorf("Default bin = %q, want %q", cfg.Bin, "claude")
	}
	if cfg.TimeoutSeconds != 180 {
		t.Errorf("Default timeoutSeconds = %d, want 180", cfg.TimeoutSeconds)
	}
	if cfg.TaskType != "fullstack" {
		t.Errorf("Default taskType = %q, want %q", cfg.TaskType, "fullstack")
	}
	if !cfg.Redact {
		t.Error("Default redact should be true")
	}
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 90}
	if cfg.Timeout() != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout())
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("GRADEGATE_BIN", "claude-nightly")
	t.Setenv("GRADEGATE_TIMEOUT_SECONDS", "60")
	t.Setenv("GRADEGATE_TASK_TYPE", "backend")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Bin != "claude-nightly" {
		t.Errorf("Bin = %q, want %q", cfg.Bin, "claude-nightly")
	}
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %d, want 60", cfg.TimeoutSeconds)
	}
	if cfg.TaskType != "backend" {
		t.Errorf("TaskType = %q, want %q", cfg.TaskType, "backend")
	}
}

func TestMergeEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("GRADEGATE_TIMEOUT_SECONDS", "not-a-number")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.TimeoutSeconds != 180 {
		t.Errorf("TimeoutSeconds = %d, want default 180", cfg.TimeoutSeconds)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"bin":            "/opt/bin/claude",
		"timeoutSeconds": "30",
		"taskType":       "frontend",
	})

	if cfg.Bin != "/opt/bin/claude" {
		t.Errorf("Bin = %q", cfg.Bin)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.TaskType != "frontend" {
		t.Errorf("TaskType = %q, want frontend", cfg.TaskType)
	}
}

func TestMergeOverrides_Nil(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, nil)
	if cfg != Default() {
		t.Error("Nil overrides should leave config unchanged")
	}
}

func TestMergeFile(t *testing.T) {
	cfg := Default()
	mergeFile(&cfg, Config{Bin: "claude-beta", TimeoutSeconds: 240})

	if cfg.Bin != "claude-beta" {
		t.Errorf("Bin = %q", cfg.Bin)
	}
	if cfg.TimeoutSeconds != 240 {
		t.Errorf("TimeoutSeconds = %d, want 240", cfg.TimeoutSeconds)
	}
	// Unset file fields keep defaults
	if cfg.TaskType != "fullstack" {
		t.Errorf("TaskType = %q, want default fullstack", cfg.TaskType)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "bin", "claude-x"); err != nil {
		t.Errorf("SetField bin error: %v", err)
	}
	if cfg.Bin != "claude-x" {
		t.Errorf("Bin = %q", cfg.Bin)
	}

	if err := SetField(&cfg, "timeoutSeconds", "45"); err != nil {
		t.Errorf("SetField timeoutSeconds error: %v", err)
	}
	if cfg.TimeoutSeconds != 45 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}

	if err := SetField(&cfg, "redact", "false"); err != nil {
		t.Errorf("SetField redact error: %v", err)
	}
	if cfg.Redact {
		t.Error("Redact should be false")
	}

	if err := SetField(&cfg, "timeoutSeconds", "soon"); err == nil {
		t.Error("SetField should reject non-integer timeout")
	}
	if err := SetField(&cfg, "nope", "x"); err == nil {
		t.Error("SetField should reject unknown keys")
	}
}
