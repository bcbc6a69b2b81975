package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvFileNotFoundIsIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
}

func TestLoadDotEnvLoadsValuesAndRespectsExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "LACUNA_TEST_FRESH=from-file\nLACUNA_TEST_EXISTING=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("LACUNA_TEST_EXISTING", "from-process")
	defer os.Unsetenv("LACUNA_TEST_FRESH")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("LACUNA_TEST_FRESH"); got != "from-file" {
		t.Errorf("LACUNA_TEST_FRESH = %q, want %q", got, "from-file")
	}
	if got := os.Getenv("LACUNA_TEST_EXISTING"); got != "from-process" {
		t.Errorf("LACUNA_TEST_EXISTING = %q, want %q", got, "from-process")
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("LACUNA_TEST_SET", "value")
	if got := EnvOr("LACUNA_TEST_SET", "fallback"); got != "value" {
		t.Errorf("EnvOr() = %q, want %q", got, "value")
	}
	if got := EnvOr("LACUNA_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("EnvOr() = %q, want %q", got, "fallback")
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"", false},
		{"0", false},
		{"no", false},
	}
	for _, tt := range tests {
		t.Setenv("LACUNA_TEST_BOOL", tt.value)
		if got := EnvBool("LACUNA_TEST_BOOL"); got != tt.want {
			t.Errorf("EnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
