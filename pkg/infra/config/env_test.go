// 指示: miu200521358
package config

import (
	"strings"
	"testing"

	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
)

type envTestConfig struct {
	Count int `env:"MU_VRMSPEC_TEST_COUNT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Count != 123 {
		t.Fatalf("expected default count 123, got %d", cfg.Count)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("MU_VRMSPEC_TEST_COUNT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Output != OUTPUT_FORMAT_TEXT || cfg.Level() != logging.LOG_LEVEL_INFO || cfg.OutputDir != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadAppConfigOverrides(t *testing.T) {
	t.Setenv("MU_VRMSPEC_LOG_LEVEL", "DEBUG")
	t.Setenv("MU_VRMSPEC_OUTPUT", " JSON ")
	t.Setenv("MU_VRMSPEC_OUTPUT_DIR", "out")

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Output != OUTPUT_FORMAT_JSON || cfg.Level() != logging.LOG_LEVEL_DEBUG || cfg.OutputDir != "out" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadAppConfigRejectsUnknownOutput(t *testing.T) {
	t.Setenv("MU_VRMSPEC_OUTPUT", "yaml")
	if _, err := LoadAppConfig(); err == nil {
		t.Fatal("expected error")
	}
}
