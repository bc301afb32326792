// 指示: miu200521358
// Package config は環境変数からCLI設定を読み込む。
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/miu200521358/mu_vrmspec/pkg/shared/base/logging"
)

// OutputFormat はCLIの出力形式を表す。
type OutputFormat string

const (
	// OUTPUT_FORMAT_TEXT は人が読む形式。
	OUTPUT_FORMAT_TEXT OutputFormat = "text"
	// OUTPUT_FORMAT_JSON はJSON形式。
	OUTPUT_FORMAT_JSON OutputFormat = "json"
)

// AppConfig はCLI全体の設定を表す。
type AppConfig struct {
	LogLevel string       `env:"MU_VRMSPEC_LOG_LEVEL" envDefault:"info"`
	Output   OutputFormat `env:"MU_VRMSPEC_OUTPUT" envDefault:"text"`
	// OutputDir が空の場合は入力ファイルの隣に日時付きディレクトリを作る。
	OutputDir string `env:"MU_VRMSPEC_OUTPUT_DIR"`
}

// ParseEnv は環境変数から設定を読み込む。
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadAppConfig はAppConfigを読み込み、値を検証する。
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := ParseEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	cfg.Output = OutputFormat(strings.ToLower(strings.TrimSpace(string(cfg.Output))))
	switch cfg.Output {
	case OUTPUT_FORMAT_TEXT, OUTPUT_FORMAT_JSON:
	default:
		return AppConfig{}, fmt.Errorf("MU_VRMSPEC_OUTPUT は text か json を指定してください: %s", cfg.Output)
	}
	return cfg, nil
}

// Level はログレベルを返す。
func (c AppConfig) Level() logging.LogLevel {
	return logging.ParseLogLevel(c.LogLevel)
}
