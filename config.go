// config.go
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config は「ユーザー設定」をまとめたもの
type Config struct {
	Mode          string        `mapstructure:"mode"`           // single / multi / inspect
	Core          int           `mapstructure:"core"`           // single / inspect で使うコア（T-50 なら 50）
	ReferenceCore int           `mapstructure:"reference_core"` // スイープ上限を決めるコア（0 なら自動）
	Band          Band          `mapstructure:"band"`
	Inspect       InspectConfig `mapstructure:"inspect"`
	PrintEvery    int           `mapstructure:"print_every"`
	XLSXFile      string        `mapstructure:"xlsx_file"` // "" なら保存しない
	TSVFile       string        `mapstructure:"tsv_file"`  // "" なら保存しない
	LogLevel      string        `mapstructure:"log_level"`
	MetricsAddr   string        `mapstructure:"metrics_addr"` // "" なら /metrics を出さない
}

// LocalOverride は config_local.go から差し替える
var LocalOverride func(cfg *Config)

// ============================================================
// ユーザー設定（ここから）
// ============================================================

func DefaultConfig() Config {
	// 全コアの表は数分かかるので、デフォルトは T-50 単体
	mode := string(ModeSingle)
	core := 50

	// 0 なら single は core 自身、multi は T-200（最大ターン数が一番多い）
	referenceCore := 0

	// 0.001〜100 MHz を 1 kHz 刻み
	band := DefaultBand

	// 進行状況の表示間隔（行数）
	printEvery := 50

	return Config{
		Mode:          mode,
		Core:          core,
		ReferenceCore: referenceCore,
		Band:          band,
		Inspect:       DefaultInspectConfig(),
		PrintEvery:    printEvery,
		XLSXFile:      "",
		TSVFile:       "",
		LogLevel:      "info",
		MetricsAddr:   "",
	}
}

// ============================================================
// ユーザー設定（ここまで）
// ============================================================

// loadConfig は loadcoil.toml（/etc/loadcoil、カレント、dirs の順）と
// LOADCOIL_ で始まる環境変数を DefaultConfig に重ねる。
// ファイルがなくてもエラーにはしない。
func loadConfig(dirs ...string) (Config, error) {
	def := DefaultConfig()
	if LocalOverride != nil {
		LocalOverride(&def)
	}

	v := viper.New()
	v.SetConfigName("loadcoil")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc/loadcoil")
	v.AddConfigPath(".")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetEnvPrefix("LOADCOIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// デフォルト値（環境変数を効かせるにはキーが登録されている必要がある）
	v.SetDefault("mode", def.Mode)
	v.SetDefault("core", def.Core)
	v.SetDefault("reference_core", def.ReferenceCore)
	v.SetDefault("band.start", def.Band.Start)
	v.SetDefault("band.stop", def.Band.Stop)
	v.SetDefault("band.step", def.Band.Step)
	v.SetDefault("inspect.band.start", def.Inspect.Band.Start)
	v.SetDefault("inspect.band.stop", def.Inspect.Band.Stop)
	v.SetDefault("inspect.band.step", def.Inspect.Band.Step)
	v.SetDefault("inspect.tap_frequency", def.Inspect.TapFrequency)
	v.SetDefault("inspect.tap_step", def.Inspect.TapStep)
	v.SetDefault("inspect.tap_stop", def.Inspect.TapStop)
	v.SetDefault("print_every", def.PrintEvery)
	v.SetDefault("xlsx_file", def.XLSXFile)
	v.SetDefault("tsv_file", def.TSVFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("metrics_addr", def.MetricsAddr)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := ParseMode(cfg.Mode); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
