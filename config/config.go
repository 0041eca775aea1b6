package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/railops/yardwheel/core/metrics"
	"github.com/railops/yardwheel/infra/excel"
	"github.com/railops/yardwheel/infra/notify"
)

type Config struct {
	Input    InputConfig            `json:"input"`
	Yard     excel.YardReaderConfig `json:"yard"`
	Report   ReportConfig           `json:"report"`
	Analysis AnalysisConfig         `json:"analysis"`
	Metrics  metrics.Config         `json:"metrics"`
	Notifier notify.Config          `json:"notifier"`
}

// Load reads the configuration file (yaml or json) and applies YW_
// environment overrides (YW_REPORT__PATH=... maps to report.path).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("YW_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "yw_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Input.SetDefaults()
	cfg.Yard.SetDefaults()
	cfg.Report.SetDefaults()
	cfg.Analysis.SetDefaults()
	cfg.Notifier.SetDefaults()
	if err := cfg.Input.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Notifier.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
