package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `input:
  schedule_path: "data/outbound-plan.xlsx"
  yard_path: "data/alt_1.xlsx"
yard:
  pull_prefix: "Pull"
  spare_prefix: "SPARE"
report:
  path: "results/report.xlsx"
  csv_dir: "results/csv"
analysis:
  workers: 8
metrics:
  prometheus_enabled: true
  prometheus_port: ":9091"
notifier:
  enabled: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.SchedulePath != "data/outbound-plan.xlsx" {
		t.Errorf("schedule path: %q", cfg.Input.SchedulePath)
	}
	if cfg.Input.ScheduleSheet != "Worksheet1" {
		t.Errorf("schedule sheet default not applied: %q", cfg.Input.ScheduleSheet)
	}
	if cfg.Yard.Sheet != "Sheet1" || cfg.Yard.TimeColumn != "Time" {
		t.Errorf("yard defaults not applied: %+v", cfg.Yard)
	}
	if cfg.Analysis.Workers != 8 {
		t.Errorf("workers: %d", cfg.Analysis.Workers)
	}
	if !cfg.Metrics.PrometheusEnabled || cfg.Metrics.PrometheusPort != ":9091" {
		t.Errorf("metrics: %+v", cfg.Metrics)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `input:
  schedule_path: "a.xlsx"
  yard_path: "b.xlsx"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("YW_REPORT__PATH", "override.xlsx")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Report.Path != "override.xlsx" {
		t.Errorf("env override not applied: %q", cfg.Report.Path)
	}
}

func TestLoadRejectsMissingInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("report:\n  path: x.xlsx\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
