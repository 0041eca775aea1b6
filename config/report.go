package config

import "fmt"

// ReportConfig controls where results are written.
type ReportConfig struct {
	// Path is the destination xlsx workbook.
	Path string `json:"path"`
	// CSVDir, when set, additionally writes one CSV per train there.
	CSVDir string `json:"csv_dir"`
}

func (c *ReportConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "results/yard_report.xlsx"
	}
}

func (c ReportConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("report: path is required")
	}
	return nil
}

// AnalysisConfig tunes the per-train fan-out.
type AnalysisConfig struct {
	// Workers bounds the number of trains analyzed concurrently.
	Workers int `json:"workers"`
}

func (c *AnalysisConfig) SetDefaults() {
	if c.Workers <= 0 {
		c.Workers = 4
	}
}
