package config

import "fmt"

// InputConfig locates the two source workbooks.
type InputConfig struct {
	// SchedulePath is the departure schedule workbook.
	SchedulePath string `json:"schedule_path"`
	// ScheduleSheet is the sheet holding the schedule rows.
	ScheduleSheet string `json:"schedule_sheet"`
	// YardPath is the 24-hour yard occupancy workbook.
	YardPath string `json:"yard_path"`
}

// SetDefaults applies the upstream workbook conventions.
func (c *InputConfig) SetDefaults() {
	if c.ScheduleSheet == "" {
		c.ScheduleSheet = "Worksheet1"
	}
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	if c.SchedulePath == "" {
		return fmt.Errorf("input: schedule_path is required")
	}
	if c.YardPath == "" {
		return fmt.Errorf("input: yard_path is required")
	}
	return nil
}
