package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/railops/yardwheel/core/analysis"
	"github.com/railops/yardwheel/core/events"
	"github.com/railops/yardwheel/core/logger"
	"github.com/railops/yardwheel/core/model"
	"github.com/railops/yardwheel/internal/eventbus"
)

// YardReaderConfig names the yard table's structural columns.
type YardReaderConfig struct {
	Sheet       string `json:"sheet"`
	TimeColumn  string `json:"time_column"`
	PullPrefix  string `json:"pull_prefix"`
	SparePrefix string `json:"spare_prefix"`
}

// SetDefaults applies the upstream workbook conventions.
func (c *YardReaderConfig) SetDefaults() {
	if c.Sheet == "" {
		c.Sheet = "Sheet1"
	}
	if c.TimeColumn == "" {
		c.TimeColumn = "Time"
	}
	if c.PullPrefix == "" {
		c.PullPrefix = "Pull"
	}
	if c.SparePrefix == "" {
		c.SparePrefix = "SPARE"
	}
}

// ReadYard loads the 24-hour yard occupancy snapshot. Header columns are
// classified by name: the time column, Pull-prefixed columns, SPARE-prefixed
// columns, and everything else as dedicated block columns. A missing time
// column or the absence of any Pull column is a MissingColumnError and
// aborts the run. Rows with unparseable time labels are dropped with a
// warning.
func ReadYard(path string, cfg YardReaderConfig, log logger.Logger, bus eventbus.EventBus) ([]model.YardRow, error) {
	cfg.SetDefaults()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open yard plan %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", cfg.Sheet, err)
	}
	if len(rows) == 0 {
		return nil, &model.MissingColumnError{Table: "yard", Column: cfg.TimeColumn}
	}

	header := rows[0]
	timeIdx := -1
	var pullIdx, spareIdx []int
	blockIdx := map[int]string{}
	spareName := map[int]string{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		switch {
		case strings.EqualFold(name, cfg.TimeColumn):
			timeIdx = i
		case strings.HasPrefix(name, cfg.PullPrefix):
			pullIdx = append(pullIdx, i)
		case strings.HasPrefix(name, cfg.SparePrefix):
			spareIdx = append(spareIdx, i)
			spareName[i] = name
		case name != "":
			blockIdx[i] = name
		}
	}
	if timeIdx < 0 {
		return nil, &model.MissingColumnError{Table: "yard", Column: cfg.TimeColumn}
	}
	if len(pullIdx) == 0 {
		return nil, &model.MissingColumnError{Table: "yard", Column: cfg.PullPrefix + "*"}
	}

	var out []model.YardRow
	for _, row := range rows[1:] {
		label := strings.TrimSpace(cell(row, timeIdx))
		if label == "" {
			continue
		}
		hour, err := analysis.ParseHour(label)
		if err != nil {
			if log != nil {
				log.Warnf("yard row dropped: %v", err)
			}
			if bus != nil {
				bus.Publish(events.WarningEvent{Reason: events.ReasonBadTimeLabel, Err: err})
			}
			continue
		}
		yr := model.YardRow{
			TimeLabel:   label,
			Hour:        hour,
			BlockCounts: make(map[string]int, len(blockIdx)),
			SpareCells:  make(map[string]string, len(spareIdx)),
		}
		for _, i := range pullIdx {
			yr.Pulls = append(yr.Pulls, strings.TrimSpace(cell(row, i)))
		}
		for i, block := range blockIdx {
			if n, ok := parseCount(cell(row, i)); ok {
				yr.BlockCounts[block] = n
			}
		}
		for _, i := range spareIdx {
			if v := strings.TrimSpace(cell(row, i)); v != "" {
				yr.SpareCells[spareName[i]] = v
			}
		}
		out = append(out, yr)
	}
	return out, nil
}

// parseCount reads a car count cell. Empty or non-numeric cells count as
// absent; fractional values truncate toward zero.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
