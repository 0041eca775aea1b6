package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railops/yardwheel/config"
	"github.com/railops/yardwheel/core/analysis"
	"github.com/railops/yardwheel/infra/excel"
	"github.com/railops/yardwheel/infra/logger"
)

var trainsCmd = &cobra.Command{
	Use:   "trains",
	Short: "List the trains parsed from the departure schedule",
	RunE:  listTrains,
}

func init() {
	rootCmd.AddCommand(trainsCmd)
}

func listTrains(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rows, err := excel.ReadSchedule(cfg.Input.SchedulePath, cfg.Input.ScheduleSheet)
	if err != nil {
		return err
	}
	trains, _ := analysis.BuildTrains(rows, logger.New("trains-command"), nil)
	for _, t := range trains {
		fmt.Printf("%-12s dep %-6s blocks %s\n", t.ID, t.Departure, strings.Join(t.Blocks, ", "))
	}
	fmt.Printf("%d trains (%d schedule rows)\n", len(trains), len(rows))
	return nil
}
