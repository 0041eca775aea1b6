package analysis

import (
	"strings"

	"github.com/railops/yardwheel/core/events"
	"github.com/railops/yardwheel/core/logger"
	"github.com/railops/yardwheel/core/model"
	"github.com/railops/yardwheel/internal/eventbus"
)

// BuildTrains converts raw schedule rows into validated trains, preserving
// schedule order. Rows whose block list is empty after trimming are excluded
// with a warning; the second return value counts those exclusions. A
// duplicate train identifier replaces the earlier occurrence in place
// without a warning: last one wins.
func BuildTrains(rows []model.ScheduleRow, log logger.Logger, bus eventbus.EventBus) ([]model.Train, int) {
	trains := make([]model.Train, 0, len(rows))
	index := make(map[string]int, len(rows))
	excluded := 0
	for _, row := range rows {
		id := strings.TrimSpace(row.TrainID)
		if id == "" {
			continue
		}
		blocks := splitBlocks(row.Blocks)
		if len(blocks) == 0 {
			warn(log, bus, id, events.ReasonNoBlocks, &model.NoBlocksError{TrainID: id})
			excluded++
			continue
		}
		hour, err := ParseHour(row.Departure)
		if err != nil {
			warn(log, bus, id, events.ReasonBadDeparture, err)
			excluded++
			continue
		}
		train := model.Train{
			ID:            id,
			Blocks:        blocks,
			Departure:     strings.TrimSpace(row.Departure),
			DepartureHour: hour,
		}
		if at, ok := index[id]; ok {
			trains[at] = train
			continue
		}
		index[id] = len(trains)
		trains = append(trains, train)
	}
	return trains, excluded
}

func splitBlocks(field string) []string {
	var blocks []string
	for _, tok := range strings.Split(field, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			blocks = append(blocks, tok)
		}
	}
	return blocks
}

func warn(log logger.Logger, bus eventbus.EventBus, trainID string, reason string, err error) {
	if log != nil {
		log.Warnf("train %s skipped (%s): %v", trainID, reason, err)
	}
	if bus != nil {
		bus.Publish(events.WarningEvent{TrainID: trainID, Reason: reason, Err: err})
	}
}
