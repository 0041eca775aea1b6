package analysis

import (
	"testing"

	"github.com/railops/yardwheel/core/events"
	"github.com/railops/yardwheel/core/model"
	"github.com/railops/yardwheel/infra/logger"
	"github.com/railops/yardwheel/internal/eventbus"
)

func TestBuildTrains(t *testing.T) {
	rows := []model.ScheduleRow{
		{TrainID: "ITHNAS", Departure: "3:30", Blocks: "EVL, NAS"},
		{TrainID: "ALCH", Departure: "14:00", Blocks: " CHBR ,, CHG "},
	}
	trains, excluded := BuildTrains(rows, logger.NopLogger{}, nil)
	if len(trains) != 2 || excluded != 0 {
		t.Fatalf("expected 2 trains and no exclusions, got %d/%d", len(trains), excluded)
	}
	if trains[0].ID != "ITHNAS" || trains[0].DepartureHour != 3 {
		t.Errorf("unexpected first train %+v", trains[0])
	}
	if got := trains[1].Blocks; len(got) != 2 || got[0] != "CHBR" || got[1] != "CHG" {
		t.Errorf("blocks not trimmed: %v", got)
	}
}

func TestBuildTrainsExcludesEmptyBlocks(t *testing.T) {
	bus := eventbus.New()
	ch := bus.Subscribe()
	rows := []model.ScheduleRow{
		{TrainID: "NOBLK", Departure: "6:00", Blocks: " , , "},
		{TrainID: "OK", Departure: "7:00", Blocks: "EVL"},
	}
	trains, excluded := BuildTrains(rows, logger.NopLogger{}, bus)
	if len(trains) != 1 || trains[0].ID != "OK" {
		t.Fatalf("expected only OK, got %+v", trains)
	}
	if excluded != 1 {
		t.Fatalf("expected 1 exclusion, got %d", excluded)
	}
	ev := <-ch
	w, ok := ev.(events.WarningEvent)
	if !ok || w.TrainID != "NOBLK" || w.Reason != events.ReasonNoBlocks {
		t.Fatalf("expected no_blocks warning for NOBLK, got %+v", ev)
	}
}

func TestBuildTrainsBadDeparture(t *testing.T) {
	rows := []model.ScheduleRow{{TrainID: "BADT", Departure: "noon", Blocks: "EVL"}}
	trains, excluded := BuildTrains(rows, logger.NopLogger{}, nil)
	if len(trains) != 0 || excluded != 1 {
		t.Fatalf("expected one exclusion, got %+v (%d excluded)", trains, excluded)
	}
}

func TestBuildTrainsDuplicateLastWins(t *testing.T) {
	rows := []model.ScheduleRow{
		{TrainID: "DUP", Departure: "1:00", Blocks: "AAA"},
		{TrainID: "MID", Departure: "2:00", Blocks: "BBB"},
		{TrainID: "DUP", Departure: "5:00", Blocks: "CCC"},
	}
	trains, excluded := BuildTrains(rows, logger.NopLogger{}, nil)
	if len(trains) != 2 {
		t.Fatalf("expected 2 trains got %d", len(trains))
	}
	// The duplicate keeps its original position but carries the last row.
	if trains[0].ID != "DUP" || trains[0].DepartureHour != 5 || trains[0].Blocks[0] != "CCC" {
		t.Errorf("last occurrence should win: %+v", trains[0])
	}
	// A collapsed duplicate is not an exclusion and emits no warning.
	if excluded != 0 {
		t.Errorf("expected 0 exclusions, got %d", excluded)
	}
}
