package analysis

import (
	"testing"

	"github.com/railops/yardwheel/core/model"
)

func TestCountArrivalsBlocksAndSpares(t *testing.T) {
	train := model.Train{ID: "ITHNAS", Blocks: []string{"EVL", "NAS"}}
	rows := []model.YardRow{
		{Hour: 1, BlockCounts: map[string]int{"EVL": 4, "CHG": 9}},
		{Hour: 1, BlockCounts: map[string]int{"NAS": 2}}, // same hour accumulates
		{Hour: 7, SpareCells: map[string]string{"SPARE 1": "3 EVL 1 CHG"}},
		{Hour: 12, BlockCounts: map[string]int{"EVL": 5}}, // clearing row
	}
	vec := CountArrivals(train, rows, 3)
	if vec[1] != 6 {
		t.Errorf("hour 1: want 6 got %d", vec[1])
	}
	if vec[7] != 3 {
		t.Errorf("hour 7: want 3 (spare EVL only) got %d", vec[7])
	}
	if vec[12] != 0 {
		t.Errorf("clearing row must be excluded, got %d", vec[12])
	}
	if vec.Total() != 9 {
		t.Errorf("total: want 9 got %d", vec.Total())
	}
}

func TestCountArrivalsClampsNegative(t *testing.T) {
	train := model.Train{ID: "T", Blocks: []string{"EVL"}}
	rows := []model.YardRow{
		{Hour: 3, BlockCounts: map[string]int{"EVL": -5}},
		{Hour: 4, BlockCounts: map[string]int{"EVL": 2}},
	}
	vec := CountArrivals(train, rows, -1)
	if vec[3] != 0 {
		t.Errorf("negative bucket must clamp to 0, got %d", vec[3])
	}
	if vec[4] != 2 {
		t.Errorf("hour 4: want 2 got %d", vec[4])
	}
}

func TestCountArrivalsMissingCountsAreZero(t *testing.T) {
	train := model.Train{ID: "T", Blocks: []string{"EVL"}}
	rows := []model.YardRow{
		{Hour: 0},
		{Hour: 9, SpareCells: map[string]string{"SPARE 2": ""}},
	}
	vec := CountArrivals(train, rows, -1)
	if vec.Total() != 0 {
		t.Errorf("expected empty vector, got %v", vec)
	}
}
