package analysis

import "github.com/railops/yardwheel/core/model"

// CountArrivals accumulates per-hour car counts for the train from every
// yard row except the clearing row. Dedicated block columns contribute
// directly; SPARE cells contribute the parsed count of each matching block.
// Multiple rows on the same hour accumulate. Buckets are clamped to zero
// after summation.
func CountArrivals(train model.Train, rows []model.YardRow, clearingRow int) model.ArrivalVector {
	var vec model.ArrivalVector
	for i, row := range rows {
		if i == clearingRow {
			continue
		}
		h := row.Hour
		for _, block := range train.Blocks {
			vec[h] += row.BlockCounts[block]
		}
		for _, cell := range row.SpareCells {
			if cell == "" {
				continue
			}
			counts := ParseSpareCell(cell)
			for _, block := range train.Blocks {
				vec[h] += counts[block]
			}
		}
	}
	for h := range vec {
		if vec[h] < 0 {
			vec[h] = 0
		}
	}
	return vec
}
