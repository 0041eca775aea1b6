package analysis

import (
	"strconv"
	"strings"
)

// ParseSpareCell decodes a SPARE-track cell such as "2 CHBR 1 CHG" into a
// count per block name. The grammar is a sequence of "<integer> <token>"
// pairs separated by whitespace. An empty or missing cell yields an empty
// map. Stray tokens that do not open a pair are skipped; repeated block names
// accumulate.
func ParseSpareCell(cell string) map[string]int {
	counts := make(map[string]int)
	fields := strings.Fields(cell)
	for i := 0; i+1 < len(fields); {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			i++
			continue
		}
		block := fields[i+1]
		if _, err := strconv.Atoi(block); err == nil {
			// Two numbers in a row: the first one dangles.
			i++
			continue
		}
		counts[block] += n
		i += 2
	}
	return counts
}
