package converter

import "github.com/ginjaninja78/seatcard-sorter/internal/types"

// FindDuplicates returns every run of adjacent rows that share a location
// and a performance date. rows must already be in print order. Each row
// appears in the output at most once.
func FindDuplicates(rows []types.ResultRow) []types.ResultRow {
	if len(rows) < 2 {
		return rows
	}

	var dupes []types.ResultRow
	lastAdded := -1
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.Location != prev.Location || cur.PerformanceDate != prev.PerformanceDate {
			continue
		}
		if lastAdded != i-1 {
			dupes = append(dupes, prev)
		}
		dupes = append(dupes, cur)
		lastAdded = i
	}
	return dupes
}
