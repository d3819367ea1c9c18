package converter

import (
	"slices"

	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

// Canonicalize keeps one row per customer: the most important one, where a
// resolved location beats an unresolved one and an earlier performance
// beats a later one. Ties keep input order. Customers appear in the order
// of their first row.
func Canonicalize(rows []types.ResultRow) []types.ResultRow {
	groups := make(map[string][]types.ResultRow)
	var order []string

	for _, row := range rows {
		if _, seen := groups[row.CustomerNumber]; !seen {
			order = append(order, row.CustomerNumber)
		}
		groups[row.CustomerNumber] = append(groups[row.CustomerNumber], row)
	}

	out := make([]types.ResultRow, 0, len(order))
	for _, customer := range order {
		group := groups[customer]
		slices.SortStableFunc(group, compareImportance)
		out = append(out, group[0])
	}
	return out
}

func compareImportance(a, b types.ResultRow) int {
	if ae, be := a.IsError(), b.IsError(); ae != be {
		if ae {
			return 1
		}
		return -1
	}
	return a.PerformanceFullDate.Compare(b.PerformanceFullDate)
}
