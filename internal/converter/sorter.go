// =============================================================================
// Seatcard Sorter - Print Order
// =============================================================================
//
// Seat cards are printed in the order ushers walk the house:
//
//   1. rows with an unresolved location go last, in input order
//   2. performance date
//   3. level    : ORCH, GLRY, DRESS, 1ST TIER, 1ST BOX, 2ND TIER, 2ND BOX
//   4. section  : house order, see sectionOrder
//   5. row      : A..H, J..N, P..Z, AA, BB, CC (no I or O)
//   6. seat number
//
// Every resolved row is ranked before sorting; a level, section or row that
// has no rank stops the run instead of being guessed at.
//
// =============================================================================

package converter

import (
	"cmp"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

// =============================================================================
// RANK TABLES
// =============================================================================

var levelOrder = []string{"ORCH", "GLRY", "DRESS", "1ST TIER", "1ST BOX", "2ND TIER", "2ND BOX"}

var sectionOrder = []string{
	"3", "1", "2", "5", "25", "23", "22", "24", "4",
	"35", "33", "31", "32", "34",
	"A", "B", "C", "D", "E", "F", "G", "H",
	"45", "43", "41", "42", "44",
	"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH",
}

var rowOrder = []string{
	"A", "B", "C", "D", "E", "F", "G", "H",
	"J", "K", "L", "M", "N",
	"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"AA", "BB", "CC",
}

var (
	levelRank   = rankTable(levelOrder)
	sectionRank = rankTable(sectionOrder)
	rowRank     = rankTable(rowOrder)
)

// rankTable numbers the entries of order from 1.
func rankTable(order []string) map[string]int {
	ranks := make(map[string]int, len(order))
	for i, v := range order {
		ranks[v] = i + 1
	}
	return ranks
}

// =============================================================================
// SORT KEY
// =============================================================================

// SortKey is the print position of one row.
type SortKey struct {
	Unresolved bool
	Date       time.Time
	Level      int
	Section    int
	Row        int
	Seat       uint32
}

// SortKeyOf ranks a row. Unresolved rows get a key that only records that
// fact; their other fields are not inspected.
func SortKeyOf(row types.ResultRow) (SortKey, error) {
	if row.IsError() {
		return SortKey{Unresolved: true}, nil
	}

	key := SortKey{Date: row.PerformanceFullDate, Seat: row.SeatNumber}

	var ok bool
	if key.Level, ok = levelRank[row.Level]; !ok {
		return SortKey{}, errors.Wrapf(ErrUnknownLevel, "%q", row.Level)
	}
	if key.Section, ok = sectionRank[row.Section]; !ok {
		return SortKey{}, errors.Wrapf(ErrUnknownSection, "%q", row.Section)
	}
	if key.Row, ok = rowRank[row.Row]; !ok {
		return SortKey{}, errors.Wrapf(ErrUnknownRow, "%q", row.Row)
	}
	return key, nil
}

// Compare orders two keys. Two unresolved keys are equal.
func (k SortKey) Compare(o SortKey) int {
	switch {
	case k.Unresolved && o.Unresolved:
		return 0
	case k.Unresolved:
		return 1
	case o.Unresolved:
		return -1
	}

	if c := k.Date.Compare(o.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Level, o.Level); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Section, o.Section); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(k.Seat, o.Seat)
}

// Sort puts rows in print order, in place. Equal rows keep their input
// order. On error rows is left untouched.
func Sort(rows []types.ResultRow) error {
	type keyed struct {
		key SortKey
		row types.ResultRow
	}

	items := make([]keyed, len(rows))
	for i, row := range rows {
		key, err := SortKeyOf(row)
		if err != nil {
			return errors.Wrapf(err, "customer_no %s, location %q", row.CustomerNumber, row.Location)
		}
		items[i] = keyed{key: key, row: row}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return a.key.Compare(b.key)
	})

	for i := range items {
		rows[i] = items[i].row
	}
	return nil
}
