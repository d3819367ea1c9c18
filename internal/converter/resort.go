package converter

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/location"
	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

// Resort restores the sort fields of rows read back from a result file and
// puts them in print order. A location not in canonical form marks the row
// unresolved. The full date is rebuilt from the MM/DD text in leapYear, so
// that 02/29 is accepted.
func Resort(rows []types.ResultRow, leapYear int) error {
	year := "/" + strconv.Itoa(leapYear)
	for i := range rows {
		row := &rows[i]
		location.ParseCanonical(row.Location).Apply(row)

		date, err := time.Parse("1/2/2006", row.PerformanceDate+year)
		if err != nil {
			return errors.Wrapf(types.ErrDate, "customer_no %s: %q", row.CustomerNumber, row.PerformanceDate)
		}
		row.PerformanceFullDate = date
	}
	return Sort(rows)
}
