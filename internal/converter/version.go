// =============================================================================
// Seatcard Sorter - Version Classification
// =============================================================================
//
// Every customer belongs to at most one mailing version. The export carries
// five list flags (list1..list5); the i-th flag maps to the i-th configured
// version name.
//
//   no flag set             -> no version
//   flag i set, i < names   -> names[i]
//   flag i set, i >= names  -> no version
//   more than one flag set  -> ErrMultipleLists
//
// A version-mapping file can attach a per-performance display text to each
// version; VersionMapping holds that table.
//
// =============================================================================

package converter

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

// DefaultVersionNames are used when no version-name file is given.
var DefaultVersionNames = []string{"Bravo", "Subs", "STBsNonBravo", "AllOtherSTBs"}

// ClassifyVersion picks the version named by the single set list flag.
// The boolean result is false when the row has no version.
func ClassifyVersion(customer uint32, flags [5]bool, names []string) (string, bool, error) {
	index := -1
	for i, set := range flags {
		if !set {
			continue
		}
		if index >= 0 {
			return "", false, errors.Wrapf(ErrMultipleLists, "customer_no %d", customer)
		}
		index = i
	}

	if index < 0 || index >= len(names) {
		return "", false, nil
	}
	return names[index], true, nil
}

// VersionMapping maps a version name and a performance date to the text
// printed for that version at that performance.
type VersionMapping map[string]map[time.Time]string

// NewVersionMapping builds a mapping from parsed mapping rows.
func NewVersionMapping(rows []types.VersionMappingRow) VersionMapping {
	m := make(VersionMapping)
	for _, row := range rows {
		for version, value := range row.Values {
			byDate, ok := m[version]
			if !ok {
				byDate = make(map[time.Time]string)
				m[version] = byDate
			}
			byDate[row.PerformanceDate] = value
		}
	}
	return m
}

// Lookup returns the display text for version at date.
func (m VersionMapping) Lookup(version string, date time.Time) (string, bool) {
	v, ok := m[version][date]
	return v, ok
}
