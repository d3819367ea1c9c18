package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/seatcard-sorter/internal/location"
	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

var opening = time.Date(2019, 10, 5, 19, 30, 0, 0, time.UTC)

func newSource(customer uint32, date time.Time, section, loc string) types.SourceRow {
	years := 3
	return types.SourceRow{
		PerformanceName:  "Tosca",
		PerformanceDate:  date,
		CustomerNumber:   customer,
		Location:         loc,
		Section:          section,
		FirstName:        "Ann",
		LastName:         "Lee",
		LetterSalutation: "Ms. Lee",
		YearsSubscribed:  &years,
	}
}

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ann", "Lee", "Ann Lee"},
		{"  Ann ", " Lee  ", "Ann Lee"},
		{"Ann", "", "Ann"},
		{"", "Lee", "Lee"},
		{" ", "", ""},
		{"", "The Lee Household", "The Lee"},
		{"The Lee", "HOUSEHOLD", "The Lee"},
		{"Ann", "Leehousehold", "Ann Leehousehold"},
		{"Ann", "Lee household", "Ann Lee"},
		{"", "Household", "Household"},
		{"Ann", "Lee\u00a0 Household", "Ann Lee"},
		{"Ann", "Lee\n\t Household", "Ann Lee"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FullName(tt.first, tt.last), "%q %q", tt.first, tt.last)
	}
}

func TestTransformer_Transform(t *testing.T) {
	src := newSource(17, opening, "Orchestra - Section 5", "ORCH 5:A-12")
	src.Lists[0] = "Y"

	mapping := VersionMapping{"Bravo": {opening: "Bravo insert"}}
	res, err := NewTransformer(DefaultVersionNames, mapping).Transform(src)
	require.NoError(t, err)

	assert.Equal(t, "10/05", res.PerformanceDate)
	assert.Equal(t, opening, res.PerformanceFullDate)
	assert.Equal(t, "17", res.CustomerNumber)
	assert.Equal(t, "Ann Lee", res.FullName)
	assert.Equal(t, "Ms. Lee", res.LetterSalutation)
	assert.Equal(t, "3", res.YearsSubscribed)
	assert.Equal(t, "Bravo", res.Version)
	assert.Equal(t, map[string]string{"Bravo": "Bravo insert"}, res.Extra)

	assert.Equal(t, "ORCH 5:A-12", res.Location)
	assert.Equal(t, "ORCH", res.Level)
	assert.Equal(t, "5", res.Section)
	assert.Equal(t, "A", res.Row)
	assert.Equal(t, uint32(12), res.SeatNumber)
}

func TestTransformer_NoVersionSkipsMapping(t *testing.T) {
	src := newSource(17, opening, "Orchestra - Section 5", "ORCH 5:A-12")
	src.YearsSubscribed = nil

	mapping := VersionMapping{"": {opening: "should not be used"}}
	res, err := NewTransformer(DefaultVersionNames, mapping).Transform(src)
	require.NoError(t, err)

	assert.Empty(t, res.Version)
	assert.Empty(t, res.Extra)
	assert.Empty(t, res.YearsSubscribed)
}

func TestTransformer_Unresolved(t *testing.T) {
	src := newSource(17, opening, "", "ORCH 5:A-12")
	res, err := NewTransformer(nil, nil).Transform(src)
	require.NoError(t, err)
	assert.True(t, res.IsError())
	assert.Equal(t, "ERROR ORCH 5:A-12", res.Location)
}

func TestTransformer_Errors(t *testing.T) {
	src := newSource(17, opening, "Orchestra - Section 5", "ORCH 5:A-12")
	src.Lists[0], src.Lists[2] = "Y", "Y"
	_, err := NewTransformer(DefaultVersionNames, nil).Transform(src)
	assert.ErrorIs(t, err, ErrMultipleLists)

	src = newSource(23, opening, "Balcony", "ORCH 5:A-12")
	_, err = NewTransformer(DefaultVersionNames, nil).Transform(src)
	assert.ErrorIs(t, err, location.ErrSection)
	assert.Contains(t, err.Error(), "customer_no 23")
}
