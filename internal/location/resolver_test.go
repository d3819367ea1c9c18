package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/seatcard-sorter/internal/types"
)

func TestResolve_SingleMatch(t *testing.T) {
	res, err := Resolve("Orchestra - Section 5", "ORCH 5:A-12")
	require.NoError(t, err)

	assert.Equal(t, Resolved, res.Status)
	assert.Equal(t, "ORCH", res.Level)
	assert.Equal(t, "5", res.Section)
	assert.Equal(t, "A", res.Row)
	assert.Equal(t, uint32(12), res.Seat)
	assert.Equal(t, "ORCH 5:A-12", res.Location)
}

func TestResolve_Levels(t *testing.T) {
	tests := []struct {
		section, location, want string
	}{
		{"1st Tier Boxes - Box 3", "1ST BOX 3:B-2", "1ST BOX 3:B-2"},
		{"1st Tier - Section 41", "1ST TIER 4:AA-7", "1ST TIER 41:AA-7"},
		{"2nd Tier Boxes - Box C", "2ND BOX C:A-1", "2ND BOX C:A-1"},
		{"2nd Tier - Section 33", "2ND TIER 3:K-20", "2ND TIER 33:K-20"},
		{"Dress - Section 22", "DRESS 2:M-9,10", "DRESS 22:M-9"},
		{"Gallery - Section 1", "GLRY 1:Z-101", "GLRY 1:Z-101"},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			res, err := Resolve(tt.section, tt.location)
			require.NoError(t, err)
			assert.Equal(t, Resolved, res.Status)
			assert.Equal(t, tt.want, res.Location)
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	tests := []struct {
		name, section, location, wantLocation string
	}{
		{"empty section", "", "ORCH 5:A-12", "ERROR ORCH 5:A-12"},
		{"empty location", "Orchestra - Section 5", "", "ERROR "},
		{"level mismatch", "Gallery - Section 5", "ORCH 5:A-12", "ERROR ORCH 5:A-12"},
		{
			"three matches", "Orchestra - Section 5",
			"ORCH 5:A-1 ORCH 5:A-2 ORCH 5:A-3",
			"ERROR ORCH 5:A-1 ORCH 5:A-2 ORCH 5:A-3",
		},
		{
			"two matches, different levels", "Orchestra - Section 5",
			"ORCH 5:A-1 GLRY 6:A-2", "ERROR ORCH 5:A-1 GLRY 6:A-2",
		},
		{
			"two matches, distant aisles", "Orchestra - Section 5",
			"ORCH A:A-1 ORCH C:A-2", "ERROR ORCH A:A-1 ORCH C:A-2",
		},
		{
			"two matches, level does not fit section", "Gallery - Section 5",
			"ORCH B:C-4 ORCH C:C-5", "ERROR ORCH B:C-4 ORCH C:C-5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.section, tt.location)
			require.NoError(t, err)
			assert.Equal(t, Unresolved, res.Status)
			assert.Equal(t, types.ErrorLevel, res.Level)
			assert.Equal(t, tt.wantLocation, res.Location)
		})
	}
}

func TestResolve_SpanningAisle(t *testing.T) {
	for _, loc := range []string{"ORCH B:C-4 ORCH C:C-5", "ORCH C:C-4 ORCH B:C-5", "ORCH B:C-4 ORCH B:C-5"} {
		res, err := Resolve("Orchestra - Section 45", loc)
		require.NoError(t, err)
		assert.Equal(t, Resolved, res.Status, loc)
		assert.Equal(t, "ORCH 45:C-4", res.Location, loc)
	}
}

func TestResolve_Fatal(t *testing.T) {
	_, err := Resolve("Balcony - Section 5", "ORCH 5:A-12")
	assert.ErrorIs(t, err, ErrSection)

	_, err = Resolve("Orchestra - Section 5", "standing room")
	assert.ErrorIs(t, err, ErrLocation)

	_, err = Resolve("Orchestra - Section 5", "ORCH 5:A-99999999999")
	assert.ErrorIs(t, err, ErrSeatNumber)
}

func TestCodeForLabel(t *testing.T) {
	for _, l := range Levels {
		code, ok := CodeForLabel(l.Label)
		assert.True(t, ok)
		assert.Equal(t, l.Code, code)
	}
	_, ok := CodeForLabel("Balcony")
	assert.False(t, ok)
}

func TestParseCanonical(t *testing.T) {
	res := ParseCanonical("1ST TIER 41:AA-7")
	assert.Equal(t, Resolved, res.Status)
	assert.Equal(t, "1ST TIER", res.Level)
	assert.Equal(t, "41", res.Section)
	assert.Equal(t, "AA", res.Row)
	assert.Equal(t, uint32(7), res.Seat)

	for _, bad := range []string{"ERROR ORCH 5:A-12", "ORCH 5:A-123", "ORCH 5:A-12 ", ""} {
		res := ParseCanonical(bad)
		assert.Equal(t, Unresolved, res.Status, bad)
		assert.Equal(t, types.ErrorLevel, res.Level, bad)
		assert.Equal(t, bad, res.Location)
	}
}

func TestResolution_Apply(t *testing.T) {
	res, err := Resolve("Orchestra - Section 5", "ORCH 5:A-12")
	require.NoError(t, err)

	var row types.ResultRow
	res.Apply(&row)
	assert.Equal(t, "ORCH", row.Level)
	assert.Equal(t, "5", row.Section)
	assert.Equal(t, "A", row.Row)
	assert.Equal(t, uint32(12), row.SeatNumber)
	assert.Equal(t, "ORCH 5:A-12", row.Location)
	assert.False(t, row.IsError())
}
