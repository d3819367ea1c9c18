package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/seatcard-sorter/internal/csvparser"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"PerfDate", "Bravo", "Subs"},
		{"10/5/2019", "Bravo insert", "Subs insert"},
		{"10/6/2019", "Bravo only"},
	})

	schema := csvparser.NewSchema([]string{"PerfDate"}, []string{"Bravo", "Subs"}, true)
	rows, err := ReadRows(path, schema)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"PerfDate", "Bravo", "Subs"}, schema.ActualColumns())
	assert.Equal(t, "Subs insert", rows[0].Get("Subs"))
	assert.Equal(t, "Bravo only", rows[1].Get("Bravo"))
	assert.Equal(t, "", rows[1].Get("Subs"))
}

func TestReadRows_MissingHeader(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Bravo"},
		{"x"},
	})

	schema := csvparser.NewSchema([]string{"PerfDate"}, nil, true)
	_, err := ReadRows(path, schema)
	assert.ErrorIs(t, err, csvparser.ErrMissingHeader)
}

func TestBuildRows(t *testing.T) {
	t.Run("skips empty rows", func(t *testing.T) {
		schema := csvparser.NewSchema(nil, nil, true)
		rows, err := buildRows([][]string{
			{},
			{"a", "b"},
			{" ", ""},
			{"1", "2"},
		}, schema)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0].Get("b"))
	})

	t.Run("row wider than header", func(t *testing.T) {
		schema := csvparser.NewSchema(nil, nil, true)
		_, err := buildRows([][]string{
			{"a"},
			{"1", "2"},
		}, schema)
		assert.ErrorIs(t, err, csvparser.ErrFieldCount)
	})
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, IsWorkbook("export.XLSX"))
	assert.True(t, IsWorkbook("/tmp/map.xlsm"))
	assert.False(t, IsWorkbook("export.csv"))
}
