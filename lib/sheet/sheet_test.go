package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.xlsx")

	header := []string{"Species", "Subspecies", "Common Name"}
	rows := [][]string{
		{"Eurytides phaon", "phaon", "Mexican Kite-Swallowtail"},
		{"Microtia elvira", "elvira", ""},
	}
	err := WriteRows(path, header, rows)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Taxa"}, f.GetSheetList())

	got, err := f.GetRows("Taxa")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, header, got[0])
	require.Equal(t, []string{"Eurytides phaon", "phaon", "Mexican Kite-Swallowtail"}, got[1])
	// trailing empty cells are not round-tripped by GetRows
	require.Equal(t, []string{"Microtia elvira", "elvira"}, got[2])

	headerStyle, err := f.GetCellStyle("Taxa", "A1")
	require.NoError(t, err)
	dataStyle, err := f.GetCellStyle("Taxa", "A2")
	require.NoError(t, err)
	require.NotEqual(t, dataStyle, headerStyle)
}
