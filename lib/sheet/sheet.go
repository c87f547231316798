package sheet

import (
	"github.com/xuri/excelize/v2"
)

const sheetName = "Taxa"

// WriteRows writes a single-sheet workbook to path: a bold header row
// followed by the data rows.
func WriteRows(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", sheetName)
	if err != nil {
		return err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	err = f.SetSheetRow(sheetName, "A1", toCells(header))
	if err != nil {
		return err
	}
	headerEnd, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	err = f.SetCellStyle(sheetName, "A1", headerEnd, boldStyle)
	if err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		err = f.SetSheetRow(sheetName, cell, toCells(row))
		if err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func toCells(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}
