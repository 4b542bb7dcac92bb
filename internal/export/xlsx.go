package export

import (
	"fmt"

	"github.com/xolan/actionlog/internal/entry"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding exported entries
const SheetName = "Entries"

// FormatXLSX renders entries as a single-sheet workbook with the same
// header and columns as the CSV export. Minutes are stored as numbers.
func FormatXLSX(entries []entry.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			entry.FormatTimestamp(e.Start),
			entry.FormatTimestamp(e.Stop),
			e.Minutes,
			entry.StripDecoration(e.Action),
			e.Comment,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}
