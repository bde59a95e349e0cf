package parser

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

// LoadSheetRows opens an xlsx stream and returns the raw rows of the
// named sheet, or of the first sheet when name is empty. The workbook
// is closed before returning; the core only ever sees plain rows.
func LoadSheetRows(reader io.Reader, sheet string) ([][]string, error) {
	wb, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
