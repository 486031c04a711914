package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Sheet one worksheet normalized to a cell grid
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook an uploaded tabular file, decoded into sheets
type Workbook struct {
	FileName string
	Sheets   []Sheet
}

// SheetNames lists all sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// ReadWorkbook decodes an uploaded file into a Workbook. The format is picked
// from the file extension: .xlsx (excelize), legacy .xls, or .csv. A file
// that cannot be decoded returns an error and no partial workbook.
func ReadWorkbook(r io.Reader, filename string) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		return readXLS(data, filename)
	case ".csv":
		return readCSV(data, filename)
	default:
		return readXLSX(data, filename)
	}
}

func readXLSX(data []byte, filename string) (*Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = file.Close() }()

	wb := &Workbook{FileName: filename}
	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("no worksheet found in %s", filename)
	}
	return wb, nil
}

func readXLS(data []byte, filename string) (*Workbook, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found in %s", filename)
	}

	wb := &Workbook{FileName: filename}
	for i := 0; i < workbook.NumSheets(); i++ {
		sheet := workbook.GetSheet(i)
		if sheet == nil {
			continue
		}
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol()+1)
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: sheet.Name, Rows: rows})
	}
	return wb, nil
}

func readCSV(data []byte, filename string) (*Workbook, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // report rows have uneven widths

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return &Workbook{
		FileName: filename,
		Sheets:   []Sheet{{Name: name, Rows: rows}},
	}, nil
}
