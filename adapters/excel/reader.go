package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SampleReader reads two numeric columns out of an Excel or CSV file. The
// first row is treated as a header naming the columns.
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewSampleReader creates a reader for the given file, inferring the
// format from the extension.
func NewSampleReader(filePath string) *SampleReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &SampleReader{filePath: filePath, fileType: fileType}
}

// ReadSamples extracts the two named columns as numeric samples. Cells
// that do not parse as numbers are skipped per column, so the returned
// samples may differ in length.
func (r *SampleReader) ReadSamples(colX, colY string) (xs, ys []float64, err error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("sample file not found: %s", r.filePath)
	}

	var rows [][]string
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file %s has no data rows", r.filePath)
	}

	idxX, idxY := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case colX:
			idxX = i
		case colY:
			idxY = i
		}
	}
	if idxX < 0 {
		return nil, nil, fmt.Errorf("column %q not found in %s", colX, r.filePath)
	}
	if idxY < 0 {
		return nil, nil, fmt.Errorf("column %q not found in %s", colY, r.filePath)
	}

	for _, row := range rows[1:] {
		if v, ok := numericCell(row, idxX); ok {
			xs = append(xs, v)
		}
		if v, ok := numericCell(row, idxY); ok {
			ys = append(ys, v)
		}
	}
	return xs, ys, nil
}

func (r *SampleReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *SampleReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	return rows, nil
}

func numericCell(row []string, idx int) (float64, bool) {
	if idx >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
