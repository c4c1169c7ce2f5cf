package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Required CSV columns, in template order. Header names are case-sensitive.
const (
	ColumnPlantName = "Plant Name"
	ColumnDate      = "Date"
	ColumnQuantity  = "Quantity (oz)"
)

// RequiredColumns lists the fixed header of the import format.
var RequiredColumns = []string{ColumnPlantName, ColumnDate, ColumnQuantity}

// RawRow is one CSV data line. Row numbers are 1-based and exclude the header.
type RawRow struct {
	RowNumber int
	PlantName string
	Date      string
	Quantity  string
}

// ParseFile reads a CSV upload, validates the header against the fixed
// column schema, and returns one RawRow per data line. A header failure is
// fatal for the whole file: no rows are produced.
func ParseFile(reader io.Reader) ([]RawRow, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1 // Allow variable number of fields

	headers, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV file is empty")
		}
		return nil, fmt.Errorf("failed to read CSV headers: %v", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	cell := func(record []string, col string) string {
		if i := index[col]; i < len(record) {
			return record[i]
		}
		return ""
	}

	var rows []RawRow
	rowNum := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV row: %v", rowNum, err)
		}
		rows = append(rows, RawRow{
			RowNumber: rowNum,
			PlantName: cell(record, ColumnPlantName),
			Date:      cell(record, ColumnDate),
			Quantity:  cell(record, ColumnQuantity),
		})
		rowNum++
	}

	return rows, nil
}

// Template returns the downloadable CSV template: the fixed header row.
func Template() []byte {
	return []byte(strings.Join(RequiredColumns, ",") + "\n")
}
