package sheet

// decode.go turns a raw XLSX file into data records plus the literal header
// row. Parsing is delegated to excelize; this file only shapes its output
// and assigns kind tags.

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Decode parses an in-memory XLSX file and returns the data rows of the
// first sheet as records, plus the literal first row as the header array.
//
// Each record is keyed by the trimmed header cell for its column. Cells are
// kind-tagged as they are read: empty cells become null, numeric text
// becomes a number, TRUE/FALSE become booleans, everything else stays a
// string. Rows wider than the header are truncated to the header width;
// rows shorter than the header leave the trailing columns absent.
func Decode(data []byte) ([]Record, []string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			key := strings.TrimSpace(name)
			if key == "" || i >= len(raw) {
				continue
			}
			v := TagCell(raw[i])
			if v.IsNull() {
				continue
			}
			rec[key] = v
		}
		records = append(records, rec)
	}

	return records, header, nil
}

// TagCell assigns a kind tag to a raw cell string.
func TagCell(raw string) Value {
	if raw == "" {
		return Null()
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n)
	}
	switch raw {
	case "TRUE", "true", "True":
		return Boolean(true)
	case "FALSE", "false", "False":
		return Boolean(false)
	}
	return String(raw)
}
