package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/yungbote/luminus-backend/internal/pkg/errors"
)

// Row is one decoded record keyed by header name. Missing or blank cells read
// as the zero value through the typed accessors, so downstream math never has
// to branch on absent columns.
type Row map[string]string

func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

func (r Row) Float(key string) float64 {
	v, err := strconv.ParseFloat(r.Get(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func (r Row) Int(key string) int {
	v, err := strconv.Atoi(r.Get(key))
	if err != nil {
		// tolerate "12.0" style exports
		if f, ferr := strconv.ParseFloat(r.Get(key), 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return v
}

// Decode parses CSV bytes into rows keyed by the header line. Records shorter
// than the header leave trailing columns empty; records longer than the header
// drop the extras. A file with a header and no data rows decodes to an empty
// slice, not an error.
func Decode(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewMalformedInput("file is empty")
	}
	if err != nil {
		return nil, errors.NewMalformedInput("unreadable header line: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewMalformedInput("row %d: %v", len(rows)+2, err)
		}
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}
