package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (default: "ds", falls back to "date")
	ValueColumn string // Column name for values (default: "y", falls back to "value")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "ds",
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Rows with an empty or NA value are skipped. A row with an unparseable date
// or value is an error: the deseasonalizer depends on a clean uniform index,
// so silently dropping malformed rows would corrupt phase alignment.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	dateIdx, valueIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		dateIdx, valueIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.DateColumn || (dateIdx == -1 && (h == "date" || h == "Date")):
				dateIdx = i
			case h == opts.ValueColumn || (valueIdx == -1 && (h == "value" || h == "Value")):
				valueIdx = i
			}
		}
		if dateIdx == -1 || valueIdx == -1 {
			return nil, fmt.Errorf("timeseries: columns %q and %q not found in header",
				opts.DateColumn, opts.ValueColumn)
		}
	}

	format := opts.DateFormat
	if format == "" {
		format = "2006-01-02"
	}

	var values []float64
	var timestamps []time.Time

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if dateIdx >= len(record) || valueIdx >= len(record) {
			return nil, fmt.Errorf("timeseries: row %d has %d fields", row, len(record))
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: bad value %q", row, valStr)
		}

		dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
		ts, err := time.Parse(format, dateStr)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: bad date %q", row, dateStr)
		}

		values = append(values, val)
		timestamps = append(timestamps, ts)
	}

	if len(values) == 0 {
		return nil, errors.New("timeseries: no valid data found in CSV")
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// SaveCSV saves a time series to a CSV file with a ds,y header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("ds,y\n")
	for i, v := range series.Values {
		if i < len(series.Timestamps) {
			writer.WriteString(series.Timestamps[i].Format("2006-01-02"))
		} else {
			writer.WriteString(strconv.Itoa(i))
		}
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
