// Package export serializes synthetic sample data for download. Only CSV
// is implemented; the other offered formats are placeholders and report
// ErrUnsupportedFormat instead of attempting conversion.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"floatchat/floatchat/synthetic"
)

// Format selects the export serialization.
type Format string

const (
	FormatCSV    Format = "CSV"
	FormatNetCDF Format = "NetCDF"
	FormatJSON   Format = "JSON"
	FormatExcel  Format = "Excel"
)

// ErrUnsupportedFormat marks formats offered in the UI but not implemented.
var ErrUnsupportedFormat = errors.New("export requires additional setup, please use CSV format for now")

// Formats lists every format offered by the export panel, supported or not.
func Formats() []Format {
	return []Format{FormatCSV, FormatNetCDF, FormatJSON, FormatExcel}
}

var columns = []string{"date", "latitude", "longitude", "temperature", "salinity", "depth"}

// Write serializes records in the requested format. Unsupported formats
// write nothing, so the caller never gets a partial file.
func Write(w io.Writer, format Format, records []synthetic.SampleRecord) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatNetCDF, FormatJSON, FormatExcel:
		return fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteCSV writes the records as comma-delimited UTF-8 text: a header row
// with the six sample columns, then one row per record. No index column.
func WriteCSV(w io.Writer, records []synthetic.SampleRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date,
			formatFloat(r.Latitude),
			formatFloat(r.Longitude),
			formatFloat(r.Temperature),
			formatFloat(r.Salinity),
			formatFloat(r.Depth),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
