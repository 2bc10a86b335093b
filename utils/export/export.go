// Package export writes resource records as downloadable CSV and XLSX files
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/unicsmcr/bizdash/resources"
)

type Format string

const (
	CSVFormat  Format = "csv"
	XLSXFormat Format = "xlsx"
)

// content types of the export formats
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ParseFormat returns the export format with the given name, defaulting to CSV
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CSVFormat:
		return CSVFormat, nil
	case XLSXFormat:
		return XLSXFormat, nil
	}
	return "", ErrUnsupportedFormat
}

// ContentType returns the MIME type of files in the format
func (f Format) ContentType() string {
	if f == XLSXFormat {
		return XLSXContentType
	}
	return CSVContentType
}

// FileName returns the download name of an export of resource taken at now
func FileName(resource resources.Resource, format Format, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.%s",
		strings.Replace(resource.Module, "-", "_", -1),
		strings.Replace(resource.Name, "-", "_", -1),
		now.Format("20060102_150405"),
		format)
}
