package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
)

// CSV writes a header row of field labels followed by one row per record
func CSV(w io.Writer, fields []resources.Field, records []entities.Record) error {
	writer := csv.NewWriter(w)

	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = field.Label
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}

	row := make([]string, len(fields))
	for _, record := range records {
		for i, field := range fields {
			row[i] = resources.Format(field, record[field.Name])
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "could not write csv row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "could not flush csv")
}
