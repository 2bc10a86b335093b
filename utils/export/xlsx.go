package export

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/utils/normalize"
	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength = 31

const defaultSheet = "Sheet1"

// XLSX writes a workbook with a single sheet holding a header row of field labels
// followed by one row per record. Number and currency cells are stored as numbers.
func XLSX(w io.Writer, sheet string, fields []resources.Field, records []entities.Record) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet = SheetName(sheet)
	if err := file.SetSheetName(defaultSheet, sheet); err != nil {
		return errors.Wrap(err, "could not name sheet")
	}

	header := make([]interface{}, len(fields))
	for i, field := range fields {
		header[i] = field.Label
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "could not write xlsx header")
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "could not compute cell name")
		}

		row := make([]interface{}, len(fields))
		for j, field := range fields {
			row[j] = cellValue(field, record[field.Name])
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrap(err, "could not write xlsx row")
		}
	}

	return errors.Wrap(file.Write(w), "could not write xlsx file")
}

func cellValue(field resources.Field, value interface{}) interface{} {
	switch field.Type {
	case resources.Number, resources.Currency:
		if f, ok := normalize.Number(value); ok {
			return f
		}
	}
	return resources.Format(field, value)
}

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// SheetName makes name acceptable as an Excel sheet name
func SheetName(name string) string {
	name = strings.TrimSpace(sheetNameReplacer.Replace(name))
	if len(name) == 0 {
		return defaultSheet
	}
	runes := []rune(name)
	if len(runes) > maxSheetNameLength {
		runes = runes[:maxSheetNameLength]
	}
	return string(runes)
}
