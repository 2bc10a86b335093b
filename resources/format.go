package resources

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/utils/normalize"
)

// Normalize rewrites the date and numeric fields of record in place.
// Dates become DateLayout or DateTimeLayout strings and numbers become float64;
// values that cannot be converted are left as they are.
func Normalize(record entities.Record, fields []Field) entities.Record {
	for _, field := range fields {
		value, ok := record[field.Name]
		if !ok || value == nil {
			continue
		}

		switch field.Type {
		case Date:
			if t, ok := normalize.Date(value); ok {
				record[field.Name] = t.Format(normalize.DateLayout)
			}
		case DateTime:
			if t, ok := normalize.Date(value); ok {
				record[field.Name] = t.Format(normalize.DateTimeLayout)
			}
		case Number, Currency:
			if f, ok := normalize.Number(value); ok {
				record[field.Name] = f
			}
		}
	}
	return record
}

// Format renders the value of a field as display text
func Format(field Field, value interface{}) string {
	if value == nil {
		return ""
	}

	switch field.Type {
	case Date, DateTime:
		if s, ok := value.(string); ok {
			return s
		}
		if t, ok := normalize.Date(value); ok {
			return formatTime(field, t)
		}
	case Number:
		if f, ok := normalize.Number(value); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	case Currency:
		if f, ok := normalize.Number(value); ok {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}, map[string]interface{}:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
	return fmt.Sprint(value)
}

func formatTime(field Field, t time.Time) string {
	if field.Type == DateTime {
		return t.Format(normalize.DateTimeLayout)
	}
	return t.Format(normalize.DateLayout)
}
