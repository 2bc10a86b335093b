package resources

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/utils/normalize"
)

// Filter returns the records whose value in at least one of fields contains term,
// ignoring case. A blank term returns records unchanged.
func Filter(records []entities.Record, term string, fields []Field) []entities.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if len(term) == 0 {
		return records
	}

	filtered := make([]entities.Record, 0, len(records))
	for _, record := range records {
		if matches(record, term, fields) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matches(record entities.Record, term string, fields []Field) bool {
	for _, field := range fields {
		value, ok := record[field.Name]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(Format(field, value)), term) {
			return true
		}
	}
	return false
}

// Sort returns a copy of records ordered by the named field of resource.
// Numbers compare numerically, dates chronologically and everything else as text.
// Records without a value for the field always go last.
func Sort(records []entities.Record, resource Resource, fieldName string, desc bool) ([]entities.Record, error) {
	field, ok := resource.Field(fieldName)
	if !ok {
		return nil, errors.Wrap(ErrUnknownField, fieldName)
	}

	sorted := make([]entities.Record, len(records))
	copy(sorted, records)

	key := sortKey(field)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOk := key(sorted[i][field.Name])
		b, bOk := key(sorted[j][field.Name])
		if !aOk || !bOk {
			return aOk && !bOk
		}
		if desc {
			return b.less(a)
		}
		return a.less(b)
	})

	return sorted, nil
}

type sortValue struct {
	number float64
	text   string
}

func (v sortValue) less(other sortValue) bool {
	if v.number != other.number {
		return v.number < other.number
	}
	return v.text < other.text
}

func sortKey(field Field) func(interface{}) (sortValue, bool) {
	switch field.Type {
	case Number, Currency:
		return func(value interface{}) (sortValue, bool) {
			f, ok := normalize.Number(value)
			return sortValue{number: f}, ok && !math.IsNaN(f)
		}
	case Date, DateTime:
		return func(value interface{}) (sortValue, bool) {
			t, ok := normalize.Date(value)
			if !ok {
				return sortValue{}, false
			}
			return sortValue{number: float64(t.Unix()), text: t.Format(normalize.DateTimeLayout)}, true
		}
	}
	return func(value interface{}) (sortValue, bool) {
		if value == nil {
			return sortValue{}, false
		}
		return sortValue{text: strings.ToLower(Format(field, value))}, true
	}
}

// Page is a single page of a list of records
type Page struct {
	Data        []entities.Record `json:"data"`
	TotalRows   int               `json:"totalRows"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	PageSize    int               `json:"pageSize"`
}

// ClampPage applies the defaults and limits to requested page parameters
func ClampPage(page, pageSize, defaultPageSize, maxPageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	switch {
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	case pageSize <= 0:
		pageSize = defaultPageSize
	}
	return page, pageSize
}

// Paginate returns the requested page of records.
// A pageSize of zero or less returns all records as a single page.
func Paginate(records []entities.Record, page, pageSize int) Page {
	total := len(records)
	if records == nil {
		records = []entities.Record{}
	}
	if pageSize <= 0 {
		totalPages := 1
		if total == 0 {
			totalPages = 0
		}
		return Page{
			Data:        records,
			TotalRows:   total,
			TotalPages:  totalPages,
			CurrentPage: 1,
			PageSize:    total,
		}
	}
	if page <= 0 {
		page = 1
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Data:        records[start:end],
		TotalRows:   total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}
