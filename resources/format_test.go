package resources

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/entities"
)

func Test_Normalize__should_rewrite_dates_and_numbers(t *testing.T) {
	fields := []Field{
		{Name: "name", Type: Text},
		{Name: "joined", Type: Date},
		{Name: "checkIn", Type: DateTime},
		{Name: "salary", Type: Currency},
		{Name: "count", Type: Number},
		{Name: "missing", Type: Date},
	}
	record := entities.Record{
		"name":    "Ada",
		"joined":  []interface{}{json.Number("2020"), json.Number("2"), json.Number("29")},
		"checkIn": []interface{}{json.Number("2024"), json.Number("3"), json.Number("1"), json.Number("9"), json.Number("5")},
		"salary":  "45,000.50",
		"count":   json.Number("7"),
		"extra":   "kept",
	}

	Normalize(record, fields)

	want := entities.Record{
		"name":    "Ada",
		"joined":  "2020-02-29",
		"checkIn": "2024-03-01 09:05:00",
		"salary":  45000.5,
		"count":   float64(7),
		"extra":   "kept",
	}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func Test_Normalize__should_leave_invalid_values(t *testing.T) {
	fields := []Field{
		{Name: "joined", Type: Date},
		{Name: "salary", Type: Currency},
	}
	record := entities.Record{"joined": "not a date", "salary": "n/a"}

	Normalize(record, fields)

	assert.Equal(t, "not a date", record["joined"])
	assert.Equal(t, "n/a", record["salary"])
}

func Test_Format(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value interface{}
		want  string
	}{
		{name: "nil", field: Field{Type: Text}, value: nil, want: ""},
		{name: "text", field: Field{Type: Text}, value: "hello", want: "hello"},
		{name: "currency", field: Field{Type: Currency}, value: 12.5, want: "12.50"},
		{name: "currency string", field: Field{Type: Currency}, value: "1,000", want: "1000.00"},
		{name: "number", field: Field{Type: Number}, value: json.Number("3"), want: "3"},
		{name: "number fraction", field: Field{Type: Number}, value: 2.25, want: "2.25"},
		{name: "date string", field: Field{Type: Date}, value: "2023-01-02", want: "2023-01-02"},
		{name: "date tuple", field: Field{Type: Date}, value: []interface{}{2023.0, 1.0, 2.0}, want: "2023-01-02"},
		{name: "json number as text", field: Field{Type: Text}, value: json.Number("10"), want: "10"},
		{name: "bool", field: Field{Type: Status}, value: true, want: "true"},
		{name: "list", field: Field{Type: Text}, value: []interface{}{"a", "b"}, want: `["a","b"]`},
		{name: "object", field: Field{Type: Text}, value: map[string]interface{}{"a": 1.0}, want: `{"a":1}`},
		{name: "unparseable number", field: Field{Type: Number}, value: "many", want: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.field, tt.value))
		})
	}
}
