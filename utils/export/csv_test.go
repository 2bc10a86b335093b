package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/resources"
)

var testFields = []resources.Field{
	{Name: "name", Label: "Name", Type: resources.Text},
	{Name: "note", Label: "Note", Type: resources.Text},
	{Name: "amount", Label: "Amount", Type: resources.Currency},
	{Name: "quantity", Label: "Quantity", Type: resources.Number},
}

func testRecords() []entities.Record {
	return []entities.Record{
		{"name": "Smith, John", "note": `said "hello"`, "amount": json.Number("10.5"), "quantity": json.Number("3")},
		{"name": "Jane", "note": "line one\nline two", "amount": "1,000", "quantity": 2.0},
		{"name": "Empty"},
	}
}

func Test_CSV__should_write_header_and_rows(t *testing.T) {
	var buf bytes.Buffer

	err := CSV(&buf, testFields, testRecords())
	assert.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Name", "Note", "Amount", "Quantity"},
		{"Smith, John", `said "hello"`, "10.50", "3"},
		{"Jane", "line one\nline two", "1000.00", "2"},
		{"Empty", "", "", ""},
	}, rows)
}

func Test_CSV__should_quote_special_characters(t *testing.T) {
	var buf bytes.Buffer

	err := CSV(&buf, testFields[:2], testRecords()[:1])
	assert.NoError(t, err)

	assert.Equal(t, "Name,Note\n\"Smith, John\",\"said \"\"hello\"\"\"\n", buf.String())
}

func Test_CSV__should_write_only_header_for_no_records(t *testing.T) {
	var buf bytes.Buffer

	err := CSV(&buf, testFields, nil)
	assert.NoError(t, err)

	assert.Equal(t, "Name,Note,Amount,Quantity\n", buf.String())
}
