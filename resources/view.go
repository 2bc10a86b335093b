package resources

import "github.com/unicsmcr/bizdash/entities"

// ViewItem is a single labelled value of the read-only detail view
type ViewItem struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
	Value string    `json:"value"`
}

// View builds the detail view of record, one item per field of the resource in schema order
func View(resource Resource, record entities.Record) []ViewItem {
	items := make([]ViewItem, 0, len(resource.Fields))
	for _, field := range resource.Fields {
		items = append(items, ViewItem{
			Name:  field.Name,
			Label: field.Label,
			Type:  field.Type,
			Value: Format(field, record[field.Name]),
		})
	}
	return items
}
