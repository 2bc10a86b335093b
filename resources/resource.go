package resources

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
)

type FieldType string

const (
	Text     FieldType = "text"
	Number   FieldType = "number"
	Currency FieldType = "currency"
	Date     FieldType = "date"
	DateTime FieldType = "datetime"
	Email    FieldType = "email"
	Status   FieldType = "status"
)

const employeeIDPlaceholder = "{employeeId}"

const defaultIDField = "id"

// Field describes a single column of a resource
type Field struct {
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	Type       FieldType `json:"type"`
	Searchable bool      `json:"searchable,omitempty"`
}

// Resource describes a backend collection and how it is displayed
type Resource struct {
	Module string  `json:"module"`
	Name   string  `json:"name"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
	// Endpoint is the backend path of the collection. It may contain {employeeId}
	// when the resource is scoped to the logged in employee.
	Endpoint string `json:"-"`
	// ItemEndpoint is the backend path single items are read from by appending
	// their id. Empty when the backend has no item route for the resource.
	ItemEndpoint   string          `json:"-"`
	IDField        string          `json:"idField,omitempty"`
	Roles          []role.UserRole `json:"-"`
	EmployeeScoped bool            `json:"employeeScoped,omitempty"`
}

// Key returns the unique key of the resource
func (r Resource) Key() string {
	return r.Module + "/" + r.Name
}

// Field returns the field with the given name
func (r Resource) Field(name string) (Field, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// SearchableFields returns the fields the search term is matched against.
// When no field is flagged as searchable every text-like field is used.
func (r Resource) SearchableFields() []Field {
	var fields []Field
	for _, field := range r.Fields {
		if field.Searchable {
			fields = append(fields, field)
		}
	}
	if len(fields) > 0 {
		return fields
	}

	for _, field := range r.Fields {
		switch field.Type {
		case Text, Email, Status:
			fields = append(fields, field)
		}
	}
	return fields
}

// AllowedFor checks whether a user with the given roles may access the resource
func (r Resource) AllowedFor(roles []role.UserRole) bool {
	return role.HasAny(roles, r.Roles...)
}

// IDOf returns the identifier of the given record, empty when it has none
func (r Resource) IDOf(record entities.Record) string {
	idField := r.IDField
	if len(idField) == 0 {
		idField = defaultIDField
	}
	value, ok := record[idField]
	if !ok || value == nil {
		return ""
	}
	return Format(Field{Name: idField, Type: Text}, value)
}

// EndpointFor returns the backend path of the resource for the given employee
func (r Resource) EndpointFor(employeeID string) (string, error) {
	return r.expand(r.Endpoint, employeeID)
}

// ItemEndpointFor returns the backend path of the item route for the given employee.
// ok is false when the resource has no item route.
func (r Resource) ItemEndpointFor(employeeID string) (endpoint string, ok bool, err error) {
	if len(r.ItemEndpoint) == 0 {
		return "", false, nil
	}
	endpoint, err = r.expand(r.ItemEndpoint, employeeID)
	return endpoint, err == nil, err
}

func (r Resource) expand(endpoint, employeeID string) (string, error) {
	if !r.EmployeeScoped {
		return endpoint, nil
	}
	if len(employeeID) == 0 {
		return "", errors.Wrap(ErrMissingEmployeeID, r.Key())
	}
	return strings.Replace(endpoint, employeeIDPlaceholder, url.PathEscape(employeeID), -1), nil
}
