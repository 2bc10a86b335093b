package entities

// Record is a single item of a backend collection, keyed by JSON field name
type Record map[string]interface{}

// Clone returns a shallow copy of the record
func (r Record) Clone() Record {
	clone := make(Record, len(r))
	for key, value := range r {
		clone[key] = value
	}
	return clone
}
