// Package schema declares the expected shape of the schedule export:
// required columns, their types, and the game type vocabulary.
package schema

// FieldType represents the expected data type for a CSV field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldInt
	FieldDate
	FieldTime
)

// FieldSpec defines expectations for a single CSV column.
type FieldSpec struct {
	Name       string    // Column header name
	Type       FieldType // Expected data type
	Required   bool      // Column must exist in the CSV header
	EnumValues []string  // Valid values for FieldEnum type
}
