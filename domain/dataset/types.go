package dataset

import (
	"strconv"
	"strings"
)

// ValueKind classifies a single cell after ingestion
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindString
	KindNumeric
)

// Value is one cell of a dataset. Raw keeps the original text; Kind records
// what the ingestion layer made of it.
type Value struct {
	Raw  string
	Kind ValueKind
}

// missingTokens are treated as absent values during ingestion
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// ParseValue classifies a raw cell into a Value
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if missingTokens[strings.ToLower(trimmed)] {
		return Value{Kind: KindMissing}
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Value{Raw: trimmed, Kind: KindNumeric}
	}
	return Value{Raw: trimmed, Kind: KindString}
}

// StringValue builds a categorical value directly, bypassing numeric detection
func StringValue(s string) Value {
	if missingTokens[strings.ToLower(strings.TrimSpace(s))] {
		return Value{Kind: KindMissing}
	}
	return Value{Raw: s, Kind: KindString}
}

// Missing reports whether the cell held no usable value
func (v Value) Missing() bool {
	return v.Kind == KindMissing
}

// String returns the raw text of the value
func (v Value) String() string {
	return v.Raw
}

// Row maps column name to cell value
type Row map[string]Value

// Dataset is an ordered sequence of rows over a fixed column schema.
// Column order is preserved from the source for reproducible output.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New creates an empty dataset with the given schema
func New(columns ...string) *Dataset {
	return &Dataset{Columns: append([]string(nil), columns...)}
}

// Append adds a row to the dataset
func (d *Dataset) Append(row Row) {
	d.Rows = append(d.Rows, row)
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether the schema contains the named column
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns all values of the named column in row order.
// Rows without the key yield a missing Value.
func (d *Dataset) Column(name string) []Value {
	out := make([]Value, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[name]
	}
	return out
}
