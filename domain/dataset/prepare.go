package dataset

import (
	"residualmap/domain/core"
)

// Prepare restricts a dataset to the two named variables and drops every row
// with a missing value in either column. The input is not modified.
func Prepare(d *Dataset, v1, v2 string) (*Dataset, error) {
	if err := CheckColumns(d, v1, v2); err != nil {
		return nil, err
	}

	out := New(v1, v2)
	for _, row := range d.Rows {
		a, b := row[v1], row[v2]
		if a.Missing() || b.Missing() {
			continue
		}
		out.Append(Row{v1: a, v2: b})
	}
	return out, nil
}

// CheckColumns verifies every named column exists in the schema
func CheckColumns(d *Dataset, names ...string) error {
	for _, name := range names {
		if !d.HasColumn(name) {
			return core.NewMissingVariableError(name)
		}
	}
	return nil
}

// CheckCategorical verifies a column holds only string-typed values
func CheckCategorical(d *Dataset, name string) error {
	for _, v := range d.Column(name) {
		if v.Kind == KindNumeric {
			return core.NewTypeError(name, v.Raw)
		}
	}
	return nil
}

// CheckNoMissing verifies a column contains no missing values
func CheckNoMissing(d *Dataset, name string) error {
	for i, v := range d.Column(name) {
		if v.Missing() {
			return core.NewMissingValueError(name, i)
		}
	}
	return nil
}
