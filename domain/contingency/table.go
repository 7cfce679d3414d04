package contingency

import (
	"residualmap/domain/dataset"
)

// Table is a two-dimensional contingency table of co-occurrence counts.
// Category order is first-appearance order in the source dataset so output
// stays reproducible across runs.
type Table struct {
	RowCats []string
	ColCats []string
	Counts  [][]int
}

// Build counts co-occurrences of each (category1, category2) pair across all
// rows of a cleaned two-column dataset. Rows with a missing value in either
// column are ignored; callers wanting an error instead should validate first.
func Build(d *dataset.Dataset, col1, col2 string) (*Table, error) {
	if err := dataset.CheckColumns(d, col1, col2); err != nil {
		return nil, err
	}

	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	t := &Table{}

	for _, row := range d.Rows {
		a, b := row[col1], row[col2]
		if a.Missing() || b.Missing() {
			continue
		}

		i, ok := rowIdx[a.Raw]
		if !ok {
			i = len(t.RowCats)
			rowIdx[a.Raw] = i
			t.RowCats = append(t.RowCats, a.Raw)
			t.Counts = append(t.Counts, make([]int, len(t.ColCats)))
		}
		j, ok := colIdx[b.Raw]
		if !ok {
			j = len(t.ColCats)
			colIdx[b.Raw] = j
			t.ColCats = append(t.ColCats, b.Raw)
			for r := range t.Counts {
				t.Counts[r] = append(t.Counts[r], 0)
			}
		}
		t.Counts[i][j]++
	}

	return t, nil
}

// NumRows returns the number of row categories
func (t *Table) NumRows() int {
	return len(t.RowCats)
}

// NumCols returns the number of column categories
func (t *Table) NumCols() int {
	return len(t.ColCats)
}

// RowTotals returns the marginal total per row category
func (t *Table) RowTotals() []int {
	totals := make([]int, len(t.RowCats))
	for i, row := range t.Counts {
		for _, n := range row {
			totals[i] += n
		}
	}
	return totals
}

// ColTotals returns the marginal total per column category
func (t *Table) ColTotals() []int {
	totals := make([]int, len(t.ColCats))
	for _, row := range t.Counts {
		for j, n := range row {
			totals[j] += n
		}
	}
	return totals
}

// GrandTotal returns the total observation count
func (t *Table) GrandTotal() int {
	total := 0
	for _, row := range t.Counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}
