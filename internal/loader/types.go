package loader

import (
	"fmt"
	"strconv"
)

// Cell is a single field of a row. Null marks an empty field or a
// missing-value marker such as NA or NaN.
type Cell struct {
	Value string
	Null  bool
}

func Text(value string) Cell {
	return Cell{Value: value}
}

func NullCell() Cell {
	return Cell{Null: true}
}

// Row holds one cell per column of its RecordSet, in column order.
type Row []Cell

// RecordSet is a parsed table. Rows are in file order.
type RecordSet struct {
	Columns    []string
	Rows       []Row
	Encoding   string
	Duplicates int
}

func (rs *RecordSet) Len() int {
	return len(rs.Rows)
}

func (rs *RecordSet) ColumnIndex(name string) int {
	for i, col := range rs.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

func (rs *RecordSet) HasColumn(name string) bool {
	return rs.ColumnIndex(name) >= 0
}

// Column returns every cell of column name in row order.
func (rs *RecordSet) Column(name string) ([]Cell, error) {
	idx := rs.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	cells := make([]Cell, len(rs.Rows))
	for i, row := range rs.Rows {
		cells[i] = row[idx]
	}
	return cells, nil
}

// uniqueColumns renames repeated and blank header names the way pandas
// does: "Unnamed: 3" for blanks, "a.1", "a.2" for repeats.
func uniqueColumns(header []string) []string {
	columns := make([]string, len(header))
	used := make(map[string]int, len(header))

	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		candidate := name
		for {
			if _, taken := used[candidate]; !taken {
				break
			}
			used[name]++
			candidate = name + "." + strconv.Itoa(used[name])
		}
		used[candidate] = 0
		columns[i] = candidate
	}
	return columns
}
