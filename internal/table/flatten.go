// internal/table/flatten.go
package table

import (
	"github.com/spf13/cast"

	apierrors "voteview-client/internal/common/errors"
)

// Flatten builds a rectangular table from records.
//
// The column schema comes from the first record alone: a field nested
// there is excluded even if later records supply it as a scalar, and a
// field missing there never appears, no matter how many later records
// carry it. Missing cells are filled with the column type's zero value,
// never a null marker. Both are long-standing quirks of the format
// consumers depend on.
//
// Output column order is the priority list (filtered to names that exist
// in the schema), then the remaining schema columns in first-record field
// order, without duplicates.
func Flatten(records []Record, priority []string) (*Table, error) {
	if len(records) == 0 {
		return nil, apierrors.NewEmptyInputError()
	}

	// schema inference walks only the first record
	kinds := make(map[string]ColumnKind)
	var natural []string
	for _, f := range records[0] {
		if f.Value.Kind == KindNested {
			continue
		}
		if _, dup := kinds[f.Name]; dup {
			continue
		}
		kind := ColInt
		if f.Value.Kind == KindString {
			kind = ColString
		}
		kinds[f.Name] = kind
		natural = append(natural, f.Name)
	}

	order := make([]string, 0, len(natural))
	used := make(map[string]bool, len(natural))
	for _, name := range priority {
		if _, ok := kinds[name]; ok && !used[name] {
			order = append(order, name)
			used[name] = true
		}
	}
	for _, name := range natural {
		if !used[name] {
			order = append(order, name)
			used[name] = true
		}
	}

	t := &Table{
		columns: make([]*Column, 0, len(order)),
		byName:  make(map[string]*Column, len(order)),
		rows:    len(records),
	}
	for _, name := range order {
		col := &Column{Name: name, Kind: kinds[name]}
		if col.Kind == ColString {
			col.strs = make([]string, len(records))
		} else {
			col.ints = make([]int64, len(records))
		}
		t.columns = append(t.columns, col)
		t.byName[name] = col
	}

	for i, rec := range records {
		for _, col := range t.columns {
			v, ok := rec.lookup(col.Name)
			if !ok {
				continue // zero value stays in place
			}
			if col.Kind == ColString {
				col.strs[i] = cast.ToString(v.scalar())
			} else {
				col.ints[i] = cast.ToInt64(v.scalar())
			}
		}
	}

	return t, nil
}
