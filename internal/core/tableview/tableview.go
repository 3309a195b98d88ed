// Package tableview implements the generic data-table engine behind every
// listing endpoint: a sorted, filtered, paginated view over an in-memory
// record slice, parameterized by column definitions.
package tableview

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPageSize is the fixed page size used by all tables. Individual
// tables do not reconfigure it.
const DefaultPageSize = 10

// Direction is the sort direction of a single column. The empty value is the
// "none" state of the header's three-state toggle (none → asc → desc → none).
type Direction string

const (
	DirNone Direction = ""
	DirAsc  Direction = "asc"
	DirDesc Direction = "desc"
)

// ParseDirection maps a query-string value to a Direction. Anything other
// than "asc" or "desc" is treated as none.
func ParseDirection(s string) Direction {
	switch strings.ToLower(s) {
	case "asc":
		return DirAsc
	case "desc":
		return DirDesc
	default:
		return DirNone
	}
}

// Column declares one table column: its name, the accessor extracting the
// cell value from a record, and whether header clicks may sort by it.
type Column[T any] struct {
	Name     string
	Value    func(T) any
	Sortable bool
}

// Query carries the view parameters for one render of a table.
type Query struct {
	Sort   string
	Dir    Direction
	Filter string
	Page   int // 1-based
}

// Page is the materialized view handed to the presentation layer.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Table binds a column set to the single column the free-text filter applies
// to (by convention the "name" column).
type Table[T any] struct {
	columns      []Column[T]
	filterColumn string
}

// New creates a Table filtering on filterColumn.
func New[T any](filterColumn string, columns ...Column[T]) *Table[T] {
	return &Table[T]{columns: columns, filterColumn: filterColumn}
}

// Apply produces the sorted, filtered, paginated view of records.
//
// Filtering is a case-sensitive substring match against the stringified cell
// value; an empty filter matches everything. Sorting is stable and only
// happens when the named column exists, is sortable, and a direction is set;
// otherwise input order is preserved. The page number is not clamped: a page
// past the end yields an empty item list, mirroring a table whose filter
// changed without resetting pagination.
func (t *Table[T]) Apply(records []T, q Query) Page[T] {
	rows := records
	if q.Filter != "" {
		if col := t.column(t.filterColumn); col != nil {
			rows = filterRows(rows, col, q.Filter)
		}
	}

	if q.Dir != DirNone {
		if col := t.column(q.Sort); col != nil && col.Sortable {
			rows = sortRows(rows, col, q.Dir)
		}
	}

	return paginate(rows, q.Page)
}

func (t *Table[T]) column(name string) *Column[T] {
	for i := range t.columns {
		if t.columns[i].Name == name {
			return &t.columns[i]
		}
	}
	return nil
}

func filterRows[T any](rows []T, col *Column[T], substr string) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(stringify(col.Value(r)), substr) {
			out = append(out, r)
		}
	}
	return out
}

func sortRows[T any](rows []T, col *Column[T], dir Direction) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == DirDesc {
			return less(col.Value(out[j]), col.Value(out[i]))
		}
		return less(col.Value(out[i]), col.Value(out[j]))
	})
	return out
}

func paginate[T any](rows []T, page int) Page[T] {
	if page <= 0 {
		page = 1
	}
	total := len(rows)
	totalPages := (total + DefaultPageSize - 1) / DefaultPageSize

	start := (page - 1) * DefaultPageSize
	end := start + DefaultPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      rows[start:end],
		Total:      total,
		Page:       page,
		PageSize:   DefaultPageSize,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// less orders two cell values with natural ordering: numerically when both
// sides are numbers, lexically otherwise.
func less(a, b any) bool {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return x < y
		}
	}
	return stringify(a) < stringify(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
