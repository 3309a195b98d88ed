package ports

// ListQuery carries the table-view parameters shared by every listing
// operation: single-column sort, free-text filter on the table's filter
// column, and a 1-based page number (page size is fixed by the table engine).
type ListQuery struct {
	Sort   string
	Dir    string // "asc", "desc", or "" for unsorted
	Filter string
	Page   int
}
