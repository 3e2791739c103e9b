package shared

// Default and maximum page sizes for list queries
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber keeps Offset far from int overflow
	MaxPageNumber = 100000
)

// SortDirection is the direction of an ORDER BY clause
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Page selects a window of a result set
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes a page number and size into a valid Page
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Sort names a whitelisted column and a direction
type Sort struct {
	Field     string
	Direction SortDirection
}

// Clause renders the sort as an ORDER BY fragment
func (s Sort) Clause() string {
	dir := "DESC"
	if s.Direction == SortAsc {
		dir = "ASC"
	}
	return s.Field + " " + dir
}

// ListResult is one page of items plus the total row count for the filter
type ListResult[T any] struct {
	Items []T
	Total int64
	Page  Page
}

// EmptyListResult returns a result with no items for the normalized page
func EmptyListResult[T any](page Page) ListResult[T] {
	return ListResult[T]{Items: []T{}, Page: NewPage(page.Number, page.Size)}
}
