package types

// Filter represents query parameters for filtering and pagination of
// equipment lists.
type Filter struct {
	Search         string
	Status         string
	DepartmentID   *int64
	Limit          int
	Offset         int
	WithPagination bool
}
