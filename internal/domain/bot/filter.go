package bot

// Filter contains criteria for listing bots.
type Filter struct {
	CategoryID *string
	UserID     *string
	Name       *string // prefix match on bot name

	// Pagination
	Limit  int
	Offset int
}

// NewFilter creates a new filter with default pagination.
func NewFilter() *Filter {
	return &Filter{
		Limit:  20,
		Offset: 0,
	}
}

// WithCategoryID sets the category filter.
func (f *Filter) WithCategoryID(categoryID string) *Filter {
	f.CategoryID = &categoryID
	return f
}

// WithUserID sets the owner filter.
func (f *Filter) WithUserID(userID string) *Filter {
	f.UserID = &userID
	return f
}

// WithName sets the name prefix filter.
func (f *Filter) WithName(name string) *Filter {
	f.Name = &name
	return f
}

// WithPagination sets the pagination parameters.
func (f *Filter) WithPagination(limit, offset int) *Filter {
	f.Limit = limit
	f.Offset = offset
	return f
}
