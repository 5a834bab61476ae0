package dto

// Listing defaults applied when a query parameter is absent.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultTopCount = 10
)

// ListQuery holds the query parameters of GET /. Pointers distinguish an
// absent parameter from an explicit zero, which is rejected.
type ListQuery struct {
	Page     *int `form:"page"`
	PageSize *int `form:"pageSize"`
}

// PageOrDefault returns page, or DefaultPage when absent.
func (q ListQuery) PageOrDefault() int {
	if q.Page == nil {
		return DefaultPage
	}

	return *q.Page
}

// PageSizeOrDefault returns pageSize, or DefaultPageSize when absent.
// -1 requests every row.
func (q ListQuery) PageSizeOrDefault() int {
	if q.PageSize == nil {
		return DefaultPageSize
	}

	return *q.PageSize
}

// TopQuery holds the query parameters of GET /top.
type TopQuery struct {
	Count *int `form:"count"`
}

// CountOrDefault returns count, or DefaultTopCount when absent.
func (q TopQuery) CountOrDefault() int {
	if q.Count == nil {
		return DefaultTopCount
	}

	return *q.Count
}
