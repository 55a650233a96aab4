package usecase

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination describes one page of a filtered, sorted list.
type Pagination struct {
	Total       int
	TotalPages  int
	CurrentPage int
	Limit       int
}

// paginate slices items for a 1-based page. Out-of-range pages yield an empty slice.
func paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total := len(items)
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	// page is bounded by totalPages before multiplying so a huge page cannot overflow.
	startIndex, endIndex := total, total
	if page <= totalPages {
		startIndex = (page - 1) * limit
		endIndex = min(startIndex+limit, total)
	}

	pageItems := make([]T, endIndex-startIndex)
	copy(pageItems, items[startIndex:endIndex])

	return pageItems, Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}
