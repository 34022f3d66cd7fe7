package query

import "strconv"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Page holds resolved pagination bounds.
type Page struct {
	Number int
	Limit  int
	Offset int
}

// PageMeta is the pagination envelope returned with list responses.
type PageMeta struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// ResolvePage converts raw page/limit query values into bounded offsets.
// Negative, zero, oversized or non-numeric inputs are corrected silently:
// page is floored to 1 and limit clamped to [1,100].
func ResolvePage(rawPage, rawLimit string) Page {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Page{Number: page, Limit: limit, Offset: (page - 1) * limit}
}

// BuildMeta derives pagination metadata from the resolved page and the
// scoped total count. With zero items totalPages is 0 and both cursors
// report false.
func BuildMeta(page, limit, totalCount int) PageMeta {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}
	return PageMeta{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalCount,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1 && totalPages > 0,
	}
}
