package services

// Pagination is the offset arithmetic for one 1-indexed page.
type Pagination struct {
	Page       int
	PageIndex  int
	Start      int
	End        int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate never rejects a page: out-of-range pages simply have no next page
// and select nothing. An empty table still reports one page.
func Paginate(count int64, page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	pageIndex := page - 1
	totalPages := int((count-1)/int64(pageSize)) + 1

	p := Pagination{
		Page:       page,
		PageIndex:  pageIndex,
		TotalPages: totalPages,
		HasNext:    pageIndex < totalPages-1,
		HasPrev:    pageIndex > 0,
	}

	// pageIndex*pageSize can overflow for absurd pages, so offsets are only
	// computed for pages that exist.
	if p.InRange() {
		p.Start = pageIndex * pageSize
		p.End = p.Start + pageSize
	}
	return p
}

// InRange reports whether the page can hold any rows.
func (p Pagination) InRange() bool {
	return p.PageIndex < p.TotalPages
}
