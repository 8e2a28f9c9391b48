package feed

// PageCount is ceil(totalItems / pageSize). Zero items means zero pages; the
// empty feed short-circuits rendering before a count is ever shown.
func PageCount(totalItems, pageSize int) int {
	return (totalItems + pageSize - 1) / pageSize
}

// PageOffset maps a 1-based page number to a fetch offset.
func PageOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
