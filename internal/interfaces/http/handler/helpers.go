package handler

// normalizePage mirrors the list defaults applied by the application
// services so pagination meta matches the rows actually returned.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
