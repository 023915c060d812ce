package memory

// pageBounds clamps a requested page into the valid range for total items and
// returns the slice bounds. A total of zero yields an empty window.
func pageBounds(page, limit, total int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if total == 0 {
		return 0, 0
	}

	totalPages := (total + limit - 1) / limit
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}

	return start, end
}
