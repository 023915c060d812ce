package postgres

import "database/sql"

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

// clampPage folds a requested page into the valid range for total rows and
// returns the resulting offset. Page one when there are no rows.
func clampPage(page, limit, total int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if total == 0 {
		return 1, 0
	}

	totalPages := (total + limit - 1) / limit
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return page, (page - 1) * limit
}
