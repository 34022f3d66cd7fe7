package query

import "strings"

// ResolveSort maps a client-supplied sort field against an allow-list of
// column names. An absent or unknown field falls back to defaultColumn
// ordered most-recently-created first; the raw field never reaches the
// ORDER BY clause. Only an explicit ascending request yields ASC.
func ResolveSort(field, order string, allowed map[string]string, defaultColumn string) string {
	column, ok := allowed[field]
	if field == "" || !ok {
		return defaultColumn + " DESC"
	}

	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}
