package postgres_test

import "strings"

// splitColumns turns a "a, b, c" column list into sqlmock row headers.
func splitColumns(cols string) []string {
	return strings.Split(cols, ", ")
}
