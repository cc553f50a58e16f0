package segments

import "karamove/internal/roster"

// CountGroups returns the number of distinct group positions in records.
func CountGroups(records []roster.Record) int {
	seen := make(map[int]struct{}, len(records))
	for _, record := range records {
		seen[record.GroupPosition] = struct{}{}
	}
	return len(seen)
}
