package database

import "strconv"

// ParseID reads a path id as a base-10 integer primary key. Anything else
// cannot match a row.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
