package engine

import (
	"strconv"
	"strings"

	"trivia/internal/core"
)

// ParseID validates the <id> argument of show/delete/edit/test. It uses
// permissive leading-integer semantics: the longest numeric prefix wins,
// so "7x" parses as 7. An absent argument fails with KindMissingParameter,
// a prefix with no digits with KindInvalidParameter. Existence of the id
// is the repository's concern, not checked here.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, core.ErrMissingParameter()
	}

	end := 0
	if raw[0] == '+' || raw[0] == '-' {
		end = 1
	}
	start := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == start {
		return 0, core.ErrInvalidParameter(raw)
	}

	id, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		// Numeric prefix too large for int64
		return 0, core.ErrInvalidParameter(raw)
	}
	return id, nil
}
