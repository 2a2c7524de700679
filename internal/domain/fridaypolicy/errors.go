package fridaypolicy

import "errors"

// Friday policy domain errors
var (
	ErrInvalidMonth = errors.New("invalid report month")
)
