package rule

import "errors"

// Rule domain errors
var (
	ErrRuleNotFound = errors.New("special rule not found")
)
