package search

import "errors"

var (
	// ErrInvalidArgument a request is missing its ttl, names an unknown
	// strategy or starts from an unknown node
	ErrInvalidArgument = errors.New("search: invalid argument")
)
