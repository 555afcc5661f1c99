package topology_loader

import "errors"

var (
	// ErrInvalidSchema the schema document is malformed
	ErrInvalidSchema = errors.New("topology_loader: invalid schema")

	// ErrDegreeViolation a node has fewer or more neighbors than allowed
	ErrDegreeViolation = errors.New("topology_loader: neighbor degree out of bounds")

	// ErrUnsupportedFormat the file extension has no decoder
	ErrUnsupportedFormat = errors.New("topology_loader: unsupported file format")
)
