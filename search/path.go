package search

// Path is an ordered list of node ids from the requester to the node
// holding the resource, both inclusive.
type Path []string

// Hops is the number of links the path traverses.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// extend returns a new path with id appended; p is never modified.
func (p Path) extend(id string) Path {
	result := make(Path, len(p), len(p)+1)
	copy(result, p)
	return append(result, id)
}
