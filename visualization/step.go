package visualization

// Step is one frame of a search: the node just processed and the state of
// the traversal at that moment.
type Step struct {
	RequesterID   string   `json:"requester_id"`
	CurrentNodeID string   `json:"current_node_id"`
	VisitedNodes  []string `json:"visited_nodes"`
	Path          []string `json:"path"`
	Found         bool     `json:"found"`
	TTL           int      `json:"ttl"`
}

// StepSink receives a Step after every processed node. It is a one-way
// notification; the search never reads anything back.
type StepSink interface {
	RecordStep(step Step)
}
