package packet

type seenKey struct {
	nodeID    string
	messageID string
}

// SeenTable records which nodes have already received which message.
// A table belongs to a single flood invocation and is dropped with it.
type SeenTable struct {
	seen map[seenKey]struct{}
}

func NewSeenTable() *SeenTable {
	return &SeenTable{
		seen: make(map[seenKey]struct{}),
	}
}

func (st *SeenTable) Has(nodeID, messageID string) bool {
	_, exists := st.seen[seenKey{nodeID: nodeID, messageID: messageID}]
	return exists
}

// Mark records the message at nodeID and reports whether it was new.
func (st *SeenTable) Mark(nodeID, messageID string) bool {
	key := seenKey{nodeID: nodeID, messageID: messageID}
	if _, exists := st.seen[key]; exists {
		return false
	}
	st.seen[key] = struct{}{}
	return true
}

func (st *SeenTable) Len() int {
	return len(st.seen)
}
