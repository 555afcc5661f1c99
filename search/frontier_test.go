package search

import (
	"fmt"
	"testing"

	"discovery/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactKeepsLiveEntries(t *testing.T) {
	frontier := make([]frontierEntry, 100)
	for i := range frontier {
		frontier[i] = frontierEntry{nodeID: fmt.Sprintf("n%d", i)}
	}

	same, head := compact(frontier, 10)
	assert.Equal(t, 10, head, "below threshold nothing moves")
	assert.Len(t, same, 100)

	compacted, head := compact(frontier, 70)
	assert.Equal(t, 0, head)
	require.Len(t, compacted, 30)
	assert.Equal(t, "n70", compacted[0].nodeID)
	assert.Equal(t, "n99", compacted[29].nodeID)
	assert.Equal(t, frontierEntry{}, frontier[30], "vacated slots are cleared")
}

func TestBFSOnWideStarCompactsQueue(t *testing.T) {
	// hub fans out to 300 leaves, only the last leaf links on to the holder
	topo := common.NewTopology()
	var last string
	for i := 0; i < 300; i++ {
		last = fmt.Sprintf("leaf%03d", i)
		topo.AddLink("hub", last)
	}
	topo.AddLink(last, "holder")
	topo.AddNode("holder", "r")

	path, err := NewEngine(topo).Search(Request{Requester: "hub", Resource: "r", Strategy: BFS, TTL: 5})
	require.NoError(t, err)
	assert.Equal(t, Path{"hub", last, "holder"}, path)
}
