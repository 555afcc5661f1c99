package common

import (
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Node is a single overlay peer: its identity, the resources it holds and
// the ordered list of neighbors it can forward to.
type Node struct {
	ID        string
	resources map[string]struct{}
	neighbors []string
}

func newNode(id string) *Node {
	return &Node{
		ID:        id,
		resources: make(map[string]struct{}),
	}
}

func (n *Node) HasResource(resource string) bool {
	_, ok := n.resources[resource]
	return ok
}

// Resources returns the held resource names in sorted order.
func (n *Node) Resources() []string {
	result := make([]string, 0, len(n.resources))
	for r := range n.resources {
		result = append(result, r)
	}
	sort.Strings(result)
	return result
}

// Neighbors returns a copy of the neighbor list in insertion order.
func (n *Node) Neighbors() []string {
	result := make([]string, len(n.neighbors))
	copy(result, n.neighbors)
	return result
}

// Topology owns every Node of the overlay. Searches treat it as read-only;
// the mutating methods exist for the loader and for tests.
type Topology struct {
	nodes map[string]*Node
	mutex sync.RWMutex
}

func NewTopology() *Topology {
	return &Topology{
		nodes: make(map[string]*Node),
	}
}

// AddNode registers id if unknown and adds the given resources to it.
func (t *Topology) AddNode(id string, resources ...string) *Node {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	node := t.ensureNode(id)
	for _, r := range resources {
		node.resources[r] = struct{}{}
	}
	return node
}

// AddLink appends target to source's neighbor list. Both endpoints are
// created if missing and a duplicate link is ignored.
func (t *Topology) AddLink(sourceID, targetID string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	source := t.ensureNode(sourceID)
	t.ensureNode(targetID)
	for _, existing := range source.neighbors {
		if existing == targetID {
			return
		}
	}
	source.neighbors = append(source.neighbors, targetID)
}

// SetResources replaces the resource set held by id.
func (t *Topology) SetResources(id string, resources ...string) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	node, exists := t.nodes[id]
	if !exists {
		return false
	}
	node.resources = make(map[string]struct{}, len(resources))
	for _, r := range resources {
		node.resources[r] = struct{}{}
	}
	log.Debugf("SetResources, node: %s, resources: %v", id, resources)
	return true
}

// RemoveNode drops id and every link pointing at it.
func (t *Topology) RemoveNode(id string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.nodes, id)
	for _, node := range t.nodes {
		kept := node.neighbors[:0]
		for _, neighbor := range node.neighbors {
			if neighbor != id {
				kept = append(kept, neighbor)
			}
		}
		node.neighbors = kept
	}
}

func (t *Topology) ensureNode(id string) *Node {
	node, exists := t.nodes[id]
	if !exists {
		node = newNode(id)
		t.nodes[id] = node
	}
	return node
}

func (t *Topology) Lookup(id string) (*Node, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	node, exists := t.nodes[id]
	return node, exists
}

// Neighbors returns the ordered neighbor ids of id, or nil when id is unknown.
func (t *Topology) Neighbors(id string) []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	node, exists := t.nodes[id]
	if !exists {
		return nil
	}
	return node.Neighbors()
}

func (t *Topology) HasResource(id, resource string) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	node, exists := t.nodes[id]
	return exists && node.HasResource(resource)
}

func (t *Topology) NodeCount() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.nodes)
}

func (t *Topology) LinkCount() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	count := 0
	for _, node := range t.nodes {
		count += len(node.neighbors)
	}
	return count
}

// NodeIDs returns every node id in sorted order.
func (t *Topology) NodeIDs() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	ids := make([]string, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resources returns the sorted union of resources held anywhere.
func (t *Topology) Resources() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	set := make(map[string]struct{})
	for _, node := range t.nodes {
		for r := range node.resources {
			set[r] = struct{}{}
		}
	}
	result := make([]string, 0, len(set))
	for r := range set {
		result = append(result, r)
	}
	sort.Strings(result)
	return result
}
