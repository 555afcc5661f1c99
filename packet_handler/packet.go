package packet

import (
	"fmt"

	"github.com/google/uuid"
)

// Packet is the message carried by a flood search. Every forwarded hop
// works on its own clone so sibling branches never share a path slice.
type Packet struct {
	SourceID  string
	MessageID string
	TTL       int
	Path      []string
}

// NewPacket originates a packet at source with a fresh message id.
func NewPacket(sourceID string, ttl int) *Packet {
	return &Packet{
		SourceID:  sourceID,
		MessageID: uuid.NewString(),
		TTL:       ttl,
		Path:      []string{sourceID},
	}
}

// Current is the node the packet has most recently reached.
func (p *Packet) Current() string {
	if len(p.Path) == 0 {
		return p.SourceID
	}
	return p.Path[len(p.Path)-1]
}

func (p *Packet) Hops() int {
	if len(p.Path) == 0 {
		return 0
	}
	return len(p.Path) - 1
}

// Forward clones the packet one hop further to next with its ttl
// decremented. It reports false unless the decremented ttl is still
// positive, so a flood delivers at most ttl-1 hops from the source.
func (p *Packet) Forward(nextID string) (*Packet, bool) {
	if p.TTL-1 <= 0 {
		return nil, false
	}
	path := make([]string, len(p.Path), len(p.Path)+1)
	copy(path, p.Path)
	return &Packet{
		SourceID:  p.SourceID,
		MessageID: p.MessageID,
		TTL:       p.TTL - 1,
		Path:      append(path, nextID),
	}, true
}

func (p *Packet) String() string {
	return fmt.Sprintf("Packet{src=%s msg=%s ttl=%d path=%v}", p.SourceID, p.MessageID, p.TTL, p.Path)
}
