package search

import (
	packet "discovery/packet_handler"

	log "github.com/sirupsen/logrus"
)

// floodTraverser broadcasts one packet from the requester. Every node marks
// each neighbor as having seen the message id and forwards it a clone while
// the decremented ttl stays positive, so deliveries reach at most ttl-1
// hops. The queue replaces recursion, and the packet that reaches a holder
// carries the full path back as the result.
type floodTraverser struct{}

func (floodTraverser) traverse(r *run) Path {
	origin := packet.NewPacket(r.req.Requester, r.req.TTL)
	seen := packet.NewSeenTable()
	seen.Mark(origin.SourceID, origin.MessageID)
	queue := []*packet.Packet{origin}

	for len(queue) > 0 {
		pkt := queue[0]
		nodeID := pkt.Current()

		if cached, ok := r.tryCache(nodeID, Path(pkt.Path)); ok {
			return cached
		}
		queue = queue[1:]

		if r.holds(nodeID) {
			r.record(nodeID, Path(pkt.Path), true, pkt.TTL)
			return Path(pkt.Path)
		}
		r.markVisited(nodeID)

		for _, neighbor := range r.neighbors(nodeID) {
			if !seen.Mark(neighbor, pkt.MessageID) {
				continue
			}
			forwarded, ok := pkt.Forward(neighbor)
			if !ok {
				continue
			}
			queue = append(queue, forwarded)
		}
		r.record(nodeID, Path(pkt.Path), false, pkt.TTL)
	}
	log.Debugf("flood: message %s exhausted, %d deliveries", origin.MessageID, seen.Len())
	return nil
}
