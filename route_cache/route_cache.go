package route_cache

import (
	"fmt"

	"discovery/common"

	log "github.com/sirupsen/logrus"
)

// Resolver is the part of the topology the cache needs to re-validate a
// stored route. *common.Topology satisfies it.
type Resolver interface {
	Lookup(id string) (*common.Node, bool)
}

type Config struct {
	Path string
	// DeferredWrite keeps updates in memory until Flush is called.
	DeferredWrite bool
}

// RouteCache remembers, for every node on a discovered path, the remaining
// hops to the resource. Entries are hints: they are re-validated against the
// topology on every Follow. A RouteCache is not safe for concurrent use.
type RouteCache struct {
	routes      Routes
	resolver    Resolver
	fileManager *FileManager
	deferred    bool
	dirty       bool
}

// Open loads the cache stored at cfg.Path. It never writes the file.
func Open(cfg Config, resolver Resolver) (*RouteCache, error) {
	fm, err := NewFileManager(cfg.Path)
	if err != nil {
		return nil, err
	}
	routes, err := fm.Load()
	if err != nil {
		return nil, err
	}
	log.Infof("route cache opened, file: %s, deferred: %v", cfg.Path, cfg.DeferredWrite)
	return New(routes, fm, resolver, cfg.DeferredWrite), nil
}

// New wraps an existing in-memory route map.
func New(routes Routes, fm *FileManager, resolver Resolver, deferred bool) *RouteCache {
	if routes == nil {
		routes = make(Routes)
	}
	return &RouteCache{
		routes:      routes,
		resolver:    resolver,
		fileManager: fm,
		deferred:    deferred,
	}
}

// Get returns a copy of every route cached at nodeID.
func (rc *RouteCache) Get(nodeID string) (map[string][]string, bool) {
	entries, exists := rc.routes[nodeID]
	if !exists {
		return nil, false
	}
	result := make(map[string][]string, len(entries))
	for resource, suffix := range entries {
		result[resource] = cloneIDs(suffix)
	}
	return result, true
}

// Lookup returns the suffix cached at nodeID for resource.
func (rc *RouteCache) Lookup(nodeID, resource string) ([]string, bool) {
	entries, exists := rc.routes[nodeID]
	if !exists {
		return nil, false
	}
	suffix, exists := entries[resource]
	if !exists {
		return nil, false
	}
	return cloneIDs(suffix), true
}

// Follow re-validates cachedSuffix and, when every hop still exists and the
// final hop still holds target, returns currentPath extended by the suffix.
// A stale entry (unknown node, moved resource, hop already on currentPath or
// empty suffix) yields ok == false.
func (rc *RouteCache) Follow(cachedSuffix, currentPath []string, target string) ([]string, bool) {
	if len(cachedSuffix) == 0 {
		return nil, false
	}

	onPath := make(map[string]struct{}, len(currentPath)+len(cachedSuffix))
	for _, id := range currentPath {
		onPath[id] = struct{}{}
	}

	newPath := make([]string, 0, len(currentPath)+len(cachedSuffix))
	newPath = append(newPath, currentPath...)
	var last *common.Node
	for _, nodeID := range cachedSuffix {
		node, exists := rc.resolver.Lookup(nodeID)
		if !exists || node == nil {
			log.Warnf("route cache: stale entry, node %s no longer exists", nodeID)
			return nil, false
		}
		if _, dup := onPath[nodeID]; dup {
			log.Debugf("route cache: suffix %v revisits %s", cachedSuffix, nodeID)
			return nil, false
		}
		onPath[nodeID] = struct{}{}
		newPath = append(newPath, nodeID)
		last = node
	}

	if !last.HasResource(target) {
		log.Warnf("route cache: stale entry, %s no longer holds %s", last.ID, target)
		return nil, false
	}
	return newPath, true
}

// Update stores, for every node of fullPath, the remainder of the path after
// it. Existing entries are overwritten. In immediate mode the file is
// rewritten before returning.
func (rc *RouteCache) Update(resource string, fullPath []string) error {
	for i, nodeID := range fullPath {
		entries, exists := rc.routes[nodeID]
		if !exists || entries == nil {
			entries = make(map[string][]string)
			rc.routes[nodeID] = entries
		}
		entries[resource] = cloneIDs(fullPath[i+1:])
	}
	rc.dirty = true
	log.Debugf("route cache updated, resource: %s, path: %v", resource, fullPath)

	if rc.deferred {
		return nil
	}
	return rc.Flush()
}

// Flush rewrites the backing file from memory.
func (rc *RouteCache) Flush() error {
	if rc.fileManager == nil {
		return fmt.Errorf("route cache has no backing file")
	}
	if err := rc.fileManager.Save(rc.routes); err != nil {
		return err
	}
	rc.dirty = false
	log.Debugf("route cache flushed, file: %s, nodes: %d", rc.fileManager.Path(), len(rc.routes))
	return nil
}

// Close flushes pending deferred updates.
func (rc *RouteCache) Close() error {
	if !rc.dirty {
		return nil
	}
	return rc.Flush()
}

// Dirty reports whether updates are waiting for a Flush.
func (rc *RouteCache) Dirty() bool {
	return rc.dirty
}

func (rc *RouteCache) Deferred() bool {
	return rc.deferred
}

// Len is the number of nodes with at least one cached route.
func (rc *RouteCache) Len() int {
	return len(rc.routes)
}

func (rc *RouteCache) Hash() string {
	if rc.fileManager == nil {
		return ""
	}
	return rc.fileManager.Hash()
}

func cloneIDs(ids []string) []string {
	result := make([]string, len(ids))
	copy(result, ids)
	return result
}
