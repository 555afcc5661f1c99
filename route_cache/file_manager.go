package route_cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Routes maps node id -> resource -> suffix path.
type Routes map[string]map[string][]string

// FileManager owns the single backing file of a RouteCache.
type FileManager struct {
	path string
	hash string
}

func NewFileManager(path string) (*FileManager, error) {
	if path == "" {
		return nil, fmt.Errorf("route cache file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create route cache dir for %s: %w", path, err)
	}
	return &FileManager{path: path}, nil
}

func (fm *FileManager) Path() string {
	return fm.path
}

// Load reads the backing file. A missing or empty file yields an empty
// Routes; undecodable content is an error.
func (fm *FileManager) Load() (Routes, error) {
	data, err := os.ReadFile(fm.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("route cache file not found, starting empty. File: %v", fm.path)
			return make(Routes), nil
		}
		return nil, fmt.Errorf("read route cache file %s: %w", fm.path, err)
	}
	fm.hash = calculateMD5(data)
	if len(data) == 0 {
		return make(Routes), nil
	}

	var routes Routes
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("unmarshal route cache file %s: %w", fm.path, err)
	}
	if routes == nil {
		routes = make(Routes)
	}
	for nodeID, entries := range routes {
		if entries == nil {
			log.Warnf("route cache file %s has no routes for node %s, dropping it", fm.path, nodeID)
			delete(routes, nodeID)
		}
	}
	log.Infof("successfully loaded route cache. File: %v, nodes: %d", fm.path, len(routes))
	return routes, nil
}

// Save rewrites the whole file. The content goes to a temporary file in the
// same directory which is synced and renamed over the old one, so a crash
// leaves either the previous or the new version in place.
func (fm *FileManager) Save(routes Routes) error {
	data, err := json.MarshalIndent(routes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal route cache: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fm.path), filepath.Base(fm.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp route cache file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write route cache file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync route cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close route cache file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to chmod route cache file: %w", err)
	}
	if err := os.Rename(tmpName, fm.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace route cache file: %w", err)
	}

	fm.hash = calculateMD5(data)
	log.Debugf("route cache saved, file: %s, hash: %s", fm.path, fm.hash)
	return nil
}

// Hash is the md5 of the content last loaded from or saved to disk.
func (fm *FileManager) Hash() string {
	return fm.hash
}

func calculateMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
