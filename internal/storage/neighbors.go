package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"supercut/internal/screenshot"
)

// Neighbor is one entry of the precomputed similarity index.
type Neighbor struct {
	Screenshot string  `json:"screenshot"`
	Distance   float64 `json:"distance"`
}

// NeighborIndex reads the precomputed nearest-neighbor files, one JSON file
// per source video mapping screenshot name to its neighbor list. The index is
// read-only; files are parsed lazily and cached per video.
type NeighborIndex struct {
	dir string

	mu    sync.Mutex
	cache map[string]map[string][]Neighbor
}

func NewNeighborIndex(dir string) *NeighborIndex {
	return &NeighborIndex{
		dir:   dir,
		cache: map[string]map[string][]Neighbor{},
	}
}

// Lookup returns the neighbor list for a screenshot, keyed by its parsed
// source video.
func (ix *NeighborIndex) Lookup(screenshotName string) ([]Neighbor, error) {
	ref, err := screenshot.ParseRef(screenshotName)
	if err != nil {
		return nil, err
	}

	byName, err := ix.loadVideo(ref.SourceVideoID)
	if err != nil {
		return nil, err
	}

	neighbors, ok := byName[screenshotName]
	if !ok {
		return nil, fmt.Errorf("screenshot %q not present in neighbor index", screenshotName)
	}
	return neighbors, nil
}

func (ix *NeighborIndex) loadVideo(videoId string) (map[string][]Neighbor, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if cached, ok := ix.cache[videoId]; ok {
		return cached, nil
	}

	path := filepath.Join(ix.dir, videoId+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read neighbor index %s: %w", path, err)
	}

	var byName map[string][]Neighbor
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("parse neighbor index %s: %w", path, err)
	}

	ix.cache[videoId] = byName
	return byName, nil
}
