package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/google/renameio/v2"

	"supercut/internal/dto"
)

// Catalog is the movie/tag store. The whole map lives in memory; every
// mutation rewrites the backing JSON file atomically (write to temp, then
// rename), so a crash never leaves a half-written catalog behind.
type Catalog struct {
	path string

	mu     sync.RWMutex
	movies map[string][]string
}

// OpenCatalog loads the catalog file, treating a missing file as empty.
func OpenCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("catalog path is empty")
	}

	c := &Catalog{path: path, movies: map[string][]string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &c.movies); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Movies returns all entries sorted by video id.
func (c *Catalog) Movies() []dto.MovieEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]dto.MovieEntry, 0, len(c.movies))
	for id, tags := range c.movies {
		entries = append(entries, dto.MovieEntry{VideoId: id, Tags: append([]string(nil), tags...)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].VideoId < entries[j].VideoId })
	return entries
}

// Tags returns the tag set of one movie.
func (c *Catalog) Tags(videoId string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tags, ok := c.movies[videoId]
	if !ok {
		return nil, false
	}
	return append([]string(nil), tags...), true
}

// ReplaceTags swaps the full tag set of a movie and persists the catalog.
// The in-memory state is only updated after the file write succeeds.
func (c *Catalog) ReplaceTags(videoId string, tags []string) error {
	if strings.TrimSpace(videoId) == "" {
		return errors.New("video id is empty")
	}

	normalized := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	sort.Strings(normalized)

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[string][]string, len(c.movies)+1)
	for id, existing := range c.movies {
		next[id] = existing
	}
	next[videoId] = normalized

	if err := c.persistLocked(next); err != nil {
		return err
	}
	c.movies = next
	return nil
}

func (c *Catalog) persistLocked(movies map[string][]string) error {
	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')

	if err := renameio.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", c.path, err)
	}
	return nil
}
