// Package sportsdata serves the static sports reference data (rosters,
// schedules, season stats, GM rosters/cap tables, draft prospect pool) from
// YAML files under the configured data directory. Files are parsed once and
// cached for the life of the process; editorial updates ship as new files
// with a restart.
package sportsdata

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store loads and caches the YAML data files.
type Store struct {
	dir string

	mu    sync.RWMutex
	cache map[string]any
}

// New creates a store rooted at dir. Files are loaded lazily on first use.
func New(dir string) *Store {
	return &Store{dir: dir, cache: make(map[string]any)}
}

// Roster returns the active roster for a team slug.
func (s *Store) Roster(team string) (*Roster, error) {
	return load[Roster](s, filepath.Join("rosters", team+".yaml"))
}

// Schedule returns the season schedule for a team slug.
func (s *Store) Schedule(team string) (*Schedule, error) {
	return load[Schedule](s, filepath.Join("schedules", team+".yaml"))
}

// Stats returns the season stats block for a team slug.
func (s *Store) Stats(team string) (*TeamStats, error) {
	return load[TeamStats](s, filepath.Join("stats", team+".yaml"))
}

// GM returns the trade-simulator dataset for a team slug: cap table, roster
// with contract values, owned picks, and the opponent teams with their
// tradeable assets.
func (s *Store) GM(team string) (*GMData, error) {
	return load[GMData](s, filepath.Join("gm", team+".yaml"))
}

// Prospects returns the draft prospect pool.
func (s *Store) Prospects() ([]Prospect, error) {
	pool, err := load[prospectFile](s, "prospects.yaml")
	if err != nil {
		return nil, err
	}
	return pool.Prospects, nil
}

// DraftOrder returns the mock-draft pick order.
func (s *Store) DraftOrder() (*DraftOrder, error) {
	return load[DraftOrder](s, "draft_order.yaml")
}

func load[T any](s *Store, rel string) (*T, error) {
	s.mu.RLock()
	if v, ok := s.cache[rel]; ok {
		s.mu.RUnlock()
		return v.(*T), nil
	}
	s.mu.RUnlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, rel))
	if err != nil {
		return nil, fmt.Errorf("sportsdata: read %s: %w", rel, err)
	}

	out := new(T)
	if err := yaml.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("sportsdata: parse %s: %w", rel, err)
	}

	s.mu.Lock()
	s.cache[rel] = out
	s.mu.Unlock()
	return out, nil
}
