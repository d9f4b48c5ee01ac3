package state

import (
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/eytandecker/fdmscene/internal/importer"
	"github.com/eytandecker/fdmscene/internal/scene"
	"github.com/eytandecker/fdmscene/internal/units"
	"github.com/eytandecker/fdmscene/pkg/types"
)

// Manager owns a destination scene shared by concurrent callers. Imports
// hold the lock from identifier probing until the last marker is placed.
type Manager struct {
	mu          sync.RWMutex
	scene       *scene.Scene
	units       units.System
	log         *slog.Logger
	history     []types.ImportSummary
	lastUpdated time.Time
}

// NewManager creates a Manager with an empty scene using sys.
func NewManager(sys units.System, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{scene: scene.New(sys), units: sys, log: log}
}

// Import imports the .xml file name from fsys into the shared scene.
func (m *Manager) Import(fsys fs.FS, name string, s importer.Settings) (*types.ImportSummary, error) {
	if !strings.HasSuffix(strings.ToLower(name), ".xml") {
		return nil, &types.ImportError{Path: name, Err: ErrNotXML}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sum, err := importer.New(m.scene, m.log).Import(fsys, name, s)
	m.lastUpdated = time.Now()
	if err != nil {
		return nil, err
	}
	m.history = append(m.history, *sum)
	return sum, nil
}

// Snapshot returns a copy of the current scene.
func (m *Manager) Snapshot() scene.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scene.Snapshot()
}

// History returns the summaries of successful imports, oldest first.
func (m *Manager) History() []types.ImportSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.ImportSummary, len(m.history))
	copy(out, m.history)
	return out
}

// Reset replaces the scene with an empty one and forgets the history.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scene = scene.New(m.units)
	m.history = nil
	m.lastUpdated = time.Now()
}

// LastUpdated returns the time of the most recent change, or zero if the
// scene was never touched.
func (m *Manager) LastUpdated() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastUpdated
}
