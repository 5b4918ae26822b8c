package stubapi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// Fixture is a canned response.
type Fixture struct {
	Status int
	Body   string
}

// Source looks fixtures up by name.
type Source interface {
	Fixture(name string) (Fixture, bool, error)
}

// MapSource serves fixtures from memory. It is safe for concurrent use and
// may be changed while the server runs.
type MapSource struct {
	mu       sync.RWMutex
	fixtures map[string]Fixture
}

func NewMapSource(fixtures map[string]Fixture) *MapSource {
	m := &MapSource{fixtures: make(map[string]Fixture, len(fixtures))}
	for name, f := range fixtures {
		m.fixtures[name] = f
	}
	return m
}

// Set replaces one fixture.
func (m *MapSource) Set(name string, f Fixture) {
	m.mu.Lock()
	m.fixtures[name] = f
	m.mu.Unlock()
}

func (m *MapSource) Fixture(name string) (Fixture, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.fixtures[name]
	if ok && f.Status == 0 {
		f.Status = 200
	}
	return f, ok, nil
}

// DirSource serves <dir>/<name>.json with status 200.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

var safeName = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

func (d *DirSource) Fixture(name string) (Fixture, bool, error) {
	if !safeName.MatchString(name) {
		return Fixture{}, false, nil
	}
	data, err := os.ReadFile(filepath.Join(d.dir, name+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return Fixture{}, false, nil
	}
	if err != nil {
		return Fixture{}, false, fmt.Errorf("read fixture %s: %w", name, err)
	}
	return Fixture{Status: 200, Body: string(data)}, true, nil
}
