package catalog

import (
	"sync"

	"github.com/katalvlaran/landcover/raster"
)

// MemoryCatalog is an in-memory Catalog, safe for concurrent use.
type MemoryCatalog struct {
	mu     sync.RWMutex
	expect *raster.Geometry
	cat    map[string]*raster.Categorical
	cont   map[string]*raster.Continuous
}

// NewMemory returns an empty catalog. A non-nil expect makes lookups of
// grids with another geometry Malformed.
func NewMemory(expect *raster.Geometry) *MemoryCatalog {
	return &MemoryCatalog{
		expect: expect,
		cat:    make(map[string]*raster.Categorical),
		cont:   make(map[string]*raster.Continuous),
	}
}

// PutCategorical stores g under id.
func (m *MemoryCatalog) PutCategorical(id string, g *raster.Categorical) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cat[id] = g
}

// PutContinuous stores g under id.
func (m *MemoryCatalog) PutContinuous(id string, g *raster.Continuous) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cont[id] = g
}

// Categorical implements Catalog.
func (m *MemoryCatalog) Categorical(id string) Lookup {
	m.mu.RLock()
	g, ok := m.cat[id]
	m.mu.RUnlock()
	if !ok {
		return Lookup{ID: id, Status: NotFound}
	}
	if err := aligned(m.expect, g); err != nil {
		return Lookup{ID: id, Status: Malformed, Err: err}
	}
	return Lookup{ID: id, Status: Found, Grid: g}
}

// Continuous implements Catalog.
func (m *MemoryCatalog) Continuous(id string) LookupContinuous {
	m.mu.RLock()
	g, ok := m.cont[id]
	m.mu.RUnlock()
	if !ok {
		return LookupContinuous{ID: id, Status: NotFound}
	}
	if err := aligned(m.expect, g); err != nil {
		return LookupContinuous{ID: id, Status: Malformed, Err: err}
	}
	return LookupContinuous{ID: id, Status: Found, Grid: g}
}
