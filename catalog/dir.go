package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/landcover/raster"
)

// DirCatalog reads <id>.json grid documents below Root.
type DirCatalog struct {
	Root   string
	Expect *raster.Geometry // optional alignment check
}

// NewDir returns a catalog over root.
func NewDir(root string, expect *raster.Geometry) *DirCatalog {
	return &DirCatalog{Root: root, Expect: expect}
}

// path resolves id to a file under Root, rejecting ids that escape it.
func (d *DirCatalog) path(id string) (string, error) {
	name := id + ".json"
	if id == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("invalid grid id %q", id)
	}
	return filepath.Join(d.Root, name), nil
}

func (d *DirCatalog) open(id string) (*os.File, Status, error) {
	p, err := d.path(id)
	if err != nil {
		return nil, Malformed, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NotFound, nil
	}
	if err != nil {
		return nil, Malformed, err
	}
	return f, Found, nil
}

// Categorical implements Catalog.
func (d *DirCatalog) Categorical(id string) Lookup {
	f, st, err := d.open(id)
	if st != Found {
		return Lookup{ID: id, Status: st, Err: err}
	}
	defer f.Close()
	g, err := DecodeCategorical(f)
	if err == nil {
		err = aligned(d.Expect, g)
	}
	if err != nil {
		return Lookup{ID: id, Status: Malformed, Err: err}
	}
	return Lookup{ID: id, Status: Found, Grid: g}
}

// Continuous implements Catalog.
func (d *DirCatalog) Continuous(id string) LookupContinuous {
	f, st, err := d.open(id)
	if st != Found {
		return LookupContinuous{ID: id, Status: st, Err: err}
	}
	defer f.Close()
	g, err := DecodeContinuous(f)
	if err == nil {
		err = aligned(d.Expect, g)
	}
	if err != nil {
		return LookupContinuous{ID: id, Status: Malformed, Err: err}
	}
	return LookupContinuous{ID: id, Status: Found, Grid: g}
}

// WriteCategorical stores g as <id>.json below Root.
func (d *DirCatalog) WriteCategorical(id string, g *raster.Categorical) error {
	p, err := d.path(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if err := EncodeCategorical(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteContinuous stores g as <id>.json below Root.
func (d *DirCatalog) WriteContinuous(id string, g *raster.Continuous) error {
	p, err := d.path(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if err := EncodeContinuous(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
