package waveguide

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ShapeSink receives the polygons produced by [LayoutWaveguide].
type ShapeSink interface {
	// DBU returns the database unit, the smallest distinguishable length,
	// in micrometers.
	DBU() float64
	Insert(p Polygon, layer Layer) error
}

// Cell is an in-memory [ShapeSink] holding polygons by layer. It is safe for
// concurrent use.
type Cell struct {
	Name string

	dbu    float64
	mu     sync.Mutex
	shapes map[Layer][]Polygon
}

var _ ShapeSink = (*Cell)(nil)

// NewCell returns an empty cell. A non-positive dbu selects [DefaultDBU].
func NewCell(name string, dbu float64) *Cell {
	if dbu <= 0 {
		dbu = DefaultDBU
	}
	return &Cell{
		Name:   name,
		dbu:    dbu,
		shapes: make(map[Layer][]Polygon),
	}
}

func (c *Cell) DBU() float64 { return c.dbu }

// Insert adds a copy of p to layer.
func (c *Cell) Insert(p Polygon, layer Layer) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: polygon with %d vertices", ErrDegenerateInput, len(p))
	}
	p = p.Clone()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shapes[layer] = append(c.shapes[layer], p)
	return nil
}

// Layers returns the layers that have shapes, in ascending order.
func (c *Cell) Layers() []Layer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.SortedFunc(maps.Keys(c.shapes), compareLayers)
}

// Shapes returns the polygons on layer in insertion order.
func (c *Cell) Shapes(layer Layer) []Polygon {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.shapes[layer])
}

// Merged returns the outline of the union of all polygons on layer.
func (c *Cell) Merged(layer Layer) []Polygon {
	return Merge(c.Shapes(layer))
}

// Len returns the total number of polygons.
func (c *Cell) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ps := range c.shapes {
		n += len(ps)
	}
	return n
}

// BoundingBox returns the bounds of all polygons. It is the zero value for
// empty cells.
func (c *Cell) BoundingBox() Bounds {
	c.mu.Lock()
	defer c.mu.Unlock()
	var bbox Bounds
	first := true
	for _, ps := range c.shapes {
		for _, p := range ps {
			if first {
				bbox = p.BoundingBox()
				first = false
				continue
			}
			bbox = bbox.Union(p.BoundingBox())
		}
	}
	return bbox
}
