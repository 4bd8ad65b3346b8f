// Package scene assembles named meshes into an ordered scene graph and
// drives the floor-plan conversion pipeline.
package scene

import (
	"fmt"

	"planforge/internal/geom"
	"planforge/internal/palette"
)

// Geometry is one named mesh in a scene, with an optional flat color.
type Geometry struct {
	Name  string
	Mesh  geom.Mesh
	Color *palette.RGB
}

// Scene holds uniquely named geometries in insertion order, so exports
// are deterministic.
type Scene struct {
	geoms []Geometry
	index map[string]int
}

// Add appends a named mesh; duplicate names are rejected.
func (s *Scene) Add(name string, m geom.Mesh, c *palette.RGB) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, dup := s.index[name]; dup {
		return fmt.Errorf("scene: duplicate geometry name %q", name)
	}
	s.index[name] = len(s.geoms)
	s.geoms = append(s.geoms, Geometry{Name: name, Mesh: m, Color: c})
	return nil
}

// Geometries returns the scene content in insertion order.
func (s *Scene) Geometries() []Geometry { return s.geoms }

// Len returns the number of geometries.
func (s *Scene) Len() int { return len(s.geoms) }

// Lookup finds a geometry by name.
func (s *Scene) Lookup(name string) (Geometry, bool) {
	i, ok := s.index[name]
	if !ok {
		return Geometry{}, false
	}
	return s.geoms[i], true
}

// Assemble collects wall meshes and the floor mesh into a scene under
// deterministic names (wall_0, wall_1, ..., floor), attaching per-name
// colors where present. Meshes are never merged; each wall stays
// independently selectable downstream.
func Assemble(walls []geom.Mesh, floor geom.Mesh, colors map[string]palette.RGB) (*Scene, error) {
	s := &Scene{}
	pick := func(name string) *palette.RGB {
		if c, ok := colors[name]; ok {
			return &c
		}
		return nil
	}
	for i, w := range walls {
		name := fmt.Sprintf("wall_%d", i)
		if err := s.Add(name, w, pick(name)); err != nil {
			return nil, err
		}
	}
	if err := s.Add("floor", floor, pick("floor")); err != nil {
		return nil, err
	}
	return s, nil
}
