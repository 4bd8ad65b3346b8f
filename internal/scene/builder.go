package scene

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"planforge/internal/geom"
	"planforge/internal/palette"
	"planforge/internal/plan"
)

// Default engine parameters, in plan units (meters).
const (
	DefaultWallThickness = 0.1
	DefaultWallHeight    = 2.5
	DefaultFloorOffset   = -0.05
	DefaultFloorMargin   = 0.5
)

// Config holds the engine parameters. ColorOverrides maps room-type tags
// to hex colors and is merged over the built-in palette once, at builder
// construction.
type Config struct {
	WallThickness  float64
	WallHeight     float64
	FloorOffset    float64
	FloorMargin    float64
	ColorOverrides map[string]string
}

// DefaultConfig returns the parameters the original engine ships with.
func DefaultConfig() Config {
	return Config{
		WallThickness: DefaultWallThickness,
		WallHeight:    DefaultWallHeight,
		FloorOffset:   DefaultFloorOffset,
		FloorMargin:   DefaultFloorMargin,
	}
}

// Builder converts floor-plan documents into scenes. It holds no state
// across Build calls beyond its configuration and merged palette, so one
// Builder may serve concurrent conversions.
type Builder struct {
	cfg Config
	pal palette.Palette
}

// NewBuilder validates the configuration, merges color overrides into
// the built-in palette, and returns a ready engine.
func NewBuilder(cfg Config) (*Builder, error) {
	pal, err := palette.MergeHex(cfg.ColorOverrides)
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, pal: pal}, nil
}

// Palette returns the builder's merged palette.
func (b *Builder) Palette() palette.Palette { return b.pal }

// Config returns the builder's parameters.
func (b *Builder) Config() Config { return b.cfg }

// Build runs the full pipeline: per-wall footprint, triangulation and
// extrusion (independent per wall, run across a worker group), then the
// floor once every footprint is available, then assembly. The first
// geometry error aborts the whole conversion; no partial scene escapes.
func (b *Builder) Build(doc plan.Document) (*Scene, error) {
	n := len(doc.Walls)
	footprints := make([]geom.Ring, n)
	meshes := make([]geom.Mesh, n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range doc.Walls {
		g.Go(func() error {
			fp, err := geom.Footprint(w.Start, w.End, b.cfg.WallThickness, i)
			if err != nil {
				return err
			}
			tris, err := geom.Triangulate(fp, i)
			if err != nil {
				return err
			}
			m, err := geom.Extrude(fp, tris, b.cfg.WallHeight, i)
			if err != nil {
				return err
			}
			footprints[i] = fp
			meshes[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	floor, err := geom.Floor(footprints, b.cfg.FloorMargin, b.cfg.FloorOffset)
	if err != nil {
		return nil, err
	}
	return Assemble(meshes, floor, b.wallColors(doc))
}

// wallColors resolves a color per geometry name from the room metadata:
// a wall takes the type color of the first room whose rectangle contains
// the wall segment's midpoint, the default color when no room matches,
// and the floor takes the palette's floor entry. Without room metadata
// no coloring is applied at all.
func (b *Builder) wallColors(doc plan.Document) map[string]palette.RGB {
	if len(doc.Rooms) == 0 {
		return nil
	}
	const eps = 1e-9
	colors := make(map[string]palette.RGB, len(doc.Walls)+1)
	for i, w := range doc.Walls {
		mx := (w.Start.X + w.End.X) / 2
		my := (w.Start.Y + w.End.Y) / 2
		tag := "default"
		for _, r := range doc.Rooms {
			if mx >= r.Position[0]-eps && mx <= r.Position[0]+r.Dimensions[0]+eps &&
				my >= r.Position[1]-eps && my <= r.Position[1]+r.Dimensions[1]+eps {
				tag = r.Type
				break
			}
		}
		colors[geomName(i)] = b.pal.Resolve(tag)
	}
	colors["floor"] = b.pal.Resolve("floor")
	return colors
}

func geomName(i int) string {
	// keep in sync with Assemble's naming
	return "wall_" + strconv.Itoa(i)
}
