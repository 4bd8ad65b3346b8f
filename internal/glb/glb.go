// Package glb serializes a scene into glTF 2.0 binary: a 12-byte header
// followed by a length-prefixed JSON chunk describing the geometries and
// a length-prefixed BIN chunk holding the packed vertex and index data.
package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"planforge/internal/scene"
)

const (
	magic     = 0x46546C67 // "glTF"
	version   = 2
	chunkJSON = 0x4E4F534A // "JSON"
	chunkBIN  = 0x004E4942 // "BIN\0"

	componentFloat  = 5126 // float32
	componentUint32 = 5125 // uint32

	targetArrayBuffer        = 34962
	targetElementArrayBuffer = 34963
)

// ExportError reports a failed export; Path is empty for in-memory
// serialization failures.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("glb: export: %v", e.Err)
	}
	return fmt.Sprintf("glb: export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// glTF JSON document, built from slices and fixed-order structs only so
// serialization is byte-stable across runs.

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfNode struct {
	Name string `json:"name"`
	Mesh int    `json:"mesh"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   *int           `json:"material,omitempty"`
}

type gltfMesh struct {
	Name       string          `json:"name"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPBR struct {
	BaseColorFactor [4]float64 `json:"baseColorFactor"`
	MetallicFactor  float64    `json:"metallicFactor"`
}

type gltfMaterial struct {
	Name string  `json:"name"`
	PBR  gltfPBR `json:"pbrMetallicRoughness"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float64 `json:"min,omitempty"`
	Max           []float64 `json:"max,omitempty"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

type gltfBuffer struct {
	ByteLength int `json:"byteLength"`
}

type gltfDocument struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       int              `json:"scene"`
	Scenes      []gltfScene      `json:"scenes"`
	Nodes       []gltfNode       `json:"nodes"`
	Meshes      []gltfMesh       `json:"meshes"`
	Materials   []gltfMaterial   `json:"materials,omitempty"`
	Accessors   []gltfAccessor   `json:"accessors"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Buffers     []gltfBuffer     `json:"buffers"`
}

// Export serializes the scene into a GLB byte slice. The scene is not
// mutated; exporting the same scene twice yields identical bytes.
func Export(s *scene.Scene) ([]byte, error) {
	if s == nil || s.Len() == 0 {
		return nil, &ExportError{Err: fmt.Errorf("empty scene")}
	}
	doc := gltfDocument{
		Asset: gltfAsset{Version: "2.0", Generator: "planforge"},
		Scene: 0,
	}
	var bin bytes.Buffer

	root := gltfScene{}
	for i, g := range s.Geometries() {
		if err := g.Mesh.Validate(); err != nil {
			return nil, &ExportError{Err: fmt.Errorf("geometry %q: %w", g.Name, err)}
		}

		// vertex positions, densely packed float32 triples
		posOffset := bin.Len()
		mn := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
		mx := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		for _, v := range g.Mesh.Vertices {
			for c, f := range [3]float64{v.X, v.Y, v.Z} {
				f32 := float64(float32(f))
				if f32 < mn[c] {
					mn[c] = f32
				}
				if f32 > mx[c] {
					mx[c] = f32
				}
				writeU32(&bin, math.Float32bits(float32(f)))
			}
		}
		posView := len(doc.BufferViews)
		doc.BufferViews = append(doc.BufferViews, gltfBufferView{
			ByteOffset: posOffset,
			ByteLength: bin.Len() - posOffset,
			Target:     targetArrayBuffer,
		})
		posAccessor := len(doc.Accessors)
		doc.Accessors = append(doc.Accessors, gltfAccessor{
			BufferView:    posView,
			ComponentType: componentFloat,
			Count:         len(g.Mesh.Vertices),
			Type:          "VEC3",
			Min:           mn,
			Max:           mx,
		})

		// triangle indices, uint32 (keeps every view 4-byte aligned)
		idxOffset := bin.Len()
		for _, t := range g.Mesh.Triangles {
			for _, v := range t {
				writeU32(&bin, uint32(v))
			}
		}
		idxView := len(doc.BufferViews)
		doc.BufferViews = append(doc.BufferViews, gltfBufferView{
			ByteOffset: idxOffset,
			ByteLength: bin.Len() - idxOffset,
			Target:     targetElementArrayBuffer,
		})
		idxAccessor := len(doc.Accessors)
		doc.Accessors = append(doc.Accessors, gltfAccessor{
			BufferView:    idxView,
			ComponentType: componentUint32,
			Count:         3 * len(g.Mesh.Triangles),
			Type:          "SCALAR",
		})

		prim := gltfPrimitive{
			Attributes: map[string]int{"POSITION": posAccessor},
			Indices:    idxAccessor,
		}
		if g.Color != nil {
			mat := len(doc.Materials)
			doc.Materials = append(doc.Materials, gltfMaterial{
				Name: g.Name,
				PBR: gltfPBR{
					BaseColorFactor: [4]float64{g.Color.R, g.Color.G, g.Color.B, 1},
				},
			})
			prim.Material = &mat
		}
		doc.Meshes = append(doc.Meshes, gltfMesh{Name: g.Name, Primitives: []gltfPrimitive{prim}})
		doc.Nodes = append(doc.Nodes, gltfNode{Name: g.Name, Mesh: i})
		root.Nodes = append(root.Nodes, i)
	}
	doc.Scenes = []gltfScene{root}
	doc.Buffers = []gltfBuffer{{ByteLength: bin.Len()}}

	jsonChunk, err := json.Marshal(doc)
	if err != nil {
		return nil, &ExportError{Err: err}
	}
	// chunk payloads are 4-byte aligned: JSON padded with spaces, BIN
	// padded with zeros
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	binChunk := bin.Bytes()
	for len(binChunk)%4 != 0 {
		binChunk = append(binChunk, 0)
	}

	total := 12 + 8 + len(jsonChunk) + 8 + len(binChunk)
	out := bytes.NewBuffer(make([]byte, 0, total))
	writeU32(out, magic)
	writeU32(out, version)
	writeU32(out, uint32(total))
	writeU32(out, uint32(len(jsonChunk)))
	writeU32(out, chunkJSON)
	out.Write(jsonChunk)
	writeU32(out, uint32(len(binChunk)))
	writeU32(out, chunkBIN)
	out.Write(binChunk)
	return out.Bytes(), nil
}

func writeU32(b *bytes.Buffer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.Write(buf[:])
}
