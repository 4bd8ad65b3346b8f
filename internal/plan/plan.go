// Package plan parses 2D floor-plan documents into typed structures at
// the input boundary, so the geometry engine never touches loose JSON.
package plan

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// SchemaError reports a structurally invalid input document. Key names
// the offending document key.
type SchemaError struct {
	Key string
	Msg string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("plan: %s: %s", e.Key, e.Msg)
}

func schemaErr(key, format string, args ...any) *SchemaError {
	return &SchemaError{Key: key, Msg: fmt.Sprintf(format, args...)}
}

// WallSegment is one wall line: an ordered pair of 2D points.
type WallSegment struct {
	Start r2.Vec
	End   r2.Vec
}

// RoomRecord is optional room metadata attached to a floor plan. Type is
// a free-form tag matched case-insensitively against the color palette.
type RoomRecord struct {
	ID         string
	Name       string
	Type       string
	Area       float64
	Dimensions [2]float64
	Position   [2]float64
}

// Document is a fully validated floor plan. Rooms are ordered by room id
// so downstream processing is deterministic regardless of JSON map order.
type Document struct {
	Name  string
	Walls []WallSegment
	Rooms []RoomRecord
}

type rawRoom struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Area       float64   `json:"area"`
	Dimensions []float64 `json:"dimensions"`
	Position   []float64 `json:"position"`
}

type rawPlan struct {
	Name  string             `json:"name"`
	Walls json.RawMessage    `json:"walls"`
	Rooms map[string]rawRoom `json:"rooms"`
}

// Parse decodes and validates a floor-plan JSON document. Structural
// problems are reported as SchemaError before any geometry work happens;
// zero-length walls are left for the geometry stage, which reports them
// with their wall index.
func Parse(data []byte) (Document, error) {
	var raw rawPlan
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, schemaErr("document", "invalid JSON: %v", err)
	}
	if raw.Walls == nil {
		return Document{}, schemaErr("walls", "missing required key")
	}
	var walls [][][]float64
	if err := json.Unmarshal(raw.Walls, &walls); err != nil {
		return Document{}, schemaErr("walls", "must be a list of [[x1,y1],[x2,y2]] pairs: %v", err)
	}
	doc := Document{Name: raw.Name, Walls: make([]WallSegment, 0, len(walls))}
	for i, w := range walls {
		if len(w) != 2 {
			return Document{}, schemaErr("walls", "entry %d: want 2 points, got %d", i, len(w))
		}
		var pts [2]r2.Vec
		for j, p := range w {
			if len(p) != 2 {
				return Document{}, schemaErr("walls", "entry %d point %d: want 2 coordinates, got %d", i, j, len(p))
			}
			if !finite(p[0]) || !finite(p[1]) {
				return Document{}, schemaErr("walls", "entry %d point %d: non-finite coordinate", i, j)
			}
			pts[j] = r2.Vec{X: p[0], Y: p[1]}
		}
		doc.Walls = append(doc.Walls, WallSegment{Start: pts[0], End: pts[1]})
	}
	rooms, err := parseRooms(raw.Rooms)
	if err != nil {
		return Document{}, err
	}
	doc.Rooms = rooms
	return doc, nil
}

func parseRooms(raw map[string]rawRoom) ([]RoomRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	rooms := make([]RoomRecord, 0, len(ids))
	for _, id := range ids {
		rr := raw[id]
		room := RoomRecord{
			ID:   id,
			Name: rr.Name,
			Type: rr.Type,
			Area: rr.Area,
		}
		if room.Name == "" {
			room.Name = "Room"
		}
		if room.Type == "" {
			room.Type = "unknown"
		}
		if rr.Dimensions != nil {
			if len(rr.Dimensions) != 2 {
				return nil, schemaErr("rooms."+id+".dimensions", "want [w,h], got %d values", len(rr.Dimensions))
			}
			room.Dimensions = [2]float64{rr.Dimensions[0], rr.Dimensions[1]}
		}
		if rr.Position != nil {
			if len(rr.Position) != 2 {
				return nil, schemaErr("rooms."+id+".position", "want [x,y], got %d values", len(rr.Position))
			}
			room.Position = [2]float64{rr.Position[0], rr.Position[1]}
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// Load reads and parses a floor-plan JSON file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(data)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
