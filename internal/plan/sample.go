package plan

import "gonum.org/v1/gonum/spatial/r2"

// Sample returns a built-in two-room demo plan: a 5x5 perimeter with one
// dividing wall, used by the TUI when nothing is loaded and by tests.
func Sample() Document {
	seg := func(x1, y1, x2, y2 float64) WallSegment {
		return WallSegment{Start: r2.Vec{X: x1, Y: y1}, End: r2.Vec{X: x2, Y: y2}}
	}
	return Document{
		Name: "Sample Floor Plan",
		Walls: []WallSegment{
			seg(0, 0, 0, 5), // left
			seg(0, 5, 5, 5), // top
			seg(5, 5, 5, 0), // right
			seg(5, 0, 0, 0), // bottom
			seg(2.5, 0, 2.5, 3), // divider
		},
		Rooms: []RoomRecord{
			{
				ID:         "room_1",
				Name:       "Living Room",
				Type:       "living_room",
				Area:       12.5,
				Dimensions: [2]float64{2.5, 5},
				Position:   [2]float64{0, 0},
			},
			{
				ID:         "room_2",
				Name:       "Bedroom",
				Type:       "bedroom",
				Area:       12.5,
				Dimensions: [2]float64{2.5, 5},
				Position:   [2]float64{2.5, 0},
			},
		},
	}
}
