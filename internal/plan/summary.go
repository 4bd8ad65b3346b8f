package plan

import (
	"fmt"
	"strings"
)

// Summary formats the room metadata as plain text: one block per room
// plus a total. Purely a formatting convenience over the parsed rooms;
// no geometry is involved.
func (d Document) Summary() string {
	if len(d.Rooms) == 0 {
		return "No room information available"
	}
	var b strings.Builder
	rule := strings.Repeat("=", 40)
	b.WriteString("Floor Plan Rooms:\n" + rule + "\n")
	var total float64
	for _, r := range d.Rooms {
		fmt.Fprintf(&b, "\n%s:\n", r.Name)
		fmt.Fprintf(&b, "  Type: %s\n", r.Type)
		fmt.Fprintf(&b, "  Dimensions: %.2fm × %.2fm\n", r.Dimensions[0], r.Dimensions[1])
		fmt.Fprintf(&b, "  Area: %.2f sq.m\n", r.Area)
		total += r.Area
	}
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Total Area: %.2f sq.m\n", total)
	return b.String()
}
