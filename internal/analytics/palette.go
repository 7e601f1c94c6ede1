package analytics

// NeutralColor is used when a category id has no palette entry.
const NeutralColor = "#D3D3D3"

// palette is keyed 1..8.
var palette = map[int64]string{
	1: "#E57373", // red
	2: "#FFB74D", // orange
	3: "#81C784", // green
	4: "#64B5F6", // blue
	5: "#BA68C8", // purple
	6: "#4DB6AC", // cyan
	7: "#F06292", // pink
	8: "#90A4AE", // grey
}

// ColorFor returns the display color for a category id. Ids wrap around the
// palette 1-based, so 8 and 16 share a color.
func ColorFor(categoryID int64) string {
	n := int64(len(palette))
	idx := categoryID % n
	if idx == 0 {
		idx = n
	}
	if c, ok := palette[idx]; ok {
		return c
	}
	return NeutralColor
}
