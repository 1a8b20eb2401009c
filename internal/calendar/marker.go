package calendar

// Dot is the glyph of a colored day marker.
const Dot = "•"

// Marker is a decorative annotation drawn under a day number.
type Marker struct {
	Glyph string
	// Color is a palette family name ("blue"); empty renders in the text color.
	Color string
}

// Markers maps a day of the month to its marker.
type Markers map[int]Marker

// DefaultMarkers is the built-in annotation table.
func DefaultMarkers() Markers {
	return Markers{
		4:  {Glyph: Dot, Color: "white"},
		10: {Glyph: Dot, Color: "blue"},
		14: {Glyph: Dot, Color: "purple"},
		16: {Glyph: Dot, Color: "red"},
		20: {Glyph: "✕"},
		25: {Glyph: Dot, Color: "green"},
	}
}

// For returns the marker of cell. Padding days never carry a marker.
func (m Markers) For(cell DayCell) (Marker, bool) {
	if !cell.InCurrentMonth {
		return Marker{}, false
	}
	marker, ok := m[cell.Day()]
	return marker, ok
}
