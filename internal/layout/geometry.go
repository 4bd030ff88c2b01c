package layout

// Axis is the coordinate axis a wall plane lies on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Other returns the free axis along a wall: a door on a north/south
// wall slides along X, a door on an east/west wall slides along Y.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Edges returns the four wall-plane coordinates of the footprint.
func (r Room) Edges() (north, south, east, west float64) {
	return r.Y - r.H/2, r.Y + r.H/2, r.X + r.W/2, r.X - r.W/2
}

// WallPlane returns the axis and coordinate of one wall's plane.
func (r Room) WallPlane(w Wall) (Axis, float64) {
	north, south, east, west := r.Edges()
	switch w {
	case North:
		return AxisY, north
	case South:
		return AxisY, south
	case East:
		return AxisX, east
	}
	return AxisX, west
}

// Span returns the footprint's extent on one axis, low to high.
func (r Room) Span(a Axis) (lo, hi float64) {
	north, south, east, west := r.Edges()
	if a == AxisX {
		return west, east
	}
	return north, south
}

// Coord picks the component of a plan-space point on one axis.
func Coord(a Axis, x, y float64) float64 {
	if a == AxisX {
		return x
	}
	return y
}
