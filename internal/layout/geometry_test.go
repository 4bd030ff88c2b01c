package layout

import "testing"

func TestRoomEdges(t *testing.T) {
	r := Room{ID: 1, X: 10, Y: 20, W: 4, H: 6}
	north, south, east, west := r.Edges()
	if north != 17 || south != 23 || east != 12 || west != 8 {
		t.Fatalf("edges = (%g, %g, %g, %g), want (17, 23, 12, 8)", north, south, east, west)
	}
}

func TestWallPlane_AxesAndCoordinates(t *testing.T) {
	r := Room{ID: 1, X: 10, Y: 20, W: 4, H: 6}
	cases := []struct {
		wall  Wall
		axis  Axis
		coord float64
	}{
		{North, AxisY, 17},
		{South, AxisY, 23},
		{East, AxisX, 12},
		{West, AxisX, 8},
	}
	for _, c := range cases {
		axis, coord := r.WallPlane(c.wall)
		if axis != c.axis || coord != c.coord {
			t.Errorf("WallPlane(%s) = (%s, %g), want (%s, %g)", c.wall, axis, coord, c.axis, c.coord)
		}
	}
}

func TestSpanFollowsAxis(t *testing.T) {
	r := Room{ID: 1, X: 10, Y: 20, W: 4, H: 6}
	if lo, hi := r.Span(AxisX); lo != 8 || hi != 12 {
		t.Errorf("Span(x) = [%g, %g], want [8, 12]", lo, hi)
	}
	if lo, hi := r.Span(AxisY); lo != 17 || hi != 23 {
		t.Errorf("Span(y) = [%g, %g], want [17, 23]", lo, hi)
	}
}

func TestAxisOther(t *testing.T) {
	if AxisX.Other() != AxisY || AxisY.Other() != AxisX {
		t.Fatal("Other should swap axes")
	}
	if Coord(AxisX, 1, 2) != 1 || Coord(AxisY, 1, 2) != 2 {
		t.Fatal("Coord should pick the matching component")
	}
}

func TestWallRef_EmbeddedSentinel(t *testing.T) {
	if !WallRefFromRaw(255).Embedded() {
		t.Error("raw 255 should be embedded")
	}
	if !WallRefFromRaw(200).Embedded() {
		t.Error("raw 200 should be embedded")
	}
	ref := WallRefFromRaw(2)
	if ref.Embedded() {
		t.Error("raw 2 should be a bound wall")
	}
	if w, ok := ref.Wall(); !ok || w != East {
		t.Errorf("raw 2 = (%v, %v), want (EAST, true)", w, ok)
	}
	if WallRefFromRaw(255).Raw() != 255 {
		t.Error("Raw should round-trip the snapshot value")
	}
	if _, ok := EmbeddedWall().Wall(); ok {
		t.Error("embedded refs have no bound wall")
	}
}
