package inspect

// Tolerances are the geometric slack the checks allow before flagging
// a door. The defaults match the generator's contract; they exist as
// knobs for triaging, not for hiding errors.
type Tolerances struct {
	// Plane is how far a door may sit off a room's wall plane.
	Plane float64
	// Bounds is the slack on the wall's span when checking that the
	// door falls within it.
	Bounds float64
	// Adjacency is the largest gap two paired walls may have and still
	// count as touching.
	Adjacency float64
	// HullMargin is the exclusion margin around the coordinate origin;
	// doors inside it are almost certainly outside the intended hull.
	HullMargin float64
	// PlayerRadius insets room bounds when simulating traversal.
	PlayerRadius float64
	// FarEntry is the entry-point distance above which a traversal is
	// flagged as worth inspection.
	FarEntry float64
}

// DefaultTolerances returns the generator-contract values.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Plane:        1.0,
		Bounds:       0.5,
		Adjacency:    1.5,
		HullMargin:   0.5,
		PlayerRadius: 0.3,
		FarEntry:     10,
	}
}
