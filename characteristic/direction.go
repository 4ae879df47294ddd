package characteristic

// Direction identifies one of the three sweep directions. Values are
// dispatched by a switch (tagged dispatch, per the spec's design note
// favoring monomorphization over indirect function-pointer calls), not
// stored as a func value.
type Direction int

const (
	X Direction = iota
	Y
	Z
)

// tangential returns the two velocity-component axes (0=u,1=v,2=w)
// that are tangential to d, in ascending axis order. The corresponding
// momentum row in a Cons state is 1+axis.
func (d Direction) tangential() (t1, t2 int) {
	switch d {
	case X:
		return 1, 2 // v, w
	case Y:
		return 0, 2 // u, w
	default:
		return 0, 1 // u, v
	}
}

// normalAxis returns the velocity-component axis (0=u,1=v,2=w) that is
// normal to this direction.
func (d Direction) normalAxis() int { return int(d) }

// TangentialAxes is the exported form of tangential, for packages
// (viscous) that need to assemble face fluxes per axis without
// duplicating the direction-to-axis table.
func (d Direction) TangentialAxes() (t1, t2 int) { return d.tangential() }

// NormalAxis is the exported form of normalAxis.
func (d Direction) NormalAxis() int { return d.normalAxis() }
