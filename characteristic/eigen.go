package characteristic

// Eigenvalues returns Lambda = (vn-c, vn, vn, vn, vn+c) for direction d
// at the averaged state s.
func Eigenvalues(s AveragedState, d Direction) [5]float64 {
	vn := normalVelocity(s, d)
	return [5]float64{vn - s.C, vn, vn, vn, vn + s.C}
}

func normalVelocity(s AveragedState, d Direction) float64 {
	switch d {
	case X:
		return s.U
	case Y:
		return s.V
	default:
		return s.W
	}
}

func velocityComponent(s AveragedState, axis int) float64 {
	switch axis {
	case 0:
		return s.U
	case 1:
		return s.V
	default:
		return s.W
	}
}

// RightEigenvectors returns R_s, the matrix whose columns are the
// right eigenvectors of the Euler flux Jacobian in direction d,
// ordered (vn-c, entropy, tangential1, tangential2, vn+c), evaluated
// at the averaged state s.
func RightEigenvectors(s AveragedState, d Direction) Mat5 {
	normal := 1 + d.normalAxis()
	t1axis, t2axis := d.tangential()
	row1, row2 := 1+t1axis, 1+t2axis
	vn := normalVelocity(s, d)
	vt1 := velocityComponent(s, t1axis)
	vt2 := velocityComponent(s, t2axis)
	v2 := s.U*s.U + s.V*s.V + s.W*s.W
	c := s.C

	var r Mat5
	// mass row
	r.Set(0, 0, 1)
	r.Set(0, 1, 1)
	r.Set(0, 4, 1)
	// normal momentum row
	r.Set(normal, 0, vn-c)
	r.Set(normal, 1, vn)
	r.Set(normal, 4, vn+c)
	// tangential momentum rows
	r.Set(row1, 0, vt1)
	r.Set(row1, 1, vt1)
	r.Set(row1, 2, 1)
	r.Set(row1, 4, vt1)
	r.Set(row2, 0, vt2)
	r.Set(row2, 1, vt2)
	r.Set(row2, 3, 1)
	r.Set(row2, 4, vt2)
	// energy row
	r.Set(4, 0, s.HT-vn*c)
	r.Set(4, 1, 0.5*v2)
	r.Set(4, 2, vt1)
	r.Set(4, 3, vt2)
	r.Set(4, 4, s.HT+vn*c)
	return r
}

// LeftEigenvectors returns L_s = R_s^-1 in closed form (spec §4.3:
// these entries must reproduce the analytic Euler-Jacobian inverse
// exactly, not merely numerically invert R_s).
func LeftEigenvectors(s AveragedState, d Direction) Mat5 {
	normal := 1 + d.normalAxis()
	t1axis, t2axis := d.tangential()
	row1, row2 := 1+t1axis, 1+t2axis
	vn := normalVelocity(s, d)
	vt1 := velocityComponent(s, t1axis)
	vt2 := velocityComponent(s, t2axis)
	v2 := s.U*s.U + s.V*s.V + s.W*s.W
	c := s.C
	b1 := (s.Gamma - 1) / (c * c)
	b2 := b1 * v2 / 2

	var l Mat5
	// row for lambda = vn-c
	l.Set(0, 0, (b2+vn/c)/2)
	l.Set(0, normal, -(b1*vn+1/c)/2)
	l.Set(0, row1, -b1*vt1/2)
	l.Set(0, row2, -b1*vt2/2)
	l.Set(0, 4, b1/2)
	// row for lambda = vn, entropy wave
	l.Set(1, 0, 1-b2)
	l.Set(1, normal, b1*vn)
	l.Set(1, row1, b1*vt1)
	l.Set(1, row2, b1*vt2)
	l.Set(1, 4, -b1)
	// row for lambda = vn, tangential1 shear
	l.Set(2, 0, -vt1)
	l.Set(2, row1, 1)
	// row for lambda = vn, tangential2 shear
	l.Set(3, 0, -vt2)
	l.Set(3, row2, 1)
	// row for lambda = vn+c
	l.Set(4, 0, (b2-vn/c)/2)
	l.Set(4, normal, -(b1*vn-1/c)/2)
	l.Set(4, row1, -b1*vt1/2)
	l.Set(4, row2, -b1*vt2/2)
	l.Set(4, 4, b1/2)
	return l
}
