package domain

// Momentum - per-axis signed accumulator modeling directional movement
// commitment. Both components stay within [-Max, Max].
type Momentum struct {
	Mx           int  `json:"mx"`
	My           int  `json:"my"`
	Max          int  `json:"max"`
	TookHalfTurn bool `json:"tookHalfTurn"`
}

// NewMomentum returns a zeroed momentum with the given cap.
func NewMomentum(max int) Momentum {
	return Momentum{Max: max}
}

// Running reports whether any momentum has built up.
func (m *Momentum) Running() bool {
	return m.Magnitude() != 0
}

// AtMaximum reports whether the accumulator is at its cap.
func (m *Momentum) AtMaximum() bool {
	return m.Magnitude() == m.Max
}

// Magnitude is the larger absolute axis component.
func (m *Momentum) Magnitude() int {
	if abs(m.Mx) > abs(m.My) {
		return abs(m.Mx)
	}
	return abs(m.My)
}

// Diagonal reports whether both axes hold momentum.
func (m *Momentum) Diagonal() bool {
	return m.Mx != 0 && m.My != 0
}

// Moved updates momentum for a move in direction (dx, dy). An axis
// whose current sign disagrees with the attempted direction resets to
// zero; otherwise it ramps by one step, clamped to the cap. A reversal
// therefore kills momentum on that axis instead of flipping it.
func (m *Momentum) Moved(dx, dy int) {
	if m.Mx != 0 && Sign(dx) != Sign(m.Mx) {
		m.Mx = 0
	} else {
		m.Mx = clamp(m.Mx+Sign(dx), -m.Max, m.Max)
	}

	if m.My != 0 && Sign(dy) != Sign(m.My) {
		m.My = 0
	} else {
		m.My = clamp(m.My+Sign(dy), -m.Max, m.Max)
	}
}

// Set overwrites both components.
func (m *Momentum) Set(mx, my int) {
	m.Mx = mx
	m.My = my
}

// Clear zeroes both components. Called on a collision.
func (m *Momentum) Clear() {
	m.Mx = 0
	m.My = 0
}
