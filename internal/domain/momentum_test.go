package domain

import "testing"

func TestMomentumRamp(t *testing.T) {
	m := NewMomentum(2)

	t.Run("Builds up to the cap and no further", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			m.Moved(1, 0)
		}
		if m.Mx != 2 {
			t.Errorf("expected Mx clamped at 2, got %d", m.Mx)
		}
		if !m.AtMaximum() {
			t.Error("expected momentum at maximum")
		}
	})

	t.Run("Reversal zeroes the axis instead of flipping", func(t *testing.T) {
		m.Moved(-1, 0)
		if m.Mx != 0 {
			t.Errorf("expected reversal to reset Mx to 0, got %d", m.Mx)
		}
		if m.Running() {
			t.Error("expected no momentum after reversal")
		}
	})
}

func TestMomentumAxesIndependent(t *testing.T) {
	m := NewMomentum(2)
	m.Moved(1, 1)
	m.Moved(1, 1)
	if m.Mx != 2 || m.My != 2 {
		t.Errorf("expected (2, 2), got (%d, %d)", m.Mx, m.My)
	}
	if !m.Diagonal() {
		t.Error("expected diagonal momentum")
	}

	// Reversing only y keeps x intact.
	m.Moved(1, -1)
	if m.Mx != 2 || m.My != 0 {
		t.Errorf("expected (2, 0), got (%d, %d)", m.Mx, m.My)
	}
	if m.Diagonal() {
		t.Error("expected no diagonal momentum after y reset")
	}
}

func TestMomentumClear(t *testing.T) {
	m := NewMomentum(3)
	m.Moved(0, 1)
	m.Moved(0, 1)
	m.Clear()
	if m.Running() {
		t.Errorf("expected cleared momentum, got (%d, %d)", m.Mx, m.My)
	}
}

func TestMomentumSidestepResetsAxis(t *testing.T) {
	m := NewMomentum(2)
	m.Moved(1, 0)
	m.Moved(1, 0)
	// Turning off the axis counts as disagreement and drops it.
	m.Moved(0, 1)
	if m.Mx != 0 {
		t.Errorf("expected sidestep to reset Mx, got %d", m.Mx)
	}
	if m.My != 1 {
		t.Errorf("expected My ramped to 1, got %d", m.My)
	}
}
