package core

// Side identifies the left or right half of the field
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Sign returns -1 for left and +1 for right, matching field x-axis orientation
func (s Side) Sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Edge identifies the top or bottom field bound
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Sign returns +1 for top and -1 for bottom (field y-axis points up)
func (e Edge) Sign() float64 {
	if e == EdgeTop {
		return 1
	}
	return -1
}

func (e Edge) String() string {
	if e == EdgeTop {
		return "top"
	}
	return "bottom"
}
