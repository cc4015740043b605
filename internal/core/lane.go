package core

// Lane is one of the three discrete horizontal tracks the player can occupy.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

// String returns the wire/display name of the lane.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneCenter:
		return "center"
	case LaneRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseLane converts a wire name to a Lane. The boolean is false for
// anything that is not exactly "left", "center" or "right".
func ParseLane(s string) (Lane, bool) {
	switch s {
	case "left":
		return LaneLeft, true
	case "center":
		return LaneCenter, true
	case "right":
		return LaneRight, true
	}
	return LaneCenter, false
}

// Offset returns the world-space X coordinate of the lane given the
// spacing between adjacent lanes. Center is always 0.
func (l Lane) Offset(spacing float64) float64 {
	return float64(l-LaneCenter) * spacing
}

// Left returns the lane one step to the left, clamped at the edge.
func (l Lane) Left() Lane {
	if l > LaneLeft {
		return l - 1
	}
	return l
}

// Right returns the lane one step to the right, clamped at the edge.
func (l Lane) Right() Lane {
	if l < LaneRight {
		return l + 1
	}
	return l
}

// Toward returns the lane one step closer to target. Lane changes are
// always adjacent moves: left<->center and center<->right, never a
// direct left<->right hop.
func (l Lane) Toward(target Lane) Lane {
	switch {
	case target > l:
		return l + 1
	case target < l:
		return l - 1
	default:
		return l
	}
}
