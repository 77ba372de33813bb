package component

// NodeShape is the kind of an enemy node.
type NodeShape int

const (
	Circle NodeShape = iota
	Square
	Hexagon
	Boss
)

func (s NodeShape) String() string {
	switch s {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	case Hexagon:
		return "Hexagon"
	case Boss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// NodeState is the lifecycle state of a node.
type NodeState int

const (
	Inactive NodeState = iota // not yet spawned
	Active
	Dead // health reached zero, waiting for removal
)

// SpawnInfo describes where and how a node enters the field.
type SpawnInfo struct {
	Position   Position
	Shape      NodeShape
	DirectionX float64
	DirectionY float64
}
