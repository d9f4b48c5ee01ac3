package scene

import "fmt"

// Shape is the primitive used to draw a marker.
type Shape int

const (
	Sphere Shape = iota
	Cone
	Cube
)

func (s Shape) String() string {
	switch s {
	case Sphere:
		return "SPHERE"
	case Cone:
		return "CONE"
	case Cube:
		return "CUBE"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}
