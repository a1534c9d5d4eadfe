package meshes

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/pkg/errors"
)

type ShapeKind int

const (
	ShapeKind_Unknown ShapeKind = iota
	ShapeKind_Triangle
	ShapeKind_Square
)

func (sk ShapeKind) String() string {

	switch sk {
	case ShapeKind_Triangle:
		return "triangle"
	case ShapeKind_Square:
		return "square"
	default:
		return "unknown"
	}
}

func ParseShapeKind(s string) (ShapeKind, error) {

	switch s {
	case "triangle":
		return ShapeKind_Triangle, nil
	case "square":
		return ShapeKind_Square, nil
	default:
		return ShapeKind_Unknown, errors.Errorf("unknown shape '%s'. Must be 'triangle' or 'square'", s)
	}
}

// Shape is static 2D geometry in normalized device coordinates
type Shape struct {
	Kind      ShapeKind
	Positions []gglm.Vec2
	Indices   []uint32
}

func NewTriangle() Shape {
	return Shape{
		Kind: ShapeKind_Triangle,
		Positions: []gglm.Vec2{
			{Data: [2]float32{-0.5, -0.5}},
			{Data: [2]float32{0, 0.5}},
			{Data: [2]float32{0.5, -0.5}},
		},
	}
}

// NewSquare returns a square made of two triangles sharing vertices 0 and 2
func NewSquare() Shape {
	return Shape{
		Kind: ShapeKind_Square,
		Positions: []gglm.Vec2{
			{Data: [2]float32{-0.5, -0.5}},
			{Data: [2]float32{0.5, -0.5}},
			{Data: [2]float32{0.5, 0.5}},
			{Data: [2]float32{-0.5, 0.5}},
		},
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

func NewShape(kind ShapeKind) (Shape, error) {

	switch kind {
	case ShapeKind_Triangle:
		return NewTriangle(), nil
	case ShapeKind_Square:
		return NewSquare(), nil
	default:
		return Shape{}, errors.Errorf("no geometry for shape kind '%d'", kind)
	}
}

// Flatten returns the positions as x0,y0,x1,y1,... ready for upload
func (s *Shape) Flatten() []float32 {

	out := make([]float32, 0, len(s.Positions)*2)
	for i := 0; i < len(s.Positions); i++ {
		out = append(out, s.Positions[i].Data[:]...)
	}

	return out
}
