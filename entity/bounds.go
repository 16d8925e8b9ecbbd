package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/constant"
)

// Segment is a static line entity: the ground, a bounding trunk or the top bound
type Segment struct {
	Base
	a, b cp.Vector
}

func newSegment(kind Kind, a, b cp.Vector) *Segment {
	s := &Segment{Base: Base{kind: kind}, a: a, b: b}
	s.CreateBody()
	return s
}

// NewGround spans the field floor at y=0
func NewGround(width float64) *Segment {
	return newSegment(KindGround, cp.Vector{X: -width, Y: 0}, cp.Vector{X: width, Y: 0})
}

// NewTrunk is a vertical bounding wall at x
func NewTrunk(x, height float64) *Segment {
	return newSegment(KindWall, cp.Vector{X: x, Y: 0}, cp.Vector{X: x, Y: height})
}

// NewTopTrunk closes the field at height
func NewTopTrunk(width, height float64) *Segment {
	return newSegment(KindTop, cp.Vector{X: -width, Y: height}, cp.Vector{X: width, Y: height})
}

func (s *Segment) CreateBody() {
	if s.body != nil {
		return
	}
	body := cp.NewStaticBody()
	shape := cp.NewSegment(body, s.a, s.b, constant.StaticRadius)
	shape.SetFriction(constant.GroundFriction)
	s.bind(s, body, shape)
}

// Ends returns the segment endpoints in world coordinates
func (s *Segment) Ends() (cp.Vector, cp.Vector) { return s.a, s.b }
