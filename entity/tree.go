package entity

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/constant"
)

// Branch is a static sensor segment of the tree. Angle 0 points straight up
type Branch struct {
	Base
	base, tip cp.Vector
	angle     float64
	thickness float64
}

// NewBranch grows a branch of length from base in direction angle
func NewBranch(base cp.Vector, angle, thickness, length float64) *Branch {
	dir := cp.Vector{X: -math.Sin(angle), Y: math.Cos(angle)}
	br := &Branch{
		Base:      Base{kind: KindBranch},
		base:      base,
		tip:       base.Add(dir.Mult(length)),
		angle:     angle,
		thickness: thickness,
	}
	br.CreateBody()
	return br
}

func (br *Branch) CreateBody() {
	if br.body != nil {
		return
	}
	body := cp.NewStaticBody()
	shape := cp.NewSegment(body, br.base, br.tip, br.thickness/2)
	shape.SetSensor(true)
	br.bind(br, body, shape)
}

func (br *Branch) Tip() cp.Vector                  { return br.tip }
func (br *Branch) Angle() float64                  { return br.angle }
func (br *Branch) Thickness() float64              { return br.thickness }
func (br *Branch) Segment() (cp.Vector, cp.Vector) { return br.base, br.tip }

// Bough is a leaf hanging from a branch tip by a pivot joint.
// Boughs share a collision group and never collide with each other.
type Bough struct {
	Base
	branch *Branch
	pin    *cp.Constraint
}

func NewBough(branch *Branch) *Bough {
	bo := &Bough{Base: Base{kind: KindLeaf}, branch: branch}
	bo.CreateBody()
	return bo
}

func (bo *Bough) CreateBody() {
	if bo.body != nil {
		return
	}
	tip := bo.branch.Tip()
	body := cp.NewBody(constant.BoughMass, cp.INFINITY)
	body.SetPosition(tip)
	shape := cp.NewBox(body, constant.BoughWidth, constant.BoughHeight, 0)
	shape.SetFriction(constant.PlayerFriction)
	shape.SetFilter(cp.ShapeFilter{
		Group:      constant.BoughGroup,
		Categories: cp.ALL_CATEGORIES,
		Mask:       cp.ALL_CATEGORIES,
	})
	bo.bind(bo, body, shape)

	bo.pin = cp.NewPivotJoint(bo.branch.Body(), body, tip)
	bo.joints = []*cp.Constraint{bo.pin}
}

// RemoveFromTree drops the pivot so the bough falls free
func (bo *Bough) RemoveFromTree(space *cp.Space) {
	if bo.pin != nil && space.ContainsConstraint(bo.pin) {
		space.RemoveConstraint(bo.pin)
	}
	bo.joints = nil
}

// Attached reports whether the bough still hangs from its branch
func (bo *Bough) Attached() bool { return len(bo.joints) > 0 }

func (bo *Bough) Branch() *Branch { return bo.branch }
