package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Entity is anything the world simulates: one physics body, its shapes, a lifecycle status.
//
// Lifecycle:
//  1. Constructor builds the body through CreateBody
//  2. World attaches it with AddToSpace and calls Update once per frame
//  3. Destroy marks it Collided; the world's sweep detaches it with RemoveFromSpace
type Entity interface {
	Kind() Kind
	Status() Status

	// CreateBody builds the body and shapes; a no-op once built
	CreateBody()
	AddToSpace(space *cp.Space)
	RemoveFromSpace(space *cp.Space)
	// InSpace reports whether the body and every shape are attached to space
	InSpace(space *cp.Space) bool

	Update()
	Destroy()
	Position() cp.Vector
}

// Leaf is an entity that hangs from the tree and can be cut loose by pruning
type Leaf interface {
	Entity
	// RemoveFromTree detaches the leaf from its branch without removing it from space
	RemoveFromTree(space *cp.Space)
}

// OwnerOf returns the entity a shape was bound to
func OwnerOf(shape *cp.Shape) (Entity, bool) {
	if shape == nil {
		return nil, false
	}
	e, ok := shape.UserData.(Entity)
	return e, ok
}

// Base carries the state shared by all variants.
// Embedders implement CreateBody and call bind with the built body.
type Base struct {
	kind   Kind
	status Status
	body   *cp.Body
	shapes []*cp.Shape
	joints []*cp.Constraint
}

// bind records body and shapes, tagging each shape with owner and the kind's collision type
func (b *Base) bind(owner Entity, body *cp.Body, shapes ...*cp.Shape) {
	b.body = body
	b.shapes = shapes
	for _, s := range shapes {
		s.UserData = owner
		s.SetCollisionType(b.kind.CollisionType())
	}
}

func (b *Base) Kind() Kind          { return b.kind }
func (b *Base) Status() Status      { return b.status }
func (b *Base) Destroy()            { b.status = Collided }
func (b *Base) Update()             {}
func (b *Base) Body() *cp.Body      { return b.body }
func (b *Base) Shapes() []*cp.Shape { return b.shapes }

// Position returns the body position, or the origin before the body exists
func (b *Base) Position() cp.Vector {
	if b.body == nil {
		return cp.Vector{}
	}
	return b.body.Position()
}

func (b *Base) AddToSpace(space *cp.Space) {
	if b.body == nil {
		panic(fmt.Sprintf("entity: %s added to space before CreateBody", b.kind))
	}
	space.AddBody(b.body)
	for _, s := range b.shapes {
		space.AddShape(s)
	}
	for _, j := range b.joints {
		space.AddConstraint(j)
	}
}

func (b *Base) RemoveFromSpace(space *cp.Space) {
	for _, j := range b.joints {
		if space.ContainsConstraint(j) {
			space.RemoveConstraint(j)
		}
	}
	for _, s := range b.shapes {
		if space.ContainsShape(s) {
			space.RemoveShape(s)
		}
	}
	if b.body != nil && space.ContainsBody(b.body) {
		space.RemoveBody(b.body)
	}
}

func (b *Base) InSpace(space *cp.Space) bool {
	if b.body == nil || !space.ContainsBody(b.body) {
		return false
	}
	for _, s := range b.shapes {
		if !space.ContainsShape(s) {
			return false
		}
	}
	return true
}
