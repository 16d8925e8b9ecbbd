package world

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/entity"
)

// Contact lists the entities owning the shapes of one collision
type Contact struct {
	Entities []entity.Entity
}

func contactOf(arb *cp.Arbiter) Contact {
	a, b := arb.Shapes()
	var c Contact
	for _, s := range [2]*cp.Shape{a, b} {
		if e, ok := entity.OwnerOf(s); ok {
			c.Entities = append(c.Entities, e)
		}
	}
	return c
}

// Has reports whether any participant is of kind k
func (c Contact) Has(k entity.Kind) bool {
	for _, e := range c.Entities {
		if e.Kind() == k {
			return true
		}
	}
	return false
}

// Of returns the participants of kind k
func (c Contact) Of(k entity.Kind) []entity.Entity {
	var out []entity.Entity
	for _, e := range c.Entities {
		if e.Kind() == k {
			out = append(out, e)
		}
	}
	return out
}

// Handler holds the callbacks for one pair of kinds. Nil callbacks keep the physics default.
// Begin and PreSolve return whether the contact is processed normally.
type Handler struct {
	Begin     func(Contact) bool
	PreSolve  func(Contact) bool
	PostSolve func(Contact)
	Separate  func(Contact)
}

// AddCollisionHandler routes collisions between kinds a and b to h
func (w *World) AddCollisionHandler(a, b entity.Kind, h Handler) {
	ch := w.space.NewCollisionHandler(a.CollisionType(), b.CollisionType())
	if h.Begin != nil {
		ch.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			return h.Begin(contactOf(arb))
		}
	}
	if h.PreSolve != nil {
		ch.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			return h.PreSolve(contactOf(arb))
		}
	}
	if h.PostSolve != nil {
		ch.PostSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			h.PostSolve(contactOf(arb))
		}
	}
	if h.Separate != nil {
		ch.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
			h.Separate(contactOf(arb))
		}
	}
}
