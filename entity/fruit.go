package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/constant"
)

// Fruit is a falling circle: cherries raise the multiplier, owanges score or penalize
type Fruit struct {
	Base
	start  cp.Vector
	radius float64
	mass   float64
}

func newFruit(kind Kind, x, y, radius, mass float64) *Fruit {
	f := &Fruit{Base: Base{kind: kind}, start: cp.Vector{X: x, Y: y}, radius: radius, mass: mass}
	f.CreateBody()
	return f
}

// NewCherry creates a fruit at x, y
func NewCherry(x, y float64) *Fruit {
	return newFruit(KindFruit, x, y, constant.CherryRadius, constant.CherryMass)
}

// NewOwange creates a hazard at x, y
func NewOwange(x, y float64) *Fruit {
	return newFruit(KindHazard, x, y, constant.OwangeRadius, constant.OwangeMass)
}

func (f *Fruit) CreateBody() {
	if f.body != nil {
		return
	}
	body := cp.NewBody(f.mass, cp.MomentForCircle(f.mass, 0, f.radius, cp.Vector{}))
	body.SetPosition(f.start)
	shape := cp.NewCircle(body, f.radius, cp.Vector{})
	shape.SetElasticity(constant.FruitBounce)
	shape.SetFriction(constant.PlayerFriction)
	f.bind(f, body, shape)
}
