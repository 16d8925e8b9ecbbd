package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/constant"
)

// Woger is the player: a non-rotating box that runs, jumps and glides
type Woger struct {
	Base
	start  cp.Vector
	bounds float64

	InAir        bool
	AllowedGlide int
	Score        int
	Multiplier   int

	gliding bool
}

// NewWoger places the player at x, y inside a field bounds wide
func NewWoger(x, y, bounds float64) *Woger {
	w := &Woger{
		Base:         Base{kind: KindPlayer},
		start:        cp.Vector{X: x, Y: y},
		bounds:       bounds,
		AllowedGlide: constant.GlideAllowance,
		Multiplier:   constant.InitialMultiplier,
	}
	w.CreateBody()
	return w
}

func (w *Woger) CreateBody() {
	if w.body != nil {
		return
	}
	body := cp.NewBody(constant.PlayerMass, cp.INFINITY)
	body.SetPosition(w.start)
	shape := cp.NewBox(body, constant.PlayerWidth, constant.PlayerHeight, 0)
	shape.SetFriction(constant.PlayerFriction)
	w.bind(w, body, shape)
}

// Move sets horizontal speed; dir is -1, 0 or 1
func (w *Woger) Move(dir float64) {
	v := w.body.Velocity()
	w.body.SetVelocity(dir*constant.PlayerMoveSpeed, v.Y)
}

// Jump launches the player upward unless airborne
func (w *Woger) Jump() bool {
	if w.InAir {
		return false
	}
	v := w.body.Velocity()
	w.body.SetVelocity(v.X, constant.PlayerJumpSpeed)
	return true
}

func (w *Woger) SetGliding(on bool) { w.gliding = on }
func (w *Woger) Gliding() bool      { return w.gliding }

// ResetForces clears accumulated force and torque on the body
func (w *Woger) ResetForces() {
	w.body.SetForce(cp.Vector{})
	w.body.SetTorque(0)
}

// Update caps the fall speed while gliding, spending one unit of glide per capped frame,
// and keeps the player inside the field
func (w *Woger) Update() {
	v := w.body.Velocity()
	if w.gliding && w.AllowedGlide > 0 && v.Y < -constant.PlayerGlideFallRate {
		w.body.SetVelocity(v.X, -constant.PlayerGlideFallRate)
		w.AllowedGlide--
	}

	half := w.bounds / 2
	p := w.body.Position()
	switch {
	case p.X < -half:
		w.body.SetPosition(cp.Vector{X: -half, Y: p.Y})
		w.body.SetVelocity(0, w.body.Velocity().Y)
	case p.X > half:
		w.body.SetPosition(cp.Vector{X: half, Y: p.Y})
		w.body.SetVelocity(0, w.body.Velocity().Y)
	}
}
