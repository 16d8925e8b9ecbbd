package world

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/woger/constant"
	"github.com/lixenwraith/woger/entity"
)

// Cues plays named one-shot sounds
type Cues interface {
	PlayCue(name string) error
}

// Field is the play area: x spans [-Width/2, Width/2], y spans [0, Height]
type Field struct {
	Width, Height float64
}

// Rules is the collision routing table: gameplay effects keyed by pairs of kinds.
// Every handler returns true; contacts are never physically suppressed.
type Rules struct {
	world  *World
	player *entity.Woger
	cues   Cues
	field  Field
	glide  int
	log    *log.Logger
}

// NewRules binds the routing table to a world, its player and a cue sink
func NewRules(w *World, player *entity.Woger, cues Cues, field Field, glide int) *Rules {
	return &Rules{
		world:  w,
		player: player,
		cues:   cues,
		field:  field,
		glide:  glide,
		log:    w.log,
	}
}

// Register installs every handler on the world
func (r *Rules) Register() {
	r.world.AddCollisionHandler(entity.KindGround, entity.KindPlayer, Handler{
		Begin: r.landedOnGround, Separate: r.offGround,
	})
	r.world.AddCollisionHandler(entity.KindLeaf, entity.KindPlayer, Handler{
		Begin: r.touchLeaf, Separate: r.offLeaf,
	})
	r.world.AddCollisionHandler(entity.KindHazard, entity.KindPlayer, Handler{
		Begin: r.touchHazard, Separate: r.ignore,
	})
	r.world.AddCollisionHandler(entity.KindGround, entity.KindHazard, Handler{
		Begin: r.hazardHitGround, Separate: r.ignore,
	})
	r.world.AddCollisionHandler(entity.KindGround, entity.KindLeaf, Handler{
		Begin: r.leafHitGround,
	})
	r.world.AddCollisionHandler(entity.KindGround, entity.KindFruit, Handler{
		Begin: r.fruitHitGround,
	})
	r.world.AddCollisionHandler(entity.KindFruit, entity.KindPlayer, Handler{
		Begin: r.touchFruit,
	})
}

func (r *Rules) cue(name string) {
	if err := r.cues.PlayCue(name); err != nil {
		r.log.Warn("cue failed", "name", name, "err", err)
	}
}

func (r *Rules) ignore(Contact) {}

func (r *Rules) landedOnGround(Contact) bool {
	r.player.InAir = false
	r.player.AllowedGlide = r.glide
	r.player.ResetForces()
	return true
}

// offGround leaves the airborne flag false: the separate handlers set the same value as
// the begin handler of the opposite surface
func (r *Rules) offGround(Contact) {
	r.player.InAir = false
	r.cue(constant.CueHit)
}

func (r *Rules) touchLeaf(Contact) bool {
	r.player.InAir = true
	r.player.AllowedGlide = r.glide
	return true
}

func (r *Rules) offLeaf(Contact) {
	r.player.InAir = true
	r.cue(constant.CueHit)
}

func (r *Rules) touchHazard(c Contact) bool {
	for _, o := range c.Of(entity.KindHazard) {
		if o.Status() == entity.Collided {
			continue
		}
		r.player.Score += constant.HazardCatchPoints * r.player.Multiplier
		cues := constant.HazardCatchCues
		r.cue(cues[r.world.rng.Intn(len(cues))])
		r.world.RemoveItem(o)
		r.world.AddOwange(r.respawnX(), r.field.Height-constant.HazardRespawnDrop)
	}
	return true
}

// respawnX picks an integral x uniformly in [-Width/2, Width/2]
func (r *Rules) respawnX() float64 {
	half := int(r.field.Width) / 2
	return float64(r.world.rng.Intn(2*half+1) - half)
}

func (r *Rules) hazardHitGround(c Contact) bool {
	if !c.Has(entity.KindGround) {
		return true
	}
	for _, o := range c.Of(entity.KindHazard) {
		if o.Status() == entity.Collided {
			continue
		}
		r.player.Score -= constant.HazardGroundPenalty
		r.cue(constant.CueSplat)
		o.Destroy()
	}
	return true
}

func (r *Rules) leafHitGround(c Contact) bool {
	if !c.Has(entity.KindGround) {
		return true
	}
	for _, l := range c.Of(entity.KindLeaf) {
		l.Destroy()
	}
	return true
}

func (r *Rules) fruitHitGround(c Contact) bool {
	if !c.Has(entity.KindGround) {
		return true
	}
	for _, f := range c.Of(entity.KindFruit) {
		f.Destroy()
	}
	return true
}

func (r *Rules) touchFruit(c Contact) bool {
	for _, f := range c.Of(entity.KindFruit) {
		if f.Status() == entity.Collided {
			continue
		}
		r.player.Multiplier += constant.FruitMultiplierStep
		r.cue(constant.CuePowerup)
		r.world.RemoveItem(f)
	}
	return true
}
