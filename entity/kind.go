package entity

import "github.com/jakecoffman/cp"

// Kind tags an entity variant and doubles as the collision type of every shape it owns
type Kind int

const (
	KindNone Kind = iota
	KindGround
	KindWall
	KindTop
	KindBranch
	KindLeaf
	KindFruit
	KindHazard
	KindPlayer
)

var kindNames = [...]string{
	KindNone:   "none",
	KindGround: "ground",
	KindWall:   "wall",
	KindTop:    "top",
	KindBranch: "branch",
	KindLeaf:   "leaf",
	KindFruit:  "fruit",
	KindHazard: "hazard",
	KindPlayer: "player",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// CollisionType returns the physics collision type for shapes of this kind
func (k Kind) CollisionType() cp.CollisionType {
	return cp.CollisionType(k)
}

// KindOf maps a collision type back to its kind
func KindOf(t cp.CollisionType) Kind {
	k := Kind(t)
	if k < 0 || int(k) >= len(kindNames) {
		return KindNone
	}
	return k
}

// Status is the lifecycle state checked by the collided sweep
type Status uint8

const (
	Active Status = iota
	Collided
)

func (s Status) String() string {
	if s == Collided {
		return "collided"
	}
	return "active"
}
