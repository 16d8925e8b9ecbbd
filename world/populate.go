package world

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/constant"
	"github.com/lixenwraith/woger/entity"
)

// Setup parameterizes the initial level
type Setup struct {
	Field   Field
	Owanges int
	Glide   int
}

// Populate builds the level into w: bounds, the branch tree with boughs at its tips,
// the player and the initial owanges. The routing table is registered before returning.
func Populate(w *World, setup Setup, cues Cues) (*entity.Woger, *Rules) {
	f := setup.Field

	w.AddItem(entity.NewGround(f.Width))
	w.AddItem(entity.NewTrunk(-f.Width/2-constant.WallOutset, f.Height))
	w.AddItem(entity.NewTrunk(f.Width/2-constant.WallInset, f.Height))
	w.AddItem(entity.NewTopTrunk(f.Width, f.Height))

	growBranch(w, cp.Vector{X: 0, Y: constant.TrunkBaseY}, 0, constant.TrunkThickness, trunkLength(f))

	player := entity.NewWoger(constant.PlayerStartX, constant.PlayerStartY, f.Width)
	w.AddItem(player)

	rules := NewRules(w, player, cues, f, setup.Glide)
	rules.Register()

	for range setup.Owanges {
		w.AddOwange(rules.respawnX(), f.Height-constant.HazardRespawnDrop)
	}

	w.log.Info("level populated", "items", len(w.items), "leaves", len(w.leaves))
	return player, rules
}

// treeDepth counts branch levels from the trunk to the branches that carry boughs
func treeDepth() int {
	depth := 1
	for t := float64(constant.TrunkThickness); t >= constant.BoughThickness; t *= constant.ForkThinning {
		depth++
	}
	return depth
}

// trunkLength scales the trunk to the field and caps it so that a tree grown straight up,
// every level as long as the trunk, keeps its boughs below the top bound
func trunkLength(f Field) float64 {
	length := constant.TrunkLength * f.Height / constant.TreeReferenceHeight
	ceiling := f.Height - constant.TrunkBaseY - constant.BoughHeight - constant.StaticRadius
	return min(length, ceiling/float64(treeDepth()))
}

// growBranch adds a branch at base; thin branches end in a bough, thick ones fork
func growBranch(w *World, base cp.Vector, angle, thickness, length float64) {
	branch := entity.NewBranch(base, angle, thickness, length)
	w.AddItem(branch)

	if thickness < constant.BoughThickness {
		w.AddItem(entity.NewBough(branch))
		return
	}

	n := constant.ForkMin + w.rng.Intn(constant.ForkMax-constant.ForkMin+1)
	lo, hi := math.Pi/8, math.Pi/float64(n)
	spread := lo + w.rng.Float64()*(hi-lo)
	for i := range n {
		delta := spread*float64(n-1)/2 - spread*float64(i)
		growBranch(w, branch.Tip(), angle+delta,
			thickness*constant.ForkThinning,
			length*(1-math.Abs(delta)/constant.ForkLengthFalloff))
	}
}
