package world

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/entity"
)

// Config configures a World
type Config struct {
	Gravity  float64
	TimeStep float64
	Rand     *rand.Rand
	Log      *log.Logger
}

type spaceOp uint8

const (
	opAttach spaceOp = iota
	opDetach
)

// postStepKey dedupes deferred space mutations per entity and operation
type postStepKey struct {
	e  entity.Entity
	op spaceOp
}

// World owns the physics space, the ordered entity registry and the leaf pruning state.
//
// Invariants, holding between calls:
//   - An entity is in the registry iff its body and shapes are attached to the space
//   - Every registered Leaf is in leaves until pruned or removed
//   - endGame becomes true only when Tick finds no leaves left
//
// Collision handlers run synchronously inside Update. Space mutations requested while the
// space is stepping are deferred to post-step callbacks and applied before Update returns.
// Not safe for concurrent use.
type World struct {
	space    *cp.Space
	timeStep float64
	rng      *rand.Rand
	log      *log.Logger

	items   []entity.Entity
	leaves  []entity.Leaf
	endGame bool

	stepping bool
}

// New creates an empty world
func New(cfg Config) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &World{
		space:    space,
		timeStep: cfg.TimeStep,
		rng:      rng,
		log:      logger,
	}
}

// Space returns the physics space. Callers must not step it
func (w *World) Space() *cp.Space { return w.space }

// Rand returns the world's random source
func (w *World) Rand() *rand.Rand { return w.rng }

// AddItem registers e and attaches it to the space
func (w *World) AddItem(e entity.Entity) {
	e.CreateBody()
	w.items = append(w.items, e)
	if leaf, ok := e.(entity.Leaf); ok {
		w.leaves = append(w.leaves, leaf)
	}
	w.mutate(e, opAttach)
}

// RemoveItem unregisters e, marks it collided and detaches it from the space.
// Panics if e is not registered.
func (w *World) RemoveItem(e entity.Entity) {
	i := slices.Index(w.items, e)
	if i < 0 {
		panic(fmt.Sprintf("world: remove of unregistered %s entity", e.Kind()))
	}
	w.items = slices.Delete(w.items, i, i+1)

	if leaf, ok := e.(entity.Leaf); ok {
		if j := slices.Index(w.leaves, leaf); j >= 0 {
			w.leaves = slices.Delete(w.leaves, j, j+1)
		}
	}

	e.Destroy()
	w.mutate(e, opDetach)
}

func (w *World) mutate(e entity.Entity, op spaceOp) {
	apply := func(space *cp.Space) {
		if op == opAttach {
			e.AddToSpace(space)
		} else {
			e.RemoveFromSpace(space)
		}
	}
	if !w.stepping {
		apply(w.space)
		return
	}
	w.space.AddPostStepCallback(func(space *cp.Space, _, _ interface{}) {
		apply(space)
	}, postStepKey{e: e, op: op}, nil)
}

// Update steps the space by one fixed timestep, then updates every entity in registry order
func (w *World) Update() {
	w.stepping = true
	w.space.Step(w.timeStep)
	w.stepping = false

	for _, e := range w.items {
		e.Update()
	}
}

// RemoveCollided removes every registered entity whose status is Collided
func (w *World) RemoveCollided() {
	var collided []entity.Entity
	for _, e := range w.items {
		if e.Status() == entity.Collided {
			collided = append(collided, e)
		}
	}
	for _, e := range collided {
		w.RemoveItem(e)
	}
}

// Tick prunes one random leaf from the tree, or ends the game when none are left
func (w *World) Tick() {
	if len(w.leaves) == 0 {
		if !w.endGame {
			w.log.Info("all leaves pruned")
		}
		w.endGame = true
		return
	}

	i := w.rng.Intn(len(w.leaves))
	leaf := w.leaves[i]
	w.leaves = slices.Delete(w.leaves, i, i+1)
	leaf.RemoveFromTree(w.space)
	w.log.Debug("leaf pruned", "remaining", len(w.leaves))
}

// EndGame reports whether pruning has exhausted the tree
func (w *World) EndGame() bool { return w.endGame }

// AddCherry registers a fruit at x, y
func (w *World) AddCherry(x, y float64) *entity.Fruit {
	c := entity.NewCherry(x, y)
	w.AddItem(c)
	return c
}

// AddOwange registers a hazard at x, y
func (w *World) AddOwange(x, y float64) *entity.Fruit {
	o := entity.NewOwange(x, y)
	w.AddItem(o)
	return o
}

// Items returns a copy of the registry in iteration order
func (w *World) Items() []entity.Entity { return slices.Clone(w.items) }

// Leaves returns the number of leaves still hanging from the tree
func (w *World) Leaves() int { return len(w.leaves) }

// Contains reports whether e is registered
func (w *World) Contains(e entity.Entity) bool { return slices.Contains(w.items, e) }
