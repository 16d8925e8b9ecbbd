package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/woger/constant"
	"github.com/lixenwraith/woger/entity"
	"github.com/lixenwraith/woger/world"
)

// Sounds is the audio surface the game drives each frame
type Sounds interface {
	world.Cues
	Update(elapsed time.Duration) error
}

// Action is a player input
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionStop
	ActionJump
	ActionGlideOn
	ActionGlideOff
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionStop:
		return "stop"
	case ActionJump:
		return "jump"
	case ActionGlideOn:
		return "glide-on"
	case ActionGlideOff:
		return "glide-off"
	}
	return "none"
}

// Config parameterizes a run
type Config struct {
	Field    world.Field
	Gravity  float64
	TimeStep float64
	Owanges  int
	Glide    int
	Seed     int64 // 0 seeds from the clock

	PruneInterval  time.Duration
	CherryInterval time.Duration

	Log *log.Logger
}

// Game drives one run: world stepping, the collided sweep, pruning and cherry cadence, audio.
// All methods must be called from the goroutine that owns the frame loop.
type Game struct {
	world  *world.World
	player *entity.Woger
	sounds Sounds
	field  world.Field
	log    *log.Logger

	pruneInterval  time.Duration
	cherryInterval time.Duration
	sincePrune     time.Duration
	sinceCherry    time.Duration

	frames uint64
}

// New builds a populated world and returns a game ready for its first frame
func New(cfg Config, sounds Sounds) *Game {
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("new game", "seed", seed)

	w := world.New(world.Config{
		Gravity:  cfg.Gravity,
		TimeStep: cfg.TimeStep,
		Rand:     rand.New(rand.NewSource(seed)),
		Log:      logger,
	})
	player, _ := world.Populate(w, world.Setup{
		Field:   cfg.Field,
		Owanges: cfg.Owanges,
		Glide:   cfg.Glide,
	}, sounds)

	return &Game{
		world:          w,
		player:         player,
		sounds:         sounds,
		field:          cfg.Field,
		log:            logger,
		pruneInterval:  cfg.PruneInterval,
		cherryInterval: cfg.CherryInterval,
	}
}

// Frame advances the run by one frame. Once the game is over only audio keeps updating
func (g *Game) Frame(elapsed time.Duration) {
	if !g.world.EndGame() {
		g.step(elapsed)
	}
	if err := g.sounds.Update(elapsed); err != nil {
		g.log.Warn("sound update", "err", err)
	}
}

func (g *Game) step(elapsed time.Duration) {
	g.frames++
	g.world.Update()
	g.world.RemoveCollided()

	g.sincePrune += elapsed
	if g.pruneInterval > 0 && g.sincePrune >= g.pruneInterval {
		g.sincePrune -= g.pruneInterval
		g.world.Tick()
		if g.world.EndGame() {
			g.log.Info("game over", "score", g.player.Score, "frames", g.frames)
		}
	}

	g.sinceCherry += elapsed
	if g.cherryInterval > 0 && g.sinceCherry >= g.cherryInterval {
		g.sinceCherry -= g.cherryInterval
		half := int(g.field.Width) / 2
		x := float64(g.world.Rand().Intn(2*half+1) - half)
		g.world.AddCherry(x, g.field.Height-constant.FruitSpawnDrop)
	}
}

// Apply routes an input action to the player
func (g *Game) Apply(a Action) {
	if g.world.EndGame() {
		return
	}
	switch a {
	case ActionLeft:
		g.player.Move(-1)
	case ActionRight:
		g.player.Move(1)
	case ActionStop:
		g.player.Move(0)
	case ActionJump:
		g.player.Jump()
	case ActionGlideOn:
		g.player.SetGliding(true)
	case ActionGlideOff:
		g.player.SetGliding(false)
	}
}

func (g *Game) Over() bool             { return g.world.EndGame() }
func (g *Game) Player() *entity.Woger  { return g.player }
func (g *Game) World() *world.World    { return g.world }
func (g *Game) Field() world.Field     { return g.field }
func (g *Game) Items() []entity.Entity { return g.world.Items() }
