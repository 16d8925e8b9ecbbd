package game

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/woger/constant"
	"github.com/lixenwraith/woger/entity"
	"github.com/lixenwraith/woger/world"
)

const frame = 16 * time.Millisecond

type fakeSounds struct {
	cues    []string
	updates int
	err     error
}

func (f *fakeSounds) PlayCue(name string) error {
	f.cues = append(f.cues, name)
	return nil
}

func (f *fakeSounds) Update(time.Duration) error {
	f.updates++
	return f.err
}

func testConfig() Config {
	return Config{
		Field:          world.Field{Width: 640, Height: 480},
		Gravity:        constant.Gravity,
		TimeStep:       constant.TimeStep,
		Owanges:        2,
		Glide:          constant.GlideAllowance,
		Seed:           42,
		PruneInterval:  time.Hour,
		CherryInterval: time.Hour,
	}
}

func TestFrameUpdatesSounds(t *testing.T) {
	sounds := &fakeSounds{err: errors.New("music missing")}
	g := New(testConfig(), sounds)

	for range 3 {
		g.Frame(frame)
	}

	if sounds.updates != 3 {
		t.Errorf("sound updates = %d, want 3", sounds.updates)
	}
}

func TestPruneCadence(t *testing.T) {
	cfg := testConfig()
	cfg.PruneInterval = 3 * frame
	g := New(cfg, &fakeSounds{})
	start := g.World().Leaves()

	for range 6 {
		g.Frame(frame)
	}

	if got := g.World().Leaves(); got != start-2 {
		t.Errorf("Leaves = %d, want %d", got, start-2)
	}
}

func TestCherrySpawner(t *testing.T) {
	cfg := testConfig()
	cfg.CherryInterval = frame
	g := New(cfg, &fakeSounds{})

	g.Frame(frame)

	cherries := 0
	for _, e := range g.Items() {
		if e.Kind() != entity.KindFruit {
			continue
		}
		cherries++
		p := e.Position()
		if p.X < -320 || p.X > 320 {
			t.Errorf("cherry x = %v out of field", p.X)
		}
	}
	if cherries != 1 {
		t.Errorf("cherries = %d, want 1", cherries)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	cfg := testConfig()
	cfg.PruneInterval = frame
	sounds := &fakeSounds{}
	g := New(cfg, sounds)

	leaves := g.World().Leaves()
	for i := 0; i <= leaves && !g.Over(); i++ {
		g.Frame(frame)
	}
	if !g.Over() {
		t.Fatal("game not over after pruning every leaf")
	}

	before := len(g.Items())
	pos := g.Player().Position()
	updates := sounds.updates

	g.Apply(ActionJump)
	g.Frame(frame)

	if g.Player().Position() != pos || len(g.Items()) != before {
		t.Error("world advanced after game over")
	}
	if sounds.updates != updates+1 {
		t.Error("audio must keep updating after game over")
	}
}

func TestApply(t *testing.T) {
	g := New(testConfig(), &fakeSounds{})
	p := g.Player()

	g.Apply(ActionRight)
	if v := p.Body().Velocity(); v.X != constant.PlayerMoveSpeed {
		t.Errorf("vx = %v after right", v.X)
	}
	g.Apply(ActionLeft)
	if v := p.Body().Velocity(); v.X != -constant.PlayerMoveSpeed {
		t.Errorf("vx = %v after left", v.X)
	}
	g.Apply(ActionStop)
	if v := p.Body().Velocity(); v.X != 0 {
		t.Errorf("vx = %v after stop", v.X)
	}

	g.Apply(ActionGlideOn)
	if !p.Gliding() {
		t.Error("glide not enabled")
	}
	g.Apply(ActionGlideOff)
	if p.Gliding() {
		t.Error("glide not disabled")
	}

	g.Apply(ActionJump)
	if v := p.Body().Velocity(); v.Y != constant.PlayerJumpSpeed {
		t.Errorf("vy = %v after jump", v.Y)
	}
}

func TestActionString(t *testing.T) {
	if ActionGlideOn.String() != "glide-on" || Action(99).String() != "none" {
		t.Error("unexpected action names")
	}
}
