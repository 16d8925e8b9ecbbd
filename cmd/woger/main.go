package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/woger/asset"
	"github.com/lixenwraith/woger/audio"
	"github.com/lixenwraith/woger/config"
	"github.com/lixenwraith/woger/game"
	"github.com/lixenwraith/woger/render"
	"github.com/lixenwraith/woger/world"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configFlag = flag.String("config", "woger.toml", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/woger.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio output")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Level)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mWOGER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sounds := newSoundManager(cfg, logger)
	defer sounds.Close()

	field := world.Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	g := game.New(game.Config{
		Field:          field,
		Gravity:        cfg.World.Gravity,
		TimeStep:       cfg.World.TimeStep,
		Owanges:        cfg.World.Owanges,
		Glide:          cfg.World.Glide,
		Seed:           cfg.World.Seed,
		PruneInterval:  cfg.World.PruneInterval.Duration,
		CherryInterval: cfg.World.CherryInterval.Duration,
		Log:            logger,
	}, sounds)

	run(screen, g, render.NewTerminalRenderer(screen, field), logger)
	screen.Fini()
}

// newSoundManager opens the audio device, falling back to a silent engine, and preloads sounds
func newSoundManager(cfg *config.Config, logger *log.Logger) *audio.SoundManager {
	dataDir := cfg.Audio.DataDir
	if dataDir == "" {
		dataDir = asset.DataDir()
	}

	var engine audio.Engine = audio.SilentEngine{}
	if cfg.Audio.Enabled {
		be, err := audio.NewBeepEngine(audio.BeepConfig{
			SampleRate: cfg.Audio.SampleRate,
			Channels:   cfg.Audio.Channels,
			Buffer:     cfg.Audio.Buffer.Duration,
		})
		if err != nil {
			logger.Warn("audio unavailable, continuing silent", "err", err)
		} else {
			engine = be
		}
	}

	sounds := audio.NewSoundManager(engine, dataDir, logger)
	if dataDir != "" {
		sounds.Load(asset.SoundNames(asset.SoundDir(dataDir))...)
	}
	sounds.SetMusicTracks(cfg.Audio.MusicTracks)
	logger.Info("audio ready", "data", dataDir, "enabled", cfg.Audio.Enabled)
	return sounds
}

// run owns all game mutation; terminal events arrive through a channel
func run(screen tcell.Screen, g *game.Game, r *render.TerminalRenderer, logger *log.Logger) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !handleInput(g, ev) {
				logger.Info("quit", "score", g.Player().Score)
				return
			}

		case now := <-ticker.C:
			g.Frame(now.Sub(last))
			last = now

			p := g.Player()
			r.RenderFrame(g.Items(), render.HUD{
				Score:      p.Score,
				Multiplier: p.Multiplier,
				Leaves:     g.World().Leaves(),
				Glide:      p.AllowedGlide,
				Over:       g.Over(),
			})
		}
	}
}

// handleInput maps a terminal event to game actions, returning false to quit
func handleInput(g *game.Game, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a, ok := actionFor(ev, g.Player().Gliding()); ok {
			g.Apply(a)
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}

	case *tcell.EventResize:
		// Next frame redraws at the new size
	}
	return true
}

// actionFor maps keys: arrows or hjkl/wasd move and jump, down stops, g toggles gliding
func actionFor(ev *tcell.EventKey, gliding bool) (game.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.ActionLeft, true
	case tcell.KeyRight:
		return game.ActionRight, true
	case tcell.KeyUp:
		return game.ActionJump, true
	case tcell.KeyDown:
		return game.ActionStop, true
	case tcell.KeyRune:
	default:
		return game.ActionNone, false
	}

	switch ev.Rune() {
	case 'h', 'a':
		return game.ActionLeft, true
	case 'l', 'd':
		return game.ActionRight, true
	case 'k', 'w', ' ':
		return game.ActionJump, true
	case 'j', 's':
		return game.ActionStop, true
	case 'g':
		if gliding {
			return game.ActionGlideOff, true
		}
		return game.ActionGlideOn, true
	}
	return game.ActionNone, false
}
