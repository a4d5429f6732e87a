package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "blockfall"

// Minimum screen size for the well, side panel and status line.
const (
	minScreenW = 40
	minScreenH = 23
)

// Package-level settings applied on Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts the Engine to the registry.Game interface. It owns the
// action queue and drop clock the engine ticks with.
type Game struct {
	engine  *Engine
	queue   core.ActionQueue
	clock   DropClock
	runtime core.RuntimeConfig

	tooSmall bool
}

// New creates a blockfall game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Blockfall" }

// Engine exposes the underlying state machine.
func (g *Game) Engine() *Engine { return g.engine }

// Reset loads the rules and creates a fresh engine waiting to start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		cfg = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}

	g.engine = NewEngine(RulesFromConfig(cfg), runtime.Seed)
	g.queue.Clear()
	g.clock.Reset()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the screen dimensions without touching the round.
// A round is paused while the screen is too small to show it.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	if g.tooSmall && g.engine != nil {
		g.engine.Pause()
	}
}

// Step applies the frame's input and advances the engine by one tick.
// Control actions act immediately; movement is queued while playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		switch {
		case a.IsControl():
			g.control(a)
		case g.engine.Phase() == PhasePlaying:
			g.queue.Push(a)
		}
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.TickInterval()
	}
	g.engine.Tick(&g.queue, &g.clock, dt)

	return core.StepResult{
		State:  g.State(),
		Events: g.engine.DrainEvents(),
	}
}

// control applies a phase-changing action. Quit is left to the platform.
func (g *Game) control(a core.Action) {
	switch a {
	case core.ActionPause:
		if g.engine.Phase() == PhasePlaying {
			g.engine.Pause()
		} else {
			g.start()
		}
	case core.ActionCancel:
		g.engine.Cancel()
		g.queue.Clear()
	case core.ActionRestart:
		g.engine.Cancel()
		g.start()
	}
}

// start begins or resumes a round unless the screen is too small.
func (g *Game) start() {
	if g.tooSmall {
		return
	}
	if g.engine.Phase() == PhaseCancelled {
		g.queue.Clear()
	}
	g.engine.StartOrContinue()
	g.clock.Reset()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Paused: true}
	}
	over := g.engine.ToppedOut() && g.engine.Phase() == PhaseCancelled
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Rows(),
		GameOver: over,
		Paused:   g.engine.Phase() != PhasePlaying && !over,
	}
}
