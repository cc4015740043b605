package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gesture-runner/internal/clock"
	"github.com/vovakirdan/gesture-runner/internal/core"
	"github.com/vovakirdan/gesture-runner/internal/games/runner"
	"github.com/vovakirdan/gesture-runner/internal/gesture"
	"github.com/vovakirdan/gesture-runner/internal/input"
	"github.com/vovakirdan/gesture-runner/internal/storage"
)

// Model is the Bubble Tea model driving the runner. It is the single
// owner of the game clock: Advance is called exactly once per tick, and
// every other component reads the clock through the game.
//
// All mutable collaborators are pointers, so Bubble Tea's value-copy
// update cycle shares one underlying state.
type Model struct {
	clk    *clock.Clock
	game   *runner.Game
	agg    *input.Aggregator
	bridge *gesture.Bridge // nil when the gesture modality is disabled
	store  *storage.Store  // nil when persistence is disabled
	keys   *KeyMapper

	screen    *core.Screen
	config    core.RuntimeConfig
	gameState core.GameState

	lastTick time.Time // wall clock of the previous frame

	usedKeyboard bool
	usedGesture  bool
	runSaved     bool
	quitting     bool
}

// NewModel creates a model wired to the given collaborators. bridge and
// store may be nil.
func NewModel(clk *clock.Clock, game *runner.Game, agg *input.Aggregator, bridge *gesture.Bridge, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game.Reset(cfg)

	return Model{
		clk:    clk,
		game:   game,
		agg:    agg,
		bridge: bridge,
		store:  store,
		keys:   NewKeyMapper(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey routes key presses: pause and restart go to the clock and
// game, movement keys go to the input aggregator.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLaneLeft:
		m.agg.KeyLeft()
		m.usedKeyboard = true
	case core.ActionLaneRight:
		m.agg.KeyRight()
		m.usedKeyboard = true
	case core.ActionJump:
		m.agg.KeyJump()
		m.usedKeyboard = true
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.clk.TogglePause()
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
	}

	return m, nil
}

// restart begins a fresh run. Clock and game reset back to back within
// one message handler, so no frame ever observes one without the other.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.clk.Reset()
	m.game.Reset(m.config)
	m.agg.Reset()
	m.gameState = m.game.State()
	m.runSaved = false
	m.usedKeyboard = false
	m.usedGesture = false
}

// handleTick runs one frame: measure the real wall-clock delta, poll the
// gesture slot, advance the clock once and step the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	rawDelta := clock.SeedDelta
	if !m.lastTick.IsZero() {
		rawDelta = now.Sub(m.lastTick).Seconds()
		if rawDelta < 0 {
			rawDelta = 0
		}
	}
	m.lastTick = now

	if m.bridge != nil {
		if sig, ok := m.bridge.Latest(); ok {
			m.agg.Observe(sig)
			if sig.Tracked {
				m.usedGesture = true
			}
		}
	}

	intent := m.agg.Intent()
	frame := m.clk.Advance(rawDelta)
	result := m.game.Step(frame, rawDelta, intent)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run. Best effort; a storage failure
// never interrupts play.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		Score:     m.gameState.Score,
		Distance:  m.gameState.Distance,
		Gems:      m.gameState.Gems,
		Duration:  int(m.clk.Now()),
		InputMode: m.inputMode(),
	})
}

func (m *Model) inputMode() string {
	switch {
	case m.usedKeyboard && m.usedGesture:
		return "mixed"
	case m.usedGesture:
		return "gesture"
	default:
		return "keyboard"
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
