package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// footerHeight is the number of rows reserved for the help bar.
const footerHeight = 1

// Game is the contract between the host and a simulation.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Tick() uint64
}

// RunStore persists finished runs.
type RunStore interface {
	SaveRun(run storage.Run, inputs []storage.InputEvent) (string, error)
}

// RunInfo describes the settings a run was played with.
type RunInfo struct {
	Preset     string
	ConfigYAML string
}

// Model is the Bubble Tea model for a tetris session.
type Model struct {
	game       Game
	screen     *core.Screen
	store      RunStore
	logger     *log.Logger
	config     core.RuntimeConfig
	info       RunInfo
	keys       KeyMap
	help       help.Model
	recorder   *Recorder
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current run has been written to the journal
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig, info RunInfo) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		info:       info,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		recorder:   NewRecorder(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.finishRun("quit")
		m.quitting = true
		return m, tea.Quit
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the session and only resizes the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart starts a new run with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) {
		m.finishRun("restart")
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorder.Reset()
		m.runSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("session restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	before := m.game.Tick()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Frozen ticks (window too small) are not part of the run
	if m.game.Tick() != before {
		m.recorder.Record(m.game.Tick(), m.inputFrame)
	}

	if m.gameState.GameOver {
		m.finishRun("game_over")
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finishRun writes the current run to the journal once.
func (m *Model) finishRun(reason string) {
	if m.runSaved || m.game.Tick() == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	state := m.game.State()
	run := storage.Run{
		Seed:       m.config.Seed,
		TickRate:   m.config.TickRate,
		Preset:     m.info.Preset,
		ConfigYAML: m.info.ConfigYAML,
		Ticks:      m.game.Tick(),
		Score:      state.Score,
		Level:      state.Level,
		Lines:      state.Lines,
		EndReason:  reason,
	}
	id, err := m.store.SaveRun(run, m.recorder.Events())
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run saved", "id", id, "score", state.Score, "lines", state.Lines, "reason", reason)
}

// LastRunID returns the ID of the most recently saved run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(screenshotText(m.screen)), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// screenshotText returns the screen as plain text with trailing blanks
// trimmed from every row.
func screenshotText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(rows, "\n") + "\n"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and returns the ID of the last saved run.
func Run(game Game, store RunStore, logger *log.Logger, cfg core.RuntimeConfig, info RunInfo) (string, error) {
	model := NewModel(game, store, logger, cfg, info)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.LastRunID(), nil
	}
	return "", nil
}
