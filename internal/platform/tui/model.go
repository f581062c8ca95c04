package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
	"github.com/vovakirdan/blockflap/internal/game"
	"github.com/vovakirdan/blockflap/internal/storage"
)

// chromeRows is the number of terminal rows taken by the header and footer.
const chromeRows = 2

// Options configures a Model.
type Options struct {
	Config    config.Config
	Runtime   core.RuntimeConfig
	Store     *storage.Store // Optional; runs are not recorded without it
	Player    string         // Recorded with each run
	Autopilot bool
	Sound     game.Sound
	Logger    *log.Logger
	Renderer  *lipgloss.Renderer // Optional; per-session renderer for SSH

	// ScreenshotDir overrides ~/.blockflap/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one blockflap session.
type Model struct {
	loop     *game.Loop
	sched    *frameScheduler
	pilot    *game.Autopilot
	store    *storage.Store
	logger   *log.Logger
	proj     *Projector
	keys     KeyMap
	help     help.Model
	header   lipgloss.Style
	dim      lipgloss.Style
	rt       core.RuntimeConfig
	canvasW  int
	canvasH  int
	player   string
	shotDir  string
	best     int
	saved    bool // Whether the current run has been recorded
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh game loop.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	sched := newFrameScheduler(rt.TickRate)
	gameOpts := []game.Option{game.WithScheduler(sched), game.WithLogger(logger)}
	if opts.Sound != nil {
		gameOpts = append(gameOpts, game.WithSound(opts.Sound))
	}

	pal := opts.Config.PaletteColors()
	m := Model{
		loop:    game.NewLoop(opts.Config, rt, gameOpts...),
		sched:   sched,
		store:   opts.Store,
		logger:  logger,
		proj:    NewProjector(r, pal),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.Hex(core.ColorText))),
		dim:     r.NewStyle().Foreground(lipgloss.Color("245")),
		rt:      rt,
		canvasW: opts.Config.Screen.Width,
		canvasH: opts.Config.Screen.Height,
		player:  opts.Player,
		shotDir: opts.ScreenshotDir,
	}
	if opts.Autopilot {
		m.pilot = game.NewAutopilot(opts.Config)
	}

	if m.store != nil {
		best, err := m.store.HighScore(game.ID)
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		m.best = best
	}

	return m
}

// Init starts the game loop.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return m.sched.next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case core.ActionFlap:
		restarting := m.loop.Phase() == game.StateGameOver
		m.loop.Press()
		if restarting {
			m.saved = false
			m.status = ""
		}
		return m, m.sched.next()
	}

	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pilot != nil && m.pilot.Flap(m.loop.Snapshot()) {
		m.loop.Press()
	}

	m.loop.Frame()

	// Save the run on game over (once)
	if m.loop.Phase() == game.StateGameOver && !m.saved {
		m.recordRun()
	}

	return m, m.sched.next()
}

// recordRun appends the finished run to the store. Best-effort: failures are
// logged and the game continues.
func (m *Model) recordRun() {
	m.saved = true
	st := m.loop.State()
	if m.store == nil || st.Score == 0 {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		GameID: game.ID,
		Player: m.player,
		Score:  st.Score,
		Frames: st.Frames,
		Seed:   m.loop.Seed(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run_id", run.RunID, "score", run.Score, "player", run.Player)
	m.best = core.Max(m.best, run.Score)
}

// saveScreenshot writes the current frame as text and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".blockflap", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", game.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.loop.Canvas().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the header, the projected game surface and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.loop.State()
	header := m.header.Render(game.Title) +
		m.dim.Render("  score ") + strconv.Itoa(st.Score) +
		m.dim.Render("  best ") + strconv.Itoa(core.Max(m.best, st.Score))
	if m.pilot != nil {
		header += m.dim.Render("  [autopilot]")
	}

	cols, rows := Fit(m.canvasW, m.canvasH, m.rt.ScreenW, m.rt.ScreenH-chromeRows)
	body := m.proj.Render(m.loop.Canvas(), cols, rows)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.dim.Render(m.status)
	}

	return lipgloss.PlaceHorizontal(m.rt.ScreenW, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, header, body, footer))
}

// Loop returns the game loop driven by the model.
func (m Model) Loop() *game.Loop {
	return m.loop
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
