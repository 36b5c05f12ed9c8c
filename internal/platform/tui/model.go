package tui

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/missions"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Host bundles the process-wide collaborators a session needs.
// Store and Missions may be nil; the game still works without them.
type Host struct {
	Config   config.RunnerConfig
	Store    *storage.Store
	Missions missions.Provider
	Logger   *log.Logger
}

func (h Host) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.New(io.Discard)
}

// stats reads the persisted summary; an unavailable store yields zeros.
func (h Host) stats() storage.PersistedStats {
	if h.Store == nil {
		return storage.PersistedStats{}
	}
	st, err := h.Store.Stats()
	if err != nil {
		h.logger().Warn("could not read stats", "error", err)
		return storage.PersistedStats{}
	}
	return st
}

// hudRows is the number of cell rows reserved above the scene.
const hudRows = 1

// GameModel is the Bubble Tea model of the game view. It owns the frame
// driver: frames run only while a run is Playing.
type GameModel struct {
	game    *runner.Game
	canvas  *core.Canvas
	screen  *core.Screen
	host    Host
	logger  *log.Logger
	runtime core.RuntimeConfig
	player  string

	driver FrameDriver
	keys   *KeyMapper
	swipe  swipe
	input  core.InputFrame
	state  core.GameState
	stats  storage.PersistedStats
	best   int  // High score before the last run, for the game over overlay
	lastID string

	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates the game view for one player.
func NewGameModel(host Host, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == "" {
		player = "local"
	}

	game := runner.New(host.Config)
	game.Reset(cfg)

	m := GameModel{
		game:    game,
		canvas:  core.NewCanvas(cfg.ScreenW, canvasHeight(cfg.ScreenH)),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		host:    host,
		logger:  host.logger(),
		runtime: cfg,
		player:  player,
		driver:  NewFrameDriver(cfg.TickRate),
		keys:    NewKeyMapper(),
		state:   game.State(),
		stats:   host.stats(),
	}
	m.draw()
	return m
}

// canvasHeight maps terminal rows to pixel rows below the HUD.
func canvasHeight(screenH int) int {
	return max(screenH-hudRows, 0) * 2
}

// Init waits on the Ready overlay; frames start with the first run.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.driver.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		// Abandoned runs are not recorded.
		m.driver.Stop()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	return m.handleAction(action)
}

// handleMouse turns a completed drag into an intent.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	return m.handleAction(m.swipe.handle(msg))
}

// handleAction routes an intent according to the run phase.
func (m GameModel) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch m.game.Phase() {
	case core.PhaseReady:
		if action == core.ActionJump || action == core.ActionConfirm {
			return m.start()
		}
	case core.PhasePlaying:
		switch action {
		case core.ActionLaneLeft, core.ActionLaneRight, core.ActionJump, core.ActionDuck:
			m.input.Set(action)
		}
	case core.PhaseGameOver:
		if action == core.ActionRestart || action == core.ActionConfirm {
			return m.start()
		}
	}

	return m, nil
}

// start begins a fresh run and a new frame generation.
func (m GameModel) start() (tea.Model, tea.Cmd) {
	m.game.Start()
	m.state = m.game.State()
	m.input.Clear()
	m.lastID = ""
	cmd := m.driver.Start()
	m.draw()
	return m, cmd
}

// handleResize processes window resize events. The run continues; the
// next frame projects onto the new surface.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.draw()
	return m, nil
}

// handleFrame runs one Simulation Step then the Renderer.
func (m GameModel) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.driver.Accept(msg) {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventGameOver {
			m.finishRun(ev)
		}
	}

	m.draw()
	return m, m.driver.Next()
}

// finishRun stops the driver and persists the run once.
func (m *GameModel) finishRun(ev core.Event) {
	m.driver.Stop()
	m.best = m.stats.HighScore

	if m.host.Store == nil {
		return
	}
	rec, err := m.host.Store.RecordRun(storage.RunRecord{
		Player:   m.player,
		Score:    ev.Score,
		Coins:    ev.Coins,
		Distance: ev.Distance,
		Seed:     m.runtime.Seed,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.lastID = rec.ID
	m.stats = m.host.stats()
	m.logger.Debug("run recorded", "id", rec.ID, "score", rec.Score, "player", m.player)
}

// draw sizes the surfaces to the viewport and composes the frame.
func (m GameModel) draw() {
	w, h := m.runtime.ScreenW, m.runtime.ScreenH
	m.canvas.Resize(w, canvasHeight(h))
	m.screen.Resize(w, h)
	m.screen.Clear()

	m.game.Render(m.canvas)
	m.screen.Blit(m.canvas, hudRows)
	m.drawHUD()

	switch m.state.Phase {
	case core.PhaseReady:
		m.drawOverlay("LANE RUNNER", []string{
			"space / enter  run",
			"←/→ lanes  ↑ jump  ↓ roll",
			"b back  q quit",
		}, core.ColorCyan)
	case core.PhaseGameOver:
		lines := []string{
			fmt.Sprintf("score %s  coins %d", humanize.Comma(int64(m.state.Score)), m.state.Coins),
			fmt.Sprintf("distance %sm", humanize.Comma(int64(m.state.Distance))),
		}
		if m.state.Score > m.best {
			lines = append(lines, "new best!")
		}
		lines = append(lines, "r restart  b back  q quit")
		m.drawOverlay("GAME OVER", lines, core.ColorRed)
	}
}

// drawHUD writes the status row. The high score is the host's copy.
func (m GameModel) drawHUD() {
	best := max(m.stats.HighScore, m.state.Score)
	hud := fmt.Sprintf(" SCORE %s  COINS %d  SPEED %.1f",
		humanize.Comma(int64(m.state.Score)), m.state.Coins, m.state.Speed)
	m.screen.DrawText(0, 0, hud, core.ColorWhite)

	right := fmt.Sprintf("BEST %s ", humanize.Comma(int64(best)))
	m.screen.DrawText(m.screen.Width()-len(right), 0, right, core.ColorYellow)
}

// drawOverlay draws a centered box with a title and lines of text.
func (m GameModel) drawOverlay(title string, lines []string, accent core.Color) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.Rect{W: width + 6, H: len(lines) + 4}
	box.X = (m.screen.Width() - box.W) / 2
	box.Y = (m.screen.Height() - box.H) / 2

	m.screen.DrawRect(box, core.RGB(16, 18, 32))
	m.screen.DrawBox(box, accent)
	m.screen.DrawTextCentered(box.Y+1, title, accent)
	for i, l := range lines {
		fg := core.ColorWhite
		if i == len(lines)-1 {
			fg = core.ColorGray // Key hints
		}
		m.screen.DrawTextCentered(box.Y+3+i, l, fg)
	}
}

// saveScreenshot saves the current frame as PNG plus its text form.
func (m GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := WritePNG(base+".png", m.canvas); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600)
	m.logger.Info("screenshot saved", "path", base+".png")
}

// WritePNG encodes the canvas to a PNG file.
func WritePNG(path string, c *core.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tui: create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("tui: encode png: %w", err)
	}
	return f.Close()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// State returns the last observed run summary.
func (m GameModel) State() core.GameState {
	return m.state
}

// Driving reports whether the frame driver is scheduling frames.
func (m GameModel) Driving() bool {
	return m.driver.Running()
}

// LastRunID returns the storage id of the last recorded run, if any.
func (m GameModel) LastRunID() string {
	return m.lastID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game view on its own; back and quit both exit.
func Run(host Host, cfg core.RuntimeConfig) error {
	model := NewGameModel(host, cfg, "local")
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drags become swipes
	)

	_, err := p.Run()
	return err
}
