package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/report"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// statusRows is the separator line plus the status line under the grid.
const statusRows = 2

const refusedNotice = "running: press s to stop before editing"

// Options configures a simulator session.
type Options struct {
	Config   config.Config
	Store    *storage.Store // Optional run history
	Source   storage.Source
	User     string             // SSH user, empty locally
	Renderer *lipgloss.Renderer // Output renderer, nil for the local terminal
	Width    int                // Initial terminal size, updated on resize
	Height   int
}

// Model is the Bubble Tea model for one simulator session.
// The controller, scheduler and session are shared pointers, so copies of
// Model made by Bubble Tea all drive the same simulation.
type Model struct {
	ctrl    *life.Controller
	sched   *teaScheduler
	session *report.Session
	store   *storage.Store
	source  storage.Source
	user    string

	keys    KeyMap
	help    help.Model
	palette palette
	muted   lipgloss.Style
	screen  *core.Screen

	cursorRow, cursorCol int
	offRow, offCol       int
	width, height        int

	notice   string
	quitting bool
	saved    bool
}

// NewModel creates a stopped simulation with an all-dead grid.
func NewModel(opts Options) (Model, error) {
	settings, err := opts.Config.Settings()
	if err != nil {
		return Model{}, err
	}
	ctrl, err := life.NewController(settings)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	sched := newTeaScheduler(opts.Config.StepDelay())
	session := report.NewSession(0)
	ctrl.SetScheduler(sched)
	ctrl.SetObserver(session)

	if opts.Source == "" {
		opts.Source = storage.SourcePlay
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = opts.Width

	m := Model{
		ctrl:    ctrl,
		sched:   sched,
		session: session,
		store:   opts.Store,
		source:  opts.Source,
		user:    opts.User,
		keys:    DefaultKeyMap(),
		help:    h,
		palette: newPalette(r, opts.Config.Theme),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		screen:  core.NewScreen(opts.Width, opts.Height),
		width:   opts.Width,
		height:  opts.Height,
	}
	m.cursorRow = settings.Height / 2
	m.cursorCol = settings.Width / 2
	m.follow()
	return m, nil
}

// Init sets the window title. Nothing ticks until the user starts the simulation.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("life")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.follow()
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleAction dispatches one user intent to the controller.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	if a.Edits() && m.ctrl.Running() {
		m.notice = refusedNotice
		return m, nil
	}
	m.notice = ""

	switch a {
	case core.ActionQuit:
		m.ctrl.Stop()
		m.quitting = true
		m.saveRun()
		return m, tea.Quit

	case core.ActionToggle:
		m.ctrl.ToggleCell(m.cursorRow, m.cursorCol)

	case core.ActionStartStop:
		m.ctrl.ToggleRunning()
		return m, m.sched.take()

	case core.ActionStep:
		m.ctrl.SingleStep()

	case core.ActionRandomize:
		m.ctrl.Randomize()

	case core.ActionClear:
		m.ctrl.Clear()

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dr, dc := a.Delta()
		m.cursorRow, m.cursorCol = m.ctrl.Grid().Wrap(m.cursorRow+dr, m.cursorCol+dc)
		m.follow()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.follow()
	}

	return m, nil
}

// handleMouse toggles the clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row, col, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursorRow, m.cursorCol = row, col
	return m.handleAction(core.ActionToggle)
}

// handleTick advances one generation if the tick belongs to the current run.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.accept(msg) {
		return m, nil
	}
	m.ctrl.Tick()
	m.sched.rearm()
	return m, m.sched.take()
}

// viewSize returns how many grid rows and columns fit on screen.
func (m Model) viewSize() (rows, cols int) {
	g := m.ctrl.Grid()
	reserved := statusRows + lipgloss.Height(m.help.View(m.keys))
	rows = core.Clamp(m.height-reserved, 0, g.Height())
	cols = core.Clamp(m.width/cellWidth, 0, g.Width())
	return rows, cols
}

// viewport returns the visible part of the grid in grid coordinates.
func (m Model) viewport() core.Rect {
	rows, cols := m.viewSize()
	return core.NewRect(m.offCol, m.offRow, cols, rows)
}

// follow scrolls the viewport so the cursor stays visible.
func (m *Model) follow() {
	g := m.ctrl.Grid()
	rows, cols := m.viewSize()
	m.offRow = core.ScrollInto(m.offRow, rows, g.Height(), m.cursorRow)
	m.offCol = core.ScrollInto(m.offCol, cols, g.Width(), m.cursorCol)
}

// cellAt maps a terminal position to a grid cell.
func (m Model) cellAt(x, y int) (row, col int, ok bool) {
	vp := m.viewport()
	area := core.NewRect(0, 0, vp.W*cellWidth, vp.H)
	if !area.Contains(x, y) {
		return 0, 0, false
	}
	return vp.Y + y, vp.X + x/cellWidth, true
}

// saveRun records the session in the history store once.
func (m *Model) saveRun() {
	if m.saved || m.store == nil || m.session.Generations() == 0 {
		return
	}
	g := m.ctrl.Grid()
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveRun(storage.RunRecord{
		Source:          m.source,
		Rule:            m.ctrl.Rule().String(),
		Width:           g.Width(),
		Height:          g.Height(),
		Generations:     m.session.Generations(),
		PeakPopulation:  m.session.Peak(),
		FinalPopulation: m.session.Population(),
		User:            m.user,
	})
	m.saved = true
}

// View renders the visible grid, the status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vp := m.viewport()
	m.screen.Resize(m.width, vp.H+statusRows)
	m.screen.Clear()
	if vp.Empty() {
		m.notice = "terminal too small"
	} else {
		m.drawGrid(vp)
	}
	m.drawStatus(vp.H)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.palette.RenderScreen(m.screen),
		m.muted.Render(m.help.View(m.keys)),
	)
}

func (m Model) drawGrid(vp core.Rect) {
	g := m.ctrl.Grid()
	for y := 0; y < vp.H; y++ {
		for x := 0; x < vp.W; x++ {
			row, col := vp.Y+y, vp.X+x
			glyph, color := deadGlyph, core.ColorDead
			if g.Get(row, col) == life.Alive {
				glyph, color = aliveGlyph, core.ColorAlive
			}
			if row == m.cursorRow && col == m.cursorCol {
				color = core.ColorCursor
				if glyph == deadGlyph {
					glyph = cursorDead
				}
			}
			m.screen.DrawText(x*cellWidth, y, glyph, color)
		}
	}
}

func (m Model) drawStatus(y int) {
	m.screen.DrawHLine(0, y, m.screen.Width(), '─', core.ColorGrid)

	mode := m.ctrl.Mode()
	modeColor := core.ColorStopped
	if mode == life.Running {
		modeColor = core.ColorRunning
	}
	x := m.screen.DrawText(0, y+1, mode.String(), modeColor)

	g := m.ctrl.Grid()
	status := fmt.Sprintf("  gen %d  pop %d  peak %d  %s  %dx%d  (%d,%d)",
		m.session.Generations(), m.session.Population(), m.session.Peak(),
		m.ctrl.Rule(), g.Width(), g.Height(), m.cursorRow, m.cursorCol)
	x = m.screen.DrawText(x, y+1, status, core.ColorMuted)

	if m.notice != "" {
		m.screen.DrawText(x+2, y+1, m.notice, core.ColorStopped)
	}
}

// Controller returns the simulation controller.
func (m Model) Controller() *life.Controller { return m.ctrl }

// Session returns the session statistics.
func (m Model) Session() *report.Session { return m.session }

// Cursor returns the grid position of the editing cursor.
func (m Model) Cursor() (row, col int) { return m.cursorRow, m.cursorCol }

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
