package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kurasim/internal/sim"
)

const (
	canvasWidth  = 56
	canvasHeight = 26
	frameRate    = 60
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(46)
	labelWidth = 12
)

type TickMsg time.Time

// Model drives the live view: it owns the session and feeds user input
// back into it as staged parameter replacements.
type Model struct {
	session  *sim.Session
	edit     sim.Parameters
	canvas   *Canvas
	selected int
	acc      float64
	lastErr  string
	showHelp bool
}

var paramNames = []string{"count", "coupling", "dt", "freq min", "freq max", "speed"}

func NewModel(params sim.Parameters) (*Model, error) {
	session, err := sim.NewSession(params)
	if err != nil {
		return nil, err
	}
	return &Model{
		session: session,
		edit:    session.Parameters(),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
	}, nil
}

// RunInteractive starts the TUI and blocks until the user quits.
func RunInteractive(params sim.Parameters) error {
	m, err := NewModel(params)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.session.Status() == sim.Running {
				m.session.Pause()
			} else {
				m.session.Resume()
			}
		case "r":
			if err := m.session.Reset(); err != nil {
				m.lastErr = err.Error()
			} else {
				m.edit = m.session.Parameters()
				m.lastErr = ""
			}
		case "tab":
			m.selected = (m.selected + 1) % len(paramNames)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		// animation speed scales how many simulation steps land in each
		// frame; fractional speeds accumulate across frames
		m.acc += m.session.Parameters().Speed
		for m.acc >= 1 {
			if err := m.session.Tick(); err != nil {
				m.lastErr = err.Error()
				break
			}
			m.acc--
		}
		return m, frameTick()
	}
	return m, nil
}

// adjustParam stages a whole-object parameter replacement built from the
// current edit buffer. A rejected replacement leaves the buffer untouched
// and surfaces the validation message.
func (m *Model) adjustParam(dir int) {
	p := m.edit
	d := float64(dir)

	switch paramNames[m.selected] {
	case "count":
		p.Count += dir * 5
		if p.Count < 1 {
			p.Count = 1
		}
	case "coupling":
		p.Coupling += d * 0.1
	case "dt":
		p.Dt += d * 0.005
	case "freq min":
		p.FreqMin += d * 0.1
	case "freq max":
		p.FreqMax += d * 0.1
	case "speed":
		p.Speed += d * 0.1
	}

	if err := m.session.SetParameters(p); err != nil {
		m.lastErr = err.Error()
		return
	}
	m.edit = p
	m.lastErr = ""
}

// draw renders the oscillator swarm on the unit circle with the
// mean-field vector from the center.
func (m *Model) draw() {
	m.canvas.Clear()

	cw, ch := canvasWidth*2, canvasHeight*4
	cx, cy := cw/2, ch/2
	radius := ch/2 - 6

	m.canvas.DrawCircle(cx, cy, radius)

	for _, th := range m.session.Phases() {
		x := cx + int(float64(radius)*math.Cos(th))
		y := cy - int(float64(radius)*math.Sin(th))
		m.canvas.DrawDot(x, y)
	}

	op := m.session.Order()
	ax := cx + int(op.R*float64(radius)*math.Cos(op.Psi))
	ay := cy - int(op.R*float64(radius)*math.Sin(op.Psi))
	m.canvas.DrawLine(cx, cy, ax, ay)
	m.canvas.DrawDot(ax, ay)
}

func (m *Model) View() string {
	m.draw()

	header := lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(labelWidth)
	value := lipgloss.NewStyle().Foreground(CurrentTheme.Text)
	active := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
	graph := lipgloss.NewStyle().Foreground(CurrentTheme.Secondary)
	muted := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)

	var s strings.Builder
	s.WriteString(header.Render("KURAMOTO NETWORK") + "\n")
	s.WriteString(strings.ToUpper(m.session.Status().String()) + "\n\n")

	series := m.session.ResonanceSeries()
	if len(series) > 1 {
		chart := asciigraph.Plot(series,
			asciigraph.Height(5), asciigraph.Width(32), asciigraph.Caption("resonance"))
		s.WriteString(graph.Render(chart) + "\n\n")
	}

	r := m.session.Resonance()
	s.WriteString(label.Render("Time") + value.Render(fmt.Sprintf("%.2fs", m.session.Time())) + "\n")
	s.WriteString(label.Render("Resonance") + value.Render(fmt.Sprintf("%.3f %s", r, resonanceBar(r))) + "\n")
	s.WriteString(label.Render("Oscillators") + value.Render(fmt.Sprintf("%d", m.session.Size())) + "\n")

	s.WriteString("\nPARAMETERS\n")
	p := m.edit
	values := []string{
		fmt.Sprintf("%d", p.Count),
		fmt.Sprintf("%.2f", p.Coupling),
		fmt.Sprintf("%.3f", p.Dt),
		fmt.Sprintf("%.2f", p.FreqMin),
		fmt.Sprintf("%.2f", p.FreqMax),
		fmt.Sprintf("%.1fx", p.Speed),
	}
	for i, name := range paramNames {
		line := fmt.Sprintf("%-10s %s", name, values[i])
		if i == m.selected {
			s.WriteString(active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + label.Render(line) + "\n")
		}
	}

	if m.session.Status() == sim.Paused {
		s.WriteString(muted.Render("\nedits apply on resume") + "\n")
	}
	if m.lastErr != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("\n"+m.lastErr) + "\n")
	}

	s.WriteString(muted.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune T:Theme ?:Help"))

	canvasView := canvasStyle.Render(graph.Render(m.canvas.String()))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

// resonanceBar renders R as a ten-slot meter.
func resonanceBar(r float64) string {
	filled := int(r * 10)
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", 10-filled) + "]"
}

const helpOverlay = `
╔══════════════════════════════════════════════╗
║              KEYBOARD SHORTCUTS               ║
╠══════════════════════════════════════════════╣
║  Space    - Pause/Resume simulation           ║
║  R        - Reset with a fresh random draw    ║
║  Tab      - Cycle parameters                  ║
║  Up/K     - Increase selected parameter       ║
║  Down/J   - Decrease selected parameter       ║
║  T        - Cycle themes                      ║
║  ?        - Toggle this help                  ║
╠══════════════════════════════════════════════╣
║  Each dot is one oscillator on the unit       ║
║  circle; the center line is the mean field.   ║
║  Resonance: 0 = desynchronized, 1 = locked.   ║
║  Raise coupling (K) to pull the swarm         ║
║  together; widen the frequency range to       ║
║  fight it.                                    ║
╚══════════════════════════════════════════════╝`
