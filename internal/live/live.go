// Package live shows benchmark progress in the terminal while the runner
// works: which benchmark is measuring, repetition times so far, and a
// sparkline of per-repetition elapsed time.
package live

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dispatchbench/internal/bench"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type startMsg struct {
	name string
	rep  int
}

type repMsg struct {
	result bench.Result
}

type doneMsg struct {
	results []bench.Result
	err     error
}

// observer forwards runner progress into the UI's message channel. All
// notifications happen between timed regions, so the channel send cost
// never lands inside a measurement.
type observer struct {
	ch chan tea.Msg
}

func (o observer) OnStart(name string, rep int) { o.ch <- startMsg{name: name, rep: rep} }

func (o observer) OnRepetition(name string, rep int, r bench.Result) { o.ch <- repMsg{result: r} }

type model struct {
	names   []string
	current string
	rep     int
	samples map[string][]float64
	results []bench.Result
	done    bool
	err     error
	start   time.Time
	ch      chan tea.Msg
	cancel  context.CancelFunc
}

func waitForMsg(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func (m model) Init() tea.Cmd { return waitForMsg(m.ch) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, waitForMsg(m.ch)
		}
		return m, nil
	case startMsg:
		m.current = msg.name
		m.rep = msg.rep
		return m, waitForMsg(m.ch)
	case repMsg:
		r := msg.result
		m.samples[r.Name] = append(m.samples[r.Name], float64(r.Elapsed)/float64(time.Millisecond))
		return m, waitForMsg(m.ch)
	case doneMsg:
		m.done = true
		m.results = msg.results
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(cyan.Render("dispatchbench") + dim.Render("  live run") + "\n\n")

	for _, name := range m.names {
		samples := m.samples[name]
		status := dim.Render("waiting")
		if name == m.current && !m.done {
			status = yellow.Render(fmt.Sprintf("measuring (rep %d)", m.rep+1))
		}
		if len(samples) > 0 {
			last := samples[len(samples)-1]
			status = green.Render(fmt.Sprintf("%d reps, last %.3fms", len(samples), last))
		}
		s.WriteString(fmt.Sprintf("  %s  %s\n", white.Render(fmt.Sprintf("%-20s", name)), status))
	}

	if samples := m.samples[m.current]; len(samples) > 1 {
		chart := asciigraph.Plot(samples,
			asciigraph.Height(5),
			asciigraph.Width(50),
			asciigraph.Caption(m.current+" (ms)"))
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString("\n" + dim.Render(fmt.Sprintf("elapsed %v", time.Since(m.start).Round(time.Millisecond))))
	s.WriteString("\n" + dim.Render("q to abort") + "\n")
	return s.String()
}

// Run executes the runner with the live view attached and returns the
// results once every benchmark has finished or the user aborts.
func Run(ctx context.Context, runner *bench.Runner, filter string) ([]bench.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered generously so observer sends cannot block a finished
	// runner if the UI is already tearing down.
	ch := make(chan tea.Msg, 256)
	runner.AddObserver(observer{ch: ch})

	go func() {
		results, err := runner.Run(ctx, filter)
		ch <- doneMsg{results: results, err: err}
	}()

	m := model{
		names:   runner.Names(),
		samples: make(map[string][]float64),
		start:   time.Now(),
		ch:      ch,
		cancel:  cancel,
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}
	fm := final.(model)
	return fm.results, fm.err
}
