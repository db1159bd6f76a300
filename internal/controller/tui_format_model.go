package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

const (
	recentLimit     = 5
	defaultWidth    = 80
	progressPadding = 4
)

var eventColors = map[m.EventKind]lipgloss.Color{
	m.EventWouldChange: lipgloss.Color("3"), // Yellow
	m.EventUnchanged:   lipgloss.Color("8"), // Gray
	m.EventFormatted:   lipgloss.Color("2"), // Green
	m.EventError:       lipgloss.Color("1"), // Red
}

// formatModel renders the progress of an audit or fix run.
type formatModel struct {
	mode        StartMode
	width       int
	progressBar progress.Model
	total       int
	jobs        int
	completed   int
	changed     int
	errors      int
	recent      []eventLine
	summary     *m.Result
}

func newFormatModel(mode StartMode) formatModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return formatModel{
		mode:        mode,
		width:       defaultWidth,
		progressBar: prog,
	}
}

func (fm formatModel) Init() tea.Cmd {
	return nil
}

func (fm formatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.width = msg.Width
		fm.progressBar.Width = max(msg.Width-progressPadding, 10)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return fm, tea.Quit
		}

	case planMsg:
		fm.total = msg.total
		fm.jobs = msg.jobs
		fm.completed = 0

	case eventMsg:
		fm = fm.handleEvent(msg.event)

	case summaryMsg:
		result := msg.result
		fm.summary = &result

		return fm, tea.Quit
	}

	return fm, nil
}

func (fm formatModel) handleEvent(event m.Event) formatModel {
	fm.completed++

	switch {
	case event.Kind == m.EventError:
		fm.errors++
	case event.Changed:
		fm.changed++
	}

	line := eventLine{
		kind:        event.Kind,
		path:        event.Path.String(),
		destination: event.Destination.String(),
	}

	fm.recent = append(fm.recent, line)
	if len(fm.recent) > recentLimit {
		fm.recent = fm.recent[len(fm.recent)-recentLimit:]
	}

	return fm
}

func (fm formatModel) percent() float64 {
	if fm.total == 0 {
		if fm.summary != nil {
			return 1
		}

		return 0
	}

	return float64(fm.completed) / float64(fm.total)
}

func (fm formatModel) title() string {
	if fm.mode == ModeFix {
		return "jsonfmt fix"
	}

	return "jsonfmt audit"
}

func (fm formatModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	counts := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  Changed: %s  •  Errors: %s  •  Jobs: %s",
		accentStyle.Render(fmt.Sprintf("%d", fm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", fm.total)),
		accentStyle.Render(fmt.Sprintf("%d", fm.changed)),
		accentStyle.Render(fmt.Sprintf("%d", fm.errors)),
		accentStyle.Render(fmt.Sprintf("%d", fm.jobs)),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(fm.progressBar.ViewAs(fm.percent()))

	sections := []string{
		titleStyle.Render(fm.title()),
		counts,
		progressView,
		fm.renderRecent(),
	}

	if fm.summary != nil {
		sections = append(sections, fm.renderSummary())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (fm formatModel) renderRecent() string {
	if len(fm.recent) == 0 {
		return ""
	}

	lines := make([]string, 0, len(fm.recent))

	for _, line := range fm.recent {
		color, ok := eventColors[line.kind]
		if !ok {
			color = lipgloss.Color("8")
		}

		label := lipgloss.NewStyle().
			Foreground(color).
			Bold(true).
			Width(14).
			Render(string(line.kind))

		text := truncatePath(line.path, fm.width-20)
		if line.destination != "" {
			text += " → " + line.destination
		}

		lines = append(lines, label+text)
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (fm formatModel) renderSummary() string {
	style := lipgloss.NewStyle().Bold(true).Padding(1, 0, 0, 2)

	if fm.mode == ModeAudit {
		return style.Render(fmt.Sprintf("%d file(s) would change, %d error(s)", fm.summary.Changed, fm.summary.Errors))
	}

	return style.Render(fmt.Sprintf("done: %d formatted, %d changed, %d error(s)",
		fm.summary.Processed-fm.summary.Errors, fm.summary.Changed, fm.summary.Errors))
}

// truncatePath keeps the tail of path, which carries the file name.
func truncatePath(path string, width int) string {
	if width < 10 {
		width = 10
	}

	if len(path) <= width {
		return path
	}

	return "…" + path[len(path)-width+1:]
}
