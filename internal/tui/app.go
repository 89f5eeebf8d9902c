// Package tui provides the interactive Bubble Tea dashboard for casa.
package tui

import (
	"fmt"
	"strings"

	"github.com/casadev/casa/internal/fincalc"
	"github.com/casadev/casa/internal/projection"
	"github.com/casadev/casa/internal/scenario"
	"github.com/casadev/casa/internal/tui/components"
	"github.com/casadev/casa/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. Evaluation is pure and cheap, so the
// app recomputes the full result synchronously on every input change;
// there is no loading phase.
type App struct {
	// Inputs
	scn     scenario.Scenario
	scnPath string // TOML file backing the scenario, "" for defaults
	years   int

	// Computed per recompute()
	result   projection.Result
	schedule []fincalc.AmortizationEntry
	evalErr  error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	showReal  bool
	statusMsg string

	// Per-tab scroll offsets
	projScroll  int
	schedScroll int

	// Scenario edit form (huh)
	form     *huh.Form
	formVals formValues
	editing  bool
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(scn scenario.Scenario, scnPath string, years int) App {
	a := App{
		scn:     scn,
		scnPath: scnPath,
		years:   years,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) recompute() {
	a.result, a.evalErr = projection.Evaluate(a.scn, a.years)
	if a.evalErr != nil {
		a.schedule = nil
		return
	}
	rates := a.result.Rates
	a.schedule = fincalc.AmortizationSchedule(a.scn, a.result.Payments.Monthly, rates.MonthlyRate)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The edit form intercepts all keys while active
		if a.editing && a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "o", "p", "s", "i":
			a.activeTab = components.TabIdxByKey(rune(key[0]))
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "r", "n":
			a.showReal = !a.showReal
		case "j", "down":
			a.scrollBy(1)
		case "k", "up":
			a.scrollBy(-1)
		case "ctrl+d":
			a.scrollBy(a.halfPage())
		case "ctrl+u":
			a.scrollBy(-a.halfPage())
		case "g":
			a.setScroll(0)
		case "e":
			a.formVals = valuesFromScenario(a.scn)
			a.form = newScenarioForm(&a.formVals)
			if a.width > 0 {
				a.form = a.form.WithWidth(a.width).WithHeight(a.height)
			}
			a.editing = true
			a.statusMsg = ""
			return a, a.form.Init()
		case "w":
			if a.scnPath == "" {
				a.statusMsg = "no scenario file to write (start with --scenario)"
				return a, nil
			}
			if err := scenario.SaveFile(a.scnPath, a.scn); err != nil {
				a.statusMsg = fmt.Sprintf("write failed: %s", err)
			} else {
				a.statusMsg = fmt.Sprintf("wrote %s", a.scnPath)
			}
			return a, nil
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.editing && a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.scn = a.formVals.apply(a.scn)
		a.recompute()
		a.editing = false
		a.form = nil
		a.statusMsg = "scenario updated (w to write)"
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.editing = false
		a.form = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) scrollBy(delta int) {
	switch a.activeTab {
	case 1:
		a.projScroll = clampScroll(a.projScroll+delta, len(a.result.Projections))
	case 2:
		a.schedScroll = clampScroll(a.schedScroll+delta, len(a.schedule))
	}
}

func (a *App) setScroll(v int) {
	switch a.activeTab {
	case 1:
		a.projScroll = v
	case 2:
		a.schedScroll = v
	}
}

func (a App) halfPage() int {
	hp := (a.height - 8) / 2
	if hp < 1 {
		hp = 1
	}
	return hp
}

func clampScroll(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  casa needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.editing && a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o p s i", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Scroll tables"},
		{"^d ^u", "Half-page scroll"},
		{"g", "Back to top"},
		{"r", "Toggle nominal / real values"},
		{"e", "Edit scenario inputs"},
		{"w", "Write scenario to file"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.scnPath, a.years, a.statusMsg)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.evalErr != nil {
		content = fmt.Sprintf("\n  Cannot evaluate scenario: %s\n\n  Press e to fix the inputs.", a.evalErr)
	} else {
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderProjectionsTab(cw, contentH)
		case 2:
			content = a.renderScheduleTab(cw, contentH)
		case 3:
			content = a.renderInputsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// truncateHeight cuts a rendered block to at most h lines.
func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

// padHeight pads a rendered block with blank lines to exactly h lines.
func padHeight(s string, h int) string {
	n := strings.Count(s, "\n") + 1
	if n >= h {
		return s
	}
	return s + strings.Repeat("\n", h-n)
}
