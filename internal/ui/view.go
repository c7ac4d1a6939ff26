package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/DaanHessen/devlife/internal/engine"
)

const (
	defaultWidth = 100
	sidebarWidth = 38
	barWidth     = 10
)

func (m model) View() string {
	switch m.view {
	case viewCreate:
		return m.renderCreate()
	case viewGame:
		return m.renderGame()
	case viewEnding:
		return m.renderEnding()
	case viewArchive:
		return m.renderArchive()
	case viewHelp:
		return m.renderHelp()
	default:
		return m.renderMainMenu()
	}
}

func (m model) screenWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// mdCache holds one glamour renderer per width plus the last rendered card.
// The model is copied on every Update, so it is shared by pointer.
type mdCache struct {
	width int
	r     *glamour.TermRenderer
	in    string
	out   string
}

func (c *mdCache) render(md string, width int) string {
	if c.r == nil || c.width != width {
		r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(width))
		if err != nil {
			return md
		}
		c.r, c.width, c.in, c.out = r, width, "", ""
	}
	if c.out != "" && c.in == md {
		return c.out
	}
	out, err := c.r.Render(md)
	if err != nil {
		return md
	}
	c.in, c.out = md, strings.TrimRight(out, "\n")
	return c.out
}

// markdown renders md with glamour, falling back to the raw text.
func (m model) markdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	if m.md == nil {
		m.md = &mdCache{}
	}
	return m.md.render(md, width)
}

func (m model) renderMainMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("DEVLIFE") + "  " + m.styles.muted.Render("a programmer life simulator") + "\n\n")
	b.WriteString("[1] New career\n")
	if m.inProgress() {
		b.WriteString(fmt.Sprintf("[2] Continue (%s, %s)\n", m.game.Player.Name, m.game.TimelineDisplay()))
	} else {
		b.WriteString(m.styles.muted.Render("[2] Continue") + "\n")
	}
	b.WriteString("[3] Career archive\n[4] Help\n\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("Seed %s · %d events (%s) · theme %s", m.seed.Text, len(m.catalog.Events), m.catalog.Source, m.theme)) + "\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("Text density %s", m.narrator.Density())) + "\n")
	b.WriteString(m.styles.muted.Render("t theme · ? help · q quit"))
	if m.status != "" {
		b.WriteString("\n\n" + m.styles.warning.Render(m.status))
	}
	return m.styles.box.Width(60).Render(b.String())
}

func (m model) renderCreate() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("NEW CAREER") + "\n\n")
	name := m.nameInput
	b.WriteString("Name: " + m.styles.accent.Render(name+"_") + "\n")
	if strings.TrimSpace(name) == "" {
		b.WriteString(m.styles.muted.Render("(blank names start as Anonymous Dev)") + "\n")
	}
	b.WriteString("\nStarting trait:\n")
	for i, t := range m.traits {
		line := fmt.Sprintf("%-20s %s", t.Name, t.Description)
		if i == m.traitIndex {
			b.WriteString(m.styles.selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + m.styles.muted.Render("type name · up/down trait · enter start · esc back"))
	return m.styles.box.Width(72).Render(b.String())
}

func (m model) renderGame() string {
	g := m.game
	if g == nil {
		return m.renderMainMenu()
	}
	w := m.screenWidth()
	side := sidebarWidth
	if w < 90 {
		side = 30
	}
	mainWidth := w - side - 2

	var md strings.Builder
	if m.lastResult != nil {
		md.WriteString(m.narrator.OutcomeCard(*m.lastResult, g))
		md.WriteString("\n---\n\n")
	}
	md.WriteString(m.narrator.EventCard(g))
	main := lipgloss.NewStyle().Width(mainWidth).Render(m.markdown(md.String(), mainWidth-2))
	sidebar := m.styles.panel.Width(side).Render(m.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, main, sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.renderBottomBar())
}

func (m model) renderTopBar() string {
	g := m.game
	left := fmt.Sprintf("DEVLIFE • %s • %s", g.Player.Name, g.TimeDisplay())
	right := fmt.Sprintf("%s %s", g.TimelineDisplay(), progressBar(g.TimelineProgress(), barWidth))
	gap := m.screenWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.topBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderBottomBar() string {
	line := "[1-6] choose  [A] archive  [T] theme  [?] help  [Esc] menu  [Q] quit"
	if m.status != "" {
		line += "\n" + m.styles.warning.Render(m.status)
	}
	return m.styles.muted.Render(line)
}

func (m model) renderSidebar() string {
	g := m.game
	var b strings.Builder
	b.WriteString(m.styles.subtitle.Render(fmt.Sprintf("%s, %d", g.Player.Name, g.Player.Age)) + "\n")
	b.WriteString(m.styles.muted.Render(g.CareerPhase()) + "\n\n")
	b.WriteString(m.statsTable(g.Player) + "\n\n")
	b.WriteString(m.styles.accent.Render(g.GoalProgressSummary()) + "\n")
	if g.Progress.RareUnlocked || g.Progress.CosmicInsight {
		var unlocked []string
		if g.Progress.RareUnlocked {
			unlocked = append(unlocked, "rare events")
		}
		if g.Progress.CosmicInsight {
			unlocked = append(unlocked, "cosmic insight")
		}
		b.WriteString(m.styles.success.Render("Unlocked: "+strings.Join(unlocked, ", ")) + "\n")
	}
	if g.LastImpact != "" {
		b.WriteString("\n" + m.styles.muted.Render(g.LastImpact) + "\n")
	}
	if len(g.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range g.Warnings {
			b.WriteString(m.styles.warning.Render("! "+w) + "\n")
		}
	}
	if len(g.Highlights) > 0 {
		b.WriteString("\n" + m.styles.subtitle.Render("Around the office") + "\n")
		for _, h := range g.Highlights {
			b.WriteString("• " + h + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) statsTable(p engine.Player) string {
	rows := [][]string{
		statRow("Programming", p.Programming),
		statRow("Algorithms", p.Algorithm),
		statRow("Debugging", p.Debugging),
		statRow("Communication", p.Communication),
		statRow("Stress", p.Stress),
		statRow("Health", p.Health),
		statRow("Motivation", p.Motivation),
		{"Salary", "", fmt.Sprintf("%d", p.Salary)},
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.styles.border).
		BorderHeader(true).
		BorderRow(false).
		Headers("Stat", "", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.title
			}
			if col == 1 {
				return m.styles.barFill
			}
			return m.styles.body
		})
	return t.Render()
}

func statRow(label string, v int) []string {
	return []string{label, bar(v), fmt.Sprintf("%3d", v)}
}

func (m model) renderEnding() string {
	g := m.game
	if g == nil || g.Ending == nil {
		return m.renderMainMenu()
	}
	w := m.screenWidth()
	var b strings.Builder
	b.WriteString(m.markdown(m.narrator.EndingCard(g), w-6) + "\n\n")
	b.WriteString(m.statsTable(g.Player) + "\n\n")
	if m.status != "" {
		b.WriteString(m.styles.warning.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.muted.Render("enter menu · a archive · q quit"))
	return m.styles.box.Render(b.String())
}

func (m model) renderArchive() string {
	if len(m.archiveRuns) == 0 {
		return m.styles.box.Render(m.markdown(m.narrator.ArchiveCard(nil), 60) + "\n\n" + m.styles.muted.Render("esc back"))
	}
	if m.archiveDetail {
		r := m.archiveRuns[m.archiveIndex]
		var b strings.Builder
		b.WriteString(m.styles.title.Render(fmt.Sprintf("ARCHIVE DETAIL (%d/%d)", m.archiveIndex+1, len(m.archiveRuns))) + "\n\n")
		b.WriteString(fmt.Sprintf("%s · %s · %s\n", r.PlayerName, r.Trait, r.Ending.Title))
		b.WriteString(m.styles.muted.Render(r.Ending.Description) + "\n\n")
		b.WriteString(m.statsTable(r.Player) + "\n\n")
		b.WriteString(fmt.Sprintf("avg stress %d · avg health %d · avg motivation %d · leadership %d · innovation %d\n",
			r.Summary.AvgStress, r.Summary.AvgHealth, r.Summary.AvgMotivation, r.Summary.Leadership, r.Summary.Innovation))
		if len(r.Choices) > 0 {
			b.WriteString("\nRecent choices:\n")
			start := len(r.Choices) - 5
			if start < 0 {
				start = 0
			}
			for _, c := range r.Choices[start:] {
				b.WriteString(fmt.Sprintf("  M%-2d %s: %s\n", c.Month, c.EventTitle, c.OptionText))
			}
		}
		b.WriteString(m.styles.muted.Render(fmt.Sprintf("\nseed %s · catalog %s", r.SeedText, r.CatalogSource)) + "\n")
		b.WriteString(m.styles.muted.Render("enter list · esc back"))
		return m.styles.box.Render(b.String())
	}
	var b strings.Builder
	b.WriteString(m.markdown(m.narrator.ArchiveCard(m.archiveRuns), m.screenWidth()-6) + "\n\n")
	for i, r := range m.archiveRuns {
		line := fmt.Sprintf("%-20s %-28s %s", r.PlayerName, r.Ending.Title, r.FinishedAt.Format("2006-01-02 15:04"))
		if i == m.archiveIndex {
			b.WriteString(m.styles.selected.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + m.styles.muted.Render("up/down select · enter detail · esc back"))
	return m.styles.box.Render(b.String())
}

func (m model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("HOW TO PLAY") + "\n\n")
	b.WriteString(fmt.Sprintf("Each month brings an event. Pick one of its options with 1-6. After %d months, or when the event pool runs dry, your career ends and an ending is chosen from your final stats and monthly averages.\n\n", engine.TotalMonths))
	b.WriteString("Stats stay between 0 and 100. Keep stress low and health up: burning out ends badly. Leadership and innovation are hidden goals fed by your choices. Some options unlock rare or cosmic events.\n\n")
	b.WriteString("Ambient events happen around the office in the background. They show up in the sidebar but do not change your stats.\n\n")
	b.WriteString("Controls: 1-6 choose · up/down pick trait · enter confirm · a archive · t theme · ? help · esc back · q quit\n\n")
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("Seed %s · %s text · version %s", m.seed.Text, m.narrator.Density(), m.version)))
	return m.styles.box.Width(76).Render(b.String())
}

func bar(v int) string {
	return progressBar(float64(v)/100.0, barWidth)
}

func progressBar(f float64, width int) string {
	if f < 0 {
		f = 0
	}
	fill := int(f*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	return strings.Repeat("█", fill) + strings.Repeat("·", width-fill)
}
