package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/DaanHessen/devlife/internal/content"
	"github.com/DaanHessen/devlife/internal/engine"
	"github.com/DaanHessen/devlife/internal/store"
	"github.com/DaanHessen/devlife/internal/util"
)

func newTestModel(t *testing.T, seed string, archive store.Archive) model {
	t.Helper()
	catalog := content.Catalog{Events: engine.LegacyEvents(), Source: content.SourceLegacy}
	m, err := initialModel(context.Background(), archive, catalog, util.Config{SeedText: seed, TextDensity: "standard"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("initial model: %v", err)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func startCareer(t *testing.T, m model, name string, downs int) model {
	t.Helper()
	m = press(t, m, runes("1"))
	if m.view != viewCreate {
		t.Fatalf("expected create view, got %s", m.view)
	}
	for _, r := range name {
		m = press(t, m, runes(string(r)))
	}
	for i := 0; i < downs; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestInitialModelRejectsEmptySeed(t *testing.T) {
	_, err := initialModel(context.Background(), nil, content.Catalog{}, util.Config{}, zerolog.Nop())
	if err == nil {
		t.Fatalf("expected error for empty seed")
	}
}

func TestCreateCareerAppliesNameAndTrait(t *testing.T) {
	archive := store.NewMemoryArchive()
	m := startCareer(t, newTestModel(t, "create-seed", archive), "Bob", 1)
	if m.view != viewGame {
		t.Fatalf("expected game view, got %s", m.view)
	}
	p := m.game.Player
	if p.Name != "Bob" {
		t.Fatalf("expected name Bob, got %q", p.Name)
	}
	// second trait is Debugging Expert: Debugging +15, Stress -5
	if p.Debugging != 55 || p.Stress != 15 {
		t.Fatalf("trait not applied: %+v", p)
	}
	if m.game.Current == nil {
		t.Fatalf("first event not loaded")
	}
}

func TestCreateViewTreatsQuitKeysAsText(t *testing.T) {
	m := newTestModel(t, "typing", nil)
	m = press(t, m, runes("1"), runes("q"), runes("t"), runes("a"))
	if m.view != viewCreate || m.nameInput != "qta" {
		t.Fatalf("expected typed name qta in create view, got %q in %s", m.nameInput, m.view)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.nameInput != "qt" {
		t.Fatalf("backspace should drop last rune, got %q", m.nameInput)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMainMenu {
		t.Fatalf("esc should return to menu, got %s", m.view)
	}
}

func TestFullCareerIsArchived(t *testing.T) {
	archive := store.NewMemoryArchive()
	m := startCareer(t, newTestModel(t, "full-run", archive), "", 0)
	for i := 0; i < 100 && m.view == viewGame; i++ {
		m = press(t, m, runes("1"))
	}
	if m.view != viewEnding || !m.game.Finished() {
		t.Fatalf("career did not finish, view %s", m.view)
	}
	runs, err := archive.ListFinished(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one archived run, got %d", len(runs))
	}
	r := runs[0]
	if r.PlayerName != "Anonymous Dev" || r.Ending.Key != m.game.Ending.Key {
		t.Fatalf("archived run mismatch: %+v", r)
	}
	if len(r.Choices) != m.game.EventsCompleted() || r.Months != engine.TotalMonths {
		t.Fatalf("expected %d choices over %d months, got %d over %d", m.game.EventsCompleted(), engine.TotalMonths, len(r.Choices), r.Months)
	}
	if r.SeedText != "full-run" || r.CatalogSource != string(content.SourceLegacy) {
		t.Fatalf("run metadata lost: %+v", r)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewMainMenu {
		t.Fatalf("enter on ending should return to menu, got %s", m.view)
	}
}

func TestSameSeedReplaysSameCareer(t *testing.T) {
	play := func() []string {
		m := startCareer(t, newTestModel(t, "replay", nil), "Ada", 2)
		var titles []string
		for i := 0; i < 10 && m.view == viewGame; i++ {
			titles = append(titles, m.game.Current.Title)
			m = press(t, m, runes("2"))
		}
		return titles
	}
	a, b := play(), play()
	if strings.Join(a, "|") != strings.Join(b, "|") {
		t.Fatalf("same seed produced different careers:\n%v\n%v", a, b)
	}
}

func TestSecondCareerUsesFreshStream(t *testing.T) {
	m := newTestModel(t, "session", nil)
	first := m.careerStream().Float64()
	m.careers = 1
	second := m.careerStream().Float64()
	if first == second {
		t.Fatalf("second career should draw from a different stream")
	}
}

func TestThemeCyclesAndArchiveReturns(t *testing.T) {
	m := newTestModel(t, "themes", store.NewMemoryArchive())
	start := m.theme
	m = press(t, m, runes("t"))
	if m.theme == start {
		t.Fatalf("theme did not change from %s", start)
	}
	m = startCareer(t, m, "Lin", 0)
	m = press(t, m, runes("a"))
	if m.view != viewArchive {
		t.Fatalf("expected archive view, got %s", m.view)
	}
	m = press(t, m, runes("?"))
	if m.view != viewHelp {
		t.Fatalf("expected help view, got %s", m.view)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewGame {
		t.Fatalf("esc from help should return to the game, got %s", m.view)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, "quit", nil)
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s should quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s did not produce QuitMsg", msg.String())
		}
	}
}

func TestOutOfRangeChoiceIsIgnored(t *testing.T) {
	m := startCareer(t, newTestModel(t, "range", nil), "Kay", 0)
	month := m.game.Month
	m = press(t, m, runes("6"))
	if len(m.game.Current.Options) < 6 && m.game.Month != month {
		t.Fatalf("invalid option advanced the month")
	}
}

func TestNextThemeNameWraps(t *testing.T) {
	names := themeNames()
	last := names[len(names)-1]
	if got := nextThemeName(last, 1); got != names[0] {
		t.Fatalf("expected wrap to %s, got %s", names[0], got)
	}
	if got := nextThemeName(names[0], -1); got != last {
		t.Fatalf("expected wrap back to %s, got %s", last, got)
	}
}

func TestBar(t *testing.T) {
	cases := map[int]string{0: "··········", 50: "█████·····", 100: "██████████", 130: "██████████"}
	for v, want := range cases {
		if got := bar(v); got != want {
			t.Errorf("bar(%d)=%q want %q", v, got, want)
		}
	}
}

func TestMarkdownReusesRendererPerWidth(t *testing.T) {
	m := newTestModel(t, "render", nil)
	first := m.markdown("## Standup\n\nSay what you did.", 60)
	r := m.md.r
	if r == nil {
		t.Fatalf("renderer not cached")
	}
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if again := m.markdown("## Standup\n\nSay what you did.", 60); again != first || m.md.r != r {
		t.Fatalf("same width should reuse the renderer and output")
	}
	m.markdown("## Retro", 60)
	if m.md.r != r || m.md.in != "## Retro" {
		t.Fatalf("new text at the same width should reuse the renderer")
	}
	m.markdown("## Retro", 80)
	if m.md.r == r || m.md.width != 80 {
		t.Fatalf("a new width should build a new renderer")
	}
}

func TestViewsShowTextDensity(t *testing.T) {
	catalog := content.Catalog{Events: engine.LegacyEvents(), Source: content.SourceLegacy}
	m, err := initialModel(context.Background(), nil, catalog, util.Config{SeedText: "dense", TextDensity: "rich"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("initial model: %v", err)
	}
	if v := m.View(); !strings.Contains(v, "Text density rich") {
		t.Fatalf("menu should show the text density:\n%s", v)
	}
	m = press(t, m, runes("?"))
	if v := m.View(); !strings.Contains(v, "rich text") {
		t.Fatalf("help should show the text density:\n%s", v)
	}
}
