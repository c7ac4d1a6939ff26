package text

import (
	"strings"
	"testing"
	"time"

	"github.com/DaanHessen/devlife/internal/engine"
	"github.com/DaanHessen/devlife/internal/store"
)

// highRandom never triggers ambient events or biases and always picks the first candidate.
type highRandom struct{}

func (highRandom) Intn(int) int     { return 0 }
func (highRandom) Float64() float64 { return 0.99 }

func sampleGame() *engine.Game {
	ev := engine.GameEvent{
		ID:          "code-review",
		Title:       "Code Review",
		Description: "A senior engineer leaves forty comments on your PR.",
		Category:    "Work",
		Rarity:      engine.RarityRare,
		Weight:      1,
		Options: []engine.EventOption{
			{Text: "Fix everything tonight", EffectDescription: "You learn a lot but sleep little.", ProgrammingDelta: 5, StressDelta: 8},
			{Text: "Push back politely", EffectDescription: "The discussion goes well.", CommunicationDelta: 4},
		},
	}
	return engine.NewGame(engine.NewBasePlayer("Ada"), []engine.GameEvent{ev}, highRandom{})
}

func TestParseDensity(t *testing.T) {
	cases := map[string]Density{"concise": Concise, " RICH ": Rich, "standard": Standard, "": Standard, "verbose": Standard}
	for in, want := range cases {
		if got := ParseDensity(in); got != want {
			t.Errorf("ParseDensity(%q)=%s want %s", in, got, want)
		}
	}
}

func TestEventCardDensity(t *testing.T) {
	g := sampleGame()
	concise := NewNarrator("concise").EventCard(g)
	standard := NewNarrator("standard").EventCard(g)
	rich := NewNarrator("rich").EventCard(g)

	for _, card := range []string{concise, standard, rich} {
		if !strings.Contains(card, "## Code Review") || !strings.Contains(card, "1. Fix everything tonight") || !strings.Contains(card, "2. Push back politely") {
			t.Fatalf("card missing title or options:\n%s", card)
		}
	}
	if strings.Contains(concise, "Programming +5") {
		t.Fatalf("concise card should omit impact summaries:\n%s", concise)
	}
	if !strings.Contains(standard, "(Programming +5 / Stress +8)") || !strings.Contains(standard, "Year 1 · Month 1") {
		t.Fatalf("standard card missing impact or time:\n%s", standard)
	}
	if !strings.Contains(rich, "> ") {
		t.Fatalf("rich card missing flavor line:\n%s", rich)
	}
	if again := NewNarrator("rich").EventCard(g); again != rich {
		t.Fatalf("rich card not deterministic")
	}
}

func TestEventCardWithoutEvent(t *testing.T) {
	if got := NewNarrator("standard").EventCard(nil); !strings.Contains(got, "No event") {
		t.Fatalf("unexpected card for nil game: %q", got)
	}
}

func TestOutcomeCard(t *testing.T) {
	g := sampleGame()
	res, err := g.Choose(0)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	card := NewNarrator("standard").OutcomeCard(res, g)
	for _, want := range []string{"Month 1: Code Review", "You chose **Fix everything tonight**", "You learn a lot", "`Programming +5 / Stress +8`"} {
		if !strings.Contains(card, want) {
			t.Fatalf("outcome card missing %q:\n%s", want, card)
		}
	}
	if concise := NewNarrator("concise").OutcomeCard(res, g); strings.Contains(concise, "You chose") {
		t.Fatalf("concise outcome should skip the chosen option:\n%s", concise)
	}
}

func TestEndingCard(t *testing.T) {
	g := sampleGame()
	n := NewNarrator("rich")
	if n.EndingCard(g) != "" {
		t.Fatalf("ending card should be empty mid-run")
	}
	for !g.Finished() {
		if _, err := g.Choose(1); err != nil {
			t.Fatalf("choose: %v", err)
		}
	}
	card := n.EndingCard(g)
	if !strings.HasPrefix(card, "# "+g.Ending.Title) {
		t.Fatalf("ending card should open with the title:\n%s", card)
	}
	if !strings.Contains(card, "Strongest skill") || !strings.Contains(card, "36 months") {
		t.Fatalf("rich ending card incomplete:\n%s", card)
	}
}

func TestArchiveCard(t *testing.T) {
	n := NewNarrator("rich")
	if got := n.ArchiveCard(nil); !strings.Contains(got, "No finished careers") {
		t.Fatalf("empty archive card: %q", got)
	}
	runs := []store.FinishedRun{{
		PlayerName: "Grace",
		SeedText:   "abc123",
		FinishedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Months:     36,
		Player:     engine.Player{Salary: 21000},
		Summary:    engine.RunSummary{AvgStress: 40, Leadership: 95},
		Ending:     engine.Ending{Title: "Promoted to Lead"},
	}}
	card := n.ArchiveCard(runs)
	for _, want := range []string{"**Grace** (2026-03-01): Promoted to Lead, 36 months", "salary 21000", "leadership 95", "seed `abc123`"} {
		if !strings.Contains(card, want) {
			t.Fatalf("archive card missing %q:\n%s", want, card)
		}
	}
}
