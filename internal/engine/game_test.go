package engine

import (
	"errors"
	"testing"
)

func TestNewGameLoadsFirstEvent(t *testing.T) {
	g := NewGame(NewBasePlayer("Ada"), LegacyEvents(), &scriptedRandom{})
	if g.Month != 1 || g.Current == nil || g.Finished() {
		t.Fatalf("unexpected start state: month=%d current=%v", g.Month, g.Current)
	}
	if g.Current.Title != "First Day" {
		t.Fatalf("zero draws should pick the first event, got %q", g.Current.Title)
	}
	if g.TimeDisplay() != "Year 1 · Month 1" || g.TimelineDisplay() != "Month 1 / 36" {
		t.Fatalf("time display wrong: %q / %q", g.TimeDisplay(), g.TimelineDisplay())
	}
	if g.TimelineProgress() != 0 || g.GameSummary() != "" {
		t.Fatal("fresh game should have no progress and no summary")
	}
}

func TestChooseAppliesOptionAndAdvances(t *testing.T) {
	g := NewGame(NewBasePlayer("Ada"), LegacyEvents(), &scriptedRandom{})
	res, err := g.Choose(0)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if res.Month != 1 || res.EventTitle != "First Day" || res.Impact != "Communication +5 / Stress -3" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if g.Player.Communication != 40 || g.Player.Stress != 17 {
		t.Fatalf("option not applied: %+v", g.Player)
	}
	if g.Month != 2 || g.ResultMessage == "" || g.LastImpact != "Impact: Communication +5 / Stress -3" {
		t.Fatalf("bookkeeping wrong: month=%d msg=%q impact=%q", g.Month, g.ResultMessage, g.LastImpact)
	}
	if g.Current == nil || g.Current.Title != "First Project" {
		t.Fatalf("played events must not repeat, got %+v", g.Current)
	}
}

func TestChooseRejectsBadInput(t *testing.T) {
	g := NewGame(NewBasePlayer("Ada"), LegacyEvents(), &scriptedRandom{})
	if _, err := g.Choose(5); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if _, err := g.Choose(-1); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if g.Month != 1 {
		t.Fatal("rejected choice must not advance the month")
	}
}

func TestFullCareerReachesEnding(t *testing.T) {
	g := NewGame(NewBasePlayer("Ada"), LegacyEvents(), &scriptedRandom{})
	for i := 0; i < TotalMonths; i++ {
		if _, err := g.Choose(0); err != nil {
			t.Fatalf("month %d: %v", i+1, err)
		}
	}
	if !g.Finished() || g.Ending == nil || g.Current != nil {
		t.Fatal("career should be complete after 36 months")
	}
	if g.Month != 37 || g.Player.Age != 25 || g.EventsCompleted() != TotalMonths {
		t.Fatalf("unexpected end state: month=%d age=%d events=%d", g.Month, g.Player.Age, g.EventsCompleted())
	}
	if g.TimelineDisplay() != "Month 36 / 36" || g.TimelineProgress() != 1 || g.CareerPhase() != "Legend" {
		t.Fatal("derived displays wrong at the end of the career")
	}
	if g.GameSummary() == "" {
		t.Fatal("finished game needs a summary")
	}
	if _, err := g.Choose(0); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestEmptyCatalogEndsImmediately(t *testing.T) {
	g := NewGame(NewBasePlayer("Ada"), nil, &scriptedRandom{})
	if !g.Finished() {
		t.Fatal("no events means no career")
	}
	s := g.Summary()
	if s.AvgStress != 20 || s.AvgHealth != 80 || s.AvgMotivation != 70 {
		t.Fatalf("averages should fall back to current stats: %+v", s)
	}
	if g.Ending.Key != "slow_life_mentor" {
		t.Fatalf("unexpected ending %s", g.Ending.Key)
	}
}

func passiveEvent(stressDelta int) GameEvent {
	return GameEvent{
		ID:          "coffee",
		Title:       "Free Coffee",
		Passive:     true,
		AllowRepeat: true,
		Weight:      1,
		PassiveEffect: &EventOption{
			EffectDescription: "the office got a new machine",
			StressDelta:       stressDelta,
			SalaryDelta:       -5000,
			LeadershipDelta:   10,
			UnlocksRareEvent:  true,
		},
	}
}

func TestAmbientEventTriggers(t *testing.T) {
	events := []GameEvent{activeEvent("work", true), passiveEvent(30)}
	g := NewGame(NewBasePlayer("Ada"), events, &scriptedRandom{floats: []float64{0.1}})
	if g.Player.Stress != 20 || g.Player.Salary != 8000 {
		t.Fatalf("ambient effect must not touch stats: stress=%d salary=%d", g.Player.Stress, g.Player.Salary)
	}
	if g.Progress.Leadership != 0 || g.Progress.RareUnlocked {
		t.Fatalf("ambient effect must not touch progress: %+v", g.Progress)
	}
	if len(g.Highlights) != 1 || g.Highlights[0] != "Free Coffee: the office got a new machine" {
		t.Fatalf("unexpected highlights %v", g.Highlights)
	}
	if g.Current == nil || g.Current.ID != "work" {
		t.Fatal("ambient events never replace the monthly event")
	}
}

func TestAmbientEventTriggersAtChanceBoundary(t *testing.T) {
	events := []GameEvent{activeEvent("work", true), passiveEvent(-5)}
	g := NewGame(NewBasePlayer("Ada"), events, &scriptedRandom{floats: []float64{AmbientChance}})
	if len(g.Highlights) != 1 || g.Player.Stress != 20 {
		t.Fatalf("draw at the chance should trigger without stat change: stress=%d highlights=%v", g.Player.Stress, g.Highlights)
	}
}

func TestAmbientEventSkippedAboveChance(t *testing.T) {
	events := []GameEvent{activeEvent("work", true), passiveEvent(-5)}
	g := NewGame(NewBasePlayer("Ada"), events, &scriptedRandom{floats: []float64{0.16}})
	if g.Player.Stress != 20 || len(g.Highlights) != 0 {
		t.Fatalf("ambient should not trigger: stress=%d highlights=%v", g.Player.Stress, g.Highlights)
	}
}

func TestHighlightsKeepMostRecentThree(t *testing.T) {
	events := []GameEvent{activeEvent("work", true), passiveEvent(1)}
	g := NewGame(NewBasePlayer("Ada"), events, &scriptedRandom{})
	for i := 0; i < 4; i++ {
		if _, err := g.Choose(0); err != nil {
			t.Fatal(err)
		}
	}
	if len(g.Highlights) != MaxHighlights {
		t.Fatalf("expected %d highlights, got %d", MaxHighlights, len(g.Highlights))
	}
}

func TestRequirementGatesEvents(t *testing.T) {
	late := activeEvent("late", false)
	late.Requirement = &EventRequirement{MinMonth: IntPtr(2)}
	early := activeEvent("early", false)
	g := NewGame(NewBasePlayer("Ada"), []GameEvent{late, early}, &scriptedRandom{})
	if g.Current.ID != "early" {
		t.Fatalf("month 1 must skip gated event, got %s", g.Current.ID)
	}
	if _, err := g.Choose(0); err != nil {
		t.Fatal(err)
	}
	if g.Current.ID != "late" {
		t.Fatalf("month 2 should unlock the gated event, got %s", g.Current.ID)
	}
}

func TestPlayedEventsResetWhenExhausted(t *testing.T) {
	g := NewGame(NewBasePlayer("Ada"), []GameEvent{activeEvent("only", false)}, &scriptedRandom{})
	for i := 0; i < 3; i++ {
		if _, err := g.Choose(1); err != nil {
			t.Fatalf("month %d: %v", i+1, err)
		}
		if g.Current == nil || g.Current.ID != "only" {
			t.Fatal("exhausted pool should be recycled")
		}
	}
}

func TestGoalProgressClamped(t *testing.T) {
	ev := activeEvent("promo", true)
	ev.Options[0].LeadershipDelta = 200
	ev.Options[0].InnovationDelta = -50
	g := NewGame(NewBasePlayer("Ada"), []GameEvent{ev}, &scriptedRandom{})
	if _, err := g.Choose(0); err != nil {
		t.Fatal(err)
	}
	if g.Progress.Leadership != MaxGoalProgress || g.Progress.Innovation != 0 {
		t.Fatalf("progress not clamped: %+v", g.Progress)
	}
	if g.GoalProgressSummary() != "Leadership 120/100 · Innovation 0/100" {
		t.Fatalf("got %q", g.GoalProgressSummary())
	}
}

func TestRepeatBiasSkipsNoveltyDrawWhenAllSeen(t *testing.T) {
	once := &GameEvent{ID: "once"}
	again := &GameEvent{ID: "again", AllowRepeat: true}
	rng := &scriptedRandom{floats: []float64{0.1}}
	g := &Game{seen: map[string]bool{"once": true, "again": true}, rng: rng}
	got := g.applyBiases([]*GameEvent{once, again})
	if len(got) != 1 || got[0] != again {
		t.Fatalf("expected the repeatable pool, got %d events", len(got))
	}
	if rng.floatCalls != 1 {
		t.Fatalf("novelty draw must be skipped, got %d draws", rng.floatCalls)
	}
}

func TestNoveltyBiasPrefersUnseen(t *testing.T) {
	seen := &GameEvent{ID: "seen", AllowRepeat: true}
	fresh := &GameEvent{ID: "fresh"}
	g := &Game{seen: map[string]bool{"seen": true}, rng: &scriptedRandom{floats: []float64{0.44}}}
	got := g.applyBiases([]*GameEvent{seen, fresh})
	if len(got) != 1 || got[0] != fresh {
		t.Fatal("expected the unseen pool")
	}
	g.rng = &scriptedRandom{floats: []float64{0.45, 0.9}}
	if got := g.applyBiases([]*GameEvent{seen, fresh}); len(got) != 2 {
		t.Fatal("no bias should keep the full pool")
	}
}

func TestSeededCareersAreReproducible(t *testing.T) {
	play := func() (string, []string) {
		seed, _ := NewRunSeed("repro")
		g := NewGame(NewBasePlayer("Ada"), LegacyEvents(), seed.Stream("career"))
		var titles []string
		for !g.Finished() {
			titles = append(titles, g.Current.Title)
			if _, err := g.Choose(len(g.Current.Options) - 1); err != nil {
				t.Fatal(err)
			}
		}
		return g.Ending.Key, titles
	}
	k1, t1 := play()
	k2, t2 := play()
	if k1 != k2 || len(t1) != len(t2) {
		t.Fatalf("runs diverged: %s vs %s", k1, k2)
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Fatalf("month %d differs: %s vs %s", i+1, t1[i], t2[i])
		}
	}
}

func TestCareerPhases(t *testing.T) {
	g := &Game{}
	for month, want := range map[int]string{1: "Novice", 12: "Novice", 13: "Growth", 24: "Growth", 25: "Breakthrough", 36: "Breakthrough", 37: "Legend"} {
		g.Month = month
		if got := g.CareerPhase(); len(got) < len(want) || got[:len(want)] != want {
			t.Fatalf("month %d: got %q", month, got)
		}
	}
}
