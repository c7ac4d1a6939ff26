package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Career pacing.
const (
	MonthsPerYear    = 12
	TotalMonths      = 36
	NoveltyBias      = 0.45
	RepeatBias       = 0.30
	AmbientChance    = 0.15
	MaxHighlights    = 3
	MaxGoalProgress  = 120
	goalDisplayScale = 100
)

var (
	ErrGameOver         = errors.New("career already finished")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// ChoiceResult describes one resolved month, for the archive and the outcome card.
type ChoiceResult struct {
	Month      int
	EventID    string
	EventTitle string
	OptionText string
	Message    string
	Impact     string
}

// Game is a single career run. It is not safe for concurrent use; the UI loop owns it.
type Game struct {
	Player        Player
	Progress      Progress
	Month         int
	Current       *GameEvent
	ResultMessage string
	LastImpact    string
	Warnings      []string
	Highlights    []string
	Ending        *Ending

	catalog         []*GameEvent
	played          map[*GameEvent]bool
	seen            map[string]bool
	rng             Random
	eventsCompleted int
	totalStress     int
	totalHealth     int
	totalMotivation int
}

// NewGame starts a career at month 1 and loads the first event.
func NewGame(p Player, events []GameEvent, rng Random) *Game {
	g := &Game{
		Player:  p,
		Month:   1,
		catalog: make([]*GameEvent, 0, len(events)),
		played:  map[*GameEvent]bool{},
		seen:    map[string]bool{},
		rng:     rng,
	}
	for i := range events {
		ev := events[i]
		g.catalog = append(g.catalog, &ev)
	}
	g.Warnings = StatusWarnings(g.Player)
	g.loadNext()
	return g
}

// Finished reports whether an ending has been decided.
func (g *Game) Finished() bool { return g.Ending != nil }

// EventsCompleted is the number of options chosen so far.
func (g *Game) EventsCompleted() int { return g.eventsCompleted }

// Choose resolves option i of the current event and advances one month.
func (g *Game) Choose(i int) (ChoiceResult, error) {
	if g.Finished() || g.Current == nil {
		return ChoiceResult{}, ErrGameOver
	}
	if i < 0 || i >= len(g.Current.Options) {
		return ChoiceResult{}, fmt.Errorf("%w: %d of %d", ErrOptionOutOfRange, i, len(g.Current.Options))
	}
	ev, opt := g.Current, g.Current.Options[i]
	g.applyOption(opt)

	g.ResultMessage = opt.EffectDescription
	g.eventsCompleted++
	g.totalStress += g.Player.Stress
	g.totalHealth += g.Player.Health
	g.totalMotivation += g.Player.Motivation

	res := ChoiceResult{
		Month:      g.Month,
		EventID:    ev.ID,
		EventTitle: ev.Title,
		OptionText: opt.Text,
		Message:    opt.EffectDescription,
		Impact:     opt.ImpactSummary(),
	}

	g.Month++
	g.Player.Age = startingAge + (g.Month-1)/MonthsPerYear
	g.LastImpact = impactDetails(opt)
	g.Warnings = StatusWarnings(g.Player)
	g.loadNext()
	return res, nil
}

func impactDetails(o EventOption) string {
	s := o.ImpactSummary()
	if s == MinorImpact {
		return "This month barely moved your stats."
	}
	return "Impact: " + s
}

func (g *Game) applyOption(o EventOption) {
	ApplyOption(&g.Player, o, &g.Progress)
	g.Progress.Leadership = clampRange(g.Progress.Leadership, 0, MaxGoalProgress)
	g.Progress.Innovation = clampRange(g.Progress.Innovation, 0, MaxGoalProgress)
}

func (g *Game) loadNext() {
	if g.Month > TotalMonths {
		g.complete()
		return
	}
	g.tryAmbient()

	pool := g.eligible(false)
	if len(pool) == 0 {
		g.played = map[*GameEvent]bool{}
		pool = g.eligible(false)
	}
	if len(pool) == 0 {
		g.complete()
		return
	}
	picked := SelectWeighted(g.applyBiases(pool), g.weightContext(), g.rng)
	if !picked.AllowRepeat {
		g.played[picked] = true
	}
	if strings.TrimSpace(picked.ID) != "" {
		g.seen[picked.ID] = true
	}
	g.Current = picked
}

func (g *Game) weightContext() WeightContext {
	return WeightContext{
		Player:        g.Player,
		RareUnlocked:  g.Progress.RareUnlocked,
		CosmicInsight: g.Progress.CosmicInsight,
		Seen:          g.seen,
		Month:         g.Month,
	}
}

func (g *Game) eligible(passive bool) []*GameEvent {
	var out []*GameEvent
	for _, ev := range g.catalog {
		if ev.Passive != passive {
			continue
		}
		// an active event with nothing to choose would stall the month
		if !passive && len(ev.Options) == 0 {
			continue
		}
		if !ev.Requirement.Satisfied(g.Player, g.Month) {
			continue
		}
		if !ev.AllowRepeat && g.played[ev] {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// applyBiases narrows the pool toward unseen or repeatable events.
// The novelty draw only happens when there is something unseen.
func (g *Game) applyBiases(pool []*GameEvent) []*GameEvent {
	var unseen, repeat []*GameEvent
	for _, ev := range pool {
		if strings.TrimSpace(ev.ID) == "" || !g.seen[ev.ID] {
			unseen = append(unseen, ev)
		}
		if ev.AllowRepeat {
			repeat = append(repeat, ev)
		}
	}
	if len(unseen) > 0 && g.rng.Float64() < NoveltyBias {
		return unseen
	}
	if g.rng.Float64() < RepeatBias && len(repeat) > 0 {
		return repeat
	}
	return pool
}

func (g *Game) tryAmbient() {
	ambient := g.eligible(true)
	if len(ambient) == 0 {
		return
	}
	if g.rng.Float64() > AmbientChance {
		return
	}
	picked := SelectWeighted(ambient, g.weightContext(), g.rng)
	if !picked.AllowRepeat {
		g.played[picked] = true
	}
	// ambient events are flavour: the effect text is shown, the deltas are not applied
	if picked.PassiveEffect == nil {
		return
	}
	g.Highlights = append([]string{picked.Title + ": " + picked.PassiveEffect.EffectDescription}, g.Highlights...)
	if len(g.Highlights) > MaxHighlights {
		g.Highlights = g.Highlights[:MaxHighlights]
	}
}

// Summary returns the per-run aggregates. With no events completed the
// averages fall back to the current stats.
func (g *Game) Summary() RunSummary {
	s := RunSummary{
		EventsCompleted: g.eventsCompleted,
		AvgStress:       g.Player.Stress,
		AvgHealth:       g.Player.Health,
		AvgMotivation:   g.Player.Motivation,
		Leadership:      g.Progress.Leadership,
		Innovation:      g.Progress.Innovation,
		CosmicInsight:   g.Progress.CosmicInsight,
	}
	if g.eventsCompleted > 0 {
		s.AvgStress = g.totalStress / g.eventsCompleted
		s.AvgHealth = g.totalHealth / g.eventsCompleted
		s.AvgMotivation = g.totalMotivation / g.eventsCompleted
	}
	return s
}

func (g *Game) complete() {
	g.Current = nil
	g.ResultMessage = ""
	e := DetermineEnding(g.Player, g.Summary())
	g.Ending = &e
}

// TimeDisplay is e.g. "Year 2 · Month 14".
func (g *Game) TimeDisplay() string {
	return fmt.Sprintf("Year %d · Month %d", (g.Month-1)/MonthsPerYear+1, g.Month)
}

// TimelineDisplay is e.g. "Month 14 / 36".
func (g *Game) TimelineDisplay() string {
	m := g.Month
	if m > TotalMonths {
		m = TotalMonths
	}
	return fmt.Sprintf("Month %d / %d", m, TotalMonths)
}

// TimelineProgress is the elapsed fraction of the career in [0,1].
func (g *Game) TimelineProgress() float64 {
	f := float64(g.Month-1) / float64(TotalMonths)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// CareerPhase names the current stage of the career.
func (g *Game) CareerPhase() string {
	switch {
	case g.Month <= 12:
		return "Novice: absorbing and adapting"
	case g.Month <= 24:
		return "Growth: building experience and influence"
	case g.Month <= 36:
		return "Breakthrough: sprinting for your personal brand"
	default:
		return "Legend"
	}
}

// GoalProgressSummary shows the two hidden career goals.
func (g *Game) GoalProgressSummary() string {
	return fmt.Sprintf("Leadership %d/%d · Innovation %d/%d",
		g.Progress.Leadership, goalDisplayScale, g.Progress.Innovation, goalDisplayScale)
}

// GameSummary is the closing text shown with the ending; empty while the run is ongoing.
func (g *Game) GameSummary() string {
	if g.Ending == nil {
		return ""
	}
	months := g.Month - 1
	if months > TotalMonths {
		months = TotalMonths
	}
	s := g.Summary()
	return fmt.Sprintf("%s\n\nCareer: %d months, %d events handled.\nFinal salary %d · avg stress %d · avg health %d · avg motivation %d\n%s",
		g.Ending.Description, months, s.EventsCompleted, g.Player.Salary,
		s.AvgStress, s.AvgHealth, s.AvgMotivation, g.GoalProgressSummary())
}
