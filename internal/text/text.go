package text

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/devlife/internal/engine"
	"github.com/DaanHessen/devlife/internal/store"
)

// Density controls how much prose accompanies each card.
type Density string

const (
	Concise  Density = "concise"
	Standard Density = "standard"
	Rich     Density = "rich"
)

// ParseDensity maps a flag value to a Density. Unknown values become Standard.
func ParseDensity(s string) Density {
	switch Density(strings.ToLower(strings.TrimSpace(s))) {
	case Concise:
		return Concise
	case Rich:
		return Rich
	default:
		return Standard
	}
}

// Narrator renders game state as markdown. Output depends only on its inputs,
// so the same seed replays the same text.
type Narrator struct {
	density Density
}

func NewNarrator(density string) *Narrator { return &Narrator{density: ParseDensity(density)} }

func (n *Narrator) Density() Density { return n.density }

var rarityFlavor = map[engine.Rarity][]string{
	engine.RarityUncommon: {"Not every month looks like this one.", "Something slightly off-script is happening."},
	engine.RarityRare:     {"Colleagues will talk about this one for a while.", "Opportunities like this rarely knock twice."},
	engine.RarityEpic:     {"This could define the whole career.", "The stakes have never been higher."},
	engine.RarityMythic:   {"Reality seems to bend around the keyboard.", "Nobody will believe this story later."},
}

var monthFlavor = []string{
	"Slack is quiet for once.",
	"The coffee machine is broken again.",
	"Standup ran long this morning.",
	"A new ticket lands in the backlog.",
	"The build is green, for now.",
	"Someone renamed the main branch overnight.",
}

// pick is a stable choice from options keyed on label.
func pick(options []string, label string) string {
	if len(options) == 0 {
		return ""
	}
	return options[engine.SeedFromString(label)%uint64(len(options))]
}

// EventCard renders the current event with numbered options.
func (n *Narrator) EventCard(g *engine.Game) string {
	if g == nil || g.Current == nil {
		return "_No event this month._\n"
	}
	ev := g.Current
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", ev.Title)
	if n.density != Concise {
		meta := []string{g.TimeDisplay()}
		if ev.Category != "" {
			meta = append(meta, ev.Category)
		}
		if r := ev.Rarity.Normalize(); r != "" && r != engine.RarityCommon {
			meta = append(meta, string(r))
		}
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(meta, " · "))
	}
	if ev.Description != "" {
		b.WriteString(ev.Description + "\n\n")
	}
	if n.density == Rich {
		label := fmt.Sprintf("%s:%d", ev.ID+ev.Title, g.Month)
		if flavor := pick(rarityFlavor[ev.Rarity.Normalize()], label); flavor != "" {
			b.WriteString("> " + flavor + "\n\n")
		} else {
			b.WriteString("> " + pick(monthFlavor, label) + "\n\n")
		}
	}
	b.WriteString("### Choices\n\n")
	for i, opt := range ev.Options {
		fmt.Fprintf(&b, "%d. %s", i+1, opt.Text)
		if n.density != Concise {
			fmt.Fprintf(&b, " (%s)", opt.ImpactSummary())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// OutcomeCard renders the result of the previous month.
func (n *Narrator) OutcomeCard(r engine.ChoiceResult, g *engine.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Month %d: %s\n\n", r.Month, r.EventTitle)
	if n.density != Concise && r.OptionText != "" {
		fmt.Fprintf(&b, "You chose **%s**.\n\n", r.OptionText)
	}
	if r.Message != "" {
		b.WriteString(r.Message + "\n\n")
	}
	fmt.Fprintf(&b, "`%s`\n", r.Impact)
	if g != nil && n.density == Rich {
		if len(g.Warnings) > 0 {
			b.WriteString("\n")
			for _, w := range g.Warnings {
				b.WriteString("- " + w + "\n")
			}
		}
		if len(g.Highlights) > 0 {
			b.WriteString("\n**Around the office**\n\n")
			for _, h := range g.Highlights {
				b.WriteString("- " + h + "\n")
			}
		}
	}
	return b.String()
}

// EndingCard renders the final verdict. Empty until the game has finished.
func (n *Narrator) EndingCard(g *engine.Game) string {
	if g == nil || g.Ending == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", g.Ending.Title)
	if n.density == Concise {
		b.WriteString(g.Ending.Description + "\n")
		return b.String()
	}
	b.WriteString(g.GameSummary() + "\n")
	if n.density == Rich {
		skill, v := g.Player.HighestSkill()
		fmt.Fprintf(&b, "\nStrongest skill: **%s** at %d.\n", skill.Label(), v)
		if g.Progress.CosmicInsight {
			b.WriteString("\nYou glimpsed the cosmic architecture behind the code.\n")
		}
	}
	return b.String()
}

// ArchiveCard lists finished careers, newest first.
func (n *Narrator) ArchiveCard(runs []store.FinishedRun) string {
	if len(runs) == 0 {
		return "## Career archive\n\n_No finished careers yet._\n"
	}
	var b strings.Builder
	b.WriteString("## Career archive\n\n")
	for _, r := range runs {
		date := r.FinishedAt.Format("2006-01-02")
		fmt.Fprintf(&b, "- **%s** (%s): %s, %s\n", r.PlayerName, date, r.Ending.Title, pluralMonths(r.Months))
		if n.density == Concise {
			continue
		}
		fmt.Fprintf(&b, "  salary %d · avg stress %d · leadership %d · innovation %d\n",
			r.Player.Salary, r.Summary.AvgStress, r.Summary.Leadership, r.Summary.Innovation)
		if n.density == Rich && r.SeedText != "" {
			fmt.Fprintf(&b, "  seed `%s`\n", r.SeedText)
		}
	}
	return b.String()
}

func pluralMonths(m int) string {
	if m == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", m)
}
