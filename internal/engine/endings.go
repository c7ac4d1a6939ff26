package engine

import "fmt"

// Ending is the narrative result of a finished career.
type Ending struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RunSummary carries the per-run aggregates the ending guards read.
type RunSummary struct {
	EventsCompleted int
	AvgStress       int
	AvgHealth       int
	AvgMotivation   int
	Leadership      int
	Innovation      int
	CosmicInsight   bool
}

type endingRule struct {
	key, title string
	match      func(p Player, s RunSummary) bool
	describe   func(p Player) string
}

func fixed(text string) func(Player) string { return func(Player) string { return text } }

// Guards are mutually exclusive by order: the first match wins.
var endingRules = []endingRule{
	{
		key: "burnout", title: "Burnout Alarm",
		match:    func(p Player, s RunSummary) bool { return p.Health <= 25 || s.AvgStress >= 75 },
		describe: fixed("Years of pressure have drained you body and soul. It may be time to stop and redraw the line between work and life."),
	},
	{
		key: "new_direction", title: "Seeking a New Direction",
		match:    func(p Player, s RunSummary) bool { return p.Motivation <= 30 || s.AvgMotivation <= 45 },
		describe: fixed("The job no longer sparks anything in you. You step away to look for new inspiration and new dreams."),
	},
	{
		key: "grind_loop", title: "The Grind Loop",
		match: func(p Player, s RunSummary) bool {
			return s.AvgStress >= 65 && s.AvgStress < 75 && p.Salary < 12000
		},
		describe: fixed("You spin in place between crunch and overtime. Never crushed, never quite breaking through."),
	},
	{
		key: "promotion", title: "Promoted to the Top",
		match:    func(_ Player, s RunSummary) bool { return s.Leadership >= 90 },
		describe: fixed("Level by level you built real influence, and the team now looks up to you as its engineering manager."),
	},
	{
		key: "startup_star", title: "Startup Star",
		match:    func(_ Player, s RunSummary) bool { return s.Innovation >= 90 },
		describe: fixed("Ideas and execution took off together. Your side project is now a company, and the founder journey begins."),
	},
	{
		key: "cosmic_architect", title: "Cosmic Architect",
		match:    func(_ Player, s RunSummary) bool { return s.CosmicInsight && s.Innovation >= 70 },
		describe: fixed("You resonate with a strange inspiration and are designing next-generation systems only a few can understand."),
	},
	{
		key: "tech_star", title: "Tech Star",
		match: func(p Player, _ RunSummary) bool {
			_, v := p.HighestSkill()
			return v >= 90 && p.Salary >= 25000
		},
		describe: func(p Player) string {
			s, _ := p.HighestSkill()
			return fmt.Sprintf("With outstanding %s and a salary to match, you have become the irreplaceable technical pillar of the team.", s.Label())
		},
	},
	{
		key: "digital_nomad", title: "Digital Nomad",
		match: func(p Player, _ RunSummary) bool {
			return p.Salary >= 28000 && p.Stress <= 45 && p.Motivation >= 85
		},
		describe: fixed("Solid skills and a free spirit let you work remotely from anywhere you like."),
	},
	{
		key: "indie_hacker", title: "Indie Hacker",
		match: func(p Player, s RunSummary) bool {
			return p.Motivation >= 95 && s.Innovation >= 60 && s.Leadership <= 40
		},
		describe: fixed("You reject process and meetings and drift between cool projects on charm and creativity alone."),
	},
	{
		key: "team_leader", title: "Team Leader",
		match:    func(p Player, _ RunSummary) bool { return p.Communication >= 80 && p.Motivation >= 60 },
		describe: fixed("Your communication and encouragement pulled the team through its bottleneck, opening a new chapter as a manager."),
	},
	{
		key: "slow_life_mentor", title: "Slow-Life Mentor",
		match: func(p Player, s RunSummary) bool {
			return s.AvgHealth >= 80 && s.Leadership < 40 && p.Stress <= 35
		},
		describe: fixed("You found the rhythm of work and life, and colleagues now come to you for the secret."),
	},
	{
		key: "balance_master", title: "Balance Master",
		match:    func(_ Player, s RunSummary) bool { return s.AvgHealth >= 70 && s.AvgStress <= 45 },
		describe: fixed("Healthy and productive at once, you are the company's favourite example of steady excellence."),
	},
}

var defaultEnding = endingRule{
	key: "steady_progress", title: "Steady Progress",
	describe: fixed("You kept growing in your role and built a solid foundation. The next breakthrough is within reach."),
}

// DetermineEnding is total and deterministic: the same inputs always yield the same ending.
func DetermineEnding(p Player, s RunSummary) Ending {
	rule := defaultEnding
	for _, r := range endingRules {
		if r.match(p, s) {
			rule = r
			break
		}
	}
	return Ending{Key: rule.key, Title: rule.title, Description: rule.describe(p)}
}

// EndingKeys lists every reachable ending key in evaluation order, default last.
func EndingKeys() []string {
	out := make([]string, 0, len(endingRules)+1)
	for _, r := range endingRules {
		out = append(out, r.key)
	}
	return append(out, defaultEnding.key)
}
