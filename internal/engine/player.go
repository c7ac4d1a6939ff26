package engine

import "strings"

const (
	defaultPlayerName = "Anonymous Dev"
	startingAge       = 22
)

// Player is the programmer being simulated.
type Player struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Programming   int    `json:"programming"`
	Algorithm     int    `json:"algorithm"`
	Debugging     int    `json:"debugging"`
	Communication int    `json:"communication"`
	Stress        int    `json:"stress"`
	Health        int    `json:"health"`
	Motivation    int    `json:"motivation"`
	Salary        int    `json:"salary"`
}

// Trait is the one-off bonus picked at character creation.
type Trait struct {
	Name               string `json:"name" yaml:"name"`
	Description        string `json:"description" yaml:"description"`
	ProgrammingBonus   int    `json:"programming_bonus" yaml:"programming_bonus"`
	AlgorithmBonus     int    `json:"algorithm_bonus" yaml:"algorithm_bonus"`
	DebuggingBonus     int    `json:"debugging_bonus" yaml:"debugging_bonus"`
	CommunicationBonus int    `json:"communication_bonus" yaml:"communication_bonus"`
	StressDelta        int    `json:"stress_delta" yaml:"stress_delta"`
	HealthDelta        int    `json:"health_delta" yaml:"health_delta"`
	MotivationDelta    int    `json:"motivation_delta" yaml:"motivation_delta"`
}

// NewBasePlayer returns a fresh graduate. Blank names get a placeholder.
func NewBasePlayer(name string) Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultPlayerName
	}
	return Player{
		Name:          name,
		Age:           startingAge,
		Programming:   50,
		Algorithm:     45,
		Debugging:     40,
		Communication: 35,
		Stress:        20,
		Health:        80,
		Motivation:    70,
		Salary:        8000,
	}
}

// Clamp stat into 0-100.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clampRange restricts v to [lo, hi].
func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

// ApplyTrait adds the trait bonuses. Skills are left unclamped here;
// the first option applied brings them back into range.
func (p *Player) ApplyTrait(t Trait) {
	p.Programming += t.ProgrammingBonus
	p.Algorithm += t.AlgorithmBonus
	p.Debugging += t.DebuggingBonus
	p.Communication += t.CommunicationBonus
	p.Stress = clampMin(p.Stress+t.StressDelta, 0)
	p.Health = Clamp(p.Health + t.HealthDelta)
	p.Motivation = Clamp(p.Motivation + t.MotivationDelta)
}

// SkillTotal is the sum of the four skills.
func (p Player) SkillTotal() int {
	return p.Programming + p.Algorithm + p.Debugging + p.Communication
}

// Skill returns the value for a named skill.
func (p Player) Skill(s Skill) int {
	switch s {
	case SkillProgramming:
		return p.Programming
	case SkillAlgorithm:
		return p.Algorithm
	case SkillDebugging:
		return p.Debugging
	case SkillCommunication:
		return p.Communication
	default:
		return 0
	}
}

// HighestSkill returns the strongest skill; ties go to the earlier entry in AllSkills.
func (p Player) HighestSkill() (Skill, int) {
	best, bestVal := AllSkills[0], p.Skill(AllSkills[0])
	for _, s := range AllSkills[1:] {
		if v := p.Skill(s); v > bestVal {
			best, bestVal = s, v
		}
	}
	return best, bestVal
}

// Progress tracks run-wide counters that options feed but the player never sees as stats.
type Progress struct {
	Leadership    int  `json:"leadership"`
	Innovation    int  `json:"innovation"`
	RareUnlocked  bool `json:"rare_unlocked"`
	CosmicInsight bool `json:"cosmic_insight"`
}

// ApplyOption applies an option's deltas. Unlock flags only ever latch on.
func ApplyOption(p *Player, o EventOption, prog *Progress) {
	p.Programming = Clamp(p.Programming + o.ProgrammingDelta)
	p.Algorithm = Clamp(p.Algorithm + o.AlgorithmDelta)
	p.Debugging = Clamp(p.Debugging + o.DebuggingDelta)
	p.Communication = Clamp(p.Communication + o.CommunicationDelta)
	p.Salary = clampMin(p.Salary+o.SalaryDelta, 0)
	p.Stress = Clamp(p.Stress + o.StressDelta)
	p.Health = Clamp(p.Health + o.HealthDelta)
	p.Motivation = Clamp(p.Motivation + o.MotivationDelta)
	if prog == nil {
		return
	}
	prog.Leadership += o.LeadershipDelta
	prog.Innovation += o.InnovationDelta
	if o.UnlocksRareEvent {
		prog.RareUnlocked = true
	}
	if o.UnlocksCosmicInsight {
		prog.CosmicInsight = true
	}
}

// Warning thresholds.
const (
	stressExtreme  = 80
	stressHigh     = 60
	healthCritical = 35
	motivationLow  = 30
)

const (
	WarnStressExtreme = "Stress is extreme; a burnout event could hit at any moment"
	WarnStressHigh    = "Stress is high; think twice before taking on more risk"
	WarnHealth        = "Health is critical; rest or see a doctor first"
	WarnMotivation    = "Motivation is low; long-term goals may stall"
)

// StatusWarnings lists the alerts shown next to the stats panel.
func StatusWarnings(p Player) []string {
	var out []string
	switch {
	case p.Stress >= stressExtreme:
		out = append(out, WarnStressExtreme)
	case p.Stress >= stressHigh:
		out = append(out, WarnStressHigh)
	}
	if p.Health <= healthCritical {
		out = append(out, WarnHealth)
	}
	if p.Motivation <= motivationLow {
		out = append(out, WarnMotivation)
	}
	return out
}
