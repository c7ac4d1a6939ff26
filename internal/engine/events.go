package engine

import (
	"fmt"
	"strings"
)

// GameEvent is one monthly career event, or an ambient one when Passive is set.
type GameEvent struct {
	ID            string            `json:"id" yaml:"id"`
	Title         string            `json:"title" yaml:"title"`
	Description   string            `json:"description" yaml:"description"`
	Category      string            `json:"category" yaml:"category"`
	Rarity        Rarity            `json:"rarity" yaml:"rarity"`
	Passive       bool              `json:"passive" yaml:"passive"`
	AllowRepeat   bool              `json:"allow_repeat" yaml:"allow_repeat"`
	Weight        int               `json:"weight" yaml:"weight"`
	Tags          []Tag             `json:"tags" yaml:"tags"`
	Requirement   *EventRequirement `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	PassiveEffect *EventOption      `json:"passive_effect,omitempty" yaml:"passive_effect,omitempty"`
	Options       []EventOption     `json:"options" yaml:"options"`
}

// HasTag reports tag membership.
func (e GameEvent) HasTag(t Tag) bool {
	for _, x := range e.Tags {
		if x == t {
			return true
		}
	}
	return false
}

// EventOption is a choice within an event, and also the shape of a passive effect.
type EventOption struct {
	Text                 string `json:"text" yaml:"text"`
	EffectDescription    string `json:"effect_description" yaml:"effect_description"`
	ProgrammingDelta     int    `json:"programming_delta" yaml:"programming_delta"`
	AlgorithmDelta       int    `json:"algorithm_delta" yaml:"algorithm_delta"`
	DebuggingDelta       int    `json:"debugging_delta" yaml:"debugging_delta"`
	CommunicationDelta   int    `json:"communication_delta" yaml:"communication_delta"`
	StressDelta          int    `json:"stress_delta" yaml:"stress_delta"`
	HealthDelta          int    `json:"health_delta" yaml:"health_delta"`
	MotivationDelta      int    `json:"motivation_delta" yaml:"motivation_delta"`
	SalaryDelta          int    `json:"salary_delta" yaml:"salary_delta"`
	LeadershipDelta      int    `json:"leadership_delta" yaml:"leadership_delta"`
	InnovationDelta      int    `json:"innovation_delta" yaml:"innovation_delta"`
	UnlocksRareEvent     bool   `json:"unlocks_rare_event" yaml:"unlocks_rare_event"`
	UnlocksCosmicInsight bool   `json:"unlocks_cosmic_insight" yaml:"unlocks_cosmic_insight"`
}

// MinorImpact is the summary for an option with no deltas.
const MinorImpact = "Minor impact"

// ImpactSummary renders the non-zero deltas, e.g. "Programming +5 / Stress -3".
func (o EventOption) ImpactSummary() string {
	fields := []struct {
		label string
		delta int
	}{
		{"Programming", o.ProgrammingDelta},
		{"Algorithms", o.AlgorithmDelta},
		{"Debugging", o.DebuggingDelta},
		{"Communication", o.CommunicationDelta},
		{"Stress", o.StressDelta},
		{"Health", o.HealthDelta},
		{"Motivation", o.MotivationDelta},
		{"Salary", o.SalaryDelta},
		{"Leadership", o.LeadershipDelta},
		{"Innovation", o.InnovationDelta},
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.delta == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %+d", f.label, f.delta))
	}
	if len(parts) == 0 {
		return MinorImpact
	}
	return strings.Join(parts, " / ")
}

// EventRequirement gates an event on month and player state. Nil bounds are open.
type EventRequirement struct {
	MinMonth      *int `json:"min_month,omitempty" yaml:"min_month,omitempty"`
	MaxMonth      *int `json:"max_month,omitempty" yaml:"max_month,omitempty"`
	MinStress     *int `json:"min_stress,omitempty" yaml:"min_stress,omitempty"`
	MaxStress     *int `json:"max_stress,omitempty" yaml:"max_stress,omitempty"`
	MinHealth     *int `json:"min_health,omitempty" yaml:"min_health,omitempty"`
	MaxHealth     *int `json:"max_health,omitempty" yaml:"max_health,omitempty"`
	MinSkillTotal *int `json:"min_skill_total,omitempty" yaml:"min_skill_total,omitempty"`
}

// Satisfied reports whether every set bound holds. A nil requirement always passes.
func (r *EventRequirement) Satisfied(p Player, month int) bool {
	if r == nil {
		return true
	}
	below := func(bound *int, v int) bool { return bound != nil && v < *bound }
	above := func(bound *int, v int) bool { return bound != nil && v > *bound }
	switch {
	case below(r.MinMonth, month), above(r.MaxMonth, month):
		return false
	case below(r.MinStress, p.Stress), above(r.MaxStress, p.Stress):
		return false
	case below(r.MinHealth, p.Health), above(r.MaxHealth, p.Health):
		return false
	case below(r.MinSkillTotal, p.SkillTotal()):
		return false
	}
	return true
}

// IntPtr is a helper for building requirements in code.
func IntPtr(v int) *int { return &v }
