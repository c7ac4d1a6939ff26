package engine

import "strings"

// String backed enums so catalog files stay human readable.

type Rarity string
type Tag string
type Skill string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
	RarityMythic   Rarity = "mythic"
)

var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityMythic}

const (
	TagBurnout    Tag = "burnout"
	TagHealth     Tag = "health"
	TagInnovation Tag = "innovation"
	TagCosmic     Tag = "cosmic"
	TagStarter    Tag = "starter"
	TagQuirky     Tag = "quirky"
)

var AllTags = []Tag{TagBurnout, TagHealth, TagInnovation, TagCosmic, TagStarter, TagQuirky}

// Skill order matters: ties for the highest skill resolve in this order.
const (
	SkillProgramming   Skill = "programming"
	SkillAlgorithm     Skill = "algorithm"
	SkillDebugging     Skill = "debugging"
	SkillCommunication Skill = "communication"
)

var AllSkills = []Skill{SkillProgramming, SkillAlgorithm, SkillDebugging, SkillCommunication}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims; catalog files are not consistent about case.
func (r Rarity) Normalize() Rarity { return Rarity(strings.ToLower(strings.TrimSpace(string(r)))) }

// Validate accepts an empty rarity, which is treated as common.
func (r Rarity) Validate() bool {
	n := r.Normalize()
	return n == "" || contains(AllRarities, n)
}

// Validate is exact: catalog tags must be lowercase to earn weight bonuses.
func (t Tag) Validate() bool { return contains(AllTags, t) }

// Label is the display name used in ending text and impact summaries.
func (s Skill) Label() string {
	switch s {
	case SkillProgramming:
		return "Programming"
	case SkillAlgorithm:
		return "Algorithms"
	case SkillDebugging:
		return "Debugging"
	case SkillCommunication:
		return "Communication"
	default:
		return string(s)
	}
}

func ListRarities() []Rarity { return append([]Rarity{}, AllRarities...) }
func ListTags() []Tag { return append([]Tag{}, AllTags...) }
