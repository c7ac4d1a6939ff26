package engine

// WeightContext is the player and run state that biases event weights.
type WeightContext struct {
	Player        Player
	RareUnlocked  bool
	CosmicInsight bool
	Seen          map[string]bool
	Month         int
}

func rarityAdjustment(r Rarity) int {
	switch r.Normalize() {
	case RarityUncommon:
		return 1
	case RarityRare:
		return -2
	case RarityEpic:
		return -3
	case RarityMythic:
		return -4
	default:
		return 0
	}
}

// MaxEventWeight bounds the base weight so summing a pool cannot overflow.
const MaxEventWeight = 1000

// EffectiveWeight is the draw weight of ev under ctx. Always >= 1.
func EffectiveWeight(ev *GameEvent, ctx WeightContext) int {
	w := clampRange(ev.Weight, 1, MaxEventWeight)
	w += rarityAdjustment(ev.Rarity)
	p := ctx.Player
	if p.Stress >= 70 && ev.HasTag(TagBurnout) {
		w += 6
	}
	if p.Health <= 45 && ev.HasTag(TagHealth) {
		w += 5
	}
	if p.Motivation >= 50 && ev.HasTag(TagInnovation) {
		w += 4
	}
	if ctx.RareUnlocked && ev.HasTag(TagInnovation) {
		w += 6
	}
	if ctx.CosmicInsight && ev.HasTag(TagCosmic) {
		w += 8
	}
	if ev.AllowRepeat && ev.ID != "" && ctx.Seen[ev.ID] {
		w += 2
	}
	if ev.HasTag(TagStarter) && ctx.Month > 6 {
		w -= 6
	}
	if ev.HasTag(TagQuirky) {
		w++
	}
	if w < 1 {
		return 1
	}
	return w
}

// SelectWeighted draws one event from pool. An empty pool returns nil and a
// pool of one returns its only event without consuming a draw.
func SelectWeighted(pool []*GameEvent, ctx WeightContext, rng Random) *GameEvent {
	switch len(pool) {
	case 0:
		return nil
	case 1:
		return pool[0]
	}
	weights := make([]int, len(pool))
	total := 0
	for i, ev := range pool {
		weights[i] = EffectiveWeight(ev, ctx)
		total += weights[i]
	}
	if total < 1 {
		total = 1
	}
	roll := rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}
