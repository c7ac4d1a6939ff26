package content

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/devlife/internal/engine"
)

// MaxOptions is the most choices the UI can bind to number keys.
const MaxOptions = 6

// Issue is a single problem found in a catalog.
type Issue struct {
	Index   int
	EventID string
	Message string
}

func (i Issue) String() string {
	id := i.EventID
	if id == "" {
		id = "(no id)"
	}
	return fmt.Sprintf("event #%d %s: %s", i.Index+1, id, i.Message)
}

// Validate reports catalog problems. An empty result means the catalog is clean.
func Validate(events []engine.GameEvent) []Issue {
	var issues []Issue
	seen := map[string]int{}
	add := func(i int, ev engine.GameEvent, format string, args ...any) {
		issues = append(issues, Issue{Index: i, EventID: ev.ID, Message: fmt.Sprintf(format, args...)})
	}
	for i, ev := range events {
		if len(ev.Options) == 0 && !(ev.Passive && ev.PassiveEffect != nil) {
			add(i, ev, "has no options")
		}
		if len(ev.Options) > MaxOptions {
			add(i, ev, "has %d options, at most %d are supported", len(ev.Options), MaxOptions)
		}
		if !ev.Rarity.Validate() {
			add(i, ev, "unknown rarity %q, expected one of %s", ev.Rarity, joinEnum(engine.ListRarities()))
		}
		if ev.Weight > engine.MaxEventWeight {
			add(i, ev, "weight %d exceeds the maximum of %d", ev.Weight, engine.MaxEventWeight)
		}
		for _, tag := range ev.Tags {
			if !tag.Validate() {
				add(i, ev, "unknown tag %q, expected one of %s", tag, joinEnum(engine.ListTags()))
			}
		}
		if ev.ID == "" {
			continue
		}
		if first, dup := seen[ev.ID]; dup {
			add(i, ev, "duplicate id, first defined at event #%d", first+1)
			continue
		}
		seen[ev.ID] = i
	}
	return issues
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
