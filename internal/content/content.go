package content

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/DaanHessen/devlife/internal/engine"
)

//go:embed events.yaml
var defaultCatalog []byte

// Source records where a catalog came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceEmbedded Source = "embedded"
	SourceLegacy   Source = "legacy"
)

// Catalog is a loaded set of event definitions.
type Catalog struct {
	Events      []engine.GameEvent
	Source      Source
	Path        string
	Fingerprint string
}

// Load reads the event file at path, or the embedded catalog when path is
// empty. Any failure falls back to engine.LegacyEvents; Load never fails.
func Load(path string, log zerolog.Logger) Catalog {
	if strings.TrimSpace(path) == "" {
		events, err := Parse(defaultCatalog, FormatYAML)
		if err != nil || len(events) == 0 {
			log.Warn().Err(err).Msg("embedded catalog unusable, using legacy events")
			return legacyCatalog()
		}
		return Catalog{Events: events, Source: SourceEmbedded, Fingerprint: fingerprint(defaultCatalog)}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("event file unreadable, using legacy events")
		return legacyCatalog()
	}
	events, err := Parse(data, FormatFor(path))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("event file invalid, using legacy events")
		return legacyCatalog()
	}
	if len(events) == 0 {
		log.Warn().Str("path", path).Msg("event file is empty, using legacy events")
		return legacyCatalog()
	}
	log.Info().Str("path", path).Int("events", len(events)).Msg("event catalog loaded")
	return Catalog{Events: events, Source: SourceFile, Path: path, Fingerprint: fingerprint(data)}
}

func legacyCatalog() Catalog {
	return Catalog{Events: engine.LegacyEvents(), Source: SourceLegacy}
}

func fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Format selects the decoder for an event file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks YAML for .yaml/.yml and JSON for everything else.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a list of events.
func Parse(data []byte, format Format) ([]engine.GameEvent, error) {
	var events []engine.GameEvent
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("decode yaml events: %w", err)
		}
	default:
		clean, err := canonicalJSON(data)
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(clean))
		if err := dec.Decode(&events); err != nil {
			return nil, fmt.Errorf("decode json events: %w", err)
		}
	}
	return events, nil
}

// canonicalJSON strips comments and trailing commas with hujson, then rewrites keys to
// the snake_case names the engine types use. Keys are matched ignoring case
// and underscores, so "ProgrammingSkillDelta" and "programming_delta" both work.
func canonicalJSON(data []byte) ([]byte, error) {
	// Standardize rewrites its input in place; the caller still fingerprints data.
	std, err := hujson.Standardize(append([]byte(nil), data...))
	if err != nil {
		return nil, fmt.Errorf("decode json events: %w", err)
	}
	var raw any
	if err := json.Unmarshal(std, &raw); err != nil {
		return nil, fmt.Errorf("decode json events: %w", err)
	}
	out, err := json.Marshal(renameKeys(raw))
	if err != nil {
		return nil, fmt.Errorf("re-encode json events: %w", err)
	}
	return out, nil
}

var keyAliases = buildKeyAliases()

func buildKeyAliases() map[string]string {
	canonical := []string{
		"id", "title", "description", "category", "rarity", "passive", "allow_repeat", "weight", "tags",
		"requirement", "passive_effect", "options", "text", "effect_description",
		"programming_delta", "algorithm_delta", "debugging_delta", "communication_delta",
		"stress_delta", "health_delta", "motivation_delta", "salary_delta", "leadership_delta", "innovation_delta",
		"unlocks_rare_event", "unlocks_cosmic_insight",
		"min_month", "max_month", "min_stress", "max_stress", "min_health", "max_health", "min_skill_total",
	}
	m := make(map[string]string, len(canonical)+8)
	for _, k := range canonical {
		m[foldKey(k)] = k
	}
	// field names used by older desktop builds of the catalog
	m["ispassive"] = "passive"
	m["programmingskilldelta"] = "programming_delta"
	m["algorithmskilldelta"] = "algorithm_delta"
	m["debuggingskilldelta"] = "debugging_delta"
	m["communicationskilldelta"] = "communication_delta"
	return m
}

func foldKey(k string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(k))
}

func renameKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if canon, ok := keyAliases[foldKey(k)]; ok {
				k = canon
			}
			out[k] = renameKeys(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = renameKeys(t[i])
		}
		return t
	default:
		return v
	}
}
