package store

import (
	"context"
	errs "errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DaanHessen/devlife/internal/engine"
)

var (
	ErrNoChange    = errs.New("no change")
	ErrRunNotFound = errs.New("run not found")
	ErrRunFinished = errs.New("run already finished")
)

// NewRun describes a career at creation time.
type NewRun struct {
	PlayerName    string
	Trait         string
	SeedText      string
	CatalogSource string
}

// Choice is one archived month.
type Choice struct {
	Month      int
	EventID    string
	EventTitle string
	OptionText string
	Impact     string
	CreatedAt  time.Time
}

// ChoiceFromResult converts an engine result for storage.
func ChoiceFromResult(r engine.ChoiceResult) Choice {
	return Choice{Month: r.Month, EventID: r.EventID, EventTitle: r.EventTitle, OptionText: r.OptionText, Impact: r.Impact}
}

// FinishedRun is an archived career, newest first when listed.
type FinishedRun struct {
	ID            uuid.UUID
	PlayerName    string
	Trait         string
	SeedText      string
	CatalogSource string
	StartedAt     time.Time
	FinishedAt    time.Time
	Months        int
	Player        engine.Player
	Summary       engine.RunSummary
	Ending        engine.Ending
	Choices       []Choice
}

// Archive persists careers so finished runs can be browsed later.
type Archive interface {
	CreateRun(ctx context.Context, run NewRun) (uuid.UUID, error)
	RecordChoice(ctx context.Context, runID uuid.UUID, c Choice) error
	FinishRun(ctx context.Context, runID uuid.UUID, months int, p engine.Player, s engine.RunSummary, e engine.Ending) error
	ListFinished(ctx context.Context, limit int) ([]FinishedRun, error)
	Close() error
}

// MemoryArchive keeps runs in process memory.
type MemoryArchive struct {
	mu   sync.Mutex
	runs map[uuid.UUID]*memoryRun
	now  func() time.Time
}

type memoryRun struct {
	run      FinishedRun
	finished bool
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{runs: map[uuid.UUID]*memoryRun{}, now: time.Now}
}

func (m *MemoryArchive) CreateRun(_ context.Context, r NewRun) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.runs[id] = &memoryRun{run: FinishedRun{
		ID:            id,
		PlayerName:    r.PlayerName,
		Trait:         r.Trait,
		SeedText:      r.SeedText,
		CatalogSource: r.CatalogSource,
		StartedAt:     m.now(),
	}}
	return id, nil
}

func (m *MemoryArchive) RecordChoice(_ context.Context, runID uuid.UUID, c Choice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mr, ok := m.runs[runID]
	if !ok {
		return errors.Wrapf(ErrRunNotFound, "record choice for %s", runID)
	}
	if mr.finished {
		return errors.Wrapf(ErrRunFinished, "record choice for %s", runID)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = m.now()
	}
	mr.run.Choices = append(mr.run.Choices, c)
	return nil
}

func (m *MemoryArchive) FinishRun(_ context.Context, runID uuid.UUID, months int, p engine.Player, s engine.RunSummary, e engine.Ending) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mr, ok := m.runs[runID]
	if !ok {
		return errors.Wrapf(ErrRunNotFound, "finish run %s", runID)
	}
	if mr.finished {
		return errors.Wrapf(ErrRunFinished, "finish run %s", runID)
	}
	mr.finished = true
	mr.run.FinishedAt = m.now()
	mr.run.Months = months
	mr.run.Player = p
	mr.run.Summary = s
	mr.run.Ending = e
	return nil
}

func (m *MemoryArchive) ListFinished(_ context.Context, limit int) ([]FinishedRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []FinishedRun
	for _, mr := range m.runs {
		if !mr.finished {
			continue
		}
		r := mr.run
		r.Choices = append([]Choice(nil), mr.run.Choices...)
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FinishedAt.Equal(out[j].FinishedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryArchive) Close() error { return nil }
