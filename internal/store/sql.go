package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaanHessen/devlife/internal/engine"
	"github.com/DaanHessen/devlife/internal/util"
)

// DB wraps gorm.DB for the archive and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// Open connects to the database named by cfg.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	var dialector gorm.Dialector
	switch cfg.Dialect {
	case util.DialectPostgres:
		dialector = postgres.Open(cfg.DSN)
	case util.DialectSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", cfg.Dialect)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, wrap(err, "open database")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, wrap(err, "database handle")
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	if cfg.Dialect == util.DialectSQLite {
		sdb.SetMaxOpenConns(1)
	} else {
		sdb.SetMaxOpenConns(10)
		sdb.SetMaxIdleConns(5)
	}
	if err := sdb.PingContext(ctx); err != nil {
		return nil, wrap(err, "ping database")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

type runRow struct {
	ID                string `gorm:"primaryKey"`
	PlayerName        string
	Trait             string
	SeedText          string
	CatalogSource     string
	StartedAt         time.Time
	FinishedAt        *time.Time
	Months            int
	EventsCompleted   int
	EndingKey         string
	EndingTitle       string
	EndingDescription string
	FinalPlayer       *string
	AvgStress         int
	AvgHealth         int
	AvgMotivation     int
	Leadership        int
	Innovation        int
	CosmicInsight     bool
	Choices           []choiceRow `gorm:"foreignKey:RunID"`
}

func (runRow) TableName() string { return "runs" }

type choiceRow struct {
	ID         string `gorm:"primaryKey"`
	RunID      string
	Month      int
	EventID    string
	EventTitle string
	OptionText string
	Impact     string
	CreatedAt  time.Time
}

func (choiceRow) TableName() string { return "choices" }

// SQLArchive stores careers through gorm. Schema comes from the migrations.
type SQLArchive struct {
	db *DB
}

func NewSQLArchive(db *DB) *SQLArchive { return &SQLArchive{db: db} }

func (a *SQLArchive) CreateRun(ctx context.Context, r NewRun) (uuid.UUID, error) {
	id := uuid.New()
	row := runRow{
		ID:            id.String(),
		PlayerName:    r.PlayerName,
		Trait:         r.Trait,
		SeedText:      r.SeedText,
		CatalogSource: r.CatalogSource,
		StartedAt:     time.Now().UTC(),
	}
	if err := a.db.gorm.WithContext(ctx).Omit("Choices").Create(&row).Error; err != nil {
		return uuid.Nil, wrap(err, "create run")
	}
	return id, nil
}

func (a *SQLArchive) RecordChoice(ctx context.Context, runID uuid.UUID, c Choice) error {
	return a.db.WithTx(ctx, func(tx *gorm.DB) error {
		run, err := loadRun(tx, runID)
		if err != nil {
			return err
		}
		if run.FinishedAt != nil {
			return errors.Wrapf(ErrRunFinished, "record choice for %s", runID)
		}
		created := c.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		row := choiceRow{
			ID:         uuid.NewString(),
			RunID:      runID.String(),
			Month:      c.Month,
			EventID:    c.EventID,
			EventTitle: c.EventTitle,
			OptionText: c.OptionText,
			Impact:     c.Impact,
			CreatedAt:  created,
		}
		return wrap(tx.Create(&row).Error, "insert choice")
	})
}

func (a *SQLArchive) FinishRun(ctx context.Context, runID uuid.UUID, months int, p engine.Player, s engine.RunSummary, e engine.Ending) error {
	playerJSON, err := json.Marshal(p)
	if err != nil {
		return wrap(err, "encode final player")
	}
	return a.db.WithTx(ctx, func(tx *gorm.DB) error {
		run, err := loadRun(tx, runID)
		if err != nil {
			return err
		}
		if run.FinishedAt != nil {
			return errors.Wrapf(ErrRunFinished, "finish run %s", runID)
		}
		now := time.Now().UTC()
		final := string(playerJSON)
		updates := map[string]any{
			"finished_at":        &now,
			"months":             months,
			"events_completed":   s.EventsCompleted,
			"ending_key":         e.Key,
			"ending_title":       e.Title,
			"ending_description": e.Description,
			"final_player":       &final,
			"avg_stress":         s.AvgStress,
			"avg_health":         s.AvgHealth,
			"avg_motivation":     s.AvgMotivation,
			"leadership":         s.Leadership,
			"innovation":         s.Innovation,
			"cosmic_insight":     s.CosmicInsight,
		}
		return wrap(tx.Model(&runRow{}).Where("id = ?", runID.String()).Updates(updates).Error, "finish run")
	})
}

func (a *SQLArchive) ListFinished(ctx context.Context, limit int) ([]FinishedRun, error) {
	var rows []runRow
	q := a.db.gorm.WithContext(ctx).
		Preload("Choices", func(db *gorm.DB) *gorm.DB { return db.Order("month ASC") }).
		Where("finished_at IS NOT NULL").
		Order("finished_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, wrap(err, "list finished runs")
	}
	out := make([]FinishedRun, 0, len(rows))
	for _, r := range rows {
		fr, err := r.finished()
		if err != nil {
			return nil, err
		}
		out = append(out, fr)
	}
	return out, nil
}

func (a *SQLArchive) Close() error { return a.db.Close() }

func loadRun(tx *gorm.DB, runID uuid.UUID) (runRow, error) {
	var run runRow
	res := tx.Omit("Choices").Where("id = ?", runID.String()).Limit(1).Find(&run)
	if res.Error != nil {
		return runRow{}, wrap(res.Error, "load run")
	}
	if res.RowsAffected == 0 {
		return runRow{}, errors.Wrapf(ErrRunNotFound, "run %s", runID)
	}
	return run, nil
}

func (r runRow) finished() (FinishedRun, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return FinishedRun{}, wrap(err, "parse run id")
	}
	fr := FinishedRun{
		ID:            id,
		PlayerName:    r.PlayerName,
		Trait:         r.Trait,
		SeedText:      r.SeedText,
		CatalogSource: r.CatalogSource,
		StartedAt:     r.StartedAt,
		Months:        r.Months,
		Summary: engine.RunSummary{
			EventsCompleted: r.EventsCompleted,
			AvgStress:       r.AvgStress,
			AvgHealth:       r.AvgHealth,
			AvgMotivation:   r.AvgMotivation,
			Leadership:      r.Leadership,
			Innovation:      r.Innovation,
			CosmicInsight:   r.CosmicInsight,
		},
		Ending: engine.Ending{Key: r.EndingKey, Title: r.EndingTitle, Description: r.EndingDescription},
	}
	if r.FinishedAt != nil {
		fr.FinishedAt = *r.FinishedAt
	}
	if r.FinalPlayer != nil && *r.FinalPlayer != "" {
		if err := json.Unmarshal([]byte(*r.FinalPlayer), &fr.Player); err != nil {
			return FinishedRun{}, wrap(err, "decode final player")
		}
	}
	for _, c := range r.Choices {
		fr.Choices = append(fr.Choices, Choice{
			Month:      c.Month,
			EventID:    c.EventID,
			EventTitle: c.EventTitle,
			OptionText: c.OptionText,
			Impact:     c.Impact,
			CreatedAt:  c.CreatedAt,
		})
	}
	return fr, nil
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
