package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DaanHessen/devlife/internal/content"
	"github.com/DaanHessen/devlife/internal/store"
	"github.com/DaanHessen/devlife/internal/ui"
	"github.com/DaanHessen/devlife/internal/util"
)

var (
	version      = "0.1.0"
	seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := util.Config{Version: version}

	cmd := &cobra.Command{
		Use:   "devlife",
		Short: "A programmer life simulator for the terminal",
		Long: `Live 36 months of a programmer's career, one event at a time.

  devlife                       Start with a random seed
  devlife --seed my-run         Replay a career from a seed
  devlife --events events.json  Play a custom event catalog
  devlife migrate up            Create the career archive schema`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&cfg.SeedText, "seed", "", "run seed string (random if omitted)")
	f.StringVar(&cfg.EventsPath, "events", util.Env("DEVLIFE_EVENTS", ""), "event catalog file (.json, .yaml)")
	f.StringVar(&cfg.DSN, "dsn", util.Env("DATABASE_URL", ""), "archive database DSN (in-memory archive if empty)")
	f.StringVar(&cfg.Dialect, "dialect", util.Env("DB_DIALECT", ""), "database dialect (postgres, sqlite); guessed from the DSN if empty")
	f.StringVar(&cfg.TextDensity, "density", util.Env("DEVLIFE_DENSITY", "standard"), "text density (concise, standard, rich)")
	f.StringVar(&cfg.LogFile, "log-file", util.Env("DEVLIFE_LOG_FILE", "devlife.log"), "log file; empty disables logging")
	f.StringVar(&cfg.LogLevel, "log-level", util.Env("LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	f.StringVar(&cfg.Theme, "theme", util.Env("DEVLIFE_THEME", "catppuccin"), "color theme (catppuccin, dracula, gruvbox, solarized_dark)")

	_ = cmd.RegisterFlagCompletionFunc("density", cobra.FixedCompletions([]string{"concise", "standard", "rich"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("dialect", cobra.FixedCompletions([]string{util.DialectPostgres, util.DialectSQLite}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("theme", cobra.FixedCompletions([]string{"catppuccin", "dracula", "gruvbox", "solarized_dark"}, cobra.ShellCompDirectiveNoFileComp))

	cmd.AddCommand(newMigrateCommand(&cfg), newEventsCommand(), newVersionCommand())
	return cmd
}

func runGame(ctx context.Context, cfg util.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, closer, err := util.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer closer.Close()

	cfg.SeedText = strings.TrimSpace(cfg.SeedText)
	if cfg.SeedText == "" {
		generated, err := generateSeed()
		if err != nil {
			return fmt.Errorf("generate seed: %w", err)
		}
		cfg.SeedText = generated
		fmt.Printf("New run seed: %s\n", cfg.SeedText)
	}

	catalog := content.Load(cfg.EventsPath, log)
	if issues := content.Validate(catalog.Events); len(issues) > 0 {
		for _, is := range issues {
			log.Warn().Str("issue", is.String()).Msg("catalog issue")
		}
	}

	archive, err := openArchive(ctx, &cfg, log)
	if err != nil {
		return err
	}
	defer archive.Close()

	log.Info().Str("seed", cfg.SeedText).Str("catalog", string(catalog.Source)).Int("events", len(catalog.Events)).Msg("starting devlife")
	return ui.Run(ctx, archive, catalog, cfg, log)
}

// openArchive migrates and opens the configured database, or returns an
// in-memory archive when no DSN is set.
func openArchive(ctx context.Context, cfg *util.Config, log zerolog.Logger) (store.Archive, error) {
	if cfg.DSN == "" {
		log.Info().Msg("no DSN configured, careers are kept in memory")
		return store.NewMemoryArchive(), nil
	}
	if cfg.Dialect == "" {
		cfg.Dialect = util.DetectDialect(cfg.DSN)
	}
	mig, err := store.NewMigrator(*cfg)
	if err != nil {
		return nil, fmt.Errorf("migrations init failed: %w", err)
	}
	migCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := mig.Up(migCtx); err != nil && !errors.Is(err, store.ErrNoChange) {
		return nil, fmt.Errorf("migrations failed: %w", err)
	}
	db, err := store.Open(ctx, *cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Info().Str("dialect", cfg.Dialect).Msg("career archive opened")
	return store.NewSQLArchive(db), nil
}

func newMigrateCommand(cfg *util.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the career archive schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DSN == "" {
				return errors.New("migrate needs --dsn or DATABASE_URL")
			}
			if cfg.Dialect == "" {
				cfg.Dialect = util.DetectDialect(cfg.DSN)
			}
			migrator, err := store.NewMigrator(*cfg)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			switch args[0] {
			case "up":
				if err := migrator.Up(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			case "down":
				if err := migrator.Down(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations rolled back")
			default:
				return fmt.Errorf("unknown migrate action %q; use up|down", args[0])
			}
			return nil
		},
	}
}

func newEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect event catalogs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check an event catalog for problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			events, err := content.Parse(data, content.FormatFor(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			issues := content.Validate(events)
			for _, is := range issues {
				fmt.Fprintln(out, is.String())
			}
			if len(events) == 0 {
				return fmt.Errorf("%s contains no events", args[0])
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d issue(s) in %d events", len(issues), len(events))
			}
			fmt.Fprintf(out, "%s: %d events OK\n", args[0], len(events))
			return nil
		},
	})
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "devlife", version)
		},
	}
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
