package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DaanHessen/devlife/internal/content"
	"github.com/DaanHessen/devlife/internal/engine"
	"github.com/DaanHessen/devlife/internal/store"
	"github.com/DaanHessen/devlife/internal/text"
	"github.com/DaanHessen/devlife/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewCreate   = "create"
	viewGame     = "game"
	viewEnding   = "ending"
	viewArchive  = "archive"
	viewHelp     = "help"
)

const (
	maxNameLength = 24
	archiveLimit  = 40
)

type model struct {
	ctx      context.Context
	log      zerolog.Logger
	archive  store.Archive
	catalog  content.Catalog
	narrator *text.Narrator
	md       *mdCache
	seed     engine.RunSeed
	version  string

	view     string
	prevView string
	theme    string
	styles   styles
	width    int
	height   int
	status   string

	// character creation
	nameInput  string
	traits     []engine.Trait
	traitIndex int

	// current career
	game       *engine.Game
	runID      uuid.UUID
	careers    int
	lastResult *engine.ChoiceResult

	// archive browser
	archiveRuns   []store.FinishedRun
	archiveIndex  int
	archiveDetail bool
}

func initialModel(ctx context.Context, archive store.Archive, catalog content.Catalog, cfg util.Config, log zerolog.Logger) (model, error) {
	seed, err := engine.NewRunSeed(cfg.SeedText)
	if err != nil {
		return model{}, err
	}
	m := model{
		ctx:      ctx,
		log:      log,
		archive:  archive,
		catalog:  catalog,
		narrator: text.NewNarrator(cfg.TextDensity),
		md:       &mdCache{},
		seed:     seed.WithCatalog(catalog.Fingerprint),
		version:  cfg.Version,
		view:     viewMainMenu,
		traits:   engine.DefaultTraits(),
	}
	m.setTheme(cfg.Theme)
	return m, nil
}

func (m *model) setTheme(name string) {
	if _, ok := palettes[name]; !ok {
		name = defaultTheme
	}
	m.theme = name
	m.styles = newStyles(paletteFor(name))
}

// careerStream gives the first career of a session the plain "career" stream so
// a seed replays exactly; later careers in the same session get their own.
func (m *model) careerStream() *engine.Stream {
	label := "career"
	if m.careers > 0 {
		label = fmt.Sprintf("career#%d", m.careers)
	}
	return m.seed.Stream(label)
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewCreate {
			return m.updateCreate(k)
		}
		switch k {
		case "q":
			return m, tea.Quit
		case "t":
			m.setTheme(nextThemeName(m.theme, 1))
			return m, nil
		case "?":
			if m.view == viewHelp {
				m.back()
			} else {
				m.open(viewHelp)
			}
			return m, nil
		case "a":
			if m.view != viewArchive {
				m.open(viewArchive)
				m.refreshArchive()
			}
			return m, nil
		}
		switch m.view {
		case viewMainMenu:
			return m.updateMenu(k)
		case viewGame:
			return m.updateGame(k)
		case viewEnding:
			if k == "enter" || k == "esc" {
				m.view = viewMainMenu
			}
		case viewArchive:
			m.updateArchive(k)
		case viewHelp:
			if k == "esc" {
				m.back()
			}
		}
	}
	return m, nil
}

func (m *model) open(view string) {
	if m.view != viewHelp && m.view != viewArchive {
		m.prevView = m.view
	}
	m.view = view
}

func (m *model) back() {
	if m.prevView == "" {
		m.prevView = viewMainMenu
	}
	m.view = m.prevView
}

func (m model) updateMenu(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "1", "n":
		m.nameInput = ""
		m.traitIndex = 0
		m.status = ""
		m.view = viewCreate
	case "2", "c":
		if m.inProgress() {
			m.view = viewGame
		}
	case "3":
		m.open(viewArchive)
		m.refreshArchive()
	case "4":
		m.open(viewHelp)
	}
	return m, nil
}

func (m model) updateCreate(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "esc":
		m.view = viewMainMenu
	case "up":
		if m.traitIndex > 0 {
			m.traitIndex--
		}
	case "down":
		if m.traitIndex < len(m.traits)-1 {
			m.traitIndex++
		}
	case "backspace":
		if r := []rune(m.nameInput); len(r) > 0 {
			m.nameInput = string(r[:len(r)-1])
		}
	case "enter":
		m.startCareer()
	default:
		if isRuneInput(k) && len([]rune(m.nameInput)) < maxNameLength {
			m.nameInput += k
		}
	}
	return m, nil
}

func (m *model) inProgress() bool { return m.game != nil && !m.game.Finished() }

// startCareer builds the player, starts the game and opens the archive record.
func (m *model) startCareer() {
	p := engine.NewBasePlayer(m.nameInput)
	trait := engine.Trait{}
	if m.traitIndex >= 0 && m.traitIndex < len(m.traits) {
		trait = m.traits[m.traitIndex]
		p.ApplyTrait(trait)
	}
	m.game = engine.NewGame(p, m.catalog.Events, m.careerStream())
	m.careers++
	m.lastResult = nil
	m.status = ""
	m.runID = uuid.Nil
	if m.archive != nil {
		id, err := m.archive.CreateRun(m.ctx, store.NewRun{
			PlayerName:    p.Name,
			Trait:         trait.Name,
			SeedText:      m.seed.Text,
			CatalogSource: string(m.catalog.Source),
		})
		if err != nil {
			m.log.Error().Err(err).Msg("archive create run failed")
			m.status = "Archive unavailable: this career will not be saved"
		} else {
			m.runID = id
		}
	}
	m.log.Info().Str("player", p.Name).Str("trait", trait.Name).Str("seed", m.seed.Text).
		Str("catalog", string(m.catalog.Source)).Msg("career started")
	m.view = viewGame
	if m.game.Finished() {
		m.finishCareer()
	}
}

func (m model) updateGame(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "esc":
		m.view = viewMainMenu
		return m, nil
	}
	if len(k) != 1 || k[0] < '1' || k[0] > '6' || m.game == nil {
		return m, nil
	}
	res, err := m.game.Choose(int(k[0] - '1'))
	if err != nil {
		if !errors.Is(err, engine.ErrOptionOutOfRange) {
			m.log.Warn().Err(err).Msg("choose failed")
		}
		return m, nil
	}
	m.lastResult = &res
	m.recordChoice(res)
	if m.game.Finished() {
		m.finishCareer()
	}
	return m, nil
}

func (m *model) recordChoice(res engine.ChoiceResult) {
	if m.archive == nil || m.runID == uuid.Nil {
		return
	}
	if err := m.archive.RecordChoice(m.ctx, m.runID, store.ChoiceFromResult(res)); err != nil {
		m.log.Error().Err(err).Int("month", res.Month).Msg("archive record choice failed")
		m.status = "Archive write failed"
	}
}

func (m *model) finishCareer() {
	g := m.game
	m.view = viewEnding
	m.log.Info().Str("ending", g.Ending.Key).Int("events", g.EventsCompleted()).Msg("career finished")
	if m.archive == nil || m.runID == uuid.Nil {
		return
	}
	months := g.Month - 1
	if months > engine.TotalMonths {
		months = engine.TotalMonths
	}
	if err := m.archive.FinishRun(m.ctx, m.runID, months, g.Player, g.Summary(), *g.Ending); err != nil {
		m.log.Error().Err(err).Msg("archive finish run failed")
		m.status = "Archive write failed"
	}
}

func (m *model) updateArchive(k string) {
	switch k {
	case "up", "k":
		if m.archiveIndex > 0 {
			m.archiveIndex--
		}
	case "down", "j":
		if m.archiveIndex < len(m.archiveRuns)-1 {
			m.archiveIndex++
		}
	case "enter":
		if len(m.archiveRuns) > 0 {
			m.archiveDetail = !m.archiveDetail
		}
	case "esc":
		if m.archiveDetail {
			m.archiveDetail = false
		} else {
			m.back()
		}
	}
}

func (m *model) refreshArchive() {
	m.archiveDetail = false
	if m.archive == nil {
		m.archiveRuns = nil
		return
	}
	runs, err := m.archive.ListFinished(m.ctx, archiveLimit)
	if err != nil {
		m.log.Error().Err(err).Msg("archive list failed")
		m.status = "Archive unavailable"
		return
	}
	m.archiveRuns = runs
	if m.archiveIndex >= len(runs) {
		m.archiveIndex = len(runs) - 1
	}
	if m.archiveIndex < 0 {
		m.archiveIndex = 0
	}
}

func isRuneInput(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && runes[0] >= 32 && runes[0] != 127
}
