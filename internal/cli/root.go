package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"widgetdash/internal/config"
	"widgetdash/internal/domain"
	"widgetdash/internal/eventbus"
	"widgetdash/internal/logging"
	"widgetdash/internal/seed"
	"widgetdash/internal/store"
	"widgetdash/internal/ui"
)

var log = logging.NewLogger("cli")

// app carries what the persistent flags resolved to
type app struct {
	configPath string
	seedPath   string
	verbose    bool

	cfg       *config.Config
	logCloser io.Closer
}

// NewRootCmd builds the widgetdash command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "widgetdash",
		Short: "Terminal dashboard of widgets grouped by category",
		Long: `widgetdash shows a dashboard of widgets grouped into categories.
Widgets can be added, removed, hidden and searched. Changes live in memory
and are lost on exit; the dashboard always starts from its seed.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logCloser != nil {
				_ = a.logCloser.Close()
			}
		},
		RunE: a.runDashboard,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVarP(&a.seedPath, "seed", "s", "", "Seed file (.json, .yaml) to start the dashboard from")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newListCmd(a),
		newSearchCmd(a),
		newSeedCmd(a),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config and starts logging before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// An explicit config file must exist; the default one may not
	svc := config.NewConfigService()
	load := svc.Load
	if a.configPath != "" {
		svc = config.NewConfigServiceAt(a.configPath)
		load = func() (*config.Config, error) { return svc.LoadFromPath(a.configPath) }
	}

	_, statErr := os.Stat(svc.Path())
	firstRun := a.configPath == "" && errors.Is(statErr, os.ErrNotExist)

	var err error
	a.cfg, err = load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Write the defaults on first run so there is a file to edit. Done
	// before flags are applied so they don't stick.
	var saveErr error
	if firstRun {
		saveErr = svc.Save(a.cfg)
	}

	if a.seedPath != "" {
		a.cfg.SeedPath = a.seedPath
	}

	level := a.cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	closer, err := logging.Setup(logging.Options{
		File:       a.cfg.Log.File,
		Level:      level,
		MaxSizeMB:  a.cfg.Log.MaxSizeMB,
		MaxBackups: a.cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.logCloser = closer

	switch {
	case saveErr != nil:
		log.WithError(saveErr).Warn("failed to write default config")
	case firstRun:
		log.WithField("config", svc.Path()).Info("wrote default config")
	}
	log.WithField("config", svc.Path()).WithField("seed", a.cfg.SeedPath).Debug("starting")
	return nil
}

func (a *app) loadSeed() ([]domain.Category, error) {
	return seed.LoadFile(a.cfg.SeedPath)
}

// runDashboard starts the TUI, or prints the dashboard when stdout is not
// a terminal
func (a *app) runDashboard(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		categories, err := a.loadSeed()
		if err != nil {
			return err
		}
		return printDashboard(cmd.OutOrStdout(), store.New(categories).Snapshot(), false)
	}

	bus := eventbus.New()
	defer bus.Close()
	stopActivity := logActivity(bus)
	defer stopActivity()

	// A broken seed opens the error screen instead of failing the process,
	// so the user can fix the file and try again
	categories, err := a.loadSeed()
	st := store.New(categories, store.WithEventBus(bus))
	if err != nil {
		log.WithError(err).Error("failed to load seed")
		st.SetError(err.Error())
	}

	model := ui.NewModel(a.cfg, st, a.loadSeed)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	stopForward := ui.ForwardEvents(bus, p)
	defer stopForward()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// logActivity writes every store event to the log file
func logActivity(bus eventbus.EventBus) func() {
	activity := logging.NewLogger("activity")
	var unsubs []func()
	for _, t := range domain.AllEventTypes {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			activity.WithField("event", e.Type()).Infof("%+v", e)
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
