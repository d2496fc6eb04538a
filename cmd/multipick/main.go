package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"multipick/internal/config"
	"multipick/internal/eventbus"
	"multipick/internal/logging"
	"multipick/internal/ui"
)

var version = "0.1.0"

var flags struct {
	configPath  string
	label       string
	placeholder string
	class       string
	logFile     string
	debug       bool
	noMouse     bool
}

var rootCmd = &cobra.Command{
	Use:           "multipick",
	Short:         "Searchable multi-select picker for the terminal",
	Long:          "multipick shows a searchable dropdown of options from a TOML catalog and lets you pick several of them with keyboard or mouse.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&flags.label, "label", "", "label shown above the picker")
	rootCmd.Flags().StringVar(&flags.placeholder, "placeholder", "", "placeholder shown in the empty search field")
	rootCmd.Flags().StringVar(&flags.class, "class", "", "theme: accent or muted")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "multipick.log", "log file path")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "debug logging with the console encoder")
	rootCmd.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse support")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(optionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newConfigService(bus eventbus.EventBus) config.ConfigService {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.NewConfigServiceWithBus(path, bus)
}

func newLogger() *logging.Logger {
	cfg := logging.DefaultConfig(flags.logFile)
	if flags.debug {
		cfg = logging.DevelopmentConfig(flags.logFile)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		return logging.NewNop()
	}
	return logger
}

// applyLogLevel sets the level from ui.log_level; --debug wins over it.
func applyLogLevel(logger *logging.Logger, settings config.UISettings) error {
	if flags.debug || settings.LogLevel == "" {
		return nil
	}
	return logger.SetLevel(settings.LogLevel)
}

// applyOverrides lets command-line flags win over the config file.
func applyOverrides(cfg *config.Config) {
	if flags.label != "" {
		cfg.Label = flags.label
	}
	if flags.placeholder != "" {
		cfg.Placeholder = flags.placeholder
	}
	if flags.class != "" {
		cfg.Class = flags.class
	}
	if flags.noMouse {
		cfg.UISettings.Mouse = false
	}
}

func runTUI(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(logger.Component("eventbus"))
	defer bus.Close()

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		logger.Info("Config loaded", zap.String("path", ev.Path), zap.Int("options", ev.OptionCount))
	})
	bus.Subscribe(eventbus.EventControlUnmounted, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ControlUnmountedEvent)
		logger.Debug("Control unmounted", zap.Int("generation", ev.Generation), zap.Bool("open", ev.WasOpen))
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		logger.Error(ev.Message, zap.Error(ev.Err))
	})

	cfg, err := newConfigService(bus).Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyLogLevel(logger, cfg.UISettings); err != nil {
		return fmt.Errorf("setting log level: %w", err)
	}
	applyOverrides(cfg)

	model := ui.NewModel(bus, cfg, logger.Component("ui"))
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running program: %w", err)
	}

	logger.Info("Exited", zap.Strings("selected", model.Selected()))
	return nil
}
