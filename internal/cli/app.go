// Package cli wires configuration, logging, the task store and the menus
// into the tracker command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tracker/internal/config"
	"tracker/internal/exitcode"
	"tracker/internal/input"
	"tracker/internal/logging"
	"tracker/internal/menu"
	"tracker/internal/output"
	"tracker/internal/tracker"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// ErrSession wraps failures that end a running menu session.
var ErrSession = errors.New("session failed")

// Banner is printed once before the first menu on an interactive terminal.
const Banner = "Task tracker. Choose a menu item by its number."

// StoreFactory creates the task store for a session.
// Used to inject deterministic ids and clocks in tests.
type StoreFactory func(cfg *config.Config) *tracker.Store

// DefaultStoreFactory picks the id generator named by the config.
func DefaultStoreFactory(cfg *config.Config) *tracker.Store {
	if cfg.IDScheme == config.IDSchemeUUID {
		return tracker.NewStore(tracker.WithIDGenerator(tracker.UUIDs{}))
	}
	return tracker.NewStore(tracker.WithIDGenerator(tracker.NewTimeIDs(time.Now)))
}

// App is the tracker command line.
type App struct {
	factory StoreFactory
}

// NewApp creates the command line with the given store factory.
// A nil factory means DefaultStoreFactory.
func NewApp(factory StoreFactory) *App {
	if factory == nil {
		factory = DefaultStoreFactory
	}
	return &App{factory: factory}
}

// Run parses args, runs the selected command and returns the exit code.
func (a *App) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	root := a.newRootCommand(in, out, errOut)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return codeFor(err)
	}
	return exitcode.Success
}

type rootFlags struct {
	configPath string
	quiet      bool
	debug      bool
}

func (a *App) newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Console task tracker",
		Long: `tracker keeps a list of tasks in memory and lets you add, list, edit,
delete and find them through a numbered menu. Tasks are gone when it exits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return a.runSession(cmd.Context(), cfg, in, out, errOut)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVar(&flags.quiet, "quiet", false, "Suppress prompts")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Print debug logs to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, Version)
		},
	})

	return root
}

// loadConfig reads the config file and applies explicitly set flags over it.
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = flags.quiet
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = flags.debug
	}
	return cfg, nil
}

func (a *App) runSession(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	logger := logging.New(errOut, logging.Level(cfg.Debug))
	store := a.factory(cfg)
	printer := output.NewPrinter(out)
	console := input.NewConsole(in, out, input.WithQuiet(cfg.Quiet))

	if !cfg.Quiet && isTerminal(in) {
		printer.Line(Banner)
	}

	ctrl := menu.New(store, console, printer, menu.WithLogger(logger))
	if err := ctrl.Build(menu.MainMenu(logger)...); err != nil {
		return err
	}

	logger.Debug("session started", "id_scheme", cfg.IDScheme, "quiet", cfg.Quiet)
	if err := ctrl.Run(ctx, cfg.Prompt); err != nil {
		return fmt.Errorf("%w: %w", ErrSession, err)
	}
	logger.Debug("session finished", "executed", ctrl.Executed(), "tasks", store.Len())
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func codeFor(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitcode.Interrupted
	case errors.Is(err, ErrSession):
		return exitcode.IOError
	default:
		return exitcode.UserError
	}
}
