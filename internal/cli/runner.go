package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/freefire/internal/config"
	"github.com/idilsaglam/freefire/internal/logging"
	"github.com/idilsaglam/freefire/internal/session"
	"github.com/idilsaglam/freefire/internal/store/jsonstore"
	"github.com/idilsaglam/freefire/internal/ui"
)

// usageError marks mistakes in how the command was invoked (exit code 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// app carries root flags and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	file       string
	theme      string
	verbose    bool
	noColor    bool

	cfg config.Config
	log *zap.Logger

	// runTUI starts the interactive menu; replaced in tests.
	runTUI func(*session.Session) error
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	return run(newApp(), args, stdout, stderr)
}

func run(a *app, args []string, stdout, stderr io.Writer) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		PrintHelp(stderr)
		return 2
	}
	return 1
}

func newApp() *app {
	return &app{runTUI: runInteractive}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "freefire",
		Short: "Register rescue tower components, sort them and search by name",
		Long: `freefire keeps up to 20 components (name, category, priority) and orders
them with three classic sorts, reporting how many comparisons each took:

  name      bubble sort (stops after a pass without swaps)
  category  insertion sort
  priority  selection sort

Binary search by name is available once the list is sorted by name.

Run without a subcommand to open the interactive menu.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			return a.runTUI(sess)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML configuration file")
	pf.StringVarP(&a.file, "file", "f", "", "JSON file with components to register")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono (overrides config)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(a.listCommand(), a.sortCommand(), a.searchCommand(), a.demoCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.Theme = a.theme
		cfg.Normalize()
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, a.noColor)

	// The interactive menu owns the terminal.
	if cmd.Parent() == nil && logging.OwnsTerminal(cfg.Logging) {
		a.log = zap.NewNop()
		return nil
	}
	a.log, err = logging.New(cfg.Logging, a.verbose)
	return err
}

// newSession builds a session from config and registers --file, if given.
func (a *app) newSession(cmd *cobra.Command) (*session.Session, error) {
	log := a.log
	if log == nil {
		log = zap.NewNop()
	}
	sess := session.New(session.Options{
		Capacity: a.cfg.Capacity,
		Limits:   a.cfg.Limits(),
		Logger:   log.Named("session"),
	})
	if a.file == "" {
		return sess, nil
	}
	items, err := jsonstore.Load(a.file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.file, err)
	}
	n, err := sess.Enter(items)
	if err != nil {
		ui.Fail(cmd.ErrOrStderr(), fmt.Sprintf("%s: %v (kept %d)", a.file, err, n))
	}
	return sess, nil
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `freefire - rescue tower component organizer

Usage:
  freefire [flags]                   Interactive menu
  freefire ls -f components.json     Show components as entered
  freefire sort --by <key> -f FILE   Sort by name, category or priority
  freefire search <name> -f FILE     Sort by name, then binary search
  freefire demo                      Run every sort on a built-in sample

Examples:
  freefire -f components.json
  freefire sort --by priority -f components.json
  freefire search "Chip Central" -f components.json
`)
}
