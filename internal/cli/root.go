// Package cli implements the heragen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/heragen"
	"github.com/syssam/heragen/compiler/gen"
	"github.com/syssam/heragen/compiler/ledger"
	"github.com/syssam/heragen/internal/config"
	"github.com/syssam/heragen/internal/logging"
)

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	root       string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
	out io.Writer
	err io.Writer
}

// NewRootCmd returns the heragen command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "heragen",
		Short: "Generate HERA ERP CRUD pages from entity presets",
		Long: `heragen turns an entity preset such as CONTACT or PURCHASE_ORDER into a
mobile-first CRUD page for the universal entity API, checked by quality
gates before and after the files are written.

Run without arguments to list the available entity types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printCatalog()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.FileName, "settings file")
	root.PersistentFlags().StringVar(&a.root, "root", "", "project root (overrides the settings file)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.generateCmd(),
		a.listCmd(),
		a.validateCmd(),
		a.historyCmd(),
		a.watchCmd(),
		a.serveCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	a.err = cmd.ErrOrStderr()
	log, err := logging.New(a.verbose)
	if err != nil {
		return err
	}
	a.log = log
	return a.loadConfig()
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.root != "" {
		abs, err := filepath.Abs(a.root)
		if err != nil {
			return err
		}
		cfg.Root = abs
	}
	a.cfg = cfg
	return nil
}

// generator builds a generator from the settings plus extra options. The
// returned ledger is nil when history is disabled; the caller closes it.
func (a *app) generator(withLedger bool, extra ...gen.Option) (*gen.Generator, *ledger.Ledger, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, gen.WithLogger(a.log))
	var l *ledger.Ledger
	if withLedger && a.cfg.Ledger {
		l = ledger.ForRoot(a.cfg.ProjectRoot())
		opts = append(opts, gen.WithLedger(l))
	}
	opts = append(opts, extra...)
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		closeLedger(l)
		return nil, nil, err
	}
	g, err := gen.New(cfg)
	if err != nil {
		closeLedger(l)
		return nil, nil, err
	}
	return g, l, nil
}

func closeLedger(l *ledger.Ledger) {
	if l != nil {
		_ = l.Close()
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", failMark, err)
	var nf *heragen.EntityTypeNotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Valid entity types:")
		for _, k := range nf.ValidKeys() {
			fmt.Fprintf(w, "  %s\n", k)
		}
	}
}

// Main is the entry point used by cmd/heragen.
func Main(ctx context.Context) int {
	return Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
