// Package cmd holds the calculator's cobra commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/history"
	"github.com/zephyrtronium/calculator/internal/logging"
)

// rootOptions holds the flag values shared by all commands.
type rootOptions struct {
	cfgFile string
	verbose bool
	lenient bool
	history bool

	in    string
	verb  string
	lines bool
	echo  bool
}

// Execute runs the calculator command line.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:   "calculator [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate arithmetic expressions with + - * / ^, parentheses, and the
functions sin, cos, and tan of degrees.

Each argument is one expression. With no arguments, the expression is read
from standard input, or from the file named by --in. With -n, each line of
input is a separate expression.

A function applies to everything after it unless its argument is
parenthesized along with the name: (cos(0))*4 is 4, but cos(0)*4 is cos(0*4).`,
		Example: `  calculator '2+3*4'
  calculator --echo '(2+3)*4'
  printf '1+1\n2^10\n' | calculator -n`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (default $"+config.EnvVar+", ./calculator.toml)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log each evaluation stage")
	pf.BoolVar(&o.lenient, "lenient", false, "recover from malformed input instead of failing")
	pf.BoolVar(&o.history, "history", false, "record results in the history database")

	f := root.Flags()
	f.StringVar(&o.in, "in", "", "input file (default stdin if no args given)")
	f.StringVar(&o.verb, "fmt", "", "result formatting string, e.g. %g (default shortest decimal)")
	f.BoolVarP(&o.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	f.BoolVar(&o.echo, "echo", false, "print the postfix form of each expression")

	root.AddCommand(newTUICmd(o), newHistoryCmd(o))
	return root
}

// env is the state that commands build from configuration and flags.
type env struct {
	cfg *config.Config
	log *slog.Logger
	// opts are the calculator options without a logger.
	opts []calculator.Option
}

func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadDefault(o.cfgFile)
	if err != nil {
		return nil, err
	}
	lc := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if o.verbose {
		lc.Level = "debug"
	}
	log, err := logging.New(lc, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	opts := cfg.CalcOptions()
	if o.lenient {
		opts = []calculator.Option{calculator.Lenient()}
	}
	return &env{cfg: cfg, log: log, opts: opts}, nil
}

// openHistory opens the history store if recording is enabled. The result is
// nil if it is not.
func (o *rootOptions) openHistory(e *env) (*history.Store, error) {
	if !o.history && !e.cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.Open(history.Config{Path: e.cfg.History.Path})
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	e.log.Debug("history opened", "path", e.cfg.History.Path)
	return store, nil
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	e, err := o.setup(cmd)
	if err != nil {
		return err
	}
	srcs, err := o.inputs(cmd, args)
	if err != nil {
		return err
	}
	store, err := o.openHistory(e)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	verb := o.verb
	if verb == "" {
		verb = e.cfg.ResultFormat
	}
	opts := append(append([]calculator.Option(nil), e.opts...), calculator.Logger(e.log))
	out, errout := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := 0
	for _, src := range srcs {
		postfix, v, err := calc(src, opts)
		if o.echo && postfix != nil {
			fmt.Fprintf(out, "%s : ", calculator.Join(postfix))
		}
		entry := &history.Entry{Expression: strings.TrimSpace(src)}
		if err != nil {
			failed++
			entry.Error = err.Error()
			if o.echo && postfix != nil {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(errout, "%s: %v\n", entry.Expression, err)
		} else {
			entry.Result = formatResult(verb, v)
			fmt.Fprintln(out, entry.Result)
		}
		if store != nil {
			if err := store.Record(cmd.Context(), entry); err != nil {
				return err
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// calc evaluates src in stages so that the postfix form is available for
// echoing. postfix is nil if src didn't get that far.
func calc(src string, opts []calculator.Option) (postfix []calculator.Token, v float64, err error) {
	tokens, err := calculator.Tokenize(src, opts...)
	if err != nil {
		return nil, 0, err
	}
	postfix, err = calculator.ToPostfix(tokens, opts...)
	if err != nil {
		return nil, 0, err
	}
	v, err = calculator.Evaluate(postfix, opts...)
	return postfix, v, err
}

func formatResult(verb string, v float64) string {
	if verb == "" {
		return calculator.FormatResult(v)
	}
	return fmt.Sprintf(verb, v)
}

// inputs collects the expressions to evaluate from --in or stdin and args.
func (o *rootOptions) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	var srcs []string
	r, err := o.infile(cmd, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if r != nil {
		b, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		srcs = append(srcs, string(b))
	}
	srcs = append(srcs, args...)
	if !o.lines {
		return srcs, nil
	}
	var lines []string
	for _, src := range srcs {
		for _, l := range strings.Split(src, "\n") {
			if strings.TrimSpace(l) == "" {
				continue
			}
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func (o *rootOptions) infile(cmd *cobra.Command, std bool) (io.ReadCloser, error) {
	switch {
	case o.in != "" && o.in != "-":
		f, err := os.Open(o.in)
		if err != nil {
			return nil, err
		}
		return f, nil
	case o.in == "-", std:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}
