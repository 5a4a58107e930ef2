package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsec/combinator"
	"github.com/dhamidi/parsec/config"
	"github.com/dhamidi/parsec/trace"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// globals holds the persistent flags and the loaded configuration.
type globals struct {
	configPath string
	trace      bool
	verbose    int
	logFile    string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           "parsec",
		Short:         "Parser combinators, EBNF grammars and a tiny prefix calculator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default $PARSEC_CONFIG, ./parsec.toml or ~/.config/parsec/config.toml)")
	flags.BoolVar(&g.trace, "trace", false, "log every parser step")
	flags.CountVarP(&g.verbose, "verbose", "v", "increase log verbosity")
	flags.StringVar(&g.logFile, "log", "", "log to file instead of stderr")

	rootCmd.AddCommand(newEvalCmd(g))
	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newEbnfCmd())
	rootCmd.AddCommand(newLSPCmd(g))

	return rootCmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	var err error
	if g.configPath != "" {
		g.cfg, err = config.Load(g.configPath)
	} else {
		g.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("trace") {
		g.cfg.Trace.Enabled = g.trace
	}
	if flags.Changed("verbose") {
		g.cfg.Trace.Verbosity = g.verbose
	}
	if flags.Changed("log") {
		g.cfg.Trace.LogFile = g.logFile
	}

	verbosity := g.cfg.Trace.Verbosity
	if g.cfg.Trace.Enabled && verbosity < 2 {
		verbosity = 2
	}
	var path *string
	if g.cfg.Trace.LogFile != "" {
		path = &g.cfg.Trace.LogFile
	}
	commonlog.Configure(verbosity, path)

	return nil
}

// parseOptions returns the options every parse run is started with.
func (g *globals) parseOptions() []combinator.Option {
	if g.cfg == nil || !g.cfg.Trace.Enabled {
		return nil
	}
	return []combinator.Option{combinator.WithTracer(trace.Named("parsec.trace"))}
}

// readInput returns the contents of the file named by args[0], or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
