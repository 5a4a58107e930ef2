package main

import (
	"fmt"

	"github.com/dhamidi/parsec/ebnf/parse"
	"github.com/dhamidi/parsec/format"
	"github.com/spf13/cobra"
)

// grammarFlags selects and compiles an EBNF grammar, falling back to the
// [grammar] section of the config file.
type grammarFlags struct {
	file       string
	start      string
	whitespace bool
}

func (f *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "start production")
	cmd.Flags().BoolVarP(&f.whitespace, "whitespace", "w", false, "skip whitespace between tokens of non-lexical productions")
}

func (f *grammarFlags) compile(cmd *cobra.Command, g *globals) (*parse.Parser, error) {
	flags := cmd.Flags()
	if !flags.Changed("grammar") {
		f.file = g.cfg.Grammar.File
	}
	if !flags.Changed("start") {
		f.start = g.cfg.Grammar.Start
	}
	if !flags.Changed("whitespace") {
		f.whitespace = g.cfg.Grammar.Whitespace
	}
	if f.file == "" {
		return nil, fmt.Errorf("no grammar given: use --grammar or set grammar.file in the config")
	}
	if f.start == "" {
		return nil, fmt.Errorf("no start production given: use --start or set grammar.start in the config")
	}

	grammar, err := parse.LoadGrammar(f.file)
	if err != nil {
		return nil, err
	}
	var opts []parse.Option
	if f.whitespace {
		opts = append(opts, parse.WithWhitespace())
	}
	p, err := parse.Compile(grammar, f.start, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile grammar: %w", err)
	}
	return p, nil
}

func newParseCmd(g *globals) *cobra.Command {
	var grammar grammarFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file with an EBNF grammar and print its syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := grammar.compile(cmd, g)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				outputFormat = g.cfg.Output.Format
			}
			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			root, parseErr := p.Parse(input, g.parseOptions()...)
			var value any
			if parseErr == nil {
				value = root
			}
			if err := encoder.Encode(format.NewResult(input, value, parseErr)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if parseErr != nil {
				return fmt.Errorf("parse %s: %w", p.Start(), parseErr)
			}
			return nil
		},
	}

	grammar.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (json, yaml, text)")

	return cmd
}
