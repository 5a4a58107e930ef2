package main

import (
	"github.com/dhamidi/parsec/lisp"
	"github.com/dhamidi/parsec/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(g *globals) *cobra.Command {
	var grammar grammarFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start a language server on stdio that reports parse errors as
diagnostics. Documents are checked with the given EBNF grammar, or as
prefix arithmetic expressions when no grammar is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var checker lsp.Checker = lsp.CheckFunc(func(text string) error {
				_, err := lisp.Parse(text)
				return err
			})

			if cmd.Flags().Changed("grammar") || g.cfg.Grammar.File != "" {
				p, err := grammar.compile(cmd, g)
				if err != nil {
					return err
				}
				checker = lsp.GrammarChecker(p)
			}

			server := lsp.NewServer(checker, version)
			return server.RunStdio()
		},
	}

	grammar.register(cmd)

	return cmd
}
