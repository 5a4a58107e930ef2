package main

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/dhamidi/parsec/ebnf/parse"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())
	cmd.AddCommand(newEbnfRulesCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := parse.LoadGrammar(args[0])
			if err != nil {
				printErrors(cmd, err)
				return err
			}

			if startProduction == "" {
				return nil
			}

			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(cmd, err)
				return err
			}

			if _, err := parse.Compile(grammar, startProduction); err != nil {
				printErrors(cmd, err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newEbnfRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules <file>",
		Short: "List the productions of an EBNF grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := parse.LoadGrammar(args[0])
			if err != nil {
				return err
			}

			names := make([]string, 0, len(grammar))
			for name := range grammar {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				kind := "syntactic"
				if parse.IsLexical(name) {
					kind = "lexical"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", name, kind, grammar[name].Pos())
			}
			return nil
		},
	}
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(out, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(out, err)
}
