package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/parsec/format"
	"github.com/dhamidi/parsec/lisp"
	"github.com/spf13/cobra"
)

func newEvalCmd(g *globals) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "eval [expr]",
		Short: "Evaluate a prefix arithmetic expression such as (+ 1 (* 2 3))",
		Long: `Evaluate a prefix arithmetic expression.

The expression is taken from the arguments or, without arguments, from
stdin. Operators are + - * / and add sub mul div neg abs min max.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			if len(args) > 0 {
				src = strings.Join(args, " ")
			} else {
				var err error
				if src, err = readInput(cmd, nil); err != nil {
					return err
				}
			}

			value, err := lisp.Evaluate(src, g.parseOptions()...)

			if !cmd.Flags().Changed("format") {
				outputFormat = g.cfg.Output.Format
			}
			if outputFormat == "text" {
				if err != nil {
					return fmt.Errorf("eval: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'f', -1, 64))
				return nil
			}

			encoder, encErr := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if encErr != nil {
				return encErr
			}
			var result any
			if err == nil {
				result = value
			}
			if encErr := encoder.Encode(format.NewResult(src, result, err)); encErr != nil {
				return fmt.Errorf("encode: %w", encErr)
			}
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (json, yaml, text)")

	return cmd
}
