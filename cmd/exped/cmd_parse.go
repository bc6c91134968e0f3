package main

import (
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var partial bool
	var flatten bool

	cmd := &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and print its tree",
		Long: `Parse an expression and print its tree.

The expression is read from stdin when no argument is given.
With --partial, a trailing operator and unclosed parentheses are accepted,
as they are while the expression is still being typed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}
			e, err := parseExpression(text, "", partial)
			if err != nil {
				return err
			}
			if flatten {
				e.Flatten()
			}
			return encode(cmd, outputFormat, e)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dump", formatHelp())
	cmd.Flags().BoolVar(&partial, "partial", false, "accept an unfinished expression")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "flatten the tree before printing")

	return cmd
}
