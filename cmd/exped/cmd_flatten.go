package main

import (
	"github.com/spf13/cobra"
)

func newFlattenCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "flatten [expression]",
		Short: "Merge nested chains of the same operator and print the tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}
			e, err := parseExpression(text, "", false)
			if err != nil {
				return err
			}
			e.Flatten()
			return encode(cmd, outputFormat, e)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dump", formatHelp())

	return cmd
}
