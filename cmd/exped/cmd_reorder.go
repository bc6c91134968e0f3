package main

import (
	"fmt"

	"github.com/dhamidi/exped/expr"
	"github.com/dhamidi/exped/layout"
	"github.com/spf13/cobra"
)

func newReorderCmd() *cobra.Command {
	var outputFormat string
	var pathFlag string
	var x float64
	var steps int

	cmd := &cobra.Command{
		Use:   "reorder [expression]",
		Short: "Drag one operand to a column and print the result",
		Long: `Drag one operand to a column and print the result.

The expression is flattened and laid out on one row as "exped parse -f infix"
would space it: "2*x+3" becomes "2 * x + 3". The operand named by --path
(dotted child indices from the root, e.g. "1" or "3.0.1") is dragged so its
left edge is at column --x, trading places with a neighbour at most once per
step. --steps 0 keeps stepping until the operand stops moving.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePath(pathFlag)
			if err != nil {
				return err
			}
			text, err := readExpression(cmd, args)
			if err != nil {
				return err
			}
			root, err := parseExpression(text, "", false)
			if err != nil {
				return err
			}
			root.Flatten()

			target := expr.At(root, path)
			if target == nil {
				return fmt.Errorf("no expression at path %s", pathFlag)
			}

			l := layout.New(root, layout.DefaultMetrics, layout.Point{})
			log.Debugf("layout %q", l.Text())

			limit := steps
			if limit <= 0 {
				limit = maxSteps(target)
			}
			for i := 0; i < limit; i++ {
				swap := expr.Reorder(target, x, l)
				if !swap.Moved {
					break
				}
				log.Infof("moved %s from %d to %d", target, swap.From, swap.To)
			}

			return encode(cmd, outputFormat, root)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "infix", formatHelp())
	cmd.Flags().StringVarP(&pathFlag, "path", "p", "0", "path of the operand to drag")
	cmd.Flags().Float64Var(&x, "x", 0, "column to drag the operand's left edge to")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of reorder steps (0 until stable)")

	return cmd
}

// maxSteps bounds how often an operand can move: once per sibling.
func maxSteps(e expr.Expression) int {
	if p := e.Parent(); p != nil {
		return len(p.Children())
	}
	return 0
}
