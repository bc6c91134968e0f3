package main

import (
	"fmt"

	"github.com/dhamidi/exped/editor"
	"github.com/dhamidi/exped/tui"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	var expression string
	var flatten bool
	var sound bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit expressions in the terminal",
		Long: `Edit expressions in the terminal.

Type on the first line and press Enter to parse. Click an operand to focus
it, click again to descend into it, and drag a focused operand sideways to
move it. Esc or Ctrl-C quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := editor.DefaultConfig()
			if expression != "" {
				cfg.Expression = expression
			}
			cfg.Flatten = flatten

			var feedback tui.Feedback
			if sound {
				clicker := tui.NewClicker()
				if err := clicker.Initialize(); err != nil {
					log.Warningf("audio initialization failed: %s", err)
				}
				defer clicker.Close()
				feedback = clicker
			}

			screen, err := tui.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			app, err := tui.New(screen, cfg, feedback)
			if err != nil {
				screen.Fini()
				return err
			}
			defer app.Close()

			return app.Run()
		},
	}

	cmd.Flags().StringVarP(&expression, "expression", "e", "", "initial expression (default $"+editor.ExpressionEnv+" or the example)")
	cmd.Flags().BoolVar(&flatten, "flatten", true, "flatten every parsed expression")
	cmd.Flags().BoolVar(&sound, "sound", false, "click when operands move")

	return cmd
}
