package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dhamidi/exped/editor"
	"github.com/dhamidi/exped/layout"
	"github.com/dhamidi/exped/ui"
	"github.com/spf13/cobra"
)

func newUICmd() *cobra.Command {
	var addr string
	var expression string
	var flatten bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := editor.DefaultConfig()
			if expression != "" {
				cfg.Expression = expression
			}
			cfg.Flatten = flatten
			cfg.Metrics = layout.PixelMetrics

			server, err := ui.NewServer(cfg)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			log.Noticef("listening on %s", addr)
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&expression, "expression", "e", "", "initial expression (default $"+editor.ExpressionEnv+" or the example)")
	cmd.Flags().BoolVar(&flatten, "flatten", true, "flatten every parsed expression")

	return cmd
}
