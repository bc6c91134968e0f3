package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/exped/expr"
	"github.com/dhamidi/exped/expr/parser"
	"github.com/dhamidi/exped/format"
	"github.com/spf13/cobra"
)

// readExpression returns the expression given as the only argument, or
// reads it from stdin.
func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func parseExpression(text, file string, partial bool) (expr.Expression, error) {
	opts := []parser.Option{parser.WithFile(file)}
	if partial {
		opts = append(opts, parser.WithPartial())
	}
	e, err := parser.New(strings.NewReader(text), opts...).Finish()
	if err != nil {
		return nil, fmt.Errorf("parse expression: %w", err)
	}
	return e, nil
}

func encode(cmd *cobra.Command, name string, e expr.Expression) error {
	enc, err := format.NewEncoder(name, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

func formatHelp() string {
	return "output format (" + strings.Join(format.Names(), ", ") + ")"
}

// parsePath reads a dotted list of child indices such as "3.0.1". The
// empty string and "." name the root.
func parsePath(s string) ([]int, error) {
	if s == "" || s == "." {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	path := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid path %q: %q is not a child index", s, part)
		}
		path[i] = n
	}
	return path, nil
}
