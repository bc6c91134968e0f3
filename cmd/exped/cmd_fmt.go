package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhamidi/exped/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite an .expr file in flattened infix form",
		Long: `Rewrite an .expr file in flattened infix form and print it to stdout.

If a file is provided, it must have a .expr extension.
If no file is provided, reads the expression from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				ext := filepath.Ext(filename)
				if ext != ".expr" {
					return fmt.Errorf("expected .expr file, got %s", ext)
				}
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			e, err := parseExpression(string(source), filename, false)
			if err != nil {
				return err
			}
			e.Flatten()

			var buf bytes.Buffer
			if err := format.NewInfixEncoder(&buf).Encode(e); err != nil {
				return fmt.Errorf("format: %w", err)
			}
			output := buf.Bytes()

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
