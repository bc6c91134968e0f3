package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/exped/expr/parser"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		args   []string
		output string
	}{
		{"parse", "", []string{"parse", "a+b*c"}, "+\n\ta\n\t*\n\t\tb\n\t\tc\n"},
		{"parse stdin", "x * 2", []string{"parse", "-f", "infix"}, "x*2\n"},
		{"parse partial", "", []string{"parse", "--partial", "-f", "infix", "a+(b*"}, "a+(b)\n"},
		{"parse line", "", []string{"parse", "-f", "line", "a*b"}, ".\tChain\t*\n0\tLiteral\ta\n1\tLiteral\tb\n"},
		{"flatten", "", []string{"flatten", "-f", "infix", "(a+b)+c"}, "(a+b)+c\n"},
		{"fmt stdin", "a +\n b", []string{"fmt"}, "a+b\n"},
		{"reorder", "", []string{"reorder", "a+b+c", "--path", "2", "--x", "0"}, "c+a+b\n"},
		{"reorder one step", "", []string{"reorder", "a+b+c", "--path", "2", "--x", "0", "--steps", "1"}, "a+c+b\n"},
		{"reorder nested", "", []string{"reorder", "2*x+3*y", "--path", "0.1", "--x", "0"}, "x*2+3*y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.output {
				t.Errorf("got %q, want %q", got, tt.output)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "", "parse", "a+")
	if !errors.Is(err, parser.ErrParse) {
		t.Errorf("parse a+: got %v, want ErrParse", err)
	}

	tests := [][]string{
		{"parse", "-f", "xml", "a"},
		{"fmt", "notes.txt"},
		{"fmt", "-w"},
		{"reorder", "a+b", "--path", "5"},
		{"reorder", "a+b", "--path", "x"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, "", args...); err == nil {
				t.Error("succeeded, want error")
			}
		})
	}
}

func TestFmtWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sum.expr")
	if err := os.WriteFile(path, []byte("a *  b + c\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "", "fmt", "-w", path); err != nil {
		t.Fatalf("fmt -w error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a*b+c\n" {
		t.Errorf("file = %q", data)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		path  []int
		ok    bool
	}{
		{"", nil, true},
		{".", nil, true},
		{"3", []int{3}, true},
		{"3.0.1", []int{3, 0, 1}, true},
		{"1..2", nil, false},
		{"-1", nil, false},
		{"a", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePath(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("error = %v, want ok %v", err, tt.ok)
			}
			if len(got) != len(tt.path) {
				t.Fatalf("got %v, want %v", got, tt.path)
			}
			for i := range got {
				if got[i] != tt.path[i] {
					t.Errorf("got %v, want %v", got, tt.path)
				}
			}
		})
	}
}
