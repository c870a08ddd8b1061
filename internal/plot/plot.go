// Package plot hands point files to an external plotting program.
package plot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"honnef.co/go/pathsample"
)

// Placeholder is replaced by the point file's name in plotter arguments.
const Placeholder = "{}"

// ErrEmptyCommand indicates a plotter command line without a program.
var ErrEmptyCommand = errors.New("plot: empty command")

// Plotter is an external program that displays a point file.
type Plotter struct {
	// Args is the program and its arguments. Arguments containing
	// [Placeholder] have it replaced by the file name; if none does, the file
	// name is appended.
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// Parse splits a shell-style command line, such as
// `python3 plot_from_file.py {}`, into a plotter. Its output goes to the
// process's standard output and error.
func Parse(cmdline string) (*Plotter, error) {
	args, err := shellwords.Parse(cmdline)
	if err != nil {
		return nil, fmt.Errorf("plot: parsing command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return &Plotter{Args: args, Stdout: os.Stdout, Stderr: os.Stderr}, nil
}

// Expand returns the plotter's arguments for the given file.
func (p *Plotter) Expand(file string) []string {
	out := make([]string, len(p.Args))
	found := false
	for i, arg := range p.Args {
		if strings.Contains(arg, Placeholder) {
			found = true
			arg = strings.ReplaceAll(arg, Placeholder, file)
		}
		out[i] = arg
	}
	if !found {
		out = append(out, file)
	}
	return out
}

// Command returns the command that plots file.
func (p *Plotter) Command(ctx context.Context, file string) *exec.Cmd {
	args := p.Expand(file)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	return cmd
}

// Run plots file and waits for the plotter to exit.
func (p *Plotter) Run(ctx context.Context, file string) error {
	cmd := p.Command(ctx, file)
	pathsample.Logger().Info("running plotter", "args", cmd.Args)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("plot: %s: %w", cmd.Args[0], err)
	}
	return nil
}
