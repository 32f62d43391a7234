package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/mm-notes/mm/pkg/core"
)

// Process runs an External editor as a child process and waits for it.
type Process struct {
	Program External
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
}

// NewProcess attaches program to the current terminal.
func NewProcess(program External) *Process {
	return &Process{
		Program: program,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run starts the editor on notePath and waits. It fails when the program cannot
// be started or exits unsuccessfully; the error names the exit code, or
// "terminated by signal" when the process had none.
func (p *Process) Run(ctx context.Context, notePath string) error {
	name := p.Program.Executable()
	args := p.Program.Args(notePath)

	if p.Logger != nil {
		p.Logger.Debug("starting editor", "executable", name, "args", args)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Start(); err != nil {
		return core.Wrap(core.CategoryEditor, err, "cannot start editor")
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return core.Wrap(core.CategoryEditor, err, "editor failed")
	}

	code := "terminated by signal"
	if c := exitErr.ExitCode(); c >= 0 {
		code = strconv.Itoa(c)
	}
	return core.NewError(core.CategoryEditor, fmt.Sprintf("editor exited with code '%s'", code))
}
