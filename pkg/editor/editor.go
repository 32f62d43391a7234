// Package editor launches an editor on a note and reports whether it succeeded.
//
// External editors run as child processes attached to the terminal; the built-in
// editor appends lines read from an input stream.
package editor

import (
	"context"
	"strings"
)

// Editor edits the note at an absolute path and returns once editing is done.
type Editor interface {
	Run(ctx context.Context, notePath string) error
}

// External describes an editor program.
type External interface {
	// Executable names the program to start.
	Executable() string
	// Args builds the argument list for editing notePath.
	Args(notePath string) []string
}

// BuiltinName selects the built-in editor.
const BuiltinName = "builtin"

// FromName picks an editor from a configuration value such as "vim",
// "code --wait" or "builtin". An empty name selects vim.
func FromName(name string) Editor {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return NewProcess(Vim{})
	}

	switch fields[0] {
	case BuiltinName:
		return NewBuiltin()
	case "vim":
		if len(fields) == 1 {
			return NewProcess(Vim{})
		}
	}
	return NewProcess(Command{Name: fields[0], Extra: fields[1:]})
}

// Vim edits notes with vim.
type Vim struct{}

func (Vim) Executable() string { return "vim" }

func (Vim) Args(notePath string) []string { return []string{notePath} }

// Command is an arbitrary editor program; Extra arguments precede the note path.
type Command struct {
	Name  string
	Extra []string
}

func (c Command) Executable() string { return c.Name }

func (c Command) Args(notePath string) []string {
	args := make([]string, 0, len(c.Extra)+1)
	args = append(args, c.Extra...)
	return append(args, notePath)
}
