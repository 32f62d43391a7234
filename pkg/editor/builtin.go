package editor

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mm-notes/mm/pkg/adapters/fs"
	"github.com/mm-notes/mm/pkg/core"
)

// EndOfInput is the line that finishes a built-in editing session.
const EndOfInput = "."

// Builtin appends lines read from In to the note until EOF or a lone ".".
type Builtin struct {
	In  io.Reader
	Out io.Writer
}

// NewBuiltin reads from stdin and prompts on stderr.
func NewBuiltin() *Builtin {
	return &Builtin{
		In:  os.Stdin,
		Out: os.Stderr,
	}
}

// Run prompts on Out, then appends the lines read from In to notePath and
// rewrites it atomically.
func (b *Builtin) Run(ctx context.Context, notePath string) error {
	existing, err := os.ReadFile(notePath)
	if err != nil {
		return core.Wrap(core.CategoryEditor, err, "cannot read note")
	}

	out := b.Out
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintf(out, "Editing %s. End with a line containing only %q.\n", notePath, EndOfInput)

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}

	sc := bufio.NewScanner(b.In)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return core.Wrap(core.CategoryEditor, err, "editing interrupted")
		}
		line := sc.Text()
		if line == EndOfInput {
			break
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return core.Wrap(core.CategoryEditor, err, "cannot read input")
	}

	return fs.WriteFileAtomic(notePath, buf.Bytes())
}
