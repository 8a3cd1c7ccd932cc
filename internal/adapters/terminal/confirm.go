// Package terminal renders prompts, progress and summaries for an operator
// sitting at a console.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fr0stylo/ddhooks/internal/app/ports"
)

var _ ports.Confirmer = (*Confirmer)(nil)

// Confirmer asks a yes/no question on out and reads one answer line from in.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm returns true only for "yes" or "y", ignoring case and surrounding
// whitespace. A closed input counts as no.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return false, err
	}

	type answer struct {
		line string
		err  error
	}
	answers := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case got := <-answers:
		if got.err != nil && !errors.Is(got.err, io.EOF) {
			return false, got.err
		}
		return Affirmative(got.line), nil
	}
}

func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
