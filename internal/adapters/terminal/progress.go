package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/fr0stylo/ddhooks/internal/app/ports"
)

var _ ports.Progress = (*Progress)(nil)

const barWidth = 30

// Progress draws a single redrawn bar on a terminal, or one line per step
// when the output is not interactive.
type Progress struct {
	out         io.Writer
	interactive bool
	bar         progress.Model
	drawn       bool
	lastWidth   int
}

func NewProgress(out io.Writer, interactive bool) *Progress {
	return &Progress{
		out:         out,
		interactive: interactive,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
	}
}

func (p *Progress) Step(done, total int, label string) {
	if total <= 0 {
		return
	}
	ratio := float64(done) / float64(total)
	if !p.interactive {
		fmt.Fprintf(p.out, "[%d/%d] %5.1f%% %s\n", done, total, ratio*100, label)
		return
	}

	line := fmt.Sprintf("Progress: %s %5.1f%% %s", p.bar.ViewAs(ratio), ratio*100, label)
	padding := ""
	if width := len(line); width < p.lastWidth {
		padding = strings.Repeat(" ", p.lastWidth-width)
	}
	p.lastWidth = len(line)
	fmt.Fprint(p.out, "\r"+line+padding)
	p.drawn = true
}

// Done ends the bar line. It is safe to call more than once.
func (p *Progress) Done() {
	if p.drawn {
		fmt.Fprintln(p.out)
	}
	p.drawn = false
	p.lastWidth = 0
}
