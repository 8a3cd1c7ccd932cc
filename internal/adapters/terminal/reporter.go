package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fr0stylo/ddhooks/internal/app/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Reporter writes operator messages. Summary lines are highlighted when the
// output is a terminal.
type Reporter struct {
	out    io.Writer
	styled bool
}

func NewReporter(out io.Writer, styled bool) *Reporter {
	return &Reporter{out: out, styled: styled}
}

func (r *Reporter) Printf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if r.styled && strings.Contains(message, "Successfully") {
		message = styleLines(message, successStyle)
	}
	fmt.Fprint(r.out, message)
}

// Errorf writes a failure message, highlighted on a terminal.
func (r *Reporter) Errorf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if r.styled {
		message = styleLines(message, errorStyle)
	}
	fmt.Fprint(r.out, message)
}

// styleLines renders each non-empty line so surrounding newlines survive.
func styleLines(message string, style lipgloss.Style) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
