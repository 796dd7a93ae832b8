// Package console prints operator-facing messages. Messages are coloured only
// when the destination is a terminal and NO_COLOR is unset; they are not part
// of any machine-readable contract.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type palette struct {
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		info:    r.NewStyle().Foreground(lipgloss.Color("12")), // blue
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),  // red
		success: r.NewStyle().Foreground(lipgloss.Color("10")), // green
	}
}

// Printer writes informational messages to out and failures to errw.
type Printer struct {
	out, errw          io.Writer
	outColor, errColor bool
	outStyle, errStyle palette
}

// New returns a Printer that colours each stream only if it is a terminal.
func New(out, errw io.Writer) *Printer {
	return &Printer{
		out:      out,
		errw:     errw,
		outColor: ColorEnabled(out),
		errColor: ColorEnabled(errw),
		outStyle: newPalette(out),
		errStyle: newPalette(errw),
	}
}

// ColorEnabled reports whether w is a terminal and colour was not disabled
// through NO_COLOR.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *Printer) print(w io.Writer, color bool, st lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if color {
		msg = st.Render(msg)
	}
	_, _ = fmt.Fprintln(w, msg)
}

// Info prints a progress message.
func (p *Printer) Info(format string, args ...any) {
	p.print(p.out, p.outColor, p.outStyle.info, format, args...)
}

// Skip prints a notice for an ignored path.
func (p *Printer) Skip(path string) {
	p.print(p.out, p.outColor, p.outStyle.warn, "Skipping: %s", path)
}

// Finding echoes one report line as it is recorded.
func (p *Printer) Finding(line string) {
	p.print(p.out, p.outColor, p.outStyle.err, "%s", line)
}

// Warn prints a non-fatal notice.
func (p *Printer) Warn(format string, args ...any) {
	p.print(p.out, p.outColor, p.outStyle.warn, format, args...)
}

// Success prints a completion message.
func (p *Printer) Success(format string, args ...any) {
	p.print(p.out, p.outColor, p.outStyle.success, format, args...)
}

// Error prints a recovered failure to the error stream.
func (p *Printer) Error(format string, args ...any) {
	p.print(p.errw, p.errColor, p.errStyle.err, format, args...)
}

// Err prints err to the error stream.
func (p *Printer) Err(err error) {
	p.Error("%v", err)
}
