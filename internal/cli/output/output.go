// Package output renders CLI output as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto picks text output, styled when stdout is a terminal.
	ModeAuto Mode = "auto"
	// ModeText forces plain text output.
	ModeText Mode = "text"
	// ModeJSON emits machine-readable JSON.
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header   lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

func newStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Header:   plain,
			Bold:     plain,
			Muted:    plain,
			Error:    plain,
			Warning:  plain,
			Success:  plain,
			FilePath: plain,
		}
	}
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Renderer writes command output in the selected mode. Styling is
// applied only when the destination is an interactive terminal.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer for the given writers and mode. An
// unknown mode falls back to auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeAuto, ModeText, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(mode == ModeAuto && useColor(out)),
	}
}

// useColor reports whether out is a terminal that accepts ANSI color.
func useColor(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// EffectiveMode resolves ModeAuto to the concrete output mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styles returns the active style set.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Writer returns the destination for normal output.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Printf writes formatted text to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line to the output writer.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Errorf writes formatted text to the error writer, styled as an error.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprint(r.errOut, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Success writes a success line to the output writer.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.styles.Success.Render(msg))
}

// JSON writes v to the output writer as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
