// Package diag implements the compiler's diagnostic engine (spec 4.4,
// 7). Diagnostics are data, never Go errors: the lexer, parser, and
// analyzer each hold a reference to an *Engine and call Report,
// continuing afterward with their own recovery strategy. Nothing in
// this package returns an error value to its caller.
package diag

import (
	"fmt"
	"strings"

	"github.com/exzgit/sonic/internal/syntax"
)

// Kind categorizes the cause of a diagnostic (spec 7).
type Kind int

const (
	Invalid Kind = iota
	Unexpected
	Syntax
	Semantic
	Internal
	Unimplemented
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unexpected:
		return "unexpected"
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	case Internal:
		return "internal"
	case Unimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Severity classifies how serious a Diagnostic is (spec 4.4).
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "severity(?)"
	}
}

// Diagnostic is one accumulated report: a category, severity, source
// location, message, and optional note/hint (spec 4.4: "(error_type,
// severity, location, message, note?, hint?)"). Col/EndCol are 1-based
// byte columns on Pos.Line() forming the caret range [Col, EndCol).
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Pos      syntax.Pos
	EndCol   uint32 // exclusive end column on Pos.Line(); 0 means "one column"
	Message  string
	Note     string
	Hint     string
}

// span returns the inclusive start and exclusive end column of d,
// always at least one column wide.
func (d Diagnostic) span() (start, end uint32) {
	start = d.Pos.Col()
	end = d.EndCol
	if end <= start {
		end = start + 1
	}
	return start, end
}

// Engine accumulates diagnostics for a single compilation run and
// renders them on Flush (spec 4.4, 5: "a single shared sink,
// append-only until flush").
type Engine struct {
	diags   []Diagnostic
	sources map[string][]string // filename -> lines, for caret rendering
	Color   bool                // emit ANSI SGR sequences
}

// NewEngine creates an empty diagnostic engine.
func NewEngine() *Engine {
	return &Engine{sources: make(map[string][]string)}
}

// AddSource registers src's text under filename so that later Flush
// calls can quote the offending line. Safe to call more than once for
// the same filename (module resolution may load a file independently
// of the entry module); the latest text wins.
func (e *Engine) AddSource(filename string, src []byte) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	e.sources[filename] = strings.Split(text, "\n")
}

// Report appends d to the accumulated set. Never fails.
func (e *Engine) Report(d Diagnostic) {
	e.diags = append(e.diags, d)
}

// Reportf is a convenience wrapper building a Diagnostic's Message
// with fmt.Sprintf.
func (e *Engine) Reportf(kind Kind, sev Severity, pos syntax.Pos, format string, args ...interface{}) {
	e.Report(Diagnostic{Kind: kind, Severity: sev, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Size returns the number of accumulated diagnostics.
func (e *Engine) Size() int { return len(e.diags) }

// Diagnostics returns the accumulated diagnostics in report order.
func (e *Engine) Diagnostics() []Diagnostic { return e.diags }

// HadErrors reports whether any accumulated diagnostic has Error
// severity.
func (e *Engine) HadErrors() bool {
	for _, d := range e.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Flush renders every accumulated diagnostic to w in report order and
// returns whether any of them was Error severity. Per spec 4.4, the
// process-termination half of "flush... terminates the process with
// exit code 1" is the caller's responsibility (cmd/sonicc), keeping
// this package usable from tests without exiting the test binary.
func (e *Engine) Flush(w writer) bool {
	for _, d := range e.diags {
		e.render(w, d)
	}
	return e.HadErrors()
}

// writer is the minimal sink Flush needs; satisfied by *os.File,
// *bytes.Buffer, etc.
type writer interface {
	Write(p []byte) (int, error)
}

func (e *Engine) render(w writer, d Diagnostic) {
	sev := d.Severity.String()
	sevColored := sev
	if e.Color {
		sevColored = sgr(sevColor(d.Severity)) + sev + sgrReset
	}
	fmt.Fprintf(w, "%s: %s\n", sevColored, d.Message)
	fmt.Fprintf(w, "  --> %s (%s)\n", d.Pos.String(), d.Kind.String())

	line, ok := e.line(d.Pos)
	if ok {
		fmt.Fprintf(w, "   |\n")
		fmt.Fprintf(w, "%3d | %s\n", d.Pos.Line(), line)
		fmt.Fprintf(w, "   | %s\n", caret(line, d, e.Color))
	}

	if d.Note != "" {
		fmt.Fprintf(w, "note: %s\n", d.Note)
	}
	if d.Hint != "" {
		fmt.Fprintf(w, "hint: %s\n", d.Hint)
	}
}

func (e *Engine) line(pos syntax.Pos) (string, bool) {
	lines, ok := e.sources[pos.Filename()]
	if !ok {
		return "", false
	}
	idx := int(pos.Line()) - 1
	if idx < 0 || idx >= len(lines) {
		return "", false
	}
	return lines[idx], true
}

// caret builds the padding-and-marker line beneath the quoted source
// line. Leading tabs are echoed as tabs so the terminal's own tab
// width keeps the marker aligned (spec 4.4).
func caret(line string, d Diagnostic, color bool) string {
	start, end := d.span()
	var pad strings.Builder
	runes := []rune(line)
	for i := uint32(1); i < start && int(i-1) < len(runes); i++ {
		if runes[i-1] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	width := int(end - start)
	if width < 1 {
		width = 1
	}
	marker := strings.Repeat("^", width)
	if color {
		return pad.String() + sgr(sevColor(d.Severity)) + marker + sgrReset
	}
	return pad.String() + marker
}

const (
	sgrReset = "\x1b[0m"
)

func sgr(code string) string { return "\x1b[" + code + "m" }

func sevColor(s Severity) string {
	switch s {
	case Error:
		return "1;31" // bold red
	case Warning:
		return "1;33" // bold yellow
	default:
		return "1;36" // bold cyan
	}
}
