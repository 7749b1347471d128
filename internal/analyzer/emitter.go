package analyzer

import "strings"

// emitter accumulates generated C text. A secondary buffer collects hoisted
// static-local declarations, prepended to the primary buffer once at the
// very end (earlier text is never rewound once appended).
type emitter struct {
	out      strings.Builder
	hoist    strings.Builder
	indent   int
	colors   *colorStack
	lastByte byte
}

func newEmitter(colorize bool) *emitter {
	return &emitter{colors: newColorStack(colorize)}
}

// write appends text to the primary buffer, indenting after a newline and
// colorizing per the active color stack.
func (e *emitter) write(text string) {
	if text == "" {
		return
	}
	if e.lastByte == '\n' {
		e.out.WriteString(strings.Repeat("    ", e.indent))
	}
	e.out.WriteString(e.colors.wrap(text))
	e.lastByte = text[len(text)-1]
}

func (e *emitter) writeHoist(text string) {
	e.hoist.WriteString(text)
}

func (e *emitter) endsWithNewline() bool { return e.lastByte == '\n' }

// trimTrailingNewline removes a single trailing "\n" from the primary
// buffer, used to join an if-body's closing brace with a following "else".
func (e *emitter) trimTrailingNewline() {
	s := e.out.String()
	if strings.HasSuffix(s, "\n") {
		e.out.Reset()
		e.out.WriteString(s[:len(s)-1])
		if len(e.out.String()) > 0 {
			e.lastByte = e.out.String()[e.out.Len()-1]
		}
	}
}

// result prepends the hoist buffer to the primary buffer.
func (e *emitter) result() string {
	return e.hoist.String() + e.out.String()
}

func (e *emitter) openBrace() {
	e.write("{")
	e.indent++
}

func (e *emitter) closeBrace() {
	e.indent--
	e.write("}")
}
