package analyzer

import "github.com/fatih/color"

// colorStack mirrors the emitter's code-coloring layer: comments push a
// color while they're being emitted and pop it afterward; everything else
// renders in the default color. Disabled entirely unless colorizeCode is on.
type colorStack struct {
	enabled bool
	stack   []*color.Color
}

var colorComment = color.New(color.FgHiBlack)

func newColorStack(enabled bool) *colorStack {
	return &colorStack{enabled: enabled}
}

func (c *colorStack) push(col *color.Color) { c.stack = append(c.stack, col) }

func (c *colorStack) pop() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// wrap colors text in the active color, or returns it unchanged when
// coloring is disabled, no color is active, or text is a single space or
// a single newline (the source's "don't color whitespace" rule).
func (c *colorStack) wrap(text string) string {
	if !c.enabled || len(c.stack) == 0 || text == " " || text == "\n" {
		return text
	}
	return c.stack[len(c.stack)-1].Sprint(text)
}
