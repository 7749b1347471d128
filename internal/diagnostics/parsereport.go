package diagnostics

import (
	"fmt"
	"strings"

	"github.com/oxhq/morfx/internal/grammar"
)

// ParseFailureReport renders a grammar.MatchResult that failed (or matched
// only a strict prefix of the input) into the plain-text diagnostic the
// source tool prints: a matched-length summary, the line/column of the
// furthest position reached, and the rule stack active at that point,
// innermost rule first.
func ParseFailureReport(source []byte, result grammar.MatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Failed! Match: %v, length: %d\n", result.Success, result.MatchLength)

	line, column := lineAndColumn(source, result.Diagnostics.FurthestPos)
	fmt.Fprintf(&b, "          Max match length: %d, line: %d, column: %d\n",
		result.Diagnostics.FurthestPos, line, column)

	rules := result.Diagnostics.FurthestRules
	for i := len(rules) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "            %s\n", rules[i])
	}
	return b.String()
}

// lineAndColumn counts 1-based line/column by scanning source up to (but
// not including) upTo, exactly as the source tool's own error reporter
// does: a newline increments line and resets column to 1, anything else
// just increments column.
func lineAndColumn(source []byte, upTo int) (line, column int) {
	line, column = 1, 1
	if upTo > len(source) {
		upTo = len(source)
	}
	for i := 0; i < upTo; i++ {
		if source[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
