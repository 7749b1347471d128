package grammar

import "fmt"

// CompileError reports a malformed rule-text string rejected at
// grammar-construction time.
type CompileError struct {
	RuleName string
	Text     string
	Pos      int
	Reason   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("grammar: rule %q: %s (at offset %d in %q)", e.RuleName, e.Reason, e.Pos, e.Text)
}

// ClosureError reports a rule reference that never resolves, or a stub rule
// (AddRule(..., "STUB!", ...)) that was never updated, discovered when the
// grammar is finalized.
type ClosureError struct {
	RuleName string
	Reason   string
}

func (e *ClosureError) Error() string {
	return fmt.Sprintf("grammar: rule %q: %s", e.RuleName, e.Reason)
}
