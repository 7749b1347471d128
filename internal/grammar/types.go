// Package grammar implements a PEG-style recursive-descent matcher with
// backtracking: a set of named rules compiled from a small textual DSL are
// matched against an input buffer to produce an annotated parse tree.
//
// The engine is deliberately generic — it knows nothing about Addaat. A
// concrete language is just a sequence of AddRule/UpdateRuleText calls (see
// the langdef package) plus a root rule name.
package grammar

// Kind discriminates the variants of a compiled rule expression.
type Kind uint8

const (
	// KindLiteral matches a single exact byte.
	KindLiteral Kind = iota
	// KindRange matches any byte in an inclusive [Lo, Hi] range.
	KindRange
	// KindConcat matches Left immediately followed by Right.
	KindConcat
	// KindChoice matches Left, and only if Left fails (including everything
	// that follows it) tries Right. Ordered choice, first success wins.
	KindChoice
	// KindStar matches Operand zero or more times, greedily, with
	// cooperative backoff into whatever follows it (see Expr.match).
	KindStar
	// KindOptional matches Operand if possible, otherwise matches nothing.
	KindOptional
	// KindRuleRef defers to another named rule.
	KindRuleRef
	// KindFirstMatch tries each of Alternatives in order, accepting the
	// first success unless Exclusion says otherwise.
	KindFirstMatch
	// KindAnchor always succeeds without consuming input (ε).
	KindAnchor
	// KindAny matches a single arbitrary byte, failing only at end of input.
	// Produced by a bare '*' in rule text (as opposed to a postfix X^*).
	KindAny
	// KindUnresolved marks a rule registered via AddRule(..., "STUB!", ...)
	// whose real text has not been installed yet via UpdateRuleText.
	KindUnresolved
)

// Expr is a compiled rule-expression node. Only the fields relevant to Kind
// are populated; it is a closed tagged union rather than an interface so the
// matcher can switch on Kind without a type assertion per node.
type Expr struct {
	Kind Kind

	// KindLiteral
	Lit byte

	// KindRange
	Lo, Hi byte

	// KindConcat, KindChoice
	Left, Right *Expr

	// KindStar, KindOptional
	Operand *Expr

	// KindRuleRef
	RuleName string

	// KindFirstMatch
	Alternatives  []*Expr
	Exclusion     *Expr
	ExcludeEquals bool // true for "==", false for "!="
}

// Rule is one named production in a Grammar.
type Rule struct {
	Name string
	Expr *Expr

	// Pushing rules contribute a Node to the parse tree when they match.
	// Plain (non-pushing) rules are transparent: their children splice
	// directly into whichever pushing rule is currently being built.
	Pushing bool

	// Synthetic rules carry a fixed marker string as their Node.Text
	// instead of the source substring they matched (formatting hints:
	// "insert space", "insert \n", "insert \ns", "line-cont").
	Synthetic bool

	text string // original rule text, kept for diagnostics/debugging
}

// Node is one entry in the parse tree produced by a successful Match. Only
// pushing rules produce a Node. A node owns its children; Parent is a
// non-owning back-reference for upward traversal.
type Node struct {
	Name     string
	Text     string
	Children []*Node
	Parent   *Node
}

// Diagnostics describes how far the matcher got before giving up: the
// furthest byte offset reached during the whole match attempt, and the
// stack of rule names whose match was in progress at that moment.
type Diagnostics struct {
	FurthestPos   int
	FurthestRules []string
}

// MatchResult is the outcome of Grammar.Match.
type MatchResult struct {
	Success     bool
	MatchLength int
	Root        *Node
	Diagnostics Diagnostics
}
