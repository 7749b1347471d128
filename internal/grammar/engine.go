package grammar

import "fmt"

// Grammar is a mutable set of named rules. Build one with NewGrammar,
// AddRule and (for forward references) UpdateRuleText, then call
// SetRootRule and Match.
type Grammar struct {
	rules     map[string]*Rule
	order     []string // insertion order, for deterministic diagnostics
	root      string
	finalized bool
}

// NewGrammar returns an empty grammar ready for AddRule calls.
func NewGrammar() *Grammar {
	return &Grammar{rules: make(map[string]*Rule)}
}

// AddRule compiles text and registers it under name. Passing the literal
// string "STUB!" registers a placeholder for a rule whose definition is only
// known once later rules exist (mutual/forward recursion); replace it with
// UpdateRuleText before the grammar is finalized.
//
// synthetic marks one of the four formatting-hint rules whose matched Node
// carries a fixed marker string instead of the source substring it consumed.
func (g *Grammar) AddRule(name, text string, pushing, synthetic bool) error {
	if name == "" {
		return &CompileError{RuleName: name, Text: text, Reason: "rule name must not be empty"}
	}
	if _, exists := g.rules[name]; exists {
		return &CompileError{RuleName: name, Text: text, Reason: "rule already defined"}
	}
	expr, err := compileRuleText(name, text)
	if err != nil {
		return err
	}
	g.rules[name] = &Rule{Name: name, Expr: expr, Pushing: pushing, Synthetic: synthetic, text: text}
	g.order = append(g.order, name)
	return nil
}

// UpdateRuleText recompiles and replaces the expression of a previously
// registered rule (typically one added as "STUB!"). Pushing/Synthetic are
// left as they were set by AddRule.
func (g *Grammar) UpdateRuleText(name, text string) error {
	rule, ok := g.rules[name]
	if !ok {
		return &CompileError{RuleName: name, Text: text, Reason: "no such rule to update"}
	}
	expr, err := compileRuleText(name, text)
	if err != nil {
		return err
	}
	rule.Expr = expr
	rule.text = text
	return nil
}

// SetRootRule designates the rule Match starts from, and finalizes the
// grammar: every rule reference must resolve and every stub must have been
// updated. It is safe to call Match only after this succeeds.
func (g *Grammar) SetRootRule(name string) error {
	if _, ok := g.rules[name]; !ok {
		return &ClosureError{RuleName: name, Reason: "root rule is not defined"}
	}
	if err := g.checkClosure(); err != nil {
		return err
	}
	g.root = name
	g.finalized = true
	return nil
}

func (g *Grammar) checkClosure() error {
	for _, name := range g.order {
		rule := g.rules[name]
		if rule.Expr.Kind == KindUnresolved {
			return &ClosureError{RuleName: name, Reason: "stub rule was never updated via UpdateRuleText"}
		}
		if err := checkRefs(rule.Expr, g.rules); err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
	}
	return nil
}

func checkRefs(e *Expr, rules map[string]*Rule) error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindRuleRef:
		if _, ok := rules[e.RuleName]; !ok {
			return &ClosureError{RuleName: e.RuleName, Reason: "referenced rule is never defined"}
		}
	case KindConcat, KindChoice:
		if err := checkRefs(e.Left, rules); err != nil {
			return err
		}
		return checkRefs(e.Right, rules)
	case KindStar, KindOptional:
		return checkRefs(e.Operand, rules)
	case KindFirstMatch:
		for _, alt := range e.Alternatives {
			if err := checkRefs(alt, rules); err != nil {
				return err
			}
		}
		return checkRefs(e.Exclusion, rules)
	}
	return nil
}

// Match runs the grammar's root rule against input, starting at byte 0.
// input is taken as-is: callers that read a source file with a terminating
// NUL sentinel (see ioutil.ReadSourceFile) must strip it first.
func (g *Grammar) Match(input []byte) MatchResult {
	if !g.finalized {
		panic("grammar: Match called before SetRootRule")
	}

	ms := &matchState{input: input, grammar: g}
	var result MatchResult

	rootExpr := &Expr{Kind: KindRuleRef, RuleName: g.root}
	ok := rootExpr.match(ms, 0, nil, func(pos int, children []*Node) bool {
		result.MatchLength = pos
		if len(children) > 0 {
			result.Root = children[0]
		}
		return true
	})

	result.Success = ok && result.MatchLength == len(input)
	result.Diagnostics = Diagnostics{FurthestPos: ms.furthestPos, FurthestRules: ms.furthestSet}
	return result
}
