package grammar

// cont is the continuation a sub-expression calls once it has matched:
// "given that I consumed input up to pos and built these children, does the
// rest of the pattern succeed?" Returning false tells the callee to try an
// alternative (a different choice branch, one fewer repetition, ...).
type cont func(pos int, children []*Node) bool

// matchState carries the input buffer, the grammar being matched against,
// and the bookkeeping needed to report a useful parse error.
type matchState struct {
	input       []byte
	grammar     *Grammar
	ruleStack   []string
	furthestPos int
	furthestSet []string
}

func (ms *matchState) note(pos int) {
	if pos > ms.furthestPos {
		ms.furthestPos = pos
		ms.furthestSet = append([]string(nil), ms.ruleStack...)
	}
}

func (ms *matchState) pushRule(name string) {
	ms.ruleStack = append(ms.ruleStack, name)
}

func (ms *matchState) popRule() {
	ms.ruleStack = ms.ruleStack[:len(ms.ruleStack)-1]
}

// match attempts to consume e starting at pos, threading the accumulated
// sibling-children slice through k. It returns whether the whole chain
// (this expression plus everything k represents) eventually succeeded.
func (e *Expr) match(ms *matchState, pos int, children []*Node, k cont) bool {
	switch e.Kind {
	case KindLiteral:
		ms.note(pos)
		if pos < len(ms.input) && ms.input[pos] == e.Lit {
			return k(pos+1, children)
		}
		return false

	case KindRange:
		ms.note(pos)
		if pos < len(ms.input) && ms.input[pos] >= e.Lo && ms.input[pos] <= e.Hi {
			return k(pos+1, children)
		}
		return false

	case KindAnchor:
		ms.note(pos)
		return k(pos, children)

	case KindAny:
		ms.note(pos)
		if pos < len(ms.input) {
			return k(pos+1, children)
		}
		return false

	case KindConcat:
		return e.Left.match(ms, pos, children, func(pos2 int, children2 []*Node) bool {
			return e.Right.match(ms, pos2, children2, k)
		})

	case KindChoice:
		if e.Left.match(ms, pos, children, k) {
			return true
		}
		return e.Right.match(ms, pos, children, k)

	case KindOptional:
		if e.Operand.match(ms, pos, children, k) {
			return true
		}
		return k(pos, children)

	case KindStar:
		if e.Operand.match(ms, pos, children, func(pos2 int, children2 []*Node) bool {
			if pos2 == pos {
				// zero-width match inside a star: stop recursing or loop forever
				return false
			}
			return e.match(ms, pos2, children2, k)
		}) {
			return true
		}
		return k(pos, children)

	case KindRuleRef:
		return e.matchRuleRef(ms, pos, children, k)

	case KindFirstMatch:
		return e.matchFirstMatch(ms, pos, children, k)

	case KindUnresolved:
		panic("grammar: matched an unresolved stub rule — UpdateRuleText was never called")

	default:
		panic("grammar: unknown expression kind")
	}
}

func (e *Expr) matchRuleRef(ms *matchState, pos int, children []*Node, k cont) bool {
	rule, ok := ms.grammar.rules[e.RuleName]
	if !ok {
		panic("grammar: unresolved rule reference \"" + e.RuleName + "\" — closure was not checked before Match")
	}

	ms.pushRule(rule.Name)
	defer ms.popRule()

	if !rule.Pushing {
		return rule.Expr.match(ms, pos, children, k)
	}

	return rule.Expr.match(ms, pos, nil, func(pos2 int, innerChildren []*Node) bool {
		node := &Node{Name: rule.Name, Children: innerChildren}
		if rule.Synthetic {
			node.Text = rule.Name
		} else {
			node.Text = string(ms.input[pos:pos2])
		}
		for _, c := range innerChildren {
			c.Parent = node
		}
		newChildren := make([]*Node, len(children), len(children)+1)
		copy(newChildren, children)
		newChildren = append(newChildren, node)
		return k(pos2, newChildren)
	})
}

func (e *Expr) matchFirstMatch(ms *matchState, pos int, children []*Node, k cont) bool {
	for _, alt := range e.Alternatives {
		accepted := alt.match(ms, pos, children, func(pos2 int, children2 []*Node) bool {
			if e.Exclusion != nil {
				matchedLen := pos2 - pos
				exLen := -1
				e.Exclusion.match(ms, pos, nil, func(pos3 int, _ []*Node) bool {
					exLen = pos3 - pos
					return true
				})
				if e.ExcludeEquals {
					if exLen != matchedLen {
						return false
					}
				} else {
					if exLen > matchedLen {
						return false
					}
				}
			}
			return k(pos2, children2)
		})
		if accepted {
			return true
		}
	}
	return false
}
