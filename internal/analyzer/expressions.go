package analyzer

import "github.com/oxhq/morfx/internal/grammar"

// walkExpr dispatches on an expression node's rule name and re-emits it,
// walking down through the precedence chain (§4.3.6): assignment ->
// conditional -> logical-or -> logical-and -> or -> xor -> and -> equality
// -> relational -> shift -> additive -> multiplicative -> cast -> unary ->
// postfix -> primary.
func (a *Analyzer) walkExpr(n *grammar.Node) error {
	switch n.Name {
	case "identifier":
		// enumeration-constant parses identically to a bare identifier (the
		// grammar's "constant" alternative for it never wins against
		// primary-expression's earlier "identifier" branch), so this is the
		// only point able to catch one reaching an expression. §9 calls for
		// a fatal error here rather than silently emitting the bare name.
		if a.enumConstants[n.Text] {
			return errf("identifier", "use of enum constant %q in an expression is not yet supported", n.Text)
		}
		a.em.write(n.Text)
		return nil
	case "constant", "string-literal":
		a.em.write(n.Text)
		return nil
	case "primary-expression":
		return a.primaryExpression(n)
	case "postfix-expression":
		return a.postfixExpression(n)
	case "unary-expression":
		return a.unaryExpression(n)
	case "cast-expression":
		return a.castExpression(n)
	case "multiplicative-expression", "additive-expression", "shift-expression",
		"relational-expression", "equality-expression", "and-expression",
		"xor-expression", "or-expression", "logical-and-expression",
		"logical-or-expression", "expression":
		// Every one of these is a head operand followed by zero or more
		// {operator, operand} pairs; and/xor/or already only ever match the
		// single-character operator form (&& and || are excluded by the
		// grammar at that level), so no further flattening is needed here.
		return a.binaryChain(n)
	case "conditional-expression":
		return a.conditionalExpression(n)
	case "assignment-expression":
		return a.assignmentExpression(n)
	case "constant-expression":
		c := a.begin(n)
		return a.walkExpr(c.node())
	default:
		return errf("expression", "unexpected expression node %q", n.Name)
	}
}

func (a *Analyzer) binaryChain(n *grammar.Node) error {
	c := a.begin(n)
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	c.advance()
	for !c.done() {
		a.em.write(c.node().Text)
		c.advance()
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance()
	}
	return nil
}

func (a *Analyzer) conditionalExpression(n *grammar.Node) error {
	c := a.begin(n)
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	c.advance()
	if c.done() {
		return nil
	}
	a.em.write(c.node().Text) // "?"
	c.advance()
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	c.advance()
	a.em.write(c.node().Text) // ":"
	c.advance()
	return a.walkExpr(c.node())
}

func (a *Analyzer) assignmentExpression(n *grammar.Node) error {
	c := a.begin(n)
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	c.advance()
	if c.done() {
		return nil
	}
	a.em.write(c.node().Text) // assignment-operator
	c.advance()
	return a.walkExpr(c.node())
}

func (a *Analyzer) primaryExpression(n *grammar.Node) error {
	c := a.begin(n)
	if c.is("(") {
		a.em.write("(")
		c.advance()
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance()
		a.em.write(")")
		return nil
	}
	return a.walkExpr(c.node())
}

// postfixExpression walks a primary-expression head followed by zero or
// more [expr], (args), .identifier, ++ or -- suffixes (§4.3.6). It also
// tracks the head's declared type well enough to reject a "." onto a class's
// static member (§9): that member was hoisted to a `_Class_field_` global by
// classDeclaration, so silently emitting `head.field` would reference a
// struct field that was never generated.
func (a *Analyzer) postfixExpression(n *grammar.Node) error {
	c := a.begin(n)
	headType, headKnown := a.identifierType(c.node())
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	c.advance()

	for !c.done() {
		switch {
		case c.is("["):
			a.em.write("[")
			c.advance()
			if err := a.walkExpr(c.node()); err != nil {
				return err
			}
			c.advance()
			a.em.write("]")
			c.advance()
			headKnown = false
		case c.is("("):
			a.em.write("(")
			c.advance()
			if c.is("argument-expression-list") {
				if err := a.binaryChain(c.node()); err != nil {
					return err
				}
				c.advance()
			}
			a.em.write(")")
			c.advance()
			headKnown = false
		case c.is("."):
			c.advance()
			member := c.node().Text
			if headKnown && headType.staticMember(a.classes, member) {
				return errf("postfix-expression", "static class member access (%q) is not yet supported in expressions", member)
			}
			a.em.write("." + member)
			c.advance()
			headKnown = false
		case c.is("++"), c.is("--"):
			a.em.write(c.node().Text)
			c.advance()
		default:
			return errf("postfix-expression", "unexpected node %q", c.node().Name)
		}
	}
	return nil
}

// identifierType reports the declared type of n when n is a
// primary-expression directly wrapping a bare identifier that names a known
// variable — the one shape postfixExpression can resolve a static type for
// without full expression type inference.
func (a *Analyzer) identifierType(n *grammar.Node) (VariableType, bool) {
	if n.Name != "primary-expression" || len(n.Children) != 1 {
		return VariableType{}, false
	}
	id := n.Children[0]
	if id.Name != "identifier" {
		return VariableType{}, false
	}
	return a.lookupVariableType(id.Text)
}

// unaryExpression handles plain postfix pass-through, prefix ++/--, and the
// unary-operator class (+ - ~ !), the latter two with no space before their
// operand (§4.3.6). unary-operator is itself transparent, so its chosen
// token splices in directly rather than under its own wrapper node.
func (a *Analyzer) unaryExpression(n *grammar.Node) error {
	c := a.begin(n)
	switch {
	case c.is("postfix-expression"):
		return a.walkExpr(c.node())
	case c.is("++"), c.is("--"), c.is("+"), c.is("-"), c.is("~"), c.is("!"):
		a.em.write(c.node().Text)
		c.advance()
		return a.walkExpr(c.node())
	default:
		return errf("unary-expression", "unexpected node %q", c.node().Name)
	}
}

// castExpression handles plain unary pass-through and "(TypeName) expr"
// (§4.3.6). type-name is a transparent alias onto type-specifier.
func (a *Analyzer) castExpression(n *grammar.Node) error {
	c := a.begin(n)
	if c.is("unary-expression") {
		return a.walkExpr(c.node())
	}
	if !c.is("(") {
		return errf("cast-expression", "unexpected node %q", c.node().Name)
	}
	c.advance() // "(" -> type-specifier
	typ, err := a.parseTypeSpecifier(c.node())
	if err != nil {
		return err
	}
	c.advance() // type-specifier -> ")"
	c.advance() // ")" -> cast-expression operand
	a.em.write("(" + typ.CType(a.classes) + ") ")
	return a.walkExpr(c.node())
}
