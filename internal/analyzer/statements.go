package analyzer

import "github.com/oxhq/morfx/internal/grammar"

// compoundStatement pushes a new scope (optionally seeded with a function's
// parameter list), walks every block item, and pops the scope on the way
// out (§4.3.5).
func (a *Analyzer) compoundStatement(n *grammar.Node, seed []VariableInfo) error {
	a.pushScope(seed)
	defer a.popScope()

	c := a.begin(n)
	if !c.is("OB") {
		return errf("compound-statement", "expected '{'")
	}
	a.em.openBrace()
	c.advance() // auto-emits the leading "\n" before the first item, if any

	for !c.done() && !c.is("CB") {
		item := c.node()
		var err error
		switch item.Name {
		case "declaration":
			err = a.localDeclaration(item)
		case "statement":
			err = a.statement(item)
		default:
			err = errf("compound-statement", "unexpected block item %q", item.Name)
		}
		if err != nil {
			return err
		}
		c.advance()
	}
	a.em.closeBrace()
	a.em.write("\n")
	return nil
}

func (a *Analyzer) statement(n *grammar.Node) error {
	c := a.begin(n)
	inner := c.node()
	switch inner.Name {
	case "labeled-statement":
		return a.labeledStatement(inner)
	case "compound-statement":
		return a.compoundStatement(inner, nil)
	case "expression-statement":
		return a.expressionStatement(inner)
	case "selection-statement":
		return a.selectionStatement(inner)
	case "iteration-statement":
		return a.iterationStatement(inner)
	case "jump-statement":
		return a.jumpStatement(inner)
	default:
		return errf("statement", "unexpected statement child %q", inner.Name)
	}
}

// labeledStatement handles "id: stmt", "case expr: stmt" and "default:
// stmt" (§4.3.5).
func (a *Analyzer) labeledStatement(n *grammar.Node) error {
	c := a.begin(n)
	switch {
	case c.is("identifier"):
		a.em.write(c.node().Text + ": ")
		c.advance() // identifier -> ":"
		c.advance() // ":" -> statement
		return a.statement(c.node())
	case c.is("case"):
		c.advance() // "case" -> expr
		a.em.write("case ")
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance() // expr -> ":"
		c.advance() // ":" -> statement
		a.em.write(": ")
		return a.statement(c.node())
	case c.is("default"):
		c.advance() // "default" -> ":"
		c.advance() // ":" -> statement
		a.em.write("default: ")
		return a.statement(c.node())
	default:
		return errf("labeled-statement", "unexpected node %q", c.node().Name)
	}
}

func (a *Analyzer) expressionStatement(n *grammar.Node) error {
	c := a.begin(n)
	if c.is(";") {
		a.em.write(";\n")
		return nil
	}
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	a.em.write(";\n")
	return nil
}

// selectionStatement handles "if (expr) stmt [else stmt]" and "switch
// (expr) stmt" (§4.3.5). An if-body ending in "}\n" has that newline
// trimmed so a trailing "else" renders on the same line.
func (a *Analyzer) selectionStatement(n *grammar.Node) error {
	c := a.begin(n)
	switch {
	case c.is("if"):
		c.advance() // "if" -> "("
		c.advance() // "(" -> expr
		a.em.write("if (")
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance() // expr -> ")"
		c.advance() // ")" -> statement
		a.em.write(") ")
		if err := a.statement(c.node()); err != nil {
			return err
		}
		c.advance() // statement -> else-statement, or done
		if c.done() {
			return nil
		}
		a.em.trimTrailingNewline()
		a.em.write(" else ")
		c.advance() // "else" -> statement
		return a.statement(c.node())
	case c.is("switch"):
		c.advance() // "switch" -> "("
		c.advance() // "(" -> expr
		a.em.write("switch (")
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance() // expr -> ")"
		c.advance() // ")" -> statement
		a.em.write(") ")
		return a.statement(c.node())
	default:
		return errf("selection-statement", "unexpected node %q", c.node().Name)
	}
}

// iterationStatement handles while, do-while and the two for forms
// (§4.3.5). for pushes its own scope around the whole construct so an
// optional header declaration is scoped to the loop.
func (a *Analyzer) iterationStatement(n *grammar.Node) error {
	c := a.begin(n)
	switch {
	case c.is("while"):
		a.em.write("while")
		c.advance() // auto-emits the space -> "("
		a.em.write("(")
		c.advance() // "(" -> expr
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance() // expr -> ")"
		a.em.write(")")
		c.advance() // ")" -> ";" or (auto-space +) statement
		return a.loopBody(c)

	case c.is("do"):
		a.em.write("do")
		c.advance() // auto-emits the space -> statement
		if err := a.statement(c.node()); err != nil {
			return err
		}
		a.em.trimTrailingNewline()
		c.advance() // statement -> "while"
		a.em.write(" while")
		c.advance() // auto-emits nothing ("${while}${(}" joined by skip) -> "("
		a.em.write("(")
		c.advance() // "(" -> expr
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		c.advance() // expr -> ")"
		a.em.write(")")
		c.advance() // ")" -> ";"
		a.em.write(";\n")
		return nil

	case c.is("for"):
		a.pushScope(nil)
		defer a.popScope()

		a.em.write("for")
		c.advance() // auto-emits the space -> "("
		a.em.write("(")
		c.advance() // "(" -> init

		if c.is("declaration") {
			if err := a.localDeclaration(c.node()); err != nil {
				return err
			}
			a.em.trimTrailingNewline()
			c.advance() // declaration -> second slot, auto-emits the space after
		} else {
			if err := a.optionalExprThenSemi(c); err != nil {
				return err
			}
		}

		if err := a.optionalExprThenSemi(c); err != nil {
			return err
		}

		if !c.is(")") {
			if err := a.walkExpr(c.node()); err != nil {
				return err
			}
			c.advance()
		}
		a.em.write(")")
		c.advance() // ")" -> ";" or (auto-space +) statement
		return a.loopBody(c)

	default:
		return errf("iteration-statement", "unexpected node %q", c.node().Name)
	}
}

// optionalExprThenSemi emits an optional expression followed by the ';' it
// is always paired with in the for-loop header grammar, advancing c past
// both.
func (a *Analyzer) optionalExprThenSemi(c *cursor) error {
	if c.is(";") {
		a.em.write(";")
		c.advance()
		return nil
	}
	if err := a.walkExpr(c.node()); err != nil {
		return err
	}
	c.advance() // expr -> ";"
	a.em.write(";")
	c.advance() // past ";"
	return nil
}

// loopBody emits a collapsed ";\n" for an empty body, otherwise the body
// statement; the grammar's own "${+ }" connector already supplied the space
// before it as c was advanced into position (§4.3.5).
func (a *Analyzer) loopBody(c *cursor) error {
	if c.is(";") {
		a.em.write(";\n")
		return nil
	}
	return a.statement(c.node())
}

func (a *Analyzer) jumpStatement(n *grammar.Node) error {
	c := a.begin(n)
	switch {
	case c.is("goto"):
		c.advance()
		a.em.write("goto " + c.node().Text + ";\n")
		return nil
	case c.is("continue"):
		a.em.write("continue;\n")
		return nil
	case c.is("break"):
		a.em.write("break;\n")
		return nil
	case c.is("return"):
		c.advance()
		if c.is(";") {
			a.em.write("return;\n")
			return nil
		}
		a.em.write("return ")
		if err := a.walkExpr(c.node()); err != nil {
			return err
		}
		a.em.write(";\n")
		return nil
	default:
		return errf("jump-statement", "unexpected node %q", c.node().Name)
	}
}
