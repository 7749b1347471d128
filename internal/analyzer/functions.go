package analyzer

import "github.com/oxhq/morfx/internal/grammar"

// parseFunctionHead reads the shared prefix of function-declaration and
// function-definition (§4.3.3): optional static, return type, name, and a
// parenthesized parameter list. c is left positioned just past the closing
// ')'. Purely a data-gathering pass: the head is re-emitted from the
// returned FunctionInfo by emitFunctionHead, not from the matched text.
func (a *Analyzer) parseFunctionHead(c *silentCursor) (*FunctionInfo, error) {
	fi := &FunctionInfo{}
	if c.is("static") {
		fi.Static = true
		c.advance()
	}
	if !c.is("type-specifier") {
		return nil, errf("function-head", "expected return type")
	}
	rt, err := a.parseTypeSpecifier(c.node())
	if err != nil {
		return nil, err
	}
	fi.ReturnType = rt
	c.advance()

	if !c.is("identifier") {
		return nil, errf("function-head", "expected function name")
	}
	fi.Name = c.node().Text
	c.advance()

	if !c.is("(") {
		return nil, errf("function-head", "expected '('")
	}
	c.advance()

	params, err := a.parseParameters(c)
	if err != nil {
		return nil, err
	}
	fi.Params = params

	if !c.is(")") {
		return nil, errf("function-head", "expected ')'")
	}
	c.advance()
	return fi, nil
}

// parseParameters reads zero-or-more parameter-declaration siblings,
// stopping at ')'. Each parameter must have a non-void type and a name
// unique within the list (§4.3.3).
func (a *Analyzer) parseParameters(c *silentCursor) ([]VariableInfo, error) {
	var params []VariableInfo
	for !c.done() && c.is("parameter-declaration") {
		pd := beginSilent(c.node())
		if !pd.is("type-specifier") {
			return nil, errf("parameter-declaration", "expected type-specifier")
		}
		typ, err := a.parseTypeSpecifier(pd.node())
		if err != nil {
			return nil, err
		}
		if typ.Base == BaseVoid {
			return nil, errf("parameter-declaration", "parameter cannot have type void")
		}
		pd.advance()
		if !pd.is("identifier") {
			return nil, errf("parameter-declaration", "expected parameter name")
		}
		name := pd.node().Text
		for _, p := range params {
			if p.Name == name {
				return nil, errf("parameter-declaration", "duplicate parameter name %q", name)
			}
		}
		params = append(params, VariableInfo{Name: name, Type: typ})

		c.advance()
		if c.is(",") {
			c.advance()
		}
	}
	return params, nil
}

func (a *Analyzer) emitFunctionHead(fi *FunctionInfo) {
	if fi.Static {
		a.em.write("static ")
	}
	a.em.write(fi.ReturnType.CType(a.classes) + " " + fi.Name + "(")
	for i, p := range fi.Params {
		if i > 0 {
			a.em.write(", ")
		}
		a.em.write(p.Type.CType(a.classes) + " " + p.Name)
	}
	a.em.write(")")
}

// functionDeclaration handles "function-head ;" (§4.3.3): a new name
// registers the function; an existing one must match signatures exactly.
func (a *Analyzer) functionDeclaration(n *grammar.Node) error {
	c := beginSilent(n)
	fi, err := a.parseFunctionHead(c)
	if err != nil {
		return err
	}

	existing := a.findFunction(fi.Name)
	if existing == nil {
		a.functions = append(a.functions, fi)
	} else if !SameSignature(existing, fi) {
		return errf("function-declaration", "conflicting declaration of %q", fi.Name)
	}

	a.emitFunctionHead(fi)
	a.em.write(";\n")
	return nil
}

// functionDefinition handles "function-head compound-statement" (§4.3.3).
func (a *Analyzer) functionDefinition(n *grammar.Node) error {
	c := beginSilent(n)
	fi, err := a.parseFunctionHead(c)
	if err != nil {
		return err
	}

	existing := a.findFunction(fi.Name)
	switch {
	case existing == nil:
		a.functions = append(a.functions, fi)
	case !existing.Defined:
		if !SameSignature(existing, fi) {
			return errf("function-definition", "signature mismatch for %q", fi.Name)
		}
		fi = existing
	default:
		return errf("function-definition", "redefinition of %q", fi.Name)
	}
	fi.Defined = true

	a.emitFunctionHead(fi)
	a.em.write(" ")

	if !c.is("compound-statement") {
		return errf("function-definition", "expected function body")
	}
	prevFunc := a.currentFunc
	a.currentFunc = fi
	err = a.compoundStatement(c.node(), fi.Params)
	a.currentFunc = prevFunc
	return err
}
