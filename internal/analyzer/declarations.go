package analyzer

import (
	"fmt"

	"github.com/oxhq/morfx/internal/grammar"
)

// parseTypeSpecifier lowers one type-specifier subtree to a VariableType
// (§4.3.1): a primitive keyword, a class or enum reference, or an identifier
// standing in for one (reachable only when class-specifier's identical match
// somehow didn't win first), followed by zero or more array-specifier
// children counted as arrayDepth.
func (a *Analyzer) parseTypeSpecifier(n *grammar.Node) (VariableType, error) {
	c := beginSilent(n)
	var t VariableType

	switch {
	case c.is("void"):
		t.Base = BaseVoid
		c.advance()
	case c.is("char"):
		t.Base = BaseChar
		c.advance()
	case c.is("short"):
		t.Base = BaseShort
		c.advance()
	case c.is("int"):
		t.Base = BaseInt
		c.advance()
	case c.is("long"):
		t.Base = BaseLong
		c.advance()
	case c.is("float"):
		t.Base = BaseFloat
		c.advance()
	case c.is("double"):
		t.Base = BaseDouble
		c.advance()
	case c.is("class-specifier"):
		t.Base = BaseClass
		t.ClassIndex = a.classIndex(a.resolveClass(firstChildText(c.node())))
		c.advance()
	case c.is("identifier"):
		t.Base = BaseClass
		t.ClassIndex = a.classIndex(a.resolveClass(c.node().Text))
		c.advance()
	case c.is("enum"):
		// enum-specifier is a transparent rule: its own children (the "enum"
		// token, an optional tag identifier, an optional brace body) splice
		// directly in here rather than under their own wrapper node, same as
		// enumerator-list and enumerator below it. Declaration-time
		// recognition and building the flat enumConstants table is all this
		// level asks for; full enum typing is out of scope (see the package
		// doc) — any later expression use of one of these names is rejected
		// by walkExpr instead.
		t.Base = BaseEnum
		for !c.done() && !c.is("array-specifier") {
			if c.is("enumeration-constant") {
				a.enumConstants[firstChildText(c.node())] = true
			}
			c.advance()
		}
	default:
		return t, errf("type-specifier", "unrecognized type specifier")
	}

	for !c.done() {
		if !c.is("array-specifier") {
			return t, errf("type-specifier", "unexpected node %q after base type", c.node().Name)
		}
		t.ArrayDepth++
		c.advance()
	}

	if t.Base == BaseVoid && t.ArrayDepth > 0 {
		return t, errf("type-specifier", "Can't make arrays of void type")
	}
	return t, nil
}

func (a *Analyzer) resolveClass(name string) *ClassInfo {
	cl := a.findClass(name)
	if cl == nil {
		cl = &ClassInfo{Name: name}
		a.classes = append(a.classes, cl)
	}
	return cl
}

func firstChildText(n *grammar.Node) string {
	if len(n.Children) == 0 {
		return n.Text
	}
	return n.Children[0].Text
}

// collectIdentifiers walks the rest of c, collecting the text of every
// "identifier" node met along the way (identifier-list is plain, so its
// identifiers, the separating "," and the terminating ";" all show up as
// direct children of the declaration node; the tokens are skipped over).
func collectIdentifiers(c *silentCursor) []string {
	var names []string
	for !c.done() {
		if c.node().Name == "identifier" {
			names = append(names, c.node().Text)
		}
		c.advance()
	}
	return names
}

// globalDeclaration handles one top-level "declaration" node (§4.3.2).
func (a *Analyzer) globalDeclaration(n *grammar.Node) error {
	c := beginSilent(n)
	static := false
	if c.is("static") {
		static = true
		c.advance()
	}
	if !c.is("type-specifier") {
		return errf("declaration", "expected type-specifier")
	}
	typ, err := a.parseTypeSpecifier(c.node())
	if err != nil {
		return err
	}
	if typ.Base == BaseVoid {
		return errf("declaration", "variable cannot have type void")
	}
	c.advance()

	for _, name := range collectIdentifiers(c) {
		if err := a.declareGlobal(name, typ, static); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) declareGlobal(name string, typ VariableType, static bool) error {
	for i := range a.globals {
		if a.globals[i].Name != name {
			continue
		}
		if !a.globals[i].Type.Equal(typ) {
			return errf("declaration", "redefinition of %q with a different type", name)
		}
		a.em.write(fmt.Sprintf("%s %s;\n", typ.CType(a.classes), name))
		return nil
	}
	a.globals = append(a.globals, VariableInfo{Name: name, Type: typ, Static: static})
	a.em.write(fmt.Sprintf("%s %s;\n", typ.CType(a.classes), name))
	return nil
}

// localDeclaration handles one "declaration" block item inside a function
// body (§4.3.2, §4.3.5). Non-static names are combined onto a single inline
// line; static names are hoisted individually, nothing printed at the
// statement site.
func (a *Analyzer) localDeclaration(n *grammar.Node) error {
	c := beginSilent(n)
	static := false
	if c.is("static") {
		static = true
		c.advance()
	}
	if !c.is("type-specifier") {
		return errf("declaration", "expected type-specifier")
	}
	typ, err := a.parseTypeSpecifier(c.node())
	if err != nil {
		return err
	}
	if typ.Base == BaseVoid {
		return errf("declaration", "variable cannot have type void")
	}
	c.advance()

	scope := a.topScope()
	var inline []string
	for _, name := range collectIdentifiers(c) {
		if scope.find(name) != nil {
			return errf("declaration", "redefinition of %q", name)
		}
		scope.Locals = append(scope.Locals, VariableInfo{Name: name, Type: typ, Static: static})
		if static {
			a.em.writeHoist(fmt.Sprintf("%s _scope%d_%s_;\n", typ.CType(a.classes), scope.ID, name))
		} else {
			inline = append(inline, name)
		}
	}
	if len(inline) > 0 {
		a.em.write(typ.CType(a.classes) + " ")
		for i, name := range inline {
			if i > 0 {
				a.em.write(", ")
			}
			a.em.write(name)
		}
		a.em.write(";\n")
	}
	return nil
}

// memberDeclaration handles one "declaration" inside a class body: the
// target container is the class's member list rather than a scope, and even
// type-identical duplicates are errors (§4.3.2, §4.3.4).
func (a *Analyzer) memberDeclaration(n *grammar.Node, cl *ClassInfo) error {
	c := beginSilent(n)
	static := false
	if c.is("static") {
		static = true
		c.advance()
	}
	if !c.is("type-specifier") {
		return errf("declaration", "expected type-specifier")
	}
	typ, err := a.parseTypeSpecifier(c.node())
	if err != nil {
		return err
	}
	if typ.Base == BaseVoid {
		return errf("declaration", "member cannot have type void")
	}
	c.advance()

	for _, name := range collectIdentifiers(c) {
		for _, m := range cl.Members {
			if m.Name == name {
				return errf("declaration", "redefinition of member %q", name)
			}
		}
		cl.Members = append(cl.Members, VariableInfo{Name: name, Type: typ, Static: static})
	}
	return nil
}

// classDeclaration handles both the forward form ("class Name;") and the
// definition form ("class Name { members... }") of §4.3.4.
func (a *Analyzer) classDeclaration(n *grammar.Node) error {
	c := beginSilent(n)
	c.advance() // "class" -> name
	name := c.node().Text
	c.advance() // name -> ";" or "OB"

	cl := a.resolveClass(name)

	if c.is(";") {
		a.em.write("struct " + name + ";\n")
		return nil
	}
	if !c.is("OB") {
		return errf("class-declaration", "expected '{' or ';'")
	}
	if cl.Defined {
		return errf("class-declaration", "Class redefinition")
	}
	cl.Defined = true
	c.advance() // "OB" -> first member or "CB"

	for !c.done() && !c.is("CB") {
		if !c.is("declaration") {
			return errf("class-declaration", "unexpected node %q in class body", c.node().Name)
		}
		if err := a.memberDeclaration(c.node(), cl); err != nil {
			return err
		}
		c.advance()
	}

	a.em.write(fmt.Sprintf("struct %s {\n", name))
	a.em.indent++
	for _, m := range cl.Members {
		if !m.Static {
			a.em.write(fmt.Sprintf("%s %s;\n", m.Type.CType(a.classes), m.Name))
		}
	}
	a.em.indent--
	a.em.write("};\n")

	for _, m := range cl.Members {
		if m.Static {
			a.em.write(fmt.Sprintf("%s _%s_%s_;\n", m.Type.CType(a.classes), cl.Name, m.Name))
		}
	}
	return nil
}
