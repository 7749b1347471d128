package analyzer

import "github.com/oxhq/morfx/internal/grammar"

// Analyzer walks one translation-unit AST, maintaining symbol tables across
// the whole translation and writing C source text into its emitter.
type Analyzer struct {
	em *emitter

	globals   []VariableInfo
	functions []*FunctionInfo
	classes   []*ClassInfo
	scopes    []*Scope
	nextScope int

	// enumConstants is the minimal enum table described in §9: every
	// enumerator name seen across every enum-specifier in the translation,
	// flat-namespaced like C's own enums. It exists only to let expression
	// walking detect and reject a value's use (enum/class resolution inside
	// expressions is not yet supported), not to type or assign it.
	enumConstants map[string]bool

	currentFunc  *FunctionInfo
	currentClass *ClassInfo
}

// Options configures emission.
type Options struct {
	ColorizeCode bool
}

// Translate walks root (expected to be a "translation-unit" node) and
// returns the generated C source, or the first semantic error encountered.
func Translate(root *grammar.Node, opts Options) (string, error) {
	a := &Analyzer{em: newEmitter(opts.ColorizeCode), enumConstants: map[string]bool{}}
	if err := a.translationUnit(root); err != nil {
		return "", err
	}
	return a.em.result(), nil
}

func (a *Analyzer) translationUnit(root *grammar.Node) error {
	c := a.begin(root)
	for !c.done() {
		if err := a.externalDeclaration(c.node()); err != nil {
			return err
		}
		c.advance()
	}
	return nil
}

// externalDeclaration classifies one translation-unit child by its rule
// name: function-definition, function-declaration, declaration (global
// variable), or class-declaration (§4.3.3, §4.3.4).
func (a *Analyzer) externalDeclaration(n *grammar.Node) error {
	inner := n
	if n.Name == "external-declaration" && len(n.Children) == 1 {
		inner = n.Children[0]
	}
	switch inner.Name {
	case "function-definition":
		return a.functionDefinition(inner)
	case "function-declaration":
		return a.functionDeclaration(inner)
	case "declaration":
		return a.globalDeclaration(inner)
	case "class-declaration":
		return a.classDeclaration(inner)
	default:
		return errf("external-declaration", "unexpected external declaration child %q", inner.Name)
	}
}

// pushScope creates a new scope with a fresh monotonic id, optionally
// seeded with locals (used when entering a function body with its
// parameter list), and returns it.
func (a *Analyzer) pushScope(seed []VariableInfo) *Scope {
	s := &Scope{ID: a.nextScope, Locals: append([]VariableInfo(nil), seed...)}
	a.nextScope++
	a.scopes = append(a.scopes, s)
	return s
}

func (a *Analyzer) popScope() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *Analyzer) topScope() *Scope {
	if len(a.scopes) == 0 {
		return nil
	}
	return a.scopes[len(a.scopes)-1]
}

func (a *Analyzer) findClass(name string) *ClassInfo {
	for _, cl := range a.classes {
		if cl.Name == name {
			return cl
		}
	}
	return nil
}

func (a *Analyzer) findFunction(name string) *FunctionInfo {
	for _, f := range a.functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// lookupVariableType resolves name's declared type by searching the scope
// stack innermost-first, then the globals table. Used by postfixExpression
// to recognize the base of a "." access well enough to reject a static
// member through it (§9); an unresolved name is left for the emitted C
// compiler to diagnose.
func (a *Analyzer) lookupVariableType(name string) (VariableType, bool) {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if v := a.scopes[i].find(name); v != nil {
			return v.Type, true
		}
	}
	for i := range a.globals {
		if a.globals[i].Name == name {
			return a.globals[i].Type, true
		}
	}
	return VariableType{}, false
}

func (a *Analyzer) classIndex(cl *ClassInfo) int {
	for i, c := range a.classes {
		if c == cl {
			return i
		}
	}
	return -1
}
