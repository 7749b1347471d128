// Package analyzer walks an Addaat AST (as produced by internal/grammar
// configured with internal/langdef) enforcing the language's semantics —
// scoping, redeclaration policy, signature compatibility, class/static
// lowering — while emitting equivalent C source text.
package analyzer

import "fmt"

// Base enumerates the primitive and structural type kinds a VariableType can
// carry. Class and enum are recognized at declaration sites but not resolved
// inside expressions (see the package doc on non-goals).
type Base uint8

const (
	BaseVoid Base = iota
	BaseClass
	BaseEnum
	BaseChar
	BaseShort
	BaseInt
	BaseLong
	BaseFloat
	BaseDouble
)

// VariableType is the triple (base, classIndex, arrayDepth). classIndex only
// means something when base is BaseClass; arrayDepth counts trailing `[]`.
type VariableType struct {
	Base       Base
	ClassIndex int
	ArrayDepth int
}

// Equal compares componentwise.
func (t VariableType) Equal(o VariableType) bool {
	return t.Base == o.Base && t.ClassIndex == o.ClassIndex && t.ArrayDepth == o.ArrayDepth
}

// CType lowers the type to its C spelling: int->int32_t, long->int64_t,
// everything else verbatim, followed by one '*' per array dimension.
func (t VariableType) CType(classes []*ClassInfo) string {
	var base string
	switch t.Base {
	case BaseVoid:
		base = "void"
	case BaseChar:
		base = "char"
	case BaseShort:
		base = "short"
	case BaseInt:
		base = "int32_t"
	case BaseLong:
		base = "int64_t"
	case BaseFloat:
		base = "float"
	case BaseDouble:
		base = "double"
	case BaseClass:
		if t.ClassIndex >= 0 && t.ClassIndex < len(classes) {
			base = "struct " + classes[t.ClassIndex].Name
		} else {
			base = "struct <unknown>"
		}
	case BaseEnum:
		base = "int32_t"
	default:
		base = "void"
	}
	for i := 0; i < t.ArrayDepth; i++ {
		base += "*"
	}
	return base
}

// VariableInfo is one declared name: its type and whether it is static.
type VariableInfo struct {
	Name   string
	Type   VariableType
	Static bool
}

// Clone copies the Static flag and Type but gives the clone name as Name.
func (v VariableInfo) Clone(name string) VariableInfo {
	return VariableInfo{Name: name, Type: v.Type, Static: v.Static}
}

// FunctionInfo is one function's registered signature plus definition state.
type FunctionInfo struct {
	Name       string
	Params     []VariableInfo
	ReturnType VariableType
	Defined    bool
	Static     bool
}

// SameSignature reports whether two functions have componentwise-equal
// return types and parameter type lists (names need not match).
func SameSignature(a, b *FunctionInfo) bool {
	if !a.ReturnType.Equal(b.ReturnType) {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !a.Params[i].Type.Equal(b.Params[i].Type) {
			return false
		}
	}
	return true
}

// ClassInfo is one declared class: its members in declaration order and
// whether a body has been seen yet.
type ClassInfo struct {
	Name    string
	Members []VariableInfo
	Defined bool
}

// staticMember reports whether name is a static member of the class t
// refers to, false for any non-class type or unknown member.
func (t VariableType) staticMember(classes []*ClassInfo, name string) bool {
	if t.Base != BaseClass || t.ClassIndex < 0 || t.ClassIndex >= len(classes) {
		return false
	}
	for _, m := range classes[t.ClassIndex].Members {
		if m.Name == name {
			return m.Static
		}
	}
	return false
}

// Scope is one lexical region: a monotonic id and its local variables.
// Scopes are pushed/popped in a stack held by the analyzer.
type Scope struct {
	ID     int
	Locals []VariableInfo
}

func (s *Scope) find(name string) *VariableInfo {
	for i := range s.Locals {
		if s.Locals[i].Name == name {
			return &s.Locals[i]
		}
	}
	return nil
}

// SemanticError is a fatal diagnostic raised while walking the AST:
// redefinition, a void variable/parameter, a signature mismatch, and so on.
type SemanticError struct {
	Where string
	Msg   string
}

func (e *SemanticError) Error() string {
	if e.Where == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Where, e.Msg)
}

func errf(where, format string, args ...any) error {
	return &SemanticError{Where: where, Msg: fmt.Sprintf(format, args...)}
}
