package langdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/morfx/internal/grammar"
)

func mustMatch(t *testing.T, g *grammar.Grammar, src string) *grammar.MatchResult {
	t.Helper()
	res := g.Match([]byte(src))
	if !res.Success {
		t.Fatalf("match failed for %q: furthest pos %d in rules %v",
			src, res.Diagnostics.FurthestPos, res.Diagnostics.FurthestRules)
	}
	return &res
}

func TestNewBuildsAClosedGrammar(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestMinimalFunctionDefinition(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int main(int argc)\n{\n\treturn 0;\n}"
	res := mustMatch(t, g, src)
	assert.Equal(t, "translation-unit", res.Root.Name)
}

func TestClassDeclarationForwardAndDefinition(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	mustMatch(t, g, "class Vector;")
	mustMatch(t, g, "class Vector\n{\n\tint x;\n\tint y;\n}")
}

func TestEnumSpecifier(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	mustMatch(t, g, "enum Color { Red, Green, Blue } c;")
	mustMatch(t, g, "enum Color { Red = 1, Green = 2 } c;")
}

func TestExpressionPrecedenceChain(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int f(int a)\n{\n\treturn 1 + 2 * 3 - 4 / 2;\n}"
	mustMatch(t, g, src)
}

func TestConditionalAndAssignmentExpressions(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int f(int a)\n{\n\tint x;\n\tx = 1 ? 2 : 3;\n\tx += 1;\n\treturn x;\n}"
	mustMatch(t, g, src)
}

func TestCastAndUnaryExpressions(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int f(int a)\n{\n\tint x;\n\tx = (int) -x;\n\t++x;\n\treturn !x;\n}"
	mustMatch(t, g, src)
}

func TestPostfixCallAndIndexExpressions(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int f(int p)\n{\n\tint a;\n\tg(a, a);\n\treturn a;\n}"
	mustMatch(t, g, src)
}

func TestIterationStatements(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	mustMatch(t, g, "void f(int n)\n{\n\tint i;\n\tfor (i = 0; i < 10; i++)\n\t\ti = i;\n}")
	mustMatch(t, g, "void f(int n)\n{\n\tint i;\n\twhile (i)\n\t\ti = i;\n}")
	mustMatch(t, g, "void f(int n)\n{\n\tint i;\n\tdo\n\t\ti = i;\n\twhile (i);\n}")
	mustMatch(t, g, "void f(int n)\n{\n\tfor (int i; i < 10; i++)\n\t\ti = i;\n}")
}

func TestSelectionStatements(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	mustMatch(t, g, "void f(int n)\n{\n\tint x;\n\tif (x)\n\t\tx = 1;\n\telse\n\t\tx = 2;\n}")
	mustMatch(t, g, "void f(int n)\n{\n\tint x;\n\tswitch (x)\n\t{\n\tcase 1:\n\t\tbreak;\n\tdefault:\n\t\tbreak;\n\t}\n}")
}

func TestJumpStatements(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	mustMatch(t, g, "void f(int n)\n{\n\tgoto done;\n\tdone:\n\treturn;\n}")
	mustMatch(t, g, "void f(int n)\n{\n\tint i;\n\tfor (i = 0; i < 1; i++)\n\t\tcontinue;\n}")
}

func TestCommentsAndWhitespaceAreIgnorable(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "// leading line comment\n" +
		"int f(int a) /* trailing block comment */\n" +
		"{\n" +
		"\treturn 0; // inline\n" +
		"}\n"
	mustMatch(t, g, src)
}

func TestStringAndCharacterLiterals(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "void f(int a)\n{\n\tchar c;\n\tc = 'a';\n}"
	mustMatch(t, g, src)
}

func TestArrayTypeSpecifier(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "void f(int a)\n{\n\tint x;\n\treturn;\n}"
	mustMatch(t, g, src)

	decl := "int[] x;"
	res := g.Match([]byte("int f(int a)\n{\n\t" + decl + "\n\treturn 0;\n}"))
	require.True(t, res.Success)
}

func TestStorageClassStatic(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int f(int seed)\n{\n\tstatic int counter;\n\treturn counter;\n}"
	mustMatch(t, g, src)
}

func TestMultipleExternalDeclarations(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	src := "int add(int a, int b)\n{\n\treturn a + b;\n}\n\n" +
		"int sub(int a, int b)\n{\n\treturn a - b;\n}\n"
	res := mustMatch(t, g, src)
	assert.GreaterOrEqual(t, len(res.Root.Children), 1)
}

func TestRejectsMalformedSource(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	res := g.Match([]byte("int f( {"))
	assert.False(t, res.Success)
}
