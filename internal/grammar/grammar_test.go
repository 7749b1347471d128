package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralAndConcat(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("greeting", "hi", true, false))
	require.NoError(t, g.SetRootRule("greeting"))

	res := g.Match([]byte("hi"))
	require.True(t, res.Success)
	require.NotNil(t, res.Root)
	assert.Equal(t, "greeting", res.Root.Name)
	assert.Equal(t, "hi", res.Root.Text)

	res = g.Match([]byte("bye"))
	assert.False(t, res.Success)
}

func TestRangeAndChoice(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("digit", "0-9", true, false))
	require.NoError(t, g.AddRule("letter", "a-z|A-Z", true, false))
	require.NoError(t, g.AddRule("token", "${digit}|${letter}", true, false))
	require.NoError(t, g.SetRootRule("token"))

	res := g.Match([]byte("7"))
	require.True(t, res.Success)
	require.Len(t, res.Root.Children, 1)
	assert.Equal(t, "digit", res.Root.Children[0].Name)

	res = g.Match([]byte("Q"))
	require.True(t, res.Success)
	assert.Equal(t, "letter", res.Root.Children[0].Name)

	res = g.Match([]byte("!"))
	assert.False(t, res.Success)
}

func TestStarGreedyWithBackoff(t *testing.T) {
	// digits^* followed by a mandatory terminal "9" — forces the star to
	// give back its last repetition since a pure greedy match would
	// otherwise consume the trailing 9 and leave nothing for the tail.
	g := NewGrammar()
	require.NoError(t, g.AddRule("digit", "0-9", true, false))
	require.NoError(t, g.AddRule("line", "${digit}^* 9", true, false))
	require.NoError(t, g.SetRootRule("line"))

	res := g.Match([]byte("1239"))
	require.True(t, res.Success)
	// three digit children: '1' '2' '3' ; the trailing "9" is consumed by
	// the plain literal, not pushed as a digit node.
	require.Len(t, res.Root.Children, 3)
	assert.Equal(t, "3", res.Root.Children[2].Text)
}

func TestChoiceOfTwoRules(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("sign", `+|\-`, true, false))
	require.NoError(t, g.AddRule("digit", "0-9", true, false))
	require.NoError(t, g.AddRule("signed-digit", "${sign}|${digit}", true, false))
	require.NoError(t, g.SetRootRule("signed-digit"))

	res := g.Match([]byte("-"))
	require.True(t, res.Success)
	assert.Equal(t, "sign", res.Root.Children[0].Name)
}

func TestOptionalViaEpsilonChoice(t *testing.T) {
	// Real rule texts express optionality as X|${ε}, not a dedicated
	// operator — confirm that pattern works end to end.
	g := NewGrammar()
	require.NoError(t, g.AddRule("eps", "", false, false))
	require.NoError(t, g.AddRule("sign", `+|\-`, true, false))
	require.NoError(t, g.AddRule("digit", "0-9", true, false))
	require.NoError(t, g.AddRule("number", "{${sign}|${eps}} ${digit}", true, false))
	require.NoError(t, g.SetRootRule("number"))

	res := g.Match([]byte("-5"))
	require.True(t, res.Success)
	require.Len(t, res.Root.Children, 2)
	assert.Equal(t, "sign", res.Root.Children[0].Name)

	res = g.Match([]byte("5"))
	require.True(t, res.Success)
	require.Len(t, res.Root.Children, 1)
	assert.Equal(t, "digit", res.Root.Children[0].Name)
}

func TestBareStarIsAnyByteWildcard(t *testing.T) {
	// Grounded on block-comment's "/\* * \*/": a bare '*' means "any byte,
	// greedily, with cooperative backoff" so the star gives back input from
	// the end until the closing "*/" can match.
	g := NewGrammar()
	require.NoError(t, g.AddRule("comment", `/\* * \*/`, true, false))
	require.NoError(t, g.SetRootRule("comment"))

	res := g.Match([]byte("/* a * b */"))
	require.True(t, res.Success)
	assert.Equal(t, "/* a * b */", res.Root.Text)

	res = g.Match([]byte("/* unterminated"))
	assert.False(t, res.Success)
}

func TestBareSpaceIsInsignificantButControlBytesAreLiteral(t *testing.T) {
	// Narrow isSpace(): only ASCII space is a concatenation separator.
	// Tab/CR/LF must be matchable as literal bytes in rule text, as the
	// real white-space rule requires.
	g := NewGrammar()
	require.NoError(t, g.AddRule("ws", "\t|\r|\n", true, false))
	require.NoError(t, g.SetRootRule("ws"))

	for _, in := range []string{"\t", "\r", "\n"} {
		res := g.Match([]byte(in))
		require.True(t, res.Success, "input %q", in)
	}
}

func TestForwardReferenceViaStub(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("expr", stubText, true, false))
	require.NoError(t, g.AddRule("digit", "0-9", true, false))
	require.NoError(t, g.UpdateRuleText("expr", "${digit}^*"))
	require.NoError(t, g.SetRootRule("expr"))

	res := g.Match([]byte("42"))
	require.True(t, res.Success)
	assert.Len(t, res.Root.Children, 2)
}

func TestFirstMatchBlockNamesRuleDirectly(t *testing.T) {
	// Unlike the generic '{' choice '}' grouping, a first-match block's
	// {name} is a bare rule name (no '$'), the language definition's own
	// convention, e.g. "#{{static} {identifier} != {identifier}}".
	g := NewGrammar()
	require.NoError(t, g.AddRule("letter", "a-z|A-Z", false, false))
	require.NoError(t, g.AddRule("alnum", "a-z|A-Z|0-9", false, false))
	require.NoError(t, g.AddRule("identifier", "${letter} ${alnum}^*", true, false))
	require.NoError(t, g.AddRule("static-kw", "static", true, false))
	require.NoError(t, g.AddRule("storage-class-specifier",
		"#{{static-kw} {identifier} != {identifier}}", false, false))
	require.NoError(t, g.SetRootRule("storage-class-specifier"))

	res := g.Match([]byte("static"))
	require.True(t, res.Success)
	assert.Equal(t, "static-kw", res.Root.Name)

	res = g.Match([]byte("staticVar"))
	require.True(t, res.Success)
	assert.Equal(t, "identifier", res.Root.Name)
	assert.Equal(t, "staticVar", res.Root.Text)
}

func TestClosureErrorOnDanglingReference(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("a", "${b}", true, false))
	err := g.SetRootRule("a")
	require.Error(t, err)
}

func TestClosureErrorOnUnresolvedStub(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("a", stubText, true, false))
	err := g.SetRootRule("a")
	require.Error(t, err)
}

func TestDiagnosticsFurthestPosition(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("digit", "0-9", true, false))
	require.NoError(t, g.AddRule("triple", "${digit} ${digit} ${digit}", true, false))
	require.NoError(t, g.SetRootRule("triple"))

	res := g.Match([]byte("12x"))
	assert.False(t, res.Success)
	assert.Equal(t, 2, res.Diagnostics.FurthestPos)
}

func TestEscapedReservedLiterals(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("dash", `\-`, true, false))
	require.NoError(t, g.SetRootRule("dash"))
	res := g.Match([]byte("-"))
	require.True(t, res.Success)

	g2 := NewGrammar()
	require.NoError(t, g2.AddRule("star", `\*`, true, false))
	require.NoError(t, g2.SetRootRule("star"))
	res = g2.Match([]byte("*"))
	require.True(t, res.Success)
}

func TestLineContinuationTwoByteLiteral(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("line-cont", `\\\n`, true, true))
	require.NoError(t, g.SetRootRule("line-cont"))
	res := g.Match([]byte("\\\n"))
	require.True(t, res.Success)
	assert.Equal(t, "line-cont", res.Root.Text)
}

func TestCompileErrorOnBareReservedChar(t *testing.T) {
	g := NewGrammar()
	err := g.AddRule("bad", "a-", true, false)
	require.Error(t, err)
}

func TestPlainRuleIsTransparent(t *testing.T) {
	g := NewGrammar()
	require.NoError(t, g.AddRule("digit", "0-9", false, false))
	require.NoError(t, g.AddRule("number", "${digit}^*", true, false))
	require.NoError(t, g.SetRootRule("number"))

	res := g.Match([]byte("9"))
	require.True(t, res.Success)
	// digit is non-pushing: no child nodes at all, just the matched text.
	assert.Len(t, res.Root.Children, 0)
	assert.Equal(t, "9", res.Root.Text)
}
