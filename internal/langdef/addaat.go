// Package langdef configures a grammar.Grammar for the Addaat source
// language: the fixed token set, whitespace/comment handling, literal
// syntaxes, and the full phrase-structure grammar down to translation-unit.
//
// This is a data-only package — a long, linear sequence of rule
// definitions, grounded directly on the language's own grammar (ported
// here from the C-family tool it replaces). Left recursion in that source
// grammar is eliminated the same way its own comments describe: a
// left-recursive production becomes a head followed by a greedy-repetition
// tail, which inverts nothing since each tail element commutes with its
// operator.
package langdef

import "github.com/oxhq/morfx/internal/grammar"

// New builds and finalizes the Addaat grammar, rooted at translation-unit.
func New() (*grammar.Grammar, error) {
	b := &builder{g: grammar.NewGrammar()}

	b.tokens()
	b.spaceMarkers()
	b.whitespaceAndComments()
	b.identifiersAndConstants()
	b.expressions()
	b.declarations()
	b.statements()
	b.externalDefinitions()

	if b.err != nil {
		return nil, b.err
	}
	if err := b.g.SetRootRule("translation-unit"); err != nil {
		return nil, err
	}
	return b.g, nil
}

// builder accumulates AddRule/UpdateRuleText calls, short-circuiting on the
// first error so each section below reads as a flat list of definitions
// rather than a chain of "if err != nil" checks.
type builder struct {
	g   *grammar.Grammar
	err error
}

func (b *builder) add(name, text string, pushing, synthetic bool) {
	if b.err != nil {
		return
	}
	b.err = b.g.AddRule(name, text, pushing, synthetic)
}

// push registers a node-producing rule.
func (b *builder) push(name, text string) { b.add(name, text, true, false) }

// plain registers a transparent rule.
func (b *builder) plain(name, text string) { b.add(name, text, false, false) }

// synth registers a synthetic formatting-hint rule: its matched node carries
// its own name as Text instead of the (empty) source substring it consumed.
func (b *builder) synth(name string, pushing bool) { b.add(name, "", pushing, true) }

// stubPush/stubPlain register a forward-referenced rule, to be replaced by
// update before the grammar is finalized. Pushing-ness is fixed here and is
// not affected by the later update.
func (b *builder) stubPush(name string)  { b.add(name, "STUB!", true, false) }
func (b *builder) stubPlain(name string) { b.add(name, "STUB!", false, false) }

func (b *builder) update(name, text string) {
	if b.err != nil {
		return
	}
	b.err = b.g.UpdateRuleText(name, text)
}

// tokens registers every operator and keyword token. Each is pushing: a
// token is always a leaf the emitter re-prints verbatim (§4.3.6).
func (b *builder) tokens() {
	b.push("+", "+")
	b.push("-", `\-`)
	b.push("*", `\*`)
	b.push("/", "/")
	b.push("%", "%")
	b.push("!", "!")
	b.push("~", "~")
	b.push("&", "&")
	b.push("|", `\|`)
	b.push("^", `\^`)
	b.push("<<", "<<")
	b.push(">>", ">>")
	b.push("=", "=")
	b.push("+=", "+=")
	// The upstream source doubles the dash here ("\-\-="), matching "--="
	// instead of "-="; corrected to a single escaped dash (see DESIGN.md).
	b.push("-=", `\-=`)
	b.push("*=", `\*=`)
	b.push("/=", "/=")
	b.push("%=", "%=")
	b.push("<<=", "<<=")
	b.push(">>=", ">>=")
	b.push("^=", `\^=`)
	b.push("&=", "&=")
	b.push("|=", `\|=`)
	b.push("==", "==")
	b.push("!=", "!=")
	b.push("<", "<")
	b.push(">", ">")
	b.push("<=", "<=")
	b.push(">=", ">=")
	b.push("&&", "&&")
	b.push("||", `\|\|`)
	b.push("(", "(")
	b.push(")", ")")
	b.push("[", "[")
	b.push("]", "]")
	b.push("OB", `\{`)
	b.push("CB", `\}`)
	b.push(":", ":")
	b.push(";", ";")
	b.push("?", "?")
	b.push(",", ",")
	b.push(".", ".")
	b.push("++", "++")
	b.push("--", `\-\-`)
	b.push("...", "...")
	b.push("class", "class")
	b.push("enum", "enum")
	b.push("if", "if")
	b.push("else", "else")
	b.push("while", "while")
	b.push("do", "do")
	b.push("for", "for")
	b.push("continue", "continue")
	b.push("break", "break")
	b.push("return", "return")
	b.push("switch", "switch")
	b.push("case", "case")
	b.push("default", "default")
	b.push("goto", "goto")
	b.push("void", "void")
	b.push("char", "char")
	b.push("short", "short")
	b.push("int", "int")
	b.push("long", "long")
	b.push("float", "float")
	b.push("double", "double")
	b.push("signed", "signed")
	b.push("unsigned", "unsigned")
	b.push("static", "static")
}

// spaceMarkers forward-declares the zero-width node the emitter uses as a
// "print a space here" hint; its real home is in whitespaceAndComments.
func (b *builder) spaceMarkers() {
	b.synth("insert space", true)
}

// whitespaceAndComments defines the ignorable family (spaces, line/block
// comments, line continuations) and the two repetition wrappers used
// everywhere else to skip them: skip (zero or more) and gap (one or more,
// currently unreferenced but kept for parity with the source grammar).
//
// The upstream grammar names these two wrapper rules "" and " " — empty and
// single-space — which collide with this engine's non-empty/unique rule
// name requirement, so they're named skip/gap here; every "${}" reference
// elsewhere in this file becomes "${skip}".
func (b *builder) whitespaceAndComments() {
	b.plain("ε", "")
	b.add("line-cont", "\\\\\n", true, true)
	b.plain("white-space", "{\\ |\t|\r|\n|${line-cont}} {\\ |\t|\r|\n|${line-cont}}^*")
	b.push("line-comment", "${white-space}|${ε} // {{* \\\\\n}^*} * \n|${ε}")
	b.push("block-comment", `${white-space}|${ε} /\* * \*/`)
	b.plain("ignorable", "#{{white-space} {line-comment} {block-comment}}")
	b.plain("skip", "${ignorable}^*")
	b.plain("gap", "${ignorable} ${ignorable}^*")

	b.plain("+ ", "${skip} ${insert space}")
	b.synth("insert \n", true)
	b.synth("insert \ns", true)
	b.plain("+\n", "${skip} ${insert \n}")
	b.plain("+\ns", "${skip} ${insert \ns}")
}

// identifiersAndConstants defines identifiers plus integer, floating,
// character and string constant syntaxes.
func (b *builder) identifiersAndConstants() {
	b.plain("digit", "0-9")
	b.plain("non-zero-digit", "1-9")
	b.plain("non-digit", "_|a-z|A-Z")
	b.plain("hexadecimal-prefix", "0x|X")
	b.plain("hexadecimal-digit", "0-9|a-f|A-F")
	b.plain("hex-quad", "${hexadecimal-digit}${hexadecimal-digit}${hexadecimal-digit}${hexadecimal-digit}")
	b.plain("universal-character-name", `{\\u ${hex-quad}} | {\\U ${hex-quad} ${hex-quad}}`)

	// Identifier.
	b.plain("identifier-non-digit", "${non-digit} | ${universal-character-name}")
	b.push("identifier", "${identifier-non-digit} {${digit} | ${identifier-non-digit}}^*")

	// Integer constant.
	b.plain("decimal-constant", "${non-zero-digit} ${digit}^*")
	b.plain("octal-constant", "0 0-7^*")
	b.plain("hexadecimal-constant", "${hexadecimal-prefix} ${hexadecimal-digit} ${hexadecimal-digit}^*")
	b.plain("integer-suffix", `{ u|U l|L|{ll}|{LL}|${ε} } | { l|L|{ll}|{LL} u|U|${ε} }`)
	b.push("integer-constant", "${decimal-constant}|${octal-constant}|${hexadecimal-constant} ${integer-suffix}|${ε}")

	// Decimal floating point.
	b.plain("fractional-constant", "{${digit}^* . ${digit} ${digit}^*} | {${digit} ${digit}^* . }")
	b.plain("exponent-part", `e|E +|\-|${ε} ${digit} ${digit}^*`)
	b.plain("floating-suffix", "f|l|F|L")
	b.plain("decimal-floating-constant",
		"{${fractional-constant} ${exponent-part}|${ε} ${floating-suffix}|${ε}} | "+
			"{${digit} ${digit}^* ${exponent-part} ${floating-suffix}|${ε}}")

	// Hexadecimal floating point.
	b.plain("hexadecimal-fractional-constant",
		"{${hexadecimal-digit}^* . ${hexadecimal-digit} ${hexadecimal-digit}^*} | "+
			"{${hexadecimal-digit} ${hexadecimal-digit}^* . }")
	b.plain("binary-exponent-part", `p|P +|\-|${ε} ${digit} ${digit}^*`)
	b.plain("hexadecimal-floating-constant",
		"${hexadecimal-prefix} ${hexadecimal-fractional-constant}|{${hexadecimal-digit}${hexadecimal-digit}^*} "+
			"${binary-exponent-part} ${floating-suffix}|${ε}")

	b.push("floating-constant", "${decimal-floating-constant} | ${hexadecimal-floating-constant}")

	// Enumeration constant.
	b.push("enumeration-constant", "${identifier}")

	// Character constant. Unknown escape sequences are implementation
	// defined; we pass the escaped character through like gcc/clang do.
	b.plain("c-char", "\x01-\x09 | \x0b-\x5b | \x5d-\xff")                                  // anything but newline or backslash
	b.plain("c-char-with-backslash-without-uUxX", "\x01-\x09 | \x0b-\x54 | \x56-\x57| \x59-\x74 | \x76-\x77 | \x79-\xff")
	b.plain("hexadecimal-escape-sequence", `\\x ${hexadecimal-digit} ${hexadecimal-digit}^*`)
	b.push("character-constant",
		`L|u|U|${ε} ' { ${c-char}|${hexadecimal-escape-sequence}|${universal-character-name}|{\\${c-char-with-backslash-without-uUxX}} }^* '`)

	b.push("constant", "#{{integer-constant} {floating-constant} {enumeration-constant} {character-constant}}")

	// String literal.
	b.push("string-literal-fragment",
		`{u8}|u|U|L|${ε} " { ${c-char}|${hexadecimal-escape-sequence}|${universal-character-name}|{\\${c-char-with-backslash-without-uUxX}} }^* "`)
	b.push("string-literal", "${string-literal-fragment} {${skip} ${string-literal-fragment}}|${ε}")
}

// expressions defines the primary-through-comma-expression precedence
// chain. Each binary-operator level is a head followed by a greedy-repeat
// tail (the left-recursion rewrite described at the top of this file).
func (b *builder) expressions() {
	b.stubPush("expression") // forward reference from primary-expression's parenthesized form
	b.push("primary-expression",
		"${identifier} | "+
			"${constant} | "+
			"${string-literal} | "+
			"{ ${(} ${skip} ${expression} ${skip} ${)} }")

	// Postfix expression. type-name is referenced by cast-expression below
	// but, unlike every other forward reference here, the source grammar
	// never supplies it a real definition — we close that gap with a
	// direct alias onto type-specifier rather than leaving a dangling stub.
	b.plain("type-name", "${type-specifier}")
	b.stubPush("argument-expression-list")
	b.push("postfix-expression",
		"${primary-expression} {"+
			"   {${skip} ${[}  ${skip} ${expression} ${skip} ${]} } | "+
			"   {${skip} ${(}  ${skip} ${argument-expression-list}|${ε} ${skip} ${)} } | "+
			"   {${skip} ${.}  ${skip} ${identifier}} | "+
			"   {${skip} ${++} } | "+
			"   {${skip} ${--} }"+
			"}^*")

	// Argument expression list.
	b.stubPush("assignment-expression")
	b.update("argument-expression-list",
		"${assignment-expression} {"+
			"   ${skip} ${,} ${+ } ${assignment-expression}"+
			"}^*")

	// Unary expression. The source grammar registers several of these
	// forward-reference stubs as plain and updates them as pushing
	// (mismatched ruleData on the two calls); the handler triple that
	// decides pushing-vs-plain is fixed at the stub call, so every such
	// mismatch below is registered with the pushing-ness its real
	// (updateRule) definition implies, not its stub declaration — see
	// DESIGN.md.
	b.stubPush("unary-expression")
	b.stubPlain("unary-operator")
	b.stubPush("cast-expression")
	b.update("unary-expression",
		"${postfix-expression} | "+
			"{ ${++}             ${skip} ${unary-expression} } | "+
			"{ ${--}             ${skip} ${unary-expression} } | "+
			"{ ${unary-operator} ${skip} ${cast-expression}  }")

	// Unary operator: reject ++/-- (handled above) so + - ~ ! don't
	// shadow them.
	b.update("unary-operator", "#{{+}{-}{~}{!} {++}{--} != {++}{--}}")

	// Cast expression.
	b.update("cast-expression",
		"${unary-expression} | "+
			"{ ${(} ${skip} ${type-name} ${skip} ${)} ${skip} ${cast-expression} }")

	b.push("multiplicative-expression",
		"${cast-expression} {"+
			"   ${+ } ${*}|${/}|${%} ${+ } ${cast-expression}"+
			"}^*")

	b.push("additive-expression",
		"${multiplicative-expression} {"+
			"   ${+ } ${+}|${-} ${+ } ${multiplicative-expression}"+
			"}^*")

	b.push("shift-expression",
		"${additive-expression} {"+
			"   ${+ } ${<<}|${>>} ${+ } ${additive-expression}"+
			"}^*")

	b.push("relational-expression",
		"${shift-expression} {"+
			"   ${+ } #{{<} {>} {<=} {>=}} ${+ } ${shift-expression}"+
			"}^*")

	b.push("equality-expression",
		"${relational-expression} {"+
			"   ${+ } ${==}|${!=} ${+ } ${relational-expression}"+
			"}^*")

	// AND expression: reject && (the logical operator, handled separately).
	b.push("and-expression",
		"${equality-expression} {"+
			"   ${+ } #{{&} {&&} != {&&}} ${+ } ${equality-expression}"+
			"}^*")

	b.push("xor-expression",
		"${and-expression} {"+
			"   ${+ } ${^} ${+ } ${and-expression}"+
			"}^*")

	// Inclusive OR expression: reject || (the logical operator).
	b.push("or-expression",
		"${xor-expression} {"+
			"   ${+ } #{{|} {||} != {||}} ${+ } ${xor-expression}"+
			"}^*")

	b.push("logical-and-expression",
		"${or-expression} {"+
			"   ${+ } ${&&} ${+ } ${or-expression}"+
			"}^*")

	b.push("logical-or-expression",
		"${logical-and-expression} {"+
			"   ${+ } ${||} ${+ } ${logical-and-expression}"+
			"}^*")

	// Conditional expression.
	b.stubPush("conditional-expression")
	b.update("conditional-expression",
		"${logical-or-expression} | "+
			"{${logical-or-expression} ${+ } ${?} ${+ } ${expression} ${+ } ${:} ${+ } ${conditional-expression}}")

	// Assignment expression.
	b.stubPlain("assignment-operator")
	b.update("assignment-expression",
		"${conditional-expression} | "+
			"{${unary-expression} ${+ } ${assignment-operator} ${+ } ${assignment-expression}}")
	b.update("assignment-operator", "#{{=} {*=} {/=} {%=} {+=} {-=} {<<=} {>>=} {&=} {^=} {|=}}")

	// Expression.
	b.update("expression",
		"${assignment-expression} {"+
			"   ${skip} ${,} ${skip} ${assignment-expression}"+
			"}^*")

	b.push("constant-expression", "${conditional-expression}")
}

// declarations defines variable/class/enum declarations.
func (b *builder) declarations() {
	b.stubPlain("declaration-specifiers")
	b.stubPlain("identifier-list")
	b.push("declaration",
		"${declaration-specifiers} ${+ } ${identifier-list} ${skip} ${;}")

	b.update("identifier-list",
		"${identifier} {"+
			"   ${skip} ${,} ${+ } ${identifier}"+
			"}^*")

	b.stubPlain("storage-class-specifier")
	b.stubPush("type-specifier")
	b.update("declaration-specifiers", "${storage-class-specifier}|${ε} ${+ } ${type-specifier}")

	b.update("storage-class-specifier", "#{{static} {identifier} != {identifier}}")

	b.stubPush("class-specifier")
	b.stubPlain("enum-specifier")
	b.stubPush("array-specifier")
	b.update("type-specifier",
		"#{{void}     {char}            "+
			"  {short}    {int}      {long} "+
			"  {float}    {double}          "+
			"  {class-specifier}            "+
			"  {enum-specifier}             "+
			"  {identifier} != {identifier}}"+
			"{${skip} ${array-specifier}}^*")

	b.update("array-specifier", "${[} ${skip} ${]}")
	b.update("class-specifier", "${identifier}")

	b.stubPlain("declaration-list")
	b.push("class-declaration",
		"${class} ${+ } ${identifier} "+
			"{${skip} ${;} ${+\n}} |"+
			"{${+ } ${OB} ${+\n} ${declaration-list} ${skip} ${CB} ${+\n}}")

	b.update("declaration-list", "${declaration} ${+\n} ${declaration-list}|${ε}")

	b.stubPlain("enumerator-list")
	b.update("enum-specifier",
		"{ ${enum} ${skip} ${identifier}|${ε} ${skip} ${OB} ${skip} ${enumerator-list} ${skip} ${,}|${ε} ${skip} ${CB} } | "+
			"{ ${enum} ${skip} ${identifier} }")

	b.stubPlain("enumerator")
	b.update("enumerator-list",
		"${enumerator} {"+
			"   ${skip} ${,} ${+ } ${enumerator}"+
			"}^*")

	b.update("enumerator", "${enumeration-constant} { ${skip} = ${skip} ${constant-expression} }|${ε}")
}

// statements defines labeled, compound, expression, selection, iteration
// and jump statements.
func (b *builder) statements() {
	b.stubPush("labeled-statement")
	b.stubPush("compound-statement")
	b.stubPush("expression-statement")
	b.stubPush("selection-statement")
	b.stubPush("iteration-statement")
	b.stubPush("jump-statement")
	b.push("statement",
		"#{   {labeled-statement}"+
			"    {compound-statement}"+
			"  {expression-statement}"+
			"   {selection-statement}"+
			"   {iteration-statement}"+
			"        {jump-statement}}")

	b.update("labeled-statement",
		"{${identifier}                      ${skip} ${:} ${skip} ${statement}} | "+
			"{${case} ${skip} ${constant-expression} ${skip} ${:} ${skip} ${statement}} | "+
			"{${default}                         ${skip} ${:} ${skip} ${statement}}")

	// The source grammar's stub call for this one uses the opposite
	// mismatch from its neighbors: registered pushing, updated plain. The
	// real (updateRule) definition governs, as elsewhere — see DESIGN.md.
	b.stubPlain("block-item-list")
	b.update("compound-statement", "${OB} ${skip} ${block-item-list}|${ε} ${skip} ${CB}")

	b.stubPlain("block-item")
	b.update("block-item-list",
		"${+\n} ${block-item} {{"+
			"   ${+\n} ${block-item}"+
			"}^*} ${+\n}")
	b.update("block-item", "#{{declaration} {statement}}")

	b.update("expression-statement", "${expression}|${ε} ${skip} ${;}")

	b.update("selection-statement",
		"{ ${if}     ${skip} ${(} ${skip} ${expression} ${skip} ${)} ${skip} ${statement} {${skip} ${else} ${skip} ${statement}}|${ε} } | "+
			"{ ${switch} ${skip} ${(} ${skip} ${expression} ${skip} ${)} ${skip} ${statement}                                     }")

	b.update("iteration-statement",
		"{ ${while} ${+ }                           ${(} ${skip} ${expression} ${skip} ${)} ${skip} ${;}|{${+ } ${statement}} } | "+
			"{ ${do}    ${+ } ${statement} ${skip} ${while} ${skip} ${(} ${skip} ${expression} ${skip} ${)} ${skip} ${;}                      } | "+
			"{ ${for}   ${+ } ${(} ${skip} ${expression}|${ε} ${skip} ${;} ${+ } ${expression}|${ε} ${skip} ${;} ${+ } ${expression}|${ε} ${skip} ${)} ${skip} ${;}|{${+ } ${statement}} } | "+
			"{ ${for}   ${+ } ${(} ${skip} ${declaration}              ${+ } ${expression}|${ε} ${skip} ${;} ${+ } ${expression}|${ε} ${skip} ${)} ${skip} ${;}|{${+ } ${statement}} }")

	b.update("jump-statement",
		"{ ${goto}     ${skip} ${identifier}      ${skip} ${;} } | "+
			"{ ${continue} ${skip}                        ${;} } | "+
			"{ ${break}    ${skip}                        ${;} } | "+
			"{ ${return}   ${skip} ${expression}|${ε} ${skip} ${;} }")
}

// externalDefinitions defines translation-unit, function declarations and
// function definitions.
func (b *builder) externalDefinitions() {
	b.stubPlain("external-declaration")
	b.push("translation-unit",
		"${skip} ${external-declaration} {{"+
			"   ${skip} ${+\ns} ${external-declaration}"+
			"}^*} ${skip}")

	b.stubPush("function-definition") // stub call was plain in the source grammar; see DESIGN.md
	b.stubPush("function-declaration")
	b.update("external-declaration", "#{{function-definition} {function-declaration} {declaration} {class-declaration}}")

	b.push("parameter-declaration", "${type-specifier} ${+ } ${identifier}")

	b.plain("parameter-list",
		"${parameter-declaration} {"+
			"   ${skip} ${,} ${+ } ${parameter-declaration}"+
			"}^*")

	b.update("function-definition",
		"${declaration-specifiers} ${+ } "+
			"${identifier} ${+ } "+
			"${(} ${skip} ${parameter-list}|${ε} ${skip} ${)} ${+ } "+
			"${compound-statement} ${+\n}")

	// function-declaration shares function-definition's head but ends in
	// ';' instead of a body (the prototype form §4.3.3 calls for, which the
	// original grammar omitted entirely — added here to round out the
	// external-declaration set it already names).
	b.update("function-declaration",
		"${declaration-specifiers} ${+ } "+
			"${identifier} ${+ } "+
			"${(} ${skip} ${parameter-list}|${ε} ${skip} ${)} ${skip} ${;} ${+\n}")
}
