package lang

import (
	"context"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/dash/log"
)

// keywords reserves the statement-introducing words. They are never
// valid identifiers.
var keywords = map[string]bool{
	"print":    true,
	"let":      true,
	"if":       true,
	"else":     true,
	"while":    true,
	"break":    true,
	"continue": true,
	"fn":       true,
	"return":   true,
}

// ParseReader parses a parse tree from an io.Reader.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses source text into a parse tree. The returned error,
// if any, is a *ParseError; malformed source is the only failure mode.
func ParseString(ctx context.Context, s string, opts ...Option) (*Tree, error) {
	o := makeOptions(opts...)

	p := &parser{
		input:  []byte(s),
		pos:    0,
		line:   1,
		col:    1,
		logger: o.logger,
	}

	root, err := p.parseProgram()
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("statement_count", len(root.Children)))

	return &Tree{Root: root, Source: s}, nil
}

// parser holds the parser state.
type parser struct {
	input  []byte
	pos    int
	line   int
	col    int
	logger log.Logger
}

// parseProgram parses the entire input as a statement list.
func (p *parser) parseProgram() (*Node, error) {
	root := &Node{Kind: KindProgram, Pos: p.position()}

	for {
		p.skipWhitespaceAndComments()

		if p.eof() {
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		root.Children = append(root.Children, stmt)
	}

	return root, nil
}

// parseStatement dispatches on the leading keyword. Any other leading
// identifier must begin a call statement.
func (p *parser) parseStatement() (*Node, error) {
	pos := p.position()

	word := p.peekWord()

	var (
		inner *Node
		err   error
	)

	switch word {
	case "print":
		inner, err = p.parsePrintStmt()
	case "let":
		inner, err = p.parseLetStmt()
	case "if":
		inner, err = p.parseIfStmt()
	case "while":
		inner, err = p.parseWhileStmt()
	case "break":
		p.skipWord(word)

		inner = &Node{Kind: KindBreakStmt, Pos: pos}
	case "continue":
		p.skipWord(word)

		inner = &Node{Kind: KindContinueStmt, Pos: pos}
	case "fn":
		inner, err = p.parseFnStmt()
	case "return":
		inner, err = p.parseReturnStmt()
	case "else":
		err = p.errorf(pos, "unexpected keyword else", "")
	case "":
		err = p.errorf(pos, "unexpected character "+string(p.peek()), "statement")
	default:
		inner, err = p.parseCallStmt()
	}

	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindStatement,
		Children: []*Node{inner},
		Pos:      pos,
	}, nil
}

// parsePrintStmt parses: "print" "(" Comparison ")".
func (p *parser) parsePrintStmt() (*Node, error) {
	pos := p.position()
	p.skipWord("print")
	p.skipWhitespaceAndComments()

	if !p.expect('(') {
		return nil, p.errorf(p.position(), "malformed print statement", "'('")
	}

	value, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	p.skipWhitespaceAndComments()

	if !p.expect(')') {
		return nil, p.errorf(p.position(), "malformed print statement", "')'")
	}

	return &Node{
		Kind:     KindPrintStmt,
		Children: []*Node{value},
		Pos:      pos,
	}, nil
}

// parseLetStmt parses: "let" ident "=" Comparison.
func (p *parser) parseLetStmt() (*Node, error) {
	pos := p.position()
	p.skipWord("let")
	p.skipWhitespaceAndComments()

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	p.skipWhitespaceAndComments()

	if !p.expect('=') {
		return nil, p.errorf(p.position(), "malformed let statement", "'='")
	}

	// Reject "==" here so "let x == 1" fails loudly.
	if p.peek() == '=' {
		return nil, p.errorf(p.position(), "malformed let statement", "expression")
	}

	value, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindLetStmt,
		Children: []*Node{name, value},
		Pos:      pos,
	}, nil
}

// parseIfStmt parses: "if" Comparison Block ("else" Block)?.
func (p *parser) parseIfStmt() (*Node, error) {
	pos := p.position()
	p.skipWord("if")

	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &Node{
		Kind:     KindIfStmt,
		Children: []*Node{cond, then},
		Pos:      pos,
	}

	p.skipWhitespaceAndComments()

	if p.peekWord() == "else" {
		p.skipWord("else")

		alt, err := p.parseBlock()
		if err != nil {
			return nil, err
		}

		node.Children = append(node.Children, alt)
	}

	return node, nil
}

// parseWhileStmt parses: "while" Comparison Block.
func (p *parser) parseWhileStmt() (*Node, error) {
	pos := p.position()
	p.skipWord("while")

	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindWhileStmt,
		Children: []*Node{cond, body},
		Pos:      pos,
	}, nil
}

// parseFnStmt parses: "fn" ident "(" ParamList? ")" Block.
func (p *parser) parseFnStmt() (*Node, error) {
	pos := p.position()
	p.skipWord("fn")
	p.skipWhitespaceAndComments()

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	p.skipWhitespaceAndComments()

	if !p.expect('(') {
		return nil, p.errorf(p.position(), "malformed function definition", "'('")
	}

	params := &Node{Kind: KindParamList, Pos: p.position()}

	p.skipWhitespaceAndComments()

	if p.peek() != ')' {
		for {
			p.skipWhitespaceAndComments()

			param, err := p.parseIdent()
			if err != nil {
				return nil, err
			}

			params.Children = append(params.Children, param)

			p.skipWhitespaceAndComments()

			if !p.expect(',') {
				break
			}
		}
	}

	if !p.expect(')') {
		return nil, p.errorf(p.position(), "malformed parameter list", "')'")
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindFnStmt,
		Children: []*Node{name, params, body},
		Pos:      pos,
	}, nil
}

// parseReturnStmt parses: "return" Comparison.
func (p *parser) parseReturnStmt() (*Node, error) {
	pos := p.position()
	p.skipWord("return")

	value, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindReturnStmt,
		Children: []*Node{value},
		Pos:      pos,
	}, nil
}

// parseCallStmt parses a function call in statement position.
func (p *parser) parseCallStmt() (*Node, error) {
	pos := p.position()

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if p.peek() != '(' {
		return nil, p.errorf(p.position(),
			"identifier "+name.Text+" is not a statement", "'('")
	}

	call, err := p.parseCallTail(name, pos)
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindCallStmt,
		Children: []*Node{call},
		Pos:      pos,
	}, nil
}

// parseBlock parses: "{" Statement* "}".
func (p *parser) parseBlock() (*Node, error) {
	p.skipWhitespaceAndComments()

	pos := p.position()

	if !p.expect('{') {
		return nil, p.errorf(pos, "malformed block", "'{'")
	}

	node := &Node{Kind: KindBlock, Pos: pos}

	for {
		p.skipWhitespaceAndComments()

		if p.eof() {
			return nil, p.errorf(p.position(), "unterminated block", "'}'")
		}

		if p.peek() == '}' {
			p.advance()

			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		node.Children = append(node.Children, stmt)
	}

	return node, nil
}

// parseComparison parses: Expr (cmpOp Expr)?. At most one comparison
// operator is accepted. With no operator the Expr node passes through
// unwrapped.
func (p *parser) parseComparison() (*Node, error) {
	pos := p.position()

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipWhitespaceAndComments()

	op := p.peekComparisonOp()
	if op == "" {
		return left, nil
	}

	opNode := &Node{Kind: KindOp, Text: op, Pos: p.position()}

	p.skipWord(op)

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Node{
		Kind:     KindComparison,
		Children: []*Node{left, opNode, right},
		Pos:      pos,
	}, nil
}

// parseExpr parses: Term (("+"|"-") Term)*. Operands and operators
// alternate in the child list; single terms pass through unwrapped.
func (p *parser) parseExpr() (*Node, error) {
	pos := p.position()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	children := []*Node{left}

	for {
		p.skipWhitespaceAndComments()

		ch := p.peek()
		if ch != '+' && ch != '-' {
			break
		}

		opNode := &Node{Kind: KindOp, Text: string(ch), Pos: p.position()}

		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		children = append(children, opNode, right)
	}

	if len(children) == 1 {
		return left, nil
	}

	return &Node{Kind: KindExpr, Children: children, Pos: pos}, nil
}

// parseTerm parses: Primary (("*"|"/") Primary)*.
func (p *parser) parseTerm() (*Node, error) {
	pos := p.position()

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	children := []*Node{left}

	for {
		p.skipWhitespaceAndComments()

		ch := p.peek()
		if ch != '*' && ch != '/' {
			break
		}

		// "/" starting a comment cannot occur; comments use '#'.
		opNode := &Node{Kind: KindOp, Text: string(ch), Pos: p.position()}

		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		children = append(children, opNode, right)
	}

	if len(children) == 1 {
		return left, nil
	}

	return &Node{Kind: KindTerm, Children: children, Pos: pos}, nil
}

// parsePrimary parses: number | string | CallExpr | ident. The grammar
// has no parenthesized sub-expressions.
func (p *parser) parsePrimary() (*Node, error) {
	p.skipWhitespaceAndComments()

	pos := p.position()

	switch ch := p.peek(); {
	case ch == '"':
		return p.parseString()

	case unicode.IsDigit(ch):
		return p.parseNumber()

	case isIdentifierStart(ch):
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		// A '(' abutting the identifier makes it a call.
		if p.peek() == '(' {
			return p.parseCallTail(name, pos)
		}

		return name, nil

	default:
		return nil, p.errorf(pos, "unexpected character "+string(ch), "expression")
	}
}

// parseCallTail parses the "(" (Comparison ("," Comparison)*)? ")"
// suffix of a call whose name was already consumed.
func (p *parser) parseCallTail(name *Node, pos Position) (*Node, error) {
	p.advance() // consume '('

	args := &Node{Kind: KindArgList, Pos: p.position()}

	p.skipWhitespaceAndComments()

	if p.peek() != ')' {
		for {
			arg, err := p.parseComparison()
			if err != nil {
				return nil, err
			}

			args.Children = append(args.Children, arg)

			p.skipWhitespaceAndComments()

			if !p.expect(',') {
				break
			}
		}
	}

	if !p.expect(')') {
		return nil, p.errorf(p.position(), "malformed argument list", "')'")
	}

	return &Node{
		Kind:     KindCallExpr,
		Children: []*Node{name, args},
		Pos:      pos,
	}, nil
}

// parseNumber parses a decimal integer literal.
func (p *parser) parseNumber() (*Node, error) {
	pos := p.position()
	start := p.pos

	for !p.eof() && unicode.IsDigit(p.peek()) {
		p.advance()
	}

	return &Node{
		Kind: KindNumber,
		Text: string(p.input[start:p.pos]),
		Pos:  pos,
	}, nil
}

// parseString parses a double-quoted string literal. Contents are taken
// verbatim; there are no escape sequences, so a literal cannot contain
// a double quote.
func (p *parser) parseString() (*Node, error) {
	pos := p.position()

	p.advance() // skip opening quote

	start := p.pos

	for !p.eof() && p.peek() != '"' {
		p.advance()
	}

	if p.eof() {
		return nil, p.errorf(pos, "unterminated string literal", "'\"'")
	}

	text := string(p.input[start:p.pos])

	p.advance() // skip closing quote

	return &Node{Kind: KindString, Text: text, Pos: pos}, nil
}

// parseIdent parses an identifier, rejecting reserved keywords.
func (p *parser) parseIdent() (*Node, error) {
	pos := p.position()

	if !isIdentifierStart(p.peek()) {
		return nil, p.errorf(pos, "unexpected character "+string(p.peek()),
			"identifier")
	}

	start := p.pos

	for !p.eof() && isIdentifierContinue(p.peek()) {
		p.advance()
	}

	text := string(p.input[start:p.pos])
	if keywords[text] {
		return nil, p.errorf(pos, "reserved keyword "+text, "identifier")
	}

	return &Node{Kind: KindIdent, Text: text, Pos: pos}, nil
}

// peekWord returns the identifier-shaped word at the cursor without
// consuming it, or "" if the cursor is not on one.
func (p *parser) peekWord() string {
	if !isIdentifierStart(p.peek()) {
		return ""
	}

	end := p.pos
	for end < len(p.input) {
		r, size := utf8.DecodeRune(p.input[end:])
		if !isIdentifierContinue(r) {
			break
		}

		end += size
	}

	return string(p.input[p.pos:end])
}

// peekComparisonOp returns the comparison operator at the cursor, or ""
// when there is none. Two-character operators win over one-character
// prefixes.
func (p *parser) peekComparisonOp() string {
	switch p.peekN(2) {
	case ">=", "<=", "==", "!=":
		return p.peekN(2)
	}

	switch p.peek() {
	case '>', '<':
		return string(p.peek())
	}

	return ""
}

// skipWord advances past a word already seen via peekWord or
// peekComparisonOp.
func (p *parser) skipWord(word string) {
	for range word {
		p.advance()
	}
}

// errorf constructs a positioned parse error carrying the full source
// for snippet rendering.
func (p *parser) errorf(pos Position, msg, expected string) error {
	return &ParseError{
		Source:   string(p.input),
		Msg:      msg,
		Expected: expected,
		Pos:      pos,
	}
}

// Helper methods

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(p.input[p.pos:])

	return r
}

func (p *parser) peekN(n int) string {
	if p.pos+n > len(p.input) {
		return string(p.input[p.pos:])
	}

	return string(p.input[p.pos : p.pos+n])
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRune(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

func (p *parser) expect(ch rune) bool {
	if p.peek() == ch {
		p.advance()

		return true
	}

	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

func (p *parser) skipWhitespaceAndComments() {
	for {
		p.skipWhitespace()

		if p.eof() {
			return
		}

		if p.peek() == '#' {
			p.skipLineComment()

			continue
		}

		break
	}
}

func (p *parser) skipLineComment() {
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}

	if !p.eof() {
		p.advance() // skip '\n'
	}
}

// Character classification

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}
