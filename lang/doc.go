// Package lang implements the dash scripting language: a grammar-driven
// parser producing a generic parse tree, a builder converting that tree
// into a typed AST, and a tree-walking evaluator executing the AST with
// an explicit mutable [Context].
//
// # Pipeline
//
// Source text flows through three stages, each run exactly once:
//
//	source → ParseString → *Tree → Build → []Stmt → Evaluator.Execute
//
// # Grammar
//
// Informal EBNF, precedence loosest to tightest:
//
//	Program    → Statement* EOF
//	Statement  → PrintStmt | LetStmt | IfStmt | WhileStmt | BreakStmt
//	           | ContinueStmt | FnStmt | ReturnStmt | CallStmt
//	PrintStmt  → "print" "(" Comparison ")"
//	LetStmt    → "let" ident "=" Comparison
//	IfStmt     → "if" Comparison Block ("else" Block)?
//	WhileStmt  → "while" Comparison Block
//	FnStmt     → "fn" ident "(" ParamList? ")" Block
//	ReturnStmt → "return" Comparison
//	CallStmt   → CallExpr
//	Block      → "{" Statement* "}"
//	Comparison → Expr ((">"|"<"|">="|"<="|"=="|"!=") Expr)?
//	Expr       → Term (("+"|"-") Term)*
//	Term       → Primary (("*"|"/") Primary)*
//	Primary    → number | string | CallExpr | ident
//	CallExpr   → ident "(" (Comparison ("," Comparison)*)? ")"
//
// Comparison is deliberately non-chainable: at most one comparison
// operator per expression. Parenthesized sub-expressions are not part of
// the grammar. A "#" begins a comment extending to end of line.
//
// # Values and truthiness
//
// Every runtime value is a string. Integer results render in decimal;
// comparison results render as "1" or "0". An if condition is falsy iff
// it equals "0", the empty string, or "false". A while loop continues
// while its condition is anything but exactly "0". The two rules
// diverge on "" and "false", and that divergence is part of the
// language.
//
// # Errors
//
// Malformed source is the only recoverable failure: parsing returns a
// [*ParseError] with line, column, and a caret snippet. Every runtime
// failure (undefined name, arity mismatch, non-integer operand, divide
// by zero, stray loop signal) is fatal: the evaluator panics with a
// [*Error] and [Run] does not recover, so the process aborts.
package lang
