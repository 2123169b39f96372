package lang

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/ardnew/dash/log"
)

// SignalKind discriminates the control-flow signals a statement can
// produce.
type SignalKind int

const (
	SignalNone SignalKind = iota
	SignalBreak
	SignalContinue
	SignalReturn
)

// String returns the signal name.
func (k SignalKind) String() string {
	switch k {
	case SignalNone:
		return "none"
	case SignalBreak:
		return "break"
	case SignalContinue:
		return "continue"
	case SignalReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Signal is the control-flow result of executing a statement. Value is
// meaningful only for SignalReturn.
type Signal struct {
	Kind  SignalKind
	Value string
}

// Evaluator walks a typed AST and executes it against a Context.
//
// Runtime failures are fatal: the evaluator panics with a [*Error]
// rather than returning it. Only the REPL recovers these panics.
type Evaluator struct {
	out    io.Writer
	logger log.Logger
}

// NewEvaluator returns an Evaluator writing print output to stdout
// unless overridden with WithOutput.
func NewEvaluator(opts ...Option) *Evaluator {
	o := makeOptions(opts...)

	return &Evaluator{out: o.out, logger: o.logger}
}

// Execute runs a statement list to completion, ignoring any signal the
// final statement produces. Stray break or continue at the top level is
// silently dropped, matching the per-statement drive of a program body.
func (e *Evaluator) Execute(stmts []Stmt, ctx *Context) {
	for _, stmt := range stmts {
		e.ExecStmt(stmt, ctx)
	}
}

// ExecStmt executes one statement and reports the control-flow signal
// it produced.
func (e *Evaluator) ExecStmt(stmt Stmt, ctx *Context) Signal {
	switch s := stmt.(type) {
	case *PrintStmt:
		fmt.Fprintln(e.out, e.EvalExpr(s.Value, ctx))

	case *LetStmt:
		ctx.Variables[s.Name] = e.EvalExpr(s.Value, ctx)

	case *IfStmt:
		branch := s.Then
		if isFalsy(e.EvalExpr(s.Condition, ctx)) {
			branch = s.Else
		}

		for _, st := range branch {
			if sig := e.ExecStmt(st, ctx); sig.Kind != SignalNone {
				return sig
			}
		}

	case *WhileStmt:
		// The loop condition is falsy only on exactly "0". This is
		// looser than the if rule, which also treats "" and "false"
		// as falsy.
		for e.EvalExpr(s.Condition, ctx) != "0" {
		body:
			for _, st := range s.Body {
				switch sig := e.ExecStmt(st, ctx); sig.Kind {
				case SignalNone:
				case SignalBreak:
					return Signal{}
				case SignalContinue:
					break body
				case SignalReturn:
					return sig
				}
			}
		}

	case *BreakStmt:
		return Signal{Kind: SignalBreak}

	case *ContinueStmt:
		return Signal{Kind: SignalContinue}

	case *FnStmt:
		ctx.Functions[s.Name] = Function{Params: s.Params, Body: s.Body}

	case *CallStmt:
		// A call in statement position runs the entire body for its
		// side effects. Every signal is dropped, so even a return does
		// not cut the body short.
		fn, local := e.enterCall(s.Name, s.Args, ctx)
		for _, st := range fn.Body {
			e.ExecStmt(st, local)
		}

	case *ReturnStmt:
		return Signal{Kind: SignalReturn, Value: e.EvalExpr(s.Value, ctx)}

	default:
		panic(fmt.Sprintf("lang: unknown statement type %T", stmt))
	}

	return Signal{}
}

// EvalExpr evaluates an expression to its string value.
func (e *Evaluator) EvalExpr(expr Expr, ctx *Context) string {
	switch x := expr.(type) {
	case *IntLit:
		return strconv.FormatInt(x.Value, 10)

	case *StrLit:
		return x.Value

	case *VarRef:
		value, ok := ctx.Variables[x.Name]
		if !ok {
			panic(ErrUndefinedVariable.With(slog.String("name", x.Name)))
		}

		return value

	case *CallExpr:
		fn, local := e.enterCall(x.Name, x.Args, ctx)
		for _, st := range fn.Body {
			switch sig := e.ExecStmt(st, local); sig.Kind {
			case SignalNone:
			case SignalReturn:
				return sig.Value
			default:
				panic(ErrUnexpectedSignal.With(
					slog.String("function", x.Name),
					slog.String("signal", sig.Kind.String()),
				))
			}
		}

		// A body that falls off the end yields the empty string.
		return ""

	case *BinaryExpr:
		return e.evalBinary(x, ctx)

	default:
		panic(fmt.Sprintf("lang: unknown expression type %T", expr))
	}
}

// enterCall resolves a function, checks arity, evaluates the arguments
// in the caller's Context, and binds them in a fresh callee Context.
//
// The callee Context carries no function definitions, so a function
// body cannot call any function, itself included.
func (e *Evaluator) enterCall(
	name string,
	args []Expr,
	ctx *Context,
) (Function, *Context) {
	fn, ok := ctx.Functions[name]
	if !ok {
		panic(ErrUndefinedFunction.With(slog.String("name", name)))
	}

	if len(args) != len(fn.Params) {
		panic(ErrArityMismatch.With(
			slog.String("function", name),
			slog.Int("want", len(fn.Params)),
			slog.Int("have", len(args)),
		))
	}

	e.logger.Trace("call", slog.String("function", name))

	local := NewContext()
	for i, param := range fn.Params {
		local.Variables[param] = e.EvalExpr(args[i], ctx)
	}

	return fn, local
}

// evalBinary applies an operator after parsing both operands as
// integers. There is no string concatenation or comparison; operands
// that do not parse are fatal.
func (e *Evaluator) evalBinary(x *BinaryExpr, ctx *Context) string {
	lv := e.toInt(e.EvalExpr(x.Left, ctx), x.Op)
	rv := e.toInt(e.EvalExpr(x.Right, ctx), x.Op)

	switch x.Op {
	case OpAdd:
		return strconv.FormatInt(lv+rv, 10)
	case OpSub:
		return strconv.FormatInt(lv-rv, 10)
	case OpMul:
		return strconv.FormatInt(lv*rv, 10)
	case OpDiv:
		if rv == 0 {
			panic(ErrDivisionByZero)
		}

		return strconv.FormatInt(lv/rv, 10)
	case OpGreater:
		return boolValue(lv > rv)
	case OpLess:
		return boolValue(lv < rv)
	case OpGreaterEq:
		return boolValue(lv >= rv)
	case OpLessEq:
		return boolValue(lv <= rv)
	case OpEqual:
		return boolValue(lv == rv)
	case OpNotEqual:
		return boolValue(lv != rv)
	default:
		panic(fmt.Sprintf("lang: unknown operator %v", x.Op))
	}
}

func (e *Evaluator) toInt(value string, op Op) int64 {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(ErrNonIntegerOperand.With(
			slog.String("value", value),
			slog.String("op", op.String()),
		))
	}

	return v
}

// isFalsy reports whether an if condition is false. Only these three
// values are falsy; everything else, including whitespace and "False",
// is truthy.
func isFalsy(value string) bool {
	return value == "0" || value == "" || value == "false"
}

func boolValue(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
