// Package calc evaluates arithmetic expressions over decimals written in
// prefix (Polish) notation, for example "* 10 + 1.23 4.56".
package calc

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/govalues/bigdecimal"
)

var (
	// Error is the error class of the evaluator.
	Error = errs.Class("calc")

	ErrNoTokens     = Error.New("no tokens")
	ErrOperands     = Error.New("not enough operands")
	ErrLeftover     = Error.New("too many operands")
	ErrInvalidPower = Error.New("power must be an integer")
)

type (
	unaryFunc  func(d bigdecimal.Big) (bigdecimal.Big, error)
	binaryFunc func(d, e bigdecimal.Big) (bigdecimal.Big, error)
)

var unary = map[string]unaryFunc{
	"inv": func(d bigdecimal.Big) (bigdecimal.Big, error) { return d.Inv() },
	"neg": func(d bigdecimal.Big) (bigdecimal.Big, error) { return d.Neg(), nil },
	"abs": func(d bigdecimal.Big) (bigdecimal.Big, error) { return d.Abs(), nil },
	"inc": func(d bigdecimal.Big) (bigdecimal.Big, error) { return d.Inc(), nil },
	"dec": func(d bigdecimal.Big) (bigdecimal.Big, error) { return d.Dec(), nil },
}

var binary = map[string]binaryFunc{
	"+":   func(d, e bigdecimal.Big) (bigdecimal.Big, error) { return d.Add(e), nil },
	"-":   func(d, e bigdecimal.Big) (bigdecimal.Big, error) { return d.Sub(e), nil },
	"*":   func(d, e bigdecimal.Big) (bigdecimal.Big, error) { return d.Mul(e), nil },
	"/":   func(d, e bigdecimal.Big) (bigdecimal.Big, error) { return d.Quo(e) },
	"^":   pow,
	"max": func(d, e bigdecimal.Big) (bigdecimal.Big, error) { return d.Max(e), nil },
	"min": func(d, e bigdecimal.Big) (bigdecimal.Big, error) { return d.Min(e), nil },
}

func pow(d, e bigdecimal.Big) (bigdecimal.Big, error) {
	if e.Exponent() < 0 {
		return bigdecimal.Big{}, fmt.Errorf("%v: %w", e, ErrInvalidPower)
	}
	n, err := strconv.Atoi(e.String())
	if err != nil {
		return bigdecimal.Big{}, fmt.Errorf("%v: %w", e, ErrInvalidPower)
	}
	return d.Pow(n)
}

// Operators returns the sorted names of the supported operators.
func Operators() []string {
	ops := make([]string, 0, len(unary)+len(binary))
	for op := range binary {
		ops = append(ops, op)
	}
	for op := range unary {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// Evaluator evaluates prefix expressions.
// The zero value keeps no digits after the decimal point and does not log.
type Evaluator struct {
	// Accuracy is the number of digits after the decimal point kept by
	// every operand and therefore by every intermediate result.
	Accuracy int
	// Logger receives a debug record for every evaluated operator.
	Logger *slog.Logger
}

// New returns an evaluator with the given accuracy.
// A nil logger discards the records.
func New(acc int, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{Accuracy: acc, Logger: logger}
}

// Evaluate is a shorthand for New(acc, nil).Evaluate(input).
func Evaluate(input string, acc int) (bigdecimal.Big, error) {
	return New(acc, nil).Evaluate(input)
}

// Evaluate computes the value of the prefix expression.
// Tokens are separated by white space. Operands are decimals in the
// format accepted by [bigdecimal.Parse].
// Binary operators are + - * / ^ max min; unary operators are
// inv neg abs inc dec.
func (ev *Evaluator) Evaluate(input string) (bigdecimal.Big, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return bigdecimal.Big{}, ErrNoTokens
	}
	stack, err := ev.processTokens(tokens)
	if err != nil {
		return bigdecimal.Big{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return bigdecimal.Big{}, fmt.Errorf("post-processed stack contains %v items: %w", len(stack), ErrLeftover)
	}
	return stack[0], nil
}

func (ev *Evaluator) processTokens(tokens []string) ([]bigdecimal.Big, error) {
	stack := make([]bigdecimal.Big, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if f, ok := binary[token]; ok {
			stack, err = ev.processBinary(stack, token, f)
		} else if f, ok := unary[token]; ok {
			stack, err = ev.processUnary(stack, token, f)
		} else {
			stack, err = ev.processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func (ev *Evaluator) processBinary(stack []bigdecimal.Big, token string, f binaryFunc) ([]bigdecimal.Big, error) {
	if len(stack) < 2 {
		return nil, ErrOperands
	}
	left := stack[len(stack)-1]
	right := stack[len(stack)-2]
	stack = stack[:len(stack)-2]
	result, err := f(left, right)
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	ev.logger().Debug("evaluated", "op", token, "left", left.String(), "right", right.String(), "result", result.String())
	return append(stack, result), nil
}

func (ev *Evaluator) processUnary(stack []bigdecimal.Big, token string, f unaryFunc) ([]bigdecimal.Big, error) {
	if len(stack) < 1 {
		return nil, ErrOperands
	}
	arg := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	result, err := f(arg)
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s\": %w", token, arg, err)
	}
	ev.logger().Debug("evaluated", "op", token, "arg", arg.String(), "result", result.String())
	return append(stack, result), nil
}

func (ev *Evaluator) processOperand(stack []bigdecimal.Big, token string) ([]bigdecimal.Big, error) {
	d, err := bigdecimal.ParseWithAccuracy(token, ev.Accuracy)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

func (ev *Evaluator) logger() *slog.Logger {
	if ev.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ev.Logger
}
