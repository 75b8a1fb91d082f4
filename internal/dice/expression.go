package dice

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

const maxDepth = 32

// Result is the outcome of evaluating a formula
type Result struct {
	Formula string
	Total   int
	Rolls   []*RollResult
}

// Breakdown lists every dice term with its individual rolls
func (r *Result) Breakdown() string {
	if len(r.Rolls) == 0 {
		return "no dice"
	}
	parts := make([]string, 0, len(r.Rolls))
	for _, roll := range r.Rolls {
		parts = append(parts, roll.String())
	}
	return strings.Join(parts, "\n")
}

// Evaluate rolls a formula made of integers, NdM or dM terms, + - * / and parentheses.
// Division truncates toward zero. Results outside the int range are rejected.
func Evaluate(formula string, roller Roller) (*Result, error) {
	if roller == nil {
		return nil, qrerr.Unavailable("no dice roller")
	}
	if strings.TrimSpace(formula) == "" {
		return nil, qrerr.InvalidArgumentf("empty formula")
	}

	e := &evaluator{input: formula, roller: roller}
	total, err := e.expr(0)
	if err != nil {
		return nil, err
	}

	e.skipSpace()
	if e.pos < len(e.input) {
		return nil, e.unexpected()
	}

	return &Result{
		Formula: strings.TrimSpace(formula),
		Total:   total,
		Rolls:   e.rolls,
	}, nil
}

type evaluator struct {
	input  string
	pos    int
	roller Roller
	rolls  []*RollResult
}

func (e *evaluator) skipSpace() {
	for e.pos < len(e.input) && (e.input[e.pos] == ' ' || e.input[e.pos] == '\t') {
		e.pos++
	}
}

func (e *evaluator) peek() byte {
	e.skipSpace()
	if e.pos >= len(e.input) {
		return 0
	}
	return e.input[e.pos]
}

func (e *evaluator) unexpected() error {
	if e.pos >= len(e.input) {
		return qrerr.InvalidArgumentf("unexpected end of formula %q", e.input)
	}
	return qrerr.InvalidArgumentf("unexpected '%c' at position %d", e.input[e.pos], e.pos+1)
}

func (e *evaluator) expr(depth int) (int, error) {
	total, err := e.term(depth)
	if err != nil {
		return 0, err
	}

	for {
		switch e.peek() {
		case '+':
			e.pos++
			rhs, err := e.term(depth)
			if err != nil {
				return 0, err
			}
			if total, err = add(total, rhs); err != nil {
				return 0, err
			}
		case '-':
			e.pos++
			rhs, err := e.term(depth)
			if err != nil {
				return 0, err
			}
			if total, err = sub(total, rhs); err != nil {
				return 0, err
			}
		default:
			return total, nil
		}
	}
}

func (e *evaluator) term(depth int) (int, error) {
	total, err := e.unary(depth)
	if err != nil {
		return 0, err
	}

	for {
		switch e.peek() {
		case '*':
			e.pos++
			rhs, err := e.unary(depth)
			if err != nil {
				return 0, err
			}
			if total, err = mul(total, rhs); err != nil {
				return 0, err
			}
		case '/':
			e.pos++
			rhs, err := e.unary(depth)
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, qrerr.InvalidArgumentf("division by zero")
			}
			if total == math.MinInt && rhs == -1 {
				return 0, errOverflow()
			}
			total /= rhs
		default:
			return total, nil
		}
	}
}

// unary counts against the same nesting limit as parentheses
func (e *evaluator) unary(depth int) (int, error) {
	if e.peek() == '-' {
		if depth >= maxDepth {
			return 0, qrerr.InvalidArgumentf("formula nested too deeply")
		}
		e.pos++
		value, err := e.unary(depth + 1)
		if err != nil {
			return 0, err
		}
		return sub(0, value)
	}
	return e.primary(depth)
}

func (e *evaluator) primary(depth int) (int, error) {
	c := e.peek()
	switch {
	case c == '(':
		if depth >= maxDepth {
			return 0, qrerr.InvalidArgumentf("formula nested too deeply")
		}
		e.pos++
		value, err := e.expr(depth + 1)
		if err != nil {
			return 0, err
		}
		if e.peek() != ')' {
			return 0, e.unexpected()
		}
		e.pos++
		return value, nil
	case c == 'd' || c == 'D':
		return e.dice(1)
	case c >= '0' && c <= '9':
		n, err := e.number()
		if err != nil {
			return 0, err
		}
		if e.pos < len(e.input) && (e.input[e.pos] == 'd' || e.input[e.pos] == 'D') {
			return e.dice(n)
		}
		return n, nil
	default:
		return 0, e.unexpected()
	}
}

func (e *evaluator) number() (int, error) {
	start := e.pos
	for e.pos < len(e.input) && e.input[e.pos] >= '0' && e.input[e.pos] <= '9' {
		e.pos++
	}
	if start == e.pos {
		return 0, e.unexpected()
	}

	n, err := strconv.Atoi(e.input[start:e.pos])
	if err != nil {
		return 0, qrerr.InvalidArgumentf("number %s out of range", e.input[start:e.pos])
	}
	return n, nil
}

func (e *evaluator) dice(count int) (int, error) {
	// consume the 'd'
	e.pos++
	sides, err := e.number()
	if err != nil {
		return 0, err
	}

	result, err := e.roller.Roll(count, sides, 0)
	if err != nil {
		return 0, qrerr.Wrap(err, fmt.Sprintf("failed to roll %dd%d", count, sides))
	}
	if result == nil {
		return 0, qrerr.Internal(fmt.Sprintf("roller returned no result for %dd%d", count, sides))
	}

	e.rolls = append(e.rolls, result)
	return result.RawTotal, nil
}

func errOverflow() error {
	return qrerr.InvalidArgumentf("formula result out of range")
}

func add(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, errOverflow()
	}
	return a + b, nil
}

func sub(a, b int) (int, error) {
	if (b < 0 && a > math.MaxInt+b) || (b > 0 && a < math.MinInt+b) {
		return 0, errOverflow()
	}
	return a - b, nil
}

func mul(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, errOverflow()
	}
	return product, nil
}
