package textab

import (
	"fmt"
	"strings"
)

// Context holds the data a template grid is expanded against and provides
// expression evaluation over it.
type Context struct {
	data          map[string]any
	evaluator     ExpressionEvaluator
	notationBegin string
	notationEnd   string

	// Cached environment handed to the evaluator. Invalidated whenever
	// a variable changes.
	cachedMap map[string]any
}

// NewContext creates a Context over the given data map. A nil map is
// treated as empty.
func NewContext(data map[string]any, opts ...ContextOption) *Context {
	if data == nil {
		data = make(map[string]any)
	}
	c := &Context{
		data:          data,
		evaluator:     NewExpressionEvaluator(),
		notationBegin: "${",
		notationEnd:   "}",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetVar returns a variable's value, or nil when absent.
func (c *Context) GetVar(name string) any {
	return c.data[name]
}

// PutVar sets a variable.
func (c *Context) PutVar(name string, value any) {
	c.data[name] = value
	c.cachedMap = nil
}

// RemoveVar removes a variable.
func (c *Context) RemoveVar(name string) {
	delete(c.data, name)
	c.cachedMap = nil
}

// ContainsVar reports whether the variable exists.
func (c *Context) ContainsVar(name string) bool {
	_, ok := c.data[name]
	return ok
}

// ToMap returns the evaluation environment. The result is cached and
// reused until a variable changes; callers must not mutate it.
func (c *Context) ToMap() map[string]any {
	if c.cachedMap != nil {
		return c.cachedMap
	}
	m := make(map[string]any, len(c.data))
	for k, v := range c.data {
		m[k] = v
	}
	c.cachedMap = m
	return m
}

// Evaluate evaluates a single expression against the context data.
func (c *Context) Evaluate(expression string) (any, error) {
	return c.evaluator.Evaluate(expression, c.ToMap())
}

// HasExpression reports whether the value contains at least one
// well-formed expression in this context's notation.
func (c *Context) HasExpression(value string) bool {
	if !strings.Contains(value, c.notationBegin) {
		return false
	}
	for _, seg := range ParseExpressions(value, c.notationBegin, c.notationEnd) {
		if seg.IsExpression {
			return true
		}
	}
	return false
}

// EvaluateCellValue expands a cell value containing embedded ${...}
// expressions. A value that is a single expression renders its result
// directly; mixed content interleaves literal text with rendered results.
// Nil results render as the empty string. A value without expressions is
// returned unchanged.
func (c *Context) EvaluateCellValue(value string) (string, error) {
	if exprStr, isSingle := ExtractSingleExpression(value, c.notationBegin, c.notationEnd); isSingle {
		result, err := c.Evaluate(exprStr)
		if err != nil {
			return "", fmt.Errorf("evaluate %q: %w", value, err)
		}
		return formatValue(result), nil
	}

	segments := ParseExpressions(value, c.notationBegin, c.notationEnd)
	hasExpr := false
	for _, seg := range segments {
		if seg.IsExpression {
			hasExpr = true
			break
		}
	}
	if !hasExpr {
		return value, nil
	}

	var b strings.Builder
	for _, seg := range segments {
		if !seg.IsExpression {
			b.WriteString(seg.Text)
			continue
		}
		val, err := c.Evaluate(seg.Text)
		if err != nil {
			return "", fmt.Errorf("evaluate expression %q in %q: %w", seg.Text, value, err)
		}
		if val != nil {
			fmt.Fprintf(&b, "%v", val)
		}
	}
	return b.String(), nil
}

// formatValue renders an evaluation result as cell text. Nil renders as
// the empty string.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
