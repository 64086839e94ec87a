package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/plistfmt/go-plist/debug"
	"github.com/plistfmt/go-plist/gomap"
	"github.com/plistfmt/go-plist/ir"
)

// Query compiles and runs an expression against doc. For a dictionary
// document the top-level keys are in scope as identifiers; the whole
// document is always available as `doc`.
func Query(doc *ir.Node, src string) (any, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Run(doc)
}

// QueryBool is Query for predicate expressions.
func QueryBool(doc *ir.Node, src string) (bool, error) {
	res, err := Query(doc, src)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, not bool", src, res)
	}
	return b, nil
}

// CompiledQuery is a reusable compiled expression.
type CompiledQuery struct {
	src     string
	program *vm.Program
}

// Compile compiles an expression for repeated evaluation.
func Compile(src string) (*CompiledQuery, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &CompiledQuery{src: src, program: program}, nil
}

// Run evaluates the query against doc.
func (q *CompiledQuery) Run(doc *ir.Node) (any, error) {
	env := Env(doc)
	if debug.Query() {
		debug.Logf("query %q with %d names in scope\n", q.src, len(env))
	}
	res, err := expr.Run(q.program, env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", q.src, err)
	}
	return res, nil
}

// Env builds the evaluation environment for doc: its top-level entries
// (when it is a dictionary) plus the document itself under `doc`.
func Env(doc *ir.Node) map[string]any {
	env := map[string]any{}
	v := gomap.ToGo(doc)
	if m, ok := v.(map[string]any); ok {
		for key, val := range m {
			env[key] = val
		}
	}
	env["doc"] = v
	return env
}
