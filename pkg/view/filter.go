package view

import (
	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/fathomline/gridview/pkg/types"
)

// programCache memoizes compiled filter expressions by source text.
// Expressions that fail to compile are cached as nil so a bad expression is
// not recompiled on every pipeline evaluation.
type programCache struct {
	programs map[string]*exprvm.Program
}

func newProgramCache() *programCache {
	return &programCache{programs: make(map[string]*exprvm.Program)}
}

// load returns the compiled program for the expression, compiling on first
// use. Returns nil for expressions that do not compile.
func (c *programCache) load(expression string) *exprvm.Program {
	if program, ok := c.programs[expression]; ok {
		return program
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		program = nil
	}
	c.programs[expression] = program
	return program
}

// applyExpr keeps records for which the filter expression evaluates to true.
// The record's fields are the expression environment, so `status == "SHIPPED"
// && total > 100` reads naturally. The predicate degrades to a no-op rather
// than failing: an expression that does not compile keeps every record, and
// a record whose evaluation errors or yields a non-boolean is kept.
func (p *Projector) applyExpr(records []types.Record, expression string) []types.Record {
	if expression == "" {
		return records
	}
	program := p.programs.load(expression)
	if program == nil {
		return records
	}
	out := make([]types.Record, 0, len(records))
	for _, rec := range records {
		result, err := exprlang.Run(program, map[string]any(rec))
		if err != nil {
			out = append(out, rec)
			continue
		}
		if keep, ok := result.(bool); !ok || keep {
			out = append(out, rec)
		}
	}
	return out
}
