package arr

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Selector identifies the value to extract from a record. It is a closed
// union of two variants:
//
//   - [FieldSelector], built with [Field], names a map key or a struct
//     property;
//   - [DeriveFunc], built with [Derive] or [Expr], computes the value from
//     the whole record.
//
// A nil Selector is the null selector: it extracts nothing.
type Selector interface {
	selector()
}

// FieldSelector selects the entry or property called Name.
type FieldSelector struct {
	Name Key
}

func (FieldSelector) selector() {}

// DeriveFunc computes a value from a record. Its result is used verbatim.
type DeriveFunc func(record any) any

func (DeriveFunc) selector() {}

// Field selects the key or property name (normalized with [KeyOf]).
func Field(name any) Selector { return FieldSelector{Name: KeyOf(name)} }

// Fields returns one [Field] selector per name.
func Fields(names ...any) []Selector {
	out := make([]Selector, len(names))
	for i, name := range names {
		out[i] = Field(name)
	}
	return out
}

// Derive selects the result of fn applied to the record.
func Derive(fn func(record any) any) Selector { return DeriveFunc(fn) }

// Expr compiles an expr-lang expression into a derived selector. The
// expression sees the record's entries (or a struct's exported fields and
// methods) as variables:
//
//	total, _ := arr.Expr("price * qty")
//	arr.Column(rows, total, false)
//
// Evaluation failures yield nil, like any other missing value. Returns
// [ErrInvalidExpression] when source does not compile.
func Expr(source string) (Selector, error) {
	program, err := expr.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, source, err)
	}
	return DeriveFunc(func(record any) any { return runExpr(program, record) }), nil
}

func runExpr(program *vm.Program, record any) any {
	out, err := expr.Run(program, exprEnv(record))
	if err != nil {
		return nil
	}
	return out
}

// exprEnv exposes record to expr: structs as-is, containers as nested
// map[string]any / []any trees.
func exprEnv(record any) any {
	if isContainer(record) {
		if env, ok := plain(record).(map[string]any); ok {
			return env
		}
		return map[string]any{}
	}
	if Reflect(record) != nil {
		return record
	}
	return map[string]any{}
}

// plain converts containers into map[string]any, or []any for lists,
// recursively. Other values are returned unchanged.
func plain(v any) any {
	entries, ok := entriesOf(v)
	if !ok {
		return v
	}
	if a := fromEntries(entries); a.IsList() {
		out := make([]any, len(entries))
		for i, e := range entries {
			out[i] = plain(e.value)
		}
		return out
	}
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		out[e.key.String()] = plain(e.value)
	}
	return out
}
