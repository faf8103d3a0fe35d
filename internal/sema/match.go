package sema

import (
	"errors"
	"math/big"
	"strings"

	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

// errOverflow is returned by PromoteUntyped when a literal's magnitude
// exceeds I128, the widest integer kind this front end has.
var errOverflow = errors.New("integer literal overflow")

var intBounds = map[types.BasicKind][2]*big.Int{
	types.I32:  bitBounds(32),
	types.I64:  bitBounds(64),
	types.I128: bitBounds(128),
}

func bitBounds(bits uint) [2]*big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bits-1)
	min := new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	return [2]*big.Int{min, max}
}

func fitsInt(kind types.BasicKind, v *big.Int) bool {
	b, ok := intBounds[kind]
	if !ok {
		return false
	}
	return v.Cmp(b[0]) >= 0 && v.Cmp(b[1]) <= 0
}

// parseBigInt parses a literal's normalized Value (underscores already
// stripped by the scanner) as an arbitrary-precision integer. The
// scanner only produces decimal digits, so the value is read in base 10.
func parseBigInt(value string) (*big.Int, bool) {
	v := new(big.Int)
	_, ok := v.SetString(strings.TrimPrefix(value, "+"), 10)
	return v, ok
}

// PromoteUntyped implements spec 4.3.4's literal promotion ladder for
// a standalone UnkInt value with no target type in context: I32 if it
// fits, else I64, else I128, else overflow. Variable declarations
// without an annotation do not use this ladder — they fall to the
// fixed I64/F64 default of types.DefaultType (spec 4.3.5); this ladder
// is reserved for contexts with neither an explicit target type nor
// that override, e.g. a bare literal on one side of an otherwise
// untyped binary expression.
func PromoteUntyped(v *big.Int) (types.Type, error) {
	for _, kind := range types.IntWidths {
		if fitsInt(kind, v) {
			return types.Typ[kind], nil
		}
	}
	return nil, errOverflow
}

// matchType implements spec 4.3.4's match_type: can a value of type
// actual (optionally the literal expression lit that produced it) be
// used where target is expected? It reports a Semantic diagnostic and
// returns (target, false) on mismatch, or the result type and true on
// success.
func (a *Analyzer) matchType(target, actual types.Type, lit *syntax.LiteralExpr, pos syntax.Pos) (types.Type, bool) {
	if target == nil || actual == nil {
		return target, false
	}

	if types.IsNil(actual) {
		if types.IsNullable(target) {
			return target, true
		}
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "cannot use none as non-nullable type %s", target)
		return target, false
	}

	if nTarget, ok := target.(*types.Nullable); ok {
		if result, ok := a.matchType(nTarget.Elem(), actual, lit, pos); ok {
			return types.NewNullable(result), true
		}
		return target, false
	}

	if ab, ok := actual.(*types.Basic); ok && ab.Info()&types.IsUntyped != 0 {
		return a.matchUntyped(target, ab, lit, pos)
	}

	if tp, ok := target.(*types.Pointer); ok {
		if ap, ok := actual.(*types.Pointer); ok {
			return a.matchType(tp.Elem(), ap.Elem(), nil, pos)
		}
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got %s", target, actual)
		return target, false
	}
	if tr, ok := target.(*types.Ref); ok {
		if ar, ok := actual.(*types.Ref); ok {
			return a.matchType(tr.Elem(), ar.Elem(), nil, pos)
		}
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got %s", target, actual)
		return target, false
	}

	if types.Identical(target, actual) {
		return target, true
	}

	if types.IsNumericType(target) && types.IsNumericType(actual) {
		return a.matchNumeric(target, actual, pos)
	}

	a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got %s", target, actual)
	return target, false
}

// matchNumeric applies spec 4.3.4's narrowing/widening rule between
// two concrete numeric types: a source whose width is at least the
// target's is permitted at assignment (the value is narrowed into the
// smaller slot); a source narrower than the target is widening and
// requires an explicit cast, which this front end's grammar does not
// yet expose.
func (a *Analyzer) matchNumeric(target, actual types.Type, pos syntax.Pos) (types.Type, bool) {
	tb, tok := target.(*types.Basic)
	ab, aok := actual.(*types.Basic)
	if !tok || !aok {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got %s", target, actual)
		return target, false
	}

	var tw, aw int
	switch {
	case tb.Info()&types.IsInteger != 0 && ab.Info()&types.IsInteger != 0:
		tw, aw = types.IntWidth(tb.Kind()), types.IntWidth(ab.Kind())
	case tb.Info()&types.IsFloat != 0 && ab.Info()&types.IsFloat != 0:
		tw, aw = types.FloatWidth(tb.Kind()), types.FloatWidth(ab.Kind())
	default:
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "cannot mix %s and %s", target, actual)
		return target, false
	}

	if aw >= tw {
		return target, true
	}
	a.Diag.Report(diag.Diagnostic{
		Kind: diag.Semantic, Severity: diag.Error, Pos: pos,
		Message: "widening conversion from " + actual.String() + " to " + target.String() + " requires an explicit cast",
		Hint:    "cast syntax is not yet supported by this front end",
	})
	return target, false
}

// matchUntyped handles target vs. an untyped UnkInt/UnkFloat actual,
// applying the literal-overflow check against target's concrete range
// whenever a literal expression is available (spec 4.3.4, 4.3.5).
func (a *Analyzer) matchUntyped(target types.Type, actual *types.Basic, lit *syntax.LiteralExpr, pos syntax.Pos) (types.Type, bool) {
	tb, ok := target.(*types.Basic)
	if !ok {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got %s", target, actual)
		return target, false
	}

	switch actual.Kind() {
	case types.UnkInt:
		if tb.Info()&types.IsInteger == 0 {
			a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got an integer literal", target)
			return target, false
		}
		if lit != nil {
			if v, ok := parseBigInt(lit.Value); ok && !fitsInt(tb.Kind(), v) {
				a.Diag.Report(diag.Diagnostic{
					Kind: diag.Semantic, Severity: diag.Error, Pos: pos,
					Message: "integer literal overflow",
					Note:    lit.Raw + " does not fit in " + target.String(),
				})
				return target, false
			}
		}
		return target, true
	case types.UnkFloat:
		if tb.Info()&types.IsFloat == 0 {
			a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected %s, got a float literal", target)
			return target, false
		}
		return target, true
	default:
		return target, true
	}
}
