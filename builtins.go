// builtins.go registers Shark's standard library into the global frame.
package shark

import (
	"fmt"
	"math"
	"os"
)

func reg(ip *Interpreter, name string, handler func(ip *Interpreter, args []Value, line int) Value) {
	ip.Global.Define(name, BuiltinVal(&Builtin{Name: name, Handler: handler}))
}

// registerCoreBuiltins installs print, len and range — the built-ins with no
// numeric-array-only restriction.
func registerCoreBuiltins(ip *Interpreter) {
	reg(ip, "print", func(ip *Interpreter, args []Value, line int) Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = Display(a)
		}
		for i, p := range parts {
			if i > 0 {
				fmt.Fprint(os.Stdout, " ")
			}
			fmt.Fprint(os.Stdout, p)
		}
		fmt.Fprintln(os.Stdout)
		return Unit
	})

	reg(ip, "len", func(ip *Interpreter, args []Value, line int) Value {
		requireArity("len", args, 1, line)
		switch args[0].Kind {
		case KArray:
			return IntVal(int64(len(args[0].Arr)))
		case KStr:
			return IntVal(int64(len([]rune(args[0].Str))))
		default:
			fail(KindTypeError, "len() requires an array or string", line)
			panic("unreachable")
		}
	})

	reg(ip, "range", func(ip *Interpreter, args []Value, line int) Value {
		requireArity("range", args, 2, line)
		lo, hi := requireInt(args[0], line), requireInt(args[1], line)
		var out []Value
		for i := lo; i < hi; i++ {
			out = append(out, IntVal(i))
		}
		return ArrVal(out)
	})
}

// registerMathBuiltins installs the scalar math functions.
func registerMathBuiltins(ip *Interpreter) {
	reg(ip, "sqrt", func(ip *Interpreter, args []Value, line int) Value {
		requireArity("sqrt", args, 1, line)
		return FloatVal(math.Sqrt(requireNumeric(args[0], line)))
	})

	reg(ip, "abs", func(ip *Interpreter, args []Value, line int) Value {
		requireArity("abs", args, 1, line)
		v := args[0]
		requireNumeric(v, line)
		if v.Kind == KInt {
			if v.I < 0 {
				return IntVal(-v.I)
			}
			return v
		}
		return FloatVal(math.Abs(v.F))
	})

	reg(ip, "floor", func(ip *Interpreter, args []Value, line int) Value {
		return roundLike(args, line, math.Floor)
	})
	reg(ip, "ceil", func(ip *Interpreter, args []Value, line int) Value {
		return roundLike(args, line, math.Ceil)
	})
	reg(ip, "round", func(ip *Interpreter, args []Value, line int) Value {
		return roundLike(args, line, math.Round)
	})

	reg(ip, "pow", func(ip *Interpreter, args []Value, line int) Value {
		requireArity("pow", args, 2, line)
		return powOp(args[0], args[1], line)
	})
}

// roundLike backs floor/ceil/round: an Int argument passes through the Int
// kind untouched.
func roundLike(args []Value, line int, f func(float64) float64) Value {
	requireArity("floor/ceil/round", args, 1, line)
	v := args[0]
	requireNumeric(v, line)
	if v.Kind == KInt {
		return v
	}
	return FloatVal(f(v.F))
}

// registerStatBuiltins installs the statistical reductions, along with
// their Greek-letter aliases (Σ, μ, σ).
func registerStatBuiltins(ip *Interpreter) {
	reg(ip, "sum", sumBuiltin)
	reg(ip, "Σ", sumBuiltin)

	reg(ip, "mean", meanBuiltin)
	reg(ip, "μ", meanBuiltin)

	reg(ip, "stdev", stdevBuiltin)
	reg(ip, "σ", stdevBuiltin)

	reg(ip, "median", medianBuiltin)
	reg(ip, "mode", modeBuiltin)
	reg(ip, "variance", varianceBuiltin)
	reg(ip, "min", minMaxBuiltin(true))
	reg(ip, "max", minMaxBuiltin(false))
}

func requireArity(name string, args []Value, n int, line int) {
	if len(args) != n {
		fail(KindArityError, fmt.Sprintf("%s() expects %d argument(s), got %d", name, n, len(args)), line)
	}
}

func requireNumeric(v Value, line int) float64 {
	if !isNumeric(v) {
		fail(KindTypeError, fmt.Sprintf("expected a number, got %s", v.Kind), line)
	}
	return toFloat(v)
}

func requireInt(v Value, line int) int64 {
	if v.Kind != KInt {
		fail(KindTypeError, fmt.Sprintf("expected an integer, got %s", v.Kind), line)
	}
	return v.I
}

func requireNumericArray(name string, v Value, line int) []Value {
	if v.Kind != KArray {
		fail(KindTypeError, name+"() requires an array", line)
	}
	for _, e := range v.Arr {
		if !isNumeric(e) {
			fail(KindTypeError, name+"() requires a numeric array", line)
		}
	}
	return v.Arr
}

func sumBuiltin(ip *Interpreter, args []Value, line int) Value {
	requireArity("sum", args, 1, line)
	xs := requireNumericArray("sum", args[0], line)
	if len(xs) == 0 {
		return IntVal(0)
	}
	allInt := true
	var fsum float64
	var isum int64
	for _, x := range xs {
		if x.Kind != KInt {
			allInt = false
		}
		fsum += toFloat(x)
		if x.Kind == KInt {
			isum += x.I
		}
	}
	if allInt {
		return IntVal(isum)
	}
	return FloatVal(fsum)
}

func meanBuiltin(ip *Interpreter, args []Value, line int) Value {
	requireArity("mean", args, 1, line)
	xs := requireNumericArray("mean", args[0], line)
	if len(xs) == 0 {
		fail(KindEmptyReduction, "mean() of an empty array", line)
	}
	var total float64
	for _, x := range xs {
		total += toFloat(x)
	}
	return FloatVal(total / float64(len(xs)))
}

func medianBuiltin(ip *Interpreter, args []Value, line int) Value {
	requireArity("median", args, 1, line)
	xs := requireNumericArray("median", args[0], line)
	if len(xs) == 0 {
		fail(KindEmptyReduction, "median() of an empty array", line)
	}
	sorted := sortValuesAscending(xs)
	n := len(sorted)
	if n%2 == 1 {
		return FloatVal(toFloat(sorted[n/2]))
	}
	return FloatVal((toFloat(sorted[n/2-1]) + toFloat(sorted[n/2])) / 2)
}

// modeBuiltin returns the most frequent value. Ties are broken by first
// occurrence: the earliest input value to reach the maximum count wins.
func modeBuiltin(ip *Interpreter, args []Value, line int) Value {
	requireArity("mode", args, 1, line)
	xs := requireNumericArray("mode", args[0], line)
	if len(xs) == 0 {
		fail(KindEmptyReduction, "mode() of an empty array", line)
	}
	counts := make(map[float64]int)
	order := make(map[float64]int)
	for i, x := range xs {
		f := toFloat(x)
		if _, seen := order[f]; !seen {
			order[f] = i
		}
		counts[f]++
	}
	bestKey := toFloat(xs[0])
	bestCount := -1
	for k, c := range counts {
		if c > bestCount || (c == bestCount && order[k] < order[bestKey]) {
			bestCount = c
			bestKey = k
		}
	}
	for _, x := range xs {
		if toFloat(x) == bestKey {
			return x
		}
	}
	return xs[0]
}

func varianceBuiltin(ip *Interpreter, args []Value, line int) Value {
	requireArity("variance", args, 1, line)
	xs := requireNumericArray("variance", args[0], line)
	if len(xs) < 2 {
		fail(KindEmptyReduction, "variance() requires at least two values", line)
	}
	return FloatVal(sampleVariance(xs))
}

func stdevBuiltin(ip *Interpreter, args []Value, line int) Value {
	requireArity("stdev", args, 1, line)
	xs := requireNumericArray("stdev", args[0], line)
	if len(xs) < 2 {
		fail(KindEmptyReduction, "stdev() requires at least two values", line)
	}
	return FloatVal(math.Sqrt(sampleVariance(xs)))
}

// sampleVariance uses the n-1 (sample) divisor.
func sampleVariance(xs []Value) float64 {
	n := float64(len(xs))
	var mean float64
	for _, x := range xs {
		mean += toFloat(x)
	}
	mean /= n
	var ss float64
	for _, x := range xs {
		d := toFloat(x) - mean
		ss += d * d
	}
	return ss / (n - 1)
}

// minMaxBuiltin implements min/max over either a single array argument or a
// variadic list of scalars, with numeric or lexicographic ordering
// depending on element kind.
func minMaxBuiltin(wantMin bool) func(ip *Interpreter, args []Value, line int) Value {
	return func(ip *Interpreter, args []Value, line int) Value {
		name := "max"
		if wantMin {
			name = "min"
		}
		var xs []Value
		if len(args) == 1 && args[0].Kind == KArray {
			xs = args[0].Arr
		} else {
			xs = args
		}
		if len(xs) == 0 {
			fail(KindEmptyReduction, name+"() of an empty array", line)
		}
		best := xs[0]
		for _, x := range xs[1:] {
			less := valueLess(x, best, line)
			if (wantMin && less) || (!wantMin && valueLess(best, x, line)) {
				best = x
			}
		}
		return best
	}
}

func valueLess(a, b Value, line int) bool {
	if a.Kind == KStr && b.Kind == KStr {
		return a.Str < b.Str
	}
	if isNumeric(a) && isNumeric(b) {
		return toFloat(a) < toFloat(b)
	}
	fail(KindTypeError, fmt.Sprintf("cannot order %s and %s", a.Kind, b.Kind), line)
	panic("unreachable")
}
