package shark

import "testing"

func wantInt(t *testing.T, v Value, want int64) {
	t.Helper()
	if v.Kind != KInt || v.I != want {
		t.Fatalf("want int %d, got %#v", want, v)
	}
}

func wantFloat(t *testing.T, v Value, want float64) {
	t.Helper()
	if v.Kind != KFloat || v.F != want {
		t.Fatalf("want float %g, got %#v", want, v)
	}
}

func wantBool(t *testing.T, v Value, want bool) {
	t.Helper()
	if v.Kind != KBool || v.B != want {
		t.Fatalf("want bool %v, got %#v", want, v)
	}
}

func TestIntLiteralsNeverImplicitlyFloat(t *testing.T) {
	wantInt(t, binaryOp(PLUS, IntVal(2), IntVal(3), 1), 5)
}

func TestMixedIntFloatPromotesToFloat(t *testing.T) {
	wantFloat(t, binaryOp(PLUS, IntVal(2), FloatVal(3.5), 1), 5.5)
}

func TestDivisionAlwaysProducesFloat(t *testing.T) {
	wantFloat(t, binaryOp(SLASH, IntVal(10), IntVal(2), 1), 5.0)
}

func TestDivisionByZeroFails(t *testing.T) {
	defer func() {
		r := recover()
		sp, ok := r.(shkPanic)
		if !ok {
			t.Fatalf("want shkPanic, got %#v", r)
		}
		if sp.err.Kind != KindDivisionByZero {
			t.Fatalf("want DivisionByZero, got %s", sp.err.Kind)
		}
	}()
	binaryOp(SLASH, IntVal(1), IntVal(0), 1)
	t.Fatal("expected a panic")
}

func TestPowIntBaseNonNegativeExponentYieldsInt(t *testing.T) {
	wantInt(t, binaryOp(POWER, IntVal(2), IntVal(10), 1), 1024)
}

func TestPowNegativeExponentYieldsFloat(t *testing.T) {
	wantFloat(t, binaryOp(POWER, IntVal(2), IntVal(-1), 1), 0.5)
}

func TestPowZeroToZeroIsOne(t *testing.T) {
	wantInt(t, binaryOp(POWER, IntVal(0), IntVal(0), 1), 1)
}

func TestArrayScalarBroadcast(t *testing.T) {
	arr := ArrVal([]Value{IntVal(1), IntVal(2), IntVal(3)})
	got := binaryOp(STAR, arr, IntVal(2), 1)
	want := []int64{2, 4, 6}
	for i, w := range want {
		wantInt(t, got.Arr[i], w)
	}
}

func TestArrayArrayElementwise(t *testing.T) {
	a := ArrVal([]Value{IntVal(1), IntVal(2)})
	b := ArrVal([]Value{IntVal(10), IntVal(20)})
	got := binaryOp(PLUS, a, b, 1)
	wantInt(t, got.Arr[0], 11)
	wantInt(t, got.Arr[1], 22)
}

func TestArrayArrayShapeMismatch(t *testing.T) {
	defer func() {
		r := recover()
		sp, ok := r.(shkPanic)
		if !ok {
			t.Fatalf("want shkPanic, got %#v", r)
		}
		if sp.err.Kind != KindShapeMismatch {
			t.Fatalf("want ShapeMismatch, got %s", sp.err.Kind)
		}
	}()
	binaryOp(PLUS, ArrVal([]Value{IntVal(1)}), ArrVal([]Value{IntVal(1), IntVal(2)}), 1)
	t.Fatal("expected a panic")
}

func TestStringConcatenation(t *testing.T) {
	v := binaryOp(PLUS, StrVal("foo"), StrVal("bar"), 1)
	if v.Kind != KStr || v.Str != "foobar" {
		t.Fatalf("want foobar, got %#v", v)
	}
}

func TestStringPlusNumberIsTypeError(t *testing.T) {
	defer func() {
		r := recover()
		sp, ok := r.(shkPanic)
		if !ok || sp.err.Kind != KindTypeError {
			t.Fatalf("want TypeError panic, got %#v", r)
		}
	}()
	binaryOp(PLUS, StrVal("foo"), IntVal(1), 1)
	t.Fatal("expected a panic")
}

func TestArrayComparisonOtherThanEqualityIsTypeError(t *testing.T) {
	defer func() {
		r := recover()
		sp, ok := r.(shkPanic)
		if !ok || sp.err.Kind != KindTypeError {
			t.Fatalf("want TypeError panic, got %#v", r)
		}
	}()
	binaryOp(LT, ArrVal(nil), ArrVal(nil), 1)
	t.Fatal("expected a panic")
}

func TestArrayEqualityIsElementwise(t *testing.T) {
	a := ArrVal([]Value{IntVal(1), IntVal(2)})
	b := ArrVal([]Value{IntVal(1), IntVal(2)})
	wantBool(t, binaryOp(EQ, a, b, 1), true)
}

func TestTruthiness(t *testing.T) {
	falsy := []Value{IntVal(0), FloatVal(0), StrVal(""), ArrVal(nil), BoolVal(false)}
	for _, v := range falsy {
		if isTruthy(v) {
			t.Fatalf("expected %#v to be falsy", v)
		}
	}
	truthy := []Value{IntVal(1), StrVal("x"), ArrVal([]Value{IntVal(1)}), BoolVal(true)}
	for _, v := range truthy {
		if !isTruthy(v) {
			t.Fatalf("expected %#v to be truthy", v)
		}
	}
}

func TestDisplayFloatKeepsTrailingPointZero(t *testing.T) {
	if got := Display(FloatVal(3.0)); got != "3.0" {
		t.Fatalf("got %q, want 3.0", got)
	}
	if got := Display(FloatVal(3.25)); got != "3.25" {
		t.Fatalf("got %q, want 3.25", got)
	}
}

func TestDisplayArray(t *testing.T) {
	got := Display(ArrVal([]Value{IntVal(1), IntVal(2), IntVal(3)}))
	if got != "[1, 2, 3]" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayUnitIsEmpty(t *testing.T) {
	if got := Display(Unit); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestDisplayBuiltin(t *testing.T) {
	v := BuiltinVal(&Builtin{Name: "sqrt"})
	if got := Display(v); got != "<builtin:sqrt>" {
		t.Fatalf("got %q", got)
	}
}
