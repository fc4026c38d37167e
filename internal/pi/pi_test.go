package pi

import (
	"strings"
	"testing"

	"gopkg.in/inf.v0"
)

// Reference expansions of Pi rounded half-up to the requested number of
// fractional digits.
var referencePi = []struct {
	digits int
	want   string
}{
	{1, "3.1"},
	{2, "3.14"},
	{3, "3.142"},
	{4, "3.1416"},
	{5, "3.14159"},
	{10, "3.1415926536"},
	{15, "3.141592653589793"},
	{25, "3.1415926535897932384626434"},
}

func TestCompute_ReferenceDigits(t *testing.T) {
	for _, tt := range referencePi {
		got := Compute(tt.digits).String()
		if got != tt.want {
			t.Errorf("Compute(%d) = %s, want %s", tt.digits, got, tt.want)
		}
	}
}

func TestCompute_FiftyDigitPrefix(t *testing.T) {
	got := Compute(50).String()
	if !strings.HasPrefix(got, "3.14159265358979") {
		t.Fatalf("Compute(50) = %s, want prefix 3.14159265358979", got)
	}
}

func TestArctan_Pure(t *testing.T) {
	x := Reciprocal(inf.NewDec(5, 0), 40)

	a := Arctan(x, 40)
	b := Arctan(x, 40)

	if a.Cmp(b) != 0 || a.String() != b.String() {
		t.Fatalf("Arctan is not pure: %s vs %s", a, b)
	}

	// The input must survive untouched.
	if x.Cmp(Reciprocal(inf.NewDec(5, 0), 40)) != 0 {
		t.Fatalf("Arctan mutated its input: %s", x)
	}
}

// machin mirrors Compute but with an explicit working scale, so the guard
// margin can be stressed from the outside.
func machin(digits int, workingScale inf.Scale) *inf.Dec {
	t1 := Arctan(Reciprocal(inf.NewDec(5, 0), workingScale), workingScale)
	t2 := Arctan(Reciprocal(inf.NewDec(239, 0), workingScale), workingScale)

	p := new(inf.Dec).Mul(t1, inf.NewDec(16, 0))
	p.Sub(p, new(inf.Dec).Mul(t2, inf.NewDec(4, 0)))
	return p.Round(p, inf.Scale(digits), inf.RoundHalfUp)
}

func TestCompute_GuardScaleStability(t *testing.T) {
	// Widening the working scale beyond the fixed guard must not change
	// the rounded result.
	for _, digits := range []int{5, 10, 30, 75} {
		base := Compute(digits)

		for _, extra := range []inf.Scale{10, 20, 40} {
			wider := machin(digits, inf.Scale(digits)+extra)
			if base.Cmp(wider) != 0 {
				t.Errorf("digits=%d: result changed at working scale +%d: %s vs %s",
					digits, extra, base, wider)
			}
		}
	}
}

func TestReciprocal(t *testing.T) {
	fifth := Reciprocal(inf.NewDec(5, 0), 20)
	if fifth.Cmp(inf.NewDec(2, 1)) != 0 {
		t.Fatalf("Reciprocal(5) = %s, want 0.2", fifth)
	}

	// 1/239 starts 0.0041841004...
	r239 := Reciprocal(inf.NewDec(239, 0), 20)
	if !strings.HasPrefix(r239.String(), "0.0041841004") {
		t.Fatalf("Reciprocal(239) = %s, want prefix 0.0041841004", r239)
	}
}
