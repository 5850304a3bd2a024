package math

import (
	"math/big"
	"testing"
)

func TestSqrt(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"0", "0"},
		{"1", "1"},
		{"3", "1"},
		{"4", "2"},
		{"4000000", "2000"},
		{"4000001", "2000"},
		{"340282366920938463463374607431768211455", "18446744073709551615"}, // 2^128 - 1
	}

	for _, c := range cases {
		value := mustBig(c.value)
		got := Sqrt(value)
		if got.String() != c.want {
			t.Fatalf("Sqrt(%s) = %s, want %s", c.value, got, c.want)
		}
	}
}

func TestSqrtFloor(t *testing.T) {
	// floor(sqrt(v))^2 <= v < (floor(sqrt(v))+1)^2 across magnitudes.
	for _, s := range []string{"2", "99", "123456789", "18446744073709551616", "99999999999999999999999999"} {
		value := mustBig(s)
		root := Sqrt(value)
		lower := new(big.Int).Mul(root, root)
		if lower.Cmp(value) > 0 {
			t.Fatalf("Sqrt(%s) = %s overshoots", s, root)
		}
		next := new(big.Int).Add(root, big.NewInt(1))
		upper := new(big.Int).Mul(next, next)
		if upper.Cmp(value) <= 0 {
			t.Fatalf("Sqrt(%s) = %s undershoots", s, root)
		}
	}
}

func TestMulDiv(t *testing.T) {
	down := MulDiv(big.NewInt(7), big.NewInt(3), big.NewInt(2), RoundingDown)
	if down.Int64() != 10 {
		t.Fatalf("MulDiv down = %d, want 10", down.Int64())
	}

	up := MulDiv(big.NewInt(7), big.NewInt(3), big.NewInt(2), RoundingUp)
	if up.Int64() != 11 {
		t.Fatalf("MulDiv up = %d, want 11", up.Int64())
	}

	exact := MulDiv(big.NewInt(6), big.NewInt(4), big.NewInt(8), RoundingUp)
	if exact.Int64() != 3 {
		t.Fatalf("MulDiv exact = %d, want 3", exact.Int64())
	}

	zero := MulDiv(big.NewInt(100), big.NewInt(100), big.NewInt(0), RoundingDown)
	if zero.Sign() != 0 {
		t.Fatalf("MulDiv with zero denominator = %s, want 0", zero)
	}
}
