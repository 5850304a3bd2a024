package math

import (
	"math/big"
	"testing"

	bin "github.com/gagliardetto/binary"
)

func TestAddU128Overflow(t *testing.T) {
	if _, err := AddU128(MaxU128, big.NewInt(1)); err != ErrArithmeticOverflow {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}

	sum, err := AddU128(MaxU128, big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Cmp(MaxU128) != 0 {
		t.Fatalf("sum = %s", sum)
	}
}

func TestSubU128Underflow(t *testing.T) {
	if _, err := SubU128(big.NewInt(1), big.NewInt(2)); err != ErrArithmeticOverflow {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}
}

func TestAddI128Bounds(t *testing.T) {
	if _, err := AddI128(MaxI128, big.NewInt(1)); err != ErrArithmeticOverflow {
		t.Fatalf("positive overflow: got %v", err)
	}
	if _, err := AddI128(MinI128, big.NewInt(-1)); err != ErrArithmeticOverflow {
		t.Fatalf("negative overflow: got %v", err)
	}

	sum, err := AddI128(MinI128, big.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Add(MinI128, big.NewInt(1))
	if sum.Cmp(want) != 0 {
		t.Fatalf("sum = %s", sum)
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(big.NewInt(1), big.NewInt(0)); err != ErrArithmeticOverflow {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}

	// Quo truncates toward zero for negative operands.
	q, err := Div(big.NewInt(-7), big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if q.Int64() != -3 {
		t.Fatalf("Div(-7, 2) = %d, want -3", q.Int64())
	}
}

func TestAddU64Overflow(t *testing.T) {
	if _, err := AddU64(^uint64(0), 1); err != ErrArithmeticOverflow {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}
}

func TestToU64(t *testing.T) {
	if _, err := ToU64(new(big.Int).Add(MaxU64, big.NewInt(1))); err != ErrArithmeticOverflow {
		t.Fatalf("oversized: got %v", err)
	}
	if _, err := ToU64(big.NewInt(-1)); err != ErrArithmeticOverflow {
		t.Fatalf("negative: got %v", err)
	}
	v, err := ToU64(MaxU64)
	if err != nil {
		t.Fatal(err)
	}
	if v != ^uint64(0) {
		t.Fatalf("v = %d", v)
	}
}

func TestU128Conversion(t *testing.T) {
	u, err := BigToU128(MaxU128)
	if err != nil {
		t.Fatal(err)
	}
	if u.Lo != ^uint64(0) || u.Hi != ^uint64(0) {
		t.Fatalf("u = %+v", u)
	}
	if U128ToBig(u).Cmp(MaxU128) != 0 {
		t.Fatal("u128 round trip failed")
	}

	if _, err := BigToU128(big.NewInt(-1)); err != ErrArithmeticOverflow {
		t.Fatalf("negative: got %v", err)
	}
}

func TestI128Conversion(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "-170141183460469231731687303715884105728", "170141183460469231731687303715884105727", "-9223372036854775809"} {
		v := mustBig(s)
		packed, err := BigToI128(v)
		if err != nil {
			t.Fatalf("BigToI128(%s): %v", s, err)
		}
		if I128ToBig(packed).Cmp(v) != 0 {
			t.Fatalf("i128 round trip failed for %s", s)
		}
	}

	minusOne, err := BigToI128(big.NewInt(-1))
	if err != nil {
		t.Fatal(err)
	}
	if minusOne != (bin.Int128{Lo: ^uint64(0), Hi: ^uint64(0)}) {
		t.Fatalf("minusOne = %+v", minusOne)
	}

	if _, err := BigToI128(new(big.Int).Add(MaxI128, big.NewInt(1))); err != ErrArithmeticOverflow {
		t.Fatalf("overflow: got %v", err)
	}
}
