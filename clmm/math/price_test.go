package math

import (
	"math/big"
	"testing"
)

func TestPriceFromSqrtPriceX64(t *testing.T) {
	q64 := new(big.Int).Lsh(big.NewInt(1), 64)

	price := PriceFromSqrtPriceX64(q64, 9, 9)
	if !price.Equal(price.Truncate(0)) || price.IntPart() != 1 {
		t.Fatalf("price at 2^64 = %s, want 1", price)
	}

	// Nine A decimals against six B decimals scales by 10^3.
	price = PriceFromSqrtPriceX64(q64, 9, 6)
	if price.IntPart() != 1000 {
		t.Fatalf("price = %s, want 1000", price)
	}
}

func TestSqrtPriceX64FromPrice(t *testing.T) {
	q64 := new(big.Int).Lsh(big.NewInt(1), 64)

	got, err := SqrtPriceX64FromPrice("1", 9, 9)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(q64) != 0 {
		t.Fatalf("sqrt price for 1 = %s, want %s", got, q64)
	}

	// price 4 at equal decimals doubles the sqrt.
	got, err = SqrtPriceX64FromPrice("4", 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 65)
	if got.Cmp(want) != 0 {
		t.Fatalf("sqrt price for 4 = %s, want %s", got, want)
	}

	if _, err = SqrtPriceX64FromPrice("-1", 6, 6); err == nil {
		t.Fatal("negative price accepted")
	}
	if _, err = SqrtPriceX64FromPrice("abc", 6, 6); err == nil {
		t.Fatal("non-numeric price accepted")
	}
}

// A quoted price converts to the tick at or below it.
func TestTickFromPrice(t *testing.T) {
	sqrtPrice, err := SqrtPriceX64FromPrice("1", 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	tick, err := TickFromSqrtPriceX64(sqrtPrice)
	if err != nil {
		t.Fatal(err)
	}
	if tick != 0 {
		t.Fatalf("tick for price 1 = %d, want 0", tick)
	}

	// 1.0001^13863 = 3.99975 <= 4 < 1.0001^13864.
	sqrtPrice, err = SqrtPriceX64FromPrice("4", 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	tick, err = TickFromSqrtPriceX64(sqrtPrice)
	if err != nil {
		t.Fatal(err)
	}
	if tick != 13863 {
		t.Fatalf("tick for price 4 = %d, want 13863", tick)
	}
}
