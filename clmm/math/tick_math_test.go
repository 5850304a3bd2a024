package math

import (
	"math/big"
	"testing"
)

func TestTickToSqrtPriceX64(t *testing.T) {
	cases := []struct {
		tick int32
		want string
	}{
		{0, "18446744073709551616"}, // 2^64, price 1
		{1, "18447666387855959850"},
		{-1, "18445821805675392311"},
		{10, "18455969290605290427"},
		{100, "18539204128674405812"},
		{-100, "18354745142194483563"},
		{1000, "19392480388906836277"},
		{-1000, "17547129613991598781"},
		{MinTick, "4295048016"},
		{MaxTick, "79226673515401279992447579061"},
	}

	for _, c := range cases {
		got, err := TickToSqrtPriceX64(c.tick)
		if err != nil {
			t.Fatalf("TickToSqrtPriceX64(%d): %v", c.tick, err)
		}
		if got.String() != c.want {
			t.Fatalf("TickToSqrtPriceX64(%d) = %s, want %s", c.tick, got, c.want)
		}
	}
}

func TestTickToSqrtPriceX64Bounds(t *testing.T) {
	minPrice, err := TickToSqrtPriceX64(MinTick)
	if err != nil {
		t.Fatal(err)
	}
	if minPrice.Cmp(MinSqrtPriceX64) != 0 {
		t.Fatalf("price at MinTick = %s, want %s", minPrice, MinSqrtPriceX64)
	}

	maxPrice, err := TickToSqrtPriceX64(MaxTick)
	if err != nil {
		t.Fatal(err)
	}
	if maxPrice.Cmp(MaxSqrtPriceX64) != 0 {
		t.Fatalf("price at MaxTick = %s, want %s", maxPrice, MaxSqrtPriceX64)
	}

	if _, err := TickToSqrtPriceX64(MinTick - 1); err != ErrPriceOverflow {
		t.Fatalf("tick below MinTick: got %v, want ErrPriceOverflow", err)
	}
	if _, err := TickToSqrtPriceX64(MaxTick + 1); err != ErrPriceOverflow {
		t.Fatalf("tick above MaxTick: got %v, want ErrPriceOverflow", err)
	}
}

func TestTickToSqrtPriceX64Monotonic(t *testing.T) {
	ticks := []int32{MinTick, -443580, -100000, -1001, -1000, -11, -10, -1, 0, 1, 10, 11, 1000, 1001, 100000, 443580, MaxTick}

	prev, err := TickToSqrtPriceX64(ticks[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, tick := range ticks[1:] {
		price, err := TickToSqrtPriceX64(tick)
		if err != nil {
			t.Fatal(err)
		}
		if price.Cmp(prev) <= 0 {
			t.Fatalf("price not increasing at tick %d", tick)
		}
		prev = price
	}
}

func TestTickFromSqrtPriceX64RoundTrip(t *testing.T) {
	ticks := []int32{MinTick, -443580, -250007, -1000, -10, -1, 0, 1, 10, 1000, 250007, 443580, MaxTick}

	for _, tick := range ticks {
		price, err := TickToSqrtPriceX64(tick)
		if err != nil {
			t.Fatal(err)
		}
		got, err := TickFromSqrtPriceX64(price)
		if err != nil {
			t.Fatal(err)
		}
		if got != tick {
			t.Fatalf("round trip for tick %d returned %d", tick, got)
		}
	}
}

func TestTickFromSqrtPriceX64Floor(t *testing.T) {
	// A price strictly between two tick prices belongs to the lower tick.
	price, err := TickToSqrtPriceX64(1000)
	if err != nil {
		t.Fatal(err)
	}
	between := new(big.Int).Sub(price, big.NewInt(1))

	tick, err := TickFromSqrtPriceX64(between)
	if err != nil {
		t.Fatal(err)
	}
	if tick != 999 {
		t.Fatalf("tick for price just below tick 1000 = %d, want 999", tick)
	}
}

func TestTickFromSqrtPriceX64OutOfRange(t *testing.T) {
	below := new(big.Int).Sub(MinSqrtPriceX64, big.NewInt(1))
	if _, err := TickFromSqrtPriceX64(below); err != ErrPriceOverflow {
		t.Fatalf("price below range: got %v, want ErrPriceOverflow", err)
	}

	above := new(big.Int).Add(MaxSqrtPriceX64, big.NewInt(1))
	if _, err := TickFromSqrtPriceX64(above); err != ErrPriceOverflow {
		t.Fatalf("price above range: got %v, want ErrPriceOverflow", err)
	}
}
