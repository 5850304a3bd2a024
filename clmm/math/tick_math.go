package math

import (
	"errors"
	"math/big"
)

// Tick bounds for the 64.64 sqrt-price representation. Prices at the bounds
// are SqrtPriceX64(±443636): 4295048016 and 79226673515401279992447579061.
const (
	MinTick int32 = -443636
	MaxTick int32 = 443636
)

var (
	// MinSqrtPriceX64 is the sqrt price at MinTick.
	MinSqrtPriceX64 = big.NewInt(4295048016)
	// MaxSqrtPriceX64 is the sqrt price at MaxTick.
	MaxSqrtPriceX64 = mustBig("79226673515401279992447579061")

	// ErrPriceOverflow is returned for ticks or sqrt prices outside the
	// representable range.
	ErrPriceOverflow = errors.New("tick outside representable sqrt price range")
)

// tickRatios[i] is sqrt(1/1.0001^(2^i)) << 128, i = 0..19.
var tickRatios = [20]*big.Int{
	mustBig("0xfffcb933bd6fad37aa2d162d1a594001"),
	mustBig("0xfff97272373d413259a46990580e213a"),
	mustBig("0xfff2e50f5f656932ef12357cf3c7fdcc"),
	mustBig("0xffe5caca7e10e4e61c3624eaa0941cd0"),
	mustBig("0xffcb9843d60f6159c9db58835c926644"),
	mustBig("0xff973b41fa98c081472e6896dfb254c0"),
	mustBig("0xff2ea16466c96a3843ec78b326b52861"),
	mustBig("0xfe5dee046a99a2a811c461f1969c3053"),
	mustBig("0xfcbe86c7900a88aedcffc83b479aa3a4"),
	mustBig("0xf987a7253ac413176f2b074cf7815e54"),
	mustBig("0xf3392b0822b70005940c7a398e4b70f3"),
	mustBig("0xe7159475a2c29b7443b29c7fa6e889d9"),
	mustBig("0xd097f3bdfd2022b8845ad8f792aa5825"),
	mustBig("0xa9f746462d870fdf8a65dc1f90e061e5"),
	mustBig("0x70d869a156d2a1b890bb3df62baf32f7"),
	mustBig("0x31be135f97d08fd981231505542fcfa6"),
	mustBig("0x9aa508b5b7a84e1c677de54f3e99bc9"),
	mustBig("0x5d6af8dedb81196699c329225ee604"),
	mustBig("0x2216e584f5fa1ea926041bedfe98"),
	mustBig("0x48a170391f7dc42444e8fa2"),
}

var (
	oneQ128    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("invalid big integer literal: " + s)
	}
	return n
}

// mulShift multiplies two Q128 values and right shifts by 128.
func mulShift(a, b *big.Int) *big.Int {
	return new(big.Int).Rsh(new(big.Int).Mul(a, b), 128)
}

// TickToSqrtPriceX64 computes sqrt(1.0001^tick) in unsigned 64.64 fixed
// point. Monotonically increasing in tick.
func TickToSqrtPriceX64(tick int32) (*big.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return nil, ErrPriceOverflow
	}

	absTick := uint32(tick)
	if tick < 0 {
		absTick = uint32(-tick)
	}

	ratio := new(big.Int).Set(oneQ128)
	if absTick&1 != 0 {
		ratio.Set(tickRatios[0])
	}
	for i := 1; i < len(tickRatios); i++ {
		if absTick&(1<<uint(i)) != 0 {
			ratio = mulShift(ratio, tickRatios[i])
		}
	}

	// The ladder accumulates sqrt(1/1.0001^|tick|); positive ticks take
	// the reciprocal.
	if tick > 0 {
		ratio = new(big.Int).Div(maxUint256, ratio)
	}

	return ratio.Rsh(ratio, 64), nil
}

// TickFromSqrtPriceX64 returns the largest tick whose sqrt price does not
// exceed sqrtPriceX64, so that tick→price→tick round-trips exactly for every
// valid tick.
func TickFromSqrtPriceX64(sqrtPriceX64 *big.Int) (int32, error) {
	if sqrtPriceX64.Cmp(MinSqrtPriceX64) < 0 || sqrtPriceX64.Cmp(MaxSqrtPriceX64) > 0 {
		return 0, ErrPriceOverflow
	}

	lo, hi := MinTick, MaxTick
	for lo < hi {
		// Round the midpoint up so lo always advances.
		mid := int32((int64(lo) + int64(hi) + 1) / 2)
		price, err := TickToSqrtPriceX64(mid)
		if err != nil {
			return 0, err
		}
		if price.Cmp(sqrtPriceX64) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}
