package math

import (
	"errors"
	"math/big"
)

// ErrArithmeticOverflow is returned whenever a checked operation leaves the
// representable range, or a division hits a zero denominator.
var ErrArithmeticOverflow = errors.New("SafeMath: arithmetic overflow")

var (
	// MaxU64 is 2^64 - 1.
	MaxU64 = new(big.Int).SetUint64(^uint64(0))
	// MaxU128 is 2^128 - 1.
	MaxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	// MaxI128 is 2^127 - 1.
	MaxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	// MinI128 is -2^127.
	MinI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// CheckU128 validates that v is a non-negative value fitting in 128 bits.
func CheckU128(v *big.Int) error {
	if v.Sign() < 0 || v.Cmp(MaxU128) > 0 {
		return ErrArithmeticOverflow
	}
	return nil
}

// CheckI128 validates that v fits in a signed 128-bit integer.
func CheckI128(v *big.Int) error {
	if v.Cmp(MinI128) < 0 || v.Cmp(MaxI128) > 0 {
		return ErrArithmeticOverflow
	}
	return nil
}

// AddU128 returns a+b, failing if the sum leaves the unsigned 128-bit range.
func AddU128(a, b *big.Int) (*big.Int, error) {
	sum := new(big.Int).Add(a, b)
	if err := CheckU128(sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// SubU128 returns a-b, failing if the difference is negative.
func SubU128(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, ErrArithmeticOverflow
	}
	return new(big.Int).Sub(a, b), nil
}

// MulU128 returns a*b, failing if the product leaves the unsigned 128-bit range.
func MulU128(a, b *big.Int) (*big.Int, error) {
	product := new(big.Int).Mul(a, b)
	if err := CheckU128(product); err != nil {
		return nil, err
	}
	return product, nil
}

// AddI128 returns a+b as a checked signed 128-bit value.
func AddI128(a, b *big.Int) (*big.Int, error) {
	sum := new(big.Int).Add(a, b)
	if err := CheckI128(sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// SubI128 returns a-b as a checked signed 128-bit value.
func SubI128(a, b *big.Int) (*big.Int, error) {
	diff := new(big.Int).Sub(a, b)
	if err := CheckI128(diff); err != nil {
		return nil, err
	}
	return diff, nil
}

// Div returns a/b rounded toward zero.
func Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrArithmeticOverflow
	}
	return new(big.Int).Quo(a, b), nil
}

// AddU64 returns a+b, failing if the sum does not fit in 64 bits.
func AddU64(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

// ToU64 narrows v to a uint64, failing if it does not fit.
func ToU64(v *big.Int) (uint64, error) {
	if v.Sign() < 0 || v.Cmp(MaxU64) > 0 {
		return 0, ErrArithmeticOverflow
	}
	return v.Uint64(), nil
}
