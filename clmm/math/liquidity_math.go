package math

import (
	"math/big"
)

var oneQ64 = new(big.Int).Lsh(big.NewInt(1), 64)

// GetLiquidityAmounts returns the token amounts required to back `liquidity`
// over the range [lowerSqrtPrice, upperSqrtPrice] given the pool's current
// sqrt price, all in unsigned 64.64 fixed point.
//
// Three positions are possible:
//
//	current <= lower:  amountA = L * (1/√P_lower - 1/√P_upper), amountB = 0
//	current >= upper:  amountB = L * (√P_upper - √P_lower),     amountA = 0
//	otherwise:         amountA = L * (1/√P_current - 1/√P_upper)
//	                   amountB = L * (√P_current - √P_lower)
//
// Every division rounds toward zero so a deposit is never credited more
// liquidity than its tokens back.
func GetLiquidityAmounts(currentSqrtPrice, lowerSqrtPrice, upperSqrtPrice, liquidity *big.Int) (uint64, uint64, error) {
	if err := CheckU128(liquidity); err != nil {
		return 0, 0, err
	}
	if lowerSqrtPrice.Sign() <= 0 || upperSqrtPrice.Cmp(lowerSqrtPrice) <= 0 {
		return 0, 0, ErrArithmeticOverflow
	}

	switch {
	case currentSqrtPrice.Cmp(lowerSqrtPrice) <= 0:
		// Entirely token A.
		amountA, err := amountAForRange(liquidity, lowerSqrtPrice, upperSqrtPrice)
		if err != nil {
			return 0, 0, err
		}
		return amountA, 0, nil

	case currentSqrtPrice.Cmp(upperSqrtPrice) >= 0:
		// Entirely token B.
		amountB, err := amountBForRange(liquidity, lowerSqrtPrice, upperSqrtPrice)
		if err != nil {
			return 0, 0, err
		}
		return 0, amountB, nil

	default:
		amountA, err := amountAForRange(liquidity, currentSqrtPrice, upperSqrtPrice)
		if err != nil {
			return 0, 0, err
		}
		amountB, err := amountBForRange(liquidity, lowerSqrtPrice, currentSqrtPrice)
		if err != nil {
			return 0, 0, err
		}
		return amountA, amountB, nil
	}
}

// amountAForRange computes L * 2^64 * (√P_upper - √P_lower) / (√P_lower * √P_upper).
func amountAForRange(liquidity, lowerSqrtPrice, upperSqrtPrice *big.Int) (uint64, error) {
	numerator := new(big.Int).Mul(liquidity, oneQ64)
	numerator.Mul(numerator, new(big.Int).Sub(upperSqrtPrice, lowerSqrtPrice))
	denominator := new(big.Int).Mul(lowerSqrtPrice, upperSqrtPrice)

	amount, err := Div(numerator, denominator)
	if err != nil {
		return 0, err
	}
	return ToU64(amount)
}

// amountBForRange computes L * (√P_upper - √P_lower) / 2^64.
func amountBForRange(liquidity, lowerSqrtPrice, upperSqrtPrice *big.Int) (uint64, error) {
	numerator := new(big.Int).Mul(liquidity, new(big.Int).Sub(upperSqrtPrice, lowerSqrtPrice))
	amount, err := Div(numerator, oneQ64)
	if err != nil {
		return 0, err
	}
	return ToU64(amount)
}
