package math

import (
	"fmt"
	stdmath "math"
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceFromSqrtPriceX64 converts a 64.64 sqrt price into a human-readable
// token-B-per-token-A price, adjusting for mint decimals:
// (sqrtPrice^2 * 10^(tokenADecimal - tokenBDecimal)) / 2^128.
func PriceFromSqrtPriceX64(sqrtPrice *big.Int, tokenADecimal, tokenBDecimal uint8) decimal.Decimal {
	price := decimal.NewFromBigInt(sqrtPrice, 0)
	price = price.Mul(price)

	expDiff := int64(tokenADecimal) - int64(tokenBDecimal)
	if expDiff != 0 {
		price = price.Mul(decimal.New(1, int32(expDiff)))
	}

	denominator := new(big.Int).Lsh(big.NewInt(1), 128)
	return price.Div(decimal.NewFromBigInt(denominator, 0))
}

// SqrtPriceX64FromPrice computes sqrt(price / 10^(tokenADecimal - tokenBDecimal)) * 2^64.
func SqrtPriceX64FromPrice(price string, tokenADecimal, tokenBDecimal uint8) (*big.Int, error) {
	decimalPrice, ok := new(big.Float).SetString(price)
	if !ok {
		return nil, fmt.Errorf("invalid price: %s", price)
	}
	if decimalPrice.Sign() <= 0 {
		return nil, fmt.Errorf("price must be positive: %s", price)
	}

	decDiff := int(tokenADecimal) - int(tokenBDecimal)
	pow10 := new(big.Float).SetFloat64(stdmath.Pow10(decDiff))

	adjustedByDecimals := new(big.Float).Quo(decimalPrice, pow10)

	sqrtValue := new(big.Float).SetPrec(256).Sqrt(adjustedByDecimals)

	scale := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 64))
	sqrtValueQ64 := new(big.Float).Mul(sqrtValue, scale)

	result := new(big.Int)
	sqrtValueQ64.Int(result)

	return result, nil
}
