package clmmgo

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/clmm-go/clmm/math"
	solanago "github.com/krazyTry/clmm-go/solana"
)

// PoolPrice returns the pool's current price as B per A, adjusted for the
// two mints' decimals.
func (m *CLMM) PoolPrice(ctx context.Context, mintA, mintB solana.PublicKey) (decimal.Decimal, error) {
	poolState, err := m.GetPool(ctx, mintA, mintB)
	if err != nil {
		return decimal.Zero, err
	}

	tokens, err := solanago.GetMultipleToken(ctx, m.rpcClient, mintA, mintB)
	if err != nil {
		return decimal.Zero, err
	}
	if tokens[0] == nil || tokens[1] == nil {
		return decimal.Zero, fmt.Errorf("mint account missing")
	}

	return math.PriceFromSqrtPriceX64(
		math.U128ToBig(poolState.SqrtPriceX64),
		tokens[0].Decimals,
		tokens[1].Decimals,
	), nil
}
