package clmm

import (
	"math/big"

	"github.com/krazyTry/clmm-go/clmm/math"
)

// applyLiquidityNet adds delta to the tick's signed net liquidity as a
// checked 128-bit operation.
func (t *Tick) applyLiquidityNet(delta *big.Int) error {
	updated, err := math.AddI128(math.I128ToBig(t.LiquidityNet), delta)
	if err != nil {
		return err
	}
	net, err := math.BigToI128(updated)
	if err != nil {
		return err
	}
	t.LiquidityNet = net
	return nil
}

// ApplyPositionOpen records a position's boundaries on its two ticks:
// +liquidity on the lower tick, -liquidity on the upper tick. Summed over a
// position's lifetime the two entries cancel, so the ledger-wide net is
// always zero once every boundary has been recorded. The caller validates
// that the tick records match the requested indices.
//
// Whether the pool's active liquidity changes is not decided here; that
// depends on the current tick and belongs to the provisioning workflow.
func ApplyPositionOpen(tickLower, tickUpper *Tick, liquidity *big.Int) error {
	if err := math.CheckU128(liquidity); err != nil {
		return err
	}
	if err := tickLower.applyLiquidityNet(liquidity); err != nil {
		return err
	}
	return tickUpper.applyLiquidityNet(new(big.Int).Neg(liquidity))
}
