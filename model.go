package clmmgo

import (
	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/clmm-go/clmm"
)

type Pool struct {
	*clmm.Pool
	Address solana.PublicKey
}

type Tick struct {
	*clmm.Tick
	Address solana.PublicKey
}

// Vaults pairs a pool's two token vaults with their current balances.
type Vaults struct {
	VaultA  solana.PublicKey
	VaultB  solana.PublicKey
	AmountA uint64
	AmountB uint64
}

// Quote is the outcome of an add_liquidity call computed off-chain:
// the deposit both legs would take and the LP tokens that would be minted.
type Quote struct {
	AmountA  uint64
	AmountB  uint64
	LpMinted uint64
}
