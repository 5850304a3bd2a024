package clmm

import (
	"context"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/clmm-go/clmm/math"
)

// VaultBalance is a read-only view of one pool vault, resolved and
// permission-checked by the account layer before the workflow runs.
type VaultBalance struct {
	Address solanago.PublicKey
	Amount  uint64
}

// AddLiquidityAccounts carries every record the provisioning workflow
// touches, already deserialized and writable where required. Resolution and
// seed validation happen outside the core.
type AddLiquidityAccounts struct {
	Pool      *Pool
	TickLower *Tick
	TickUpper *Tick

	MintA solanago.PublicKey
	MintB solanago.PublicKey

	VaultA VaultBalance
	VaultB VaultBalance

	// Depositor token accounts, one per pool mint.
	TokenAccountA solanago.PublicKey
	TokenAccountB solanago.PublicKey

	Depositor solanago.PublicKey

	LpMint         solanago.PublicKey
	LpTokenAccount solanago.PublicKey

	// PoolAuthority signs the LP mint; it is the pool's derived identity,
	// not the depositor.
	PoolAuthority Authority
}

// AddLiquidityResult reports what one provisioning call moved and minted.
type AddLiquidityResult struct {
	AmountA  uint64
	AmountB  uint64
	LpMinted uint64
}

// AddLiquidity provisions `liquidity` across [tickLower, tickUpper) on the
// pool, transferring the backing token amounts into the vaults and minting
// LP shares to the depositor.
//
// Any failure aborts the whole invocation; the surrounding transaction
// boundary guarantees no mutation survives a returned error.
func AddLiquidity(
	ctx context.Context,
	accounts *AddLiquidityAccounts,
	custody Custody,
	tickLower int32,
	tickUpper int32,
	liquidity *big.Int,
) (*AddLiquidityResult, error) {
	pool := accounts.Pool

	if tickLower >= tickUpper {
		return nil, ErrTickMismatch
	}
	if accounts.TickLower.Index != tickLower || accounts.TickUpper.Index != tickUpper {
		return nil, ErrInvalidTickIndex
	}
	if !pool.MintA.Equals(accounts.MintA) || !pool.MintB.Equals(accounts.MintB) {
		return nil, ErrInvalidTokenMint
	}
	if tickLower%TickSpacing != 0 || tickUpper%TickSpacing != 0 {
		return nil, ErrUnalignedTick
	}

	if err := ApplyPositionOpen(accounts.TickLower, accounts.TickUpper, liquidity); err != nil {
		return nil, err
	}

	// Only ranges that straddle the current tick back trades at the
	// current price. The upper bound is exclusive: a position whose range
	// ends at the current tick is entirely token B and adds no depth.
	if pool.CurrentTick >= tickLower && pool.CurrentTick < tickUpper {
		active, err := math.AddU128(math.U128ToBig(pool.ActiveLiquidity), liquidity)
		if err != nil {
			return nil, err
		}
		if pool.ActiveLiquidity, err = math.BigToU128(active); err != nil {
			return nil, err
		}
	}

	lowerSqrtPrice, err := math.TickToSqrtPriceX64(tickLower)
	if err != nil {
		return nil, err
	}
	upperSqrtPrice, err := math.TickToSqrtPriceX64(tickUpper)
	if err != nil {
		return nil, err
	}

	amountA, amountB, err := math.GetLiquidityAmounts(
		math.U128ToBig(pool.SqrtPriceX64),
		lowerSqrtPrice,
		upperSqrtPrice,
		liquidity,
	)
	if err != nil {
		return nil, err
	}

	// Single-sided positions at the price boundary have one zero amount;
	// requesting a zero-value transfer would fail upstream, so skip it.
	depositorAuth := Authority{Address: accounts.Depositor}
	if amountA > 0 {
		if err = custody.Transfer(ctx, accounts.TokenAccountA, accounts.VaultA.Address, depositorAuth, amountA); err != nil {
			return nil, err
		}
	}
	if amountB > 0 {
		if err = custody.Transfer(ctx, accounts.TokenAccountB, accounts.VaultB.Address, depositorAuth, amountB); err != nil {
			return nil, err
		}
	}

	lpAmount, err := lpMintAmount(pool, accounts.VaultA.Amount, accounts.VaultB.Amount, amountA, amountB)
	if err != nil {
		return nil, err
	}

	if pool.TotalLpIssued, err = math.AddU64(pool.TotalLpIssued, lpAmount); err != nil {
		return nil, err
	}

	if err = custody.MintTo(ctx, accounts.LpMint, accounts.LpTokenAccount, accounts.PoolAuthority, lpAmount); err != nil {
		return nil, err
	}

	return &AddLiquidityResult{AmountA: amountA, AmountB: amountB, LpMinted: lpAmount}, nil
}

// LpMintPreview returns the LP tokens a deposit would mint against the
// given supply and vault balances, without touching any state.
func LpMintPreview(totalLpIssued uint64, poolBalanceA, poolBalanceB, amountA, amountB uint64) (uint64, error) {
	return lpMintAmount(&Pool{TotalLpIssued: totalLpIssued}, poolBalanceA, poolBalanceB, amountA, amountB)
}

// lpMintAmount computes the LP shares a deposit earns.
//
// Bootstrap (no supply outstanding): the geometric mean floor(sqrt(a*b)) for
// a both-sided deposit, max(a, b) for a single-sided one.
//
// Proportional: min(a*supply/balanceA, b*supply/balanceB), the conservative
// bound, so a deposit never mints more share than either side of the pool
// supports and existing holders cannot be diluted.
func lpMintAmount(pool *Pool, poolBalanceA, poolBalanceB uint64, amountA, amountB uint64) (uint64, error) {
	if pool.TotalLpIssued == 0 {
		if amountA > 0 && amountB > 0 {
			product, err := math.MulU128(
				new(big.Int).SetUint64(amountA),
				new(big.Int).SetUint64(amountB),
			)
			if err != nil {
				return 0, err
			}
			return math.ToU64(math.Sqrt(product))
		}
		if amountA > amountB {
			return amountA, nil
		}
		return amountB, nil
	}

	// Issued supply against two empty vaults means the pool was drained or
	// deleted; there is nothing to price the deposit against.
	if poolBalanceA == 0 && poolBalanceB == 0 {
		return 0, ErrPoolEmpty
	}

	supply := new(big.Int).SetUint64(pool.TotalLpIssued)
	shareFromA := math.MulDiv(
		new(big.Int).SetUint64(amountA),
		supply,
		new(big.Int).SetUint64(poolBalanceA),
		math.RoundingDown,
	)
	shareFromB := math.MulDiv(
		new(big.Int).SetUint64(amountB),
		supply,
		new(big.Int).SetUint64(poolBalanceB),
		math.RoundingDown,
	)

	share := shareFromA
	if shareFromB.Cmp(share) < 0 {
		share = shareFromB
	}
	return math.ToU64(share)
}
