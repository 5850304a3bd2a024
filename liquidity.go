package clmmgo

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"go.uber.org/zap"

	"github.com/krazyTry/clmm-go/clmm"
	solanago "github.com/krazyTry/clmm-go/solana"
)

// GetPool fetches and decodes the pool account for a mint pair.
func (m *CLMM) GetPool(ctx context.Context, mintA, mintB solana.PublicKey) (*Pool, error) {
	address := clmm.DerivePoolAddress(mintA, mintB)
	out, err := solanago.GetAccountInfo(ctx, m.rpcClient, address)
	if err != nil {
		return nil, fmt.Errorf("pool %s: %w", address, err)
	}

	poolState := &clmm.Pool{}
	if err := poolState.Decode(out.Value.Data.GetBinary()); err != nil {
		return nil, err
	}
	return &Pool{Pool: poolState, Address: address}, nil
}

// GetPools lists every pool account owned by the program.
func (m *CLMM) GetPools(ctx context.Context) ([]*Pool, error) {
	outs, err := m.rpcClient.GetProgramAccountsWithOpts(ctx, clmm.ProgramID,
		solanago.GenProgramAccountFilter("Pool", solana.PublicKey{}, 0))
	if err != nil {
		return nil, err
	}

	pools := make([]*Pool, 0, len(outs))
	for _, out := range outs {
		poolState := &clmm.Pool{}
		if err := poolState.Decode(out.Account.Data.GetBinary()); err != nil {
			return nil, err
		}
		pools = append(pools, &Pool{Pool: poolState, Address: out.Pubkey})
	}
	return pools, nil
}

// GetTick fetches the tick account for a pool and index. An index that has
// never received liquidity has no account yet and decodes to a zero record.
func (m *CLMM) GetTick(ctx context.Context, mintA, mintB solana.PublicKey, index int32) (*Tick, error) {
	address := clmm.DeriveTickAddress(mintA, mintB, index)
	out, err := solanago.GetAccountInfo(ctx, m.rpcClient, address)
	if err == rpc.ErrNotFound {
		return &Tick{Tick: &clmm.Tick{Index: index}, Address: address}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tick %s: %w", address, err)
	}

	tickState := &clmm.Tick{}
	if err := tickState.Decode(out.Value.Data.GetBinary()); err != nil {
		return nil, err
	}
	return &Tick{Tick: tickState, Address: address}, nil
}

// GetVaults fetches both vault balances for a mint pair. A vault that does
// not exist yet reads as zero.
func (m *CLMM) GetVaults(ctx context.Context, mintA, mintB solana.PublicKey) (*Vaults, error) {
	vaults := &Vaults{
		VaultA: clmm.DeriveVaultAAddress(mintA, mintB),
		VaultB: clmm.DeriveVaultBAddress(mintA, mintB),
	}

	accountA, err := solanago.GetTokenAccount(ctx, m.rpcClient, vaults.VaultA)
	if err != nil && err != rpc.ErrNotFound {
		return nil, err
	}
	if accountA != nil {
		vaults.AmountA = accountA.Amount
	}

	accountB, err := solanago.GetTokenAccount(ctx, m.rpcClient, vaults.VaultB)
	if err != nil && err != rpc.ErrNotFound {
		return nil, err
	}
	if accountB != nil {
		vaults.AmountB = accountB.Amount
	}
	return vaults, nil
}

// discardCustody satisfies the custody interface for off-chain quoting,
// where no tokens actually move.
type discardCustody struct{}

func (discardCustody) Transfer(ctx context.Context, from, to solana.PublicKey, authority clmm.Authority, amount uint64) error {
	return nil
}

func (discardCustody) MintTo(ctx context.Context, mint, to solana.PublicKey, authority clmm.Authority, amount uint64) error {
	return nil
}

// QuoteAddLiquidity runs the provisioning arithmetic on fetched state
// without sending anything: the deposit both legs would take at the current
// price and the LP tokens the depositor would receive.
func (m *CLMM) QuoteAddLiquidity(
	ctx context.Context,
	depositor solana.PublicKey,
	mintA solana.PublicKey,
	mintB solana.PublicKey,
	tickLower int32,
	tickUpper int32,
	liquidity *big.Int,
) (*Quote, error) {
	poolState, err := m.GetPool(ctx, mintA, mintB)
	if err != nil {
		return nil, err
	}
	lowerState, err := m.GetTick(ctx, mintA, mintB, tickLower)
	if err != nil {
		return nil, err
	}
	upperState, err := m.GetTick(ctx, mintA, mintB, tickUpper)
	if err != nil {
		return nil, err
	}
	vaults, err := m.GetVaults(ctx, mintA, mintB)
	if err != nil {
		return nil, err
	}

	authority, err := clmm.DeriveAuthority(mintA, mintB)
	if err != nil {
		return nil, err
	}

	tokenAccountA, _, err := solana.FindAssociatedTokenAddress(depositor, mintA)
	if err != nil {
		return nil, err
	}
	tokenAccountB, _, err := solana.FindAssociatedTokenAddress(depositor, mintB)
	if err != nil {
		return nil, err
	}
	lpMint := clmm.DeriveLpMintAddress(mintA, mintB)
	lpTokenAccount, _, err := solana.FindAssociatedTokenAddress(depositor, lpMint)
	if err != nil {
		return nil, err
	}

	accounts := &clmm.AddLiquidityAccounts{
		Pool:           poolState.Pool,
		TickLower:      lowerState.Tick,
		TickUpper:      upperState.Tick,
		MintA:          mintA,
		MintB:          mintB,
		VaultA:         clmm.VaultBalance{Address: vaults.VaultA, Amount: vaults.AmountA},
		VaultB:         clmm.VaultBalance{Address: vaults.VaultB, Amount: vaults.AmountB},
		TokenAccountA:  tokenAccountA,
		TokenAccountB:  tokenAccountB,
		Depositor:      depositor,
		LpMint:         lpMint,
		LpTokenAccount: lpTokenAccount,
		PoolAuthority:  authority,
	}

	result, err := clmm.AddLiquidity(ctx, accounts, discardCustody{}, tickLower, tickUpper, liquidity)
	if err != nil {
		return nil, err
	}
	return &Quote{AmountA: result.AmountA, AmountB: result.AmountB, LpMinted: result.LpMinted}, nil
}

// AddLiquidityInstruction prepares the depositor's token accounts and
// builds the on-chain add_liquidity call.
func AddLiquidityInstruction(
	ctx context.Context,
	rpcClient *rpc.Client,
	payer solana.PublicKey,
	depositor solana.PublicKey,
	mintA solana.PublicKey,
	mintB solana.PublicKey,
	tickLower int32,
	tickUpper int32,
	liquidity *big.Int,
) ([]solana.Instruction, error) {
	if liquidity.Sign() <= 0 {
		return nil, fmt.Errorf("liquidity must be greater than 0")
	}

	var instructions []solana.Instruction

	if _, err := solanago.PrepareTokenATA(ctx, rpcClient, depositor, mintA, payer, &instructions); err != nil {
		return nil, err
	}
	if _, err := solanago.PrepareTokenATA(ctx, rpcClient, depositor, mintB, payer, &instructions); err != nil {
		return nil, err
	}

	liquidityIx, err := clmm.NewAddLiquidityInstruction(
		depositor,
		mintA,
		mintB,
		tickLower,
		tickUpper,
		liquidity,
	)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, liquidityIx)

	return solanago.MergeInstructions(instructions), nil
}

// AddLiquidity quotes the deposit, submits the add_liquidity transaction,
// and waits for confirmation.
func (m *CLMM) AddLiquidity(
	ctx context.Context,
	wsClient *ws.Client,
	payer *solana.Wallet,
	mintA solana.PublicKey,
	mintB solana.PublicKey,
	tickLower int32,
	tickUpper int32,
	liquidity *big.Int,
) (string, *Quote, error) {
	depositor := m.depositor
	if depositor == nil {
		depositor = payer
	}

	quote, err := m.QuoteAddLiquidity(ctx, depositor.PublicKey(), mintA, mintB, tickLower, tickUpper, liquidity)
	if err != nil {
		return "", nil, err
	}

	// The vault pulls run on chain; reject here rather than burn the fee on
	// a transaction that cannot settle.
	if quote.AmountA > 0 {
		balanceA, err := solanago.MintBalance(ctx, m.rpcClient, depositor.PublicKey(), mintA)
		if err != nil {
			return "", nil, err
		}
		if balanceA < quote.AmountA {
			return "", nil, fmt.Errorf("insufficient %s balance: have %d, need %d", mintA, balanceA, quote.AmountA)
		}
	}
	if quote.AmountB > 0 {
		balanceB, err := solanago.MintBalance(ctx, m.rpcClient, depositor.PublicKey(), mintB)
		if err != nil {
			return "", nil, err
		}
		if balanceB < quote.AmountB {
			return "", nil, fmt.Errorf("insufficient %s balance: have %d, need %d", mintB, balanceB, quote.AmountB)
		}
	}

	m.logger.Info("add liquidity",
		zap.String("mintA", mintA.String()),
		zap.String("mintB", mintB.String()),
		zap.Int32("tickLower", tickLower),
		zap.Int32("tickUpper", tickUpper),
		zap.Uint64("amountA", quote.AmountA),
		zap.Uint64("amountB", quote.AmountB),
		zap.Uint64("lpMinted", quote.LpMinted),
	)

	instructions, err := AddLiquidityInstruction(
		ctx,
		m.rpcClient,
		payer.PublicKey(),
		depositor.PublicKey(),
		mintA,
		mintB,
		tickLower,
		tickUpper,
		liquidity,
	)
	if err != nil {
		return "", nil, err
	}

	sig, err := solanago.SendInstruction(ctx,
		m.rpcClient,
		wsClient,
		instructions,
		payer.PublicKey(),
		func(key solana.PublicKey) *solana.PrivateKey {
			switch {
			case key.Equals(payer.PublicKey()):
				return &payer.PrivateKey
			case key.Equals(depositor.PublicKey()):
				return &depositor.PrivateKey
			default:
				return nil
			}
		},
	)
	if err != nil {
		return "", nil, err
	}
	return sig.String(), quote, nil
}
