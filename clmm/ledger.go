package clmm

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	solanago "github.com/gagliardetto/solana-go"
)

// AddLiquidityParams is one provisioning request against the ledger.
type AddLiquidityParams struct {
	Depositor solanago.PublicKey
	MintA     solanago.PublicKey
	MintB     solanago.PublicKey
	TickLower int32
	TickUpper int32
	Liquidity *big.Int
}

// Ledger is an in-memory host for the provisioning core: pools keyed by
// their derived address (one per mint pair), ticks by theirs (one per pool
// and index). It provides the transaction boundary the core assumes:
// a failed invocation leaves every record and every custody balance exactly
// as before the call.
//
// Calls against the same ledger are serialized; the core arithmetic has no
// internal locking.
type Ledger struct {
	mu    sync.Mutex
	pools map[solanago.PublicKey]*Pool
	ticks map[solanago.PublicKey]*Tick
}

func NewLedger() *Ledger {
	return &Ledger{
		pools: make(map[solanago.PublicKey]*Pool),
		ticks: make(map[solanago.PublicKey]*Tick),
	}
}

// TrackPool registers an existing pool record with the ledger.
func (l *Ledger) TrackPool(pool *Pool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pools[DerivePoolAddress(pool.MintA, pool.MintB)] = pool
}

// Pool returns the tracked pool for a mint pair, or nil.
func (l *Ledger) Pool(mintA, mintB solanago.PublicKey) *Pool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pools[DerivePoolAddress(mintA, mintB)]
}

// Tick returns the tracked tick record for a pool and index, or nil.
func (l *Ledger) Tick(mintA, mintB solanago.PublicKey, index int32) *Tick {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks[DeriveTickAddress(mintA, mintB, index)]
}

// tickRecord returns the tick for (pair, index), creating the record the
// first time a position references the index.
func (l *Ledger) tickRecord(mintA, mintB solanago.PublicKey, index int32) *Tick {
	addr := DeriveTickAddress(mintA, mintB, index)
	if tick, ok := l.ticks[addr]; ok {
		return tick
	}
	tick := &Tick{Index: index}
	l.ticks[addr] = tick
	return tick
}

// AddLiquidity resolves the request's records, runs the provisioning
// workflow, and commits atomically: state mutations are rolled back and no
// custody request reaches the collaborator unless every step succeeded.
func (l *Ledger) AddLiquidity(ctx context.Context, custody *MemoryCustody, params AddLiquidityParams) (*AddLiquidityResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pool, ok := l.pools[DerivePoolAddress(params.MintA, params.MintB)]
	if !ok {
		return nil, fmt.Errorf("no pool for mint pair %s/%s", params.MintA, params.MintB)
	}

	tickLower := l.tickRecord(params.MintA, params.MintB, params.TickLower)
	tickUpper := l.tickRecord(params.MintA, params.MintB, params.TickUpper)

	authority, err := DeriveAuthority(params.MintA, params.MintB)
	if err != nil {
		return nil, err
	}

	vaultA := DeriveVaultAAddress(params.MintA, params.MintB)
	vaultB := DeriveVaultBAddress(params.MintA, params.MintB)
	lpMint := DeriveLpMintAddress(params.MintA, params.MintB)

	tokenAccountA, _, err := solanago.FindAssociatedTokenAddress(params.Depositor, params.MintA)
	if err != nil {
		return nil, err
	}
	tokenAccountB, _, err := solanago.FindAssociatedTokenAddress(params.Depositor, params.MintB)
	if err != nil {
		return nil, err
	}
	lpTokenAccount, _, err := solanago.FindAssociatedTokenAddress(params.Depositor, lpMint)
	if err != nil {
		return nil, err
	}

	accounts := &AddLiquidityAccounts{
		Pool:           pool,
		TickLower:      tickLower,
		TickUpper:      tickUpper,
		MintA:          params.MintA,
		MintB:          params.MintB,
		VaultA:         VaultBalance{Address: vaultA, Amount: custody.Balance(vaultA)},
		VaultB:         VaultBalance{Address: vaultB, Amount: custody.Balance(vaultB)},
		TokenAccountA:  tokenAccountA,
		TokenAccountB:  tokenAccountB,
		Depositor:      params.Depositor,
		LpMint:         lpMint,
		LpTokenAccount: lpTokenAccount,
		PoolAuthority:  authority,
	}

	poolBackup := pool.clone()
	lowerBackup := tickLower.clone()
	upperBackup := tickUpper.clone()

	staged := &stagedCustody{}
	result, err := AddLiquidity(ctx, accounts, staged, params.TickLower, params.TickUpper, params.Liquidity)
	if err == nil {
		custodyBackup := custody.snapshot()
		if err = staged.flush(ctx, custody); err != nil {
			custody.restore(custodyBackup)
		}
	}
	if err != nil {
		*pool = *poolBackup
		*tickLower = *lowerBackup
		*tickUpper = *upperBackup
		return nil, err
	}
	return result, nil
}

// stagedCustody queues custody requests during the workflow and forwards
// them only once every step has succeeded, keeping the custody legs inside
// the ledger's atomic unit.
type stagedCustody struct {
	requests []func(ctx context.Context, target Custody) error
}

func (s *stagedCustody) Transfer(ctx context.Context, from, to solanago.PublicKey, authority Authority, amount uint64) error {
	s.requests = append(s.requests, func(ctx context.Context, target Custody) error {
		return target.Transfer(ctx, from, to, authority, amount)
	})
	return nil
}

func (s *stagedCustody) MintTo(ctx context.Context, mint, to solanago.PublicKey, authority Authority, amount uint64) error {
	s.requests = append(s.requests, func(ctx context.Context, target Custody) error {
		return target.MintTo(ctx, mint, to, authority, amount)
	})
	return nil
}

func (s *stagedCustody) flush(ctx context.Context, target Custody) error {
	for _, request := range s.requests {
		if err := request(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// MemoryCustody is a token collaborator backed by in-memory balances,
// enough to run and test the provisioning core without a chain.
type MemoryCustody struct {
	mu       sync.Mutex
	balances map[solanago.PublicKey]uint64
	supplies map[solanago.PublicKey]uint64
}

func NewMemoryCustody() *MemoryCustody {
	return &MemoryCustody{
		balances: make(map[solanago.PublicKey]uint64),
		supplies: make(map[solanago.PublicKey]uint64),
	}
}

// SetBalance seeds a token account balance.
func (c *MemoryCustody) SetBalance(account solanago.PublicKey, amount uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[account] = amount
}

// Balance reads a token account balance.
func (c *MemoryCustody) Balance(account solanago.PublicKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances[account]
}

// Supply reads a mint's outstanding supply.
func (c *MemoryCustody) Supply(mint solanago.PublicKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.supplies[mint]
}

type custodySnapshot struct {
	balances map[solanago.PublicKey]uint64
	supplies map[solanago.PublicKey]uint64
}

func (c *MemoryCustody) snapshot() custodySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := custodySnapshot{
		balances: make(map[solanago.PublicKey]uint64, len(c.balances)),
		supplies: make(map[solanago.PublicKey]uint64, len(c.supplies)),
	}
	for k, v := range c.balances {
		snap.balances[k] = v
	}
	for k, v := range c.supplies {
		snap.supplies[k] = v
	}
	return snap
}

func (c *MemoryCustody) restore(snap custodySnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances = snap.balances
	c.supplies = snap.supplies
}

func (c *MemoryCustody) Transfer(ctx context.Context, from, to solanago.PublicKey, authority Authority, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balances[from] < amount {
		return fmt.Errorf("insufficient balance in %s: have %d, need %d", from, c.balances[from], amount)
	}
	c.balances[from] -= amount
	c.balances[to] += amount
	return nil
}

func (c *MemoryCustody) MintTo(ctx context.Context, mint, to solanago.PublicKey, authority Authority, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !authority.IsDerived() {
		return fmt.Errorf("mint authority for %s must be the pool's derived authority", mint)
	}
	c.supplies[mint] += amount
	c.balances[to] += amount
	return nil
}
