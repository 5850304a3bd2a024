package clmm

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// Pool is the aggregate record of one two-token pool, one per ordered mint
// pair. SqrtPriceX64 is the current price as sqrt(B per A) in 64.64 fixed
// point; CurrentTick is the tick whose interval contains it.
// ActiveLiquidity is the net sum of LiquidityNet over all ticks at or below
// CurrentTick, maintained incrementally by the provisioning workflow.
type Pool struct {
	MintA           solanago.PublicKey
	MintB           solanago.PublicKey
	SqrtPriceX64    bin.Uint128
	CurrentTick     int32
	ActiveLiquidity bin.Uint128
	TotalLpIssued   uint64
}

// Tick is one boundary record, one per (pool, index) pair that has ever
// received liquidity. LiquidityNet is the signed delta applied to active
// liquidity when the price crosses the tick moving upward: positive at a
// range's lower bound, negative at its upper bound.
type Tick struct {
	Index        int32
	LiquidityNet bin.Int128
}

// accountDiscriminator derives the 8-byte anchor-style account tag.
func accountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	return hash[:8]
}

var (
	poolDiscriminator = accountDiscriminator("Pool")
	tickDiscriminator = accountDiscriminator("Tick")
)

func decodeAccount(data, discriminator []byte, name string, out interface{}) error {
	if len(data) < 8 || !bytes.Equal(data[:8], discriminator) {
		return fmt.Errorf("not a %s account", name)
	}
	if err := bin.NewBorshDecoder(data[8:]).Decode(out); err != nil {
		return fmt.Errorf("decode %s account: %w", name, err)
	}
	return nil
}

func encodeAccount(discriminator []byte, in interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(discriminator)
	if err := bin.NewBorshEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a borsh-serialized pool account, discriminator included.
func (p *Pool) Decode(data []byte) error {
	return decodeAccount(data, poolDiscriminator, "Pool", p)
}

// Encode serializes the pool record with its discriminator.
func (p *Pool) Encode() ([]byte, error) {
	return encodeAccount(poolDiscriminator, p)
}

// Decode parses a borsh-serialized tick account, discriminator included.
func (t *Tick) Decode(data []byte) error {
	return decodeAccount(data, tickDiscriminator, "Tick", t)
}

// Encode serializes the tick record with its discriminator.
func (t *Tick) Encode() ([]byte, error) {
	return encodeAccount(tickDiscriminator, t)
}

func (p *Pool) clone() *Pool {
	cp := *p
	return &cp
}

func (t *Tick) clone() *Tick {
	cp := *t
	return &cp
}
