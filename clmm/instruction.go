package clmm

import (
	"bytes"
	"crypto/sha256"
	"math/big"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/clmm-go/clmm/math"
)

// instructionDiscriminator derives the 8-byte anchor-style method tag.
func instructionDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	return hash[:8]
}

var addLiquidityDiscriminator = instructionDiscriminator("add_liquidity")

// addLiquidityArgs is the borsh argument layout of the on-chain method.
type addLiquidityArgs struct {
	TickLower int32
	TickUpper int32
	Liquidity bin.Uint128
}

// NewAddLiquidityInstruction builds the on-chain add_liquidity call. The
// account order follows the program's accounts struct; signer pays for and
// receives the LP token account.
func NewAddLiquidityInstruction(
	signer solanago.PublicKey,
	mintA solanago.PublicKey,
	mintB solanago.PublicKey,
	tickLower int32,
	tickUpper int32,
	liquidity *big.Int,
) (solanago.Instruction, error) {
	liq, err := math.BigToU128(liquidity)
	if err != nil {
		return nil, err
	}

	authority, err := DeriveAuthority(mintA, mintB)
	if err != nil {
		return nil, err
	}

	tokenAccountA, _, err := solanago.FindAssociatedTokenAddress(signer, mintA)
	if err != nil {
		return nil, err
	}
	tokenAccountB, _, err := solanago.FindAssociatedTokenAddress(signer, mintB)
	if err != nil {
		return nil, err
	}
	lpMint := DeriveLpMintAddress(mintA, mintB)
	lpTokenAccount, _, err := solanago.FindAssociatedTokenAddress(signer, lpMint)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.Write(addLiquidityDiscriminator)
	if err := bin.NewBorshEncoder(buf).Encode(addLiquidityArgs{
		TickLower: tickLower,
		TickUpper: tickUpper,
		Liquidity: liq,
	}); err != nil {
		return nil, err
	}

	accounts := solanago.AccountMetaSlice{
		solanago.Meta(signer).WRITE().SIGNER(),
		solanago.Meta(authority.Address),
		solanago.Meta(DerivePoolAddress(mintA, mintB)).WRITE(),
		solanago.Meta(DeriveTickAddress(mintA, mintB, tickLower)).WRITE(),
		solanago.Meta(DeriveTickAddress(mintA, mintB, tickUpper)).WRITE(),
		solanago.Meta(mintA),
		solanago.Meta(mintB),
		solanago.Meta(DeriveVaultAAddress(mintA, mintB)).WRITE(),
		solanago.Meta(tokenAccountA).WRITE(),
		solanago.Meta(tokenAccountB).WRITE(),
		solanago.Meta(DeriveVaultBAddress(mintA, mintB)).WRITE(),
		solanago.Meta(lpMint).WRITE(),
		solanago.Meta(lpTokenAccount).WRITE(),
		solanago.Meta(solanago.SPLAssociatedTokenAccountProgramID),
		solanago.Meta(solanago.TokenProgramID),
		solanago.Meta(solanago.SystemProgramID),
	}

	return solanago.NewInstruction(ProgramID, accounts, buf.Bytes()), nil
}
