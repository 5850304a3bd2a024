package solana

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// TransferTokenInstruction moves tokens between two known token accounts.
func TransferTokenInstruction(
	source solana.PublicKey,
	destination solana.PublicKey,
	owner solana.PublicKey,
	amount uint64,
) solana.Instruction {
	return token.NewTransferInstruction(
		amount,
		source,
		destination,
		owner,
		nil,
	).Build()
}

// MintToInstruction mints tokens to a token account. The authority must be
// the mint's mint authority.
func MintToInstruction(
	mint solana.PublicKey,
	destination solana.PublicKey,
	authority solana.PublicKey,
	amount uint64,
) solana.Instruction {
	return token.NewMintToInstruction(
		amount,
		mint,
		destination,
		authority,
		nil,
	).Build()
}
