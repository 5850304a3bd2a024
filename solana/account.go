package solana

import (
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// splTokenAccountSize is the packed length of an SPL token account record.
const splTokenAccountSize = 165

// Account is an SPL token account reduced to the fields the vault and
// balance reads use.
type Account struct {
	Address solana.PublicKey
	Mint    solana.PublicKey
	Owner   solana.PublicKey
	Amount  uint64
}

// splAccountHead is the leading fixed-width region of the record. The
// delegate, state and close-authority tail is length-checked but not kept.
type splAccountHead struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

func decodeTokenAccount(data []byte) (*Account, error) {
	if len(data) != splTokenAccountSize {
		return nil, fmt.Errorf("token account data is %d bytes, want %d", len(data), splTokenAccountSize)
	}
	head := &splAccountHead{}
	if err := binary.NewBinDecoder(data).Decode(head); err != nil {
		return nil, err
	}
	return &Account{Mint: head.Mint, Owner: head.Owner, Amount: head.Amount}, nil
}
