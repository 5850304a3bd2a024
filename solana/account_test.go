package solana

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestDecodeTokenAccount(t *testing.T) {
	mint := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	owner := solana.NewWallet().PublicKey()

	data := make([]byte, splTokenAccountSize)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], 123456789)

	account, err := decodeTokenAccount(data)
	if err != nil {
		t.Fatal(err)
	}
	if !account.Mint.Equals(mint) {
		t.Fatalf("mint = %s, want %s", account.Mint, mint)
	}
	if !account.Owner.Equals(owner) {
		t.Fatalf("owner = %s, want %s", account.Owner, owner)
	}
	if account.Amount != 123456789 {
		t.Fatalf("amount = %d, want 123456789", account.Amount)
	}

	if _, err := decodeTokenAccount(data[:72]); err == nil {
		t.Fatal("truncated account data accepted")
	}
	if _, err := decodeTokenAccount(append(data, 0)); err == nil {
		t.Fatal("oversized account data accepted")
	}
}
