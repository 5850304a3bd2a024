package clmm

import (
	"bytes"
	"encoding/binary"

	solanago "github.com/gagliardetto/solana-go"
)

// SortMints returns the pair in canonical order: mint A before mint B.
func SortMints(mint1, mint2 solanago.PublicKey) (solanago.PublicKey, solanago.PublicKey) {
	if bytes.Compare(mint1.Bytes(), mint2.Bytes()) > 0 {
		return mint2, mint1
	}
	return mint1, mint2
}

func tickIndexBytes(index int32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(index))
	return out
}

// DeriveAuthority returns the pool's program-derived authority for a mint
// pair, seeds included so custody can sign mint and transfer-out requests
// on the pool's behalf.
func DeriveAuthority(mintA, mintB solanago.PublicKey) (Authority, error) {
	seeds := [][]byte{SeedAuthority, mintA.Bytes(), mintB.Bytes()}
	pub, bump, err := solanago.FindProgramAddress(seeds, ProgramID)
	if err != nil {
		return Authority{}, err
	}
	return Authority{
		Address: pub,
		Seeds:   append(seeds, []byte{bump}),
	}, nil
}

func DerivePoolAddress(mintA, mintB solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		SeedPool, mintA.Bytes(), mintB.Bytes(),
	}, ProgramID)
	return pub
}

func DeriveTickAddress(mintA, mintB solanago.PublicKey, index int32) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		SeedTick, mintA.Bytes(), mintB.Bytes(), tickIndexBytes(index),
	}, ProgramID)
	return pub
}

func DeriveVaultAAddress(mintA, mintB solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		SeedVaultToken, mintA.Bytes(), mintB.Bytes(), vaultSideA,
	}, ProgramID)
	return pub
}

func DeriveVaultBAddress(mintA, mintB solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		SeedVaultToken, mintA.Bytes(), mintB.Bytes(), vaultSideB,
	}, ProgramID)
	return pub
}

func DeriveLpMintAddress(mintA, mintB solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		SeedLpToken, mintA.Bytes(), mintB.Bytes(),
	}, ProgramID)
	return pub
}
