package clmm

import (
	solanago "github.com/gagliardetto/solana-go"
)

// ProgramID is the on-chain address of the CLMM program.
var ProgramID = solanago.MustPublicKeyFromBase58("G6kwUoHSqYmzewHR1npTFa3LncPmrksNkJ99Cyc8JJPz")

// TickSpacing is the program's fixed tick spacing; every valid tick index is
// a multiple of it.
const TickSpacing int32 = 10

// Seeds used for the program's derived addresses.
var (
	SeedAuthority  = []byte("authority")
	SeedPool       = []byte("pool")
	SeedTick       = []byte("tick")
	SeedVaultToken = []byte("vault_token")
	SeedLpToken    = []byte("lp_token")

	vaultSideA = []byte("A")
	vaultSideB = []byte("B")
)
