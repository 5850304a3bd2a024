package clmm

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
)

// Authority is an opaque signing capability. For user signers only Address
// is set; for the pool's program-derived authority Seeds carries the
// derivation (bump included) that lets the custody layer sign without a
// private key.
type Authority struct {
	Address solanago.PublicKey
	Seeds   [][]byte
}

// IsDerived reports whether the authority signs through a seed derivation
// rather than a private key.
func (a Authority) IsDerived() bool {
	return len(a.Seeds) > 0
}

// Custody is the external token collaborator. Both requests execute inside
// the same atomic unit as the provisioning call: if the host aborts, any
// transfer or mint requested here is rolled back with the rest of the
// invocation.
type Custody interface {
	// Transfer moves exactly amount from one token account to another,
	// authorized by the given authority. Fails if the source balance is
	// insufficient.
	Transfer(ctx context.Context, from, to solanago.PublicKey, authority Authority, amount uint64) error

	// MintTo increases the destination balance and the mint's supply by
	// amount, authorized by the pool's derived authority.
	MintTo(ctx context.Context, mint, to solanago.PublicKey, authority Authority, amount uint64) error
}
