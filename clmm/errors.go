package clmm

import (
	"errors"

	"github.com/krazyTry/clmm-go/clmm/math"
)

// Every provisioning failure is one of these kinds. All of them abort the
// whole invocation; a caller may retry with corrected inputs.
var (
	// ErrTickMismatch is returned when tick_lower >= tick_upper.
	ErrTickMismatch = errors.New("tick lower must be below tick upper")
	// ErrInvalidTickIndex is returned when a supplied tick record stores a
	// different index than the one requested.
	ErrInvalidTickIndex = errors.New("tick record index mismatch")
	// ErrInvalidTokenMint is returned when the pool's recorded mints differ
	// from the supplied mint accounts.
	ErrInvalidTokenMint = errors.New("pool token mint mismatch")
	// ErrUnalignedTick is returned for ticks that are not multiples of the
	// tick spacing.
	ErrUnalignedTick = errors.New("tick not aligned to tick spacing")
	// ErrPoolEmpty is returned when a proportional deposit targets a pool
	// with issued LP supply but zero balances in both vaults.
	ErrPoolEmpty = errors.New("pool has issued supply but both vaults are empty")

	// ErrArithmeticOverflow and ErrPriceOverflow propagate from the math
	// package unchanged so errors.Is works across layers.
	ErrArithmeticOverflow = math.ErrArithmeticOverflow
	ErrPriceOverflow      = math.ErrPriceOverflow
)
