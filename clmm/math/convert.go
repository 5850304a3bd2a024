package math

import (
	"math/big"

	bin "github.com/gagliardetto/binary"
)

// U128ToBig converts a binary little-endian Uint128 to *big.Int.
func U128ToBig(v bin.Uint128) *big.Int {
	out := new(big.Int).SetUint64(v.Hi)
	out.Lsh(out, 64)
	return out.Or(out, new(big.Int).SetUint64(v.Lo))
}

// BigToU128 narrows v to a Uint128, failing if it does not fit.
func BigToU128(v *big.Int) (bin.Uint128, error) {
	if err := CheckU128(v); err != nil {
		return bin.Uint128{}, err
	}
	lo := new(big.Int).And(v, MaxU64).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return bin.Uint128{Lo: lo, Hi: hi}, nil
}

// I128ToBig converts a two's-complement Int128 to *big.Int.
func I128ToBig(v bin.Int128) *big.Int {
	out := new(big.Int).SetUint64(v.Hi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.Lo))
	if v.Hi&(1<<63) != 0 {
		out.Sub(out, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return out
}

// BigToI128 narrows v to a two's-complement Int128, failing if it does not fit.
func BigToI128(v *big.Int) (bin.Int128, error) {
	if err := CheckI128(v); err != nil {
		return bin.Int128{}, err
	}
	raw := new(big.Int).Set(v)
	if raw.Sign() < 0 {
		raw.Add(raw, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	lo := new(big.Int).And(raw, MaxU64).Uint64()
	hi := new(big.Int).Rsh(raw, 64).Uint64()
	return bin.Int128{Lo: lo, Hi: hi}, nil
}
