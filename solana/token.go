package solana

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Token is a decoded mint account plus the program that owns it.
type Token struct {
	token.Mint
	Owner solana.PublicKey
}

func decodeMint(data []byte) (*Token, error) {
	mint := token.Mint{}
	if err := mint.Decode(data); err != nil {
		return nil, err
	}
	return &Token{Mint: mint}, nil
}
