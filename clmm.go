// Package clmmgo is a client SDK for the concentrated-liquidity pool
// program: pool and tick account reads, liquidity quotes, and the
// add_liquidity transaction flow.
package clmmgo

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

type CLMM struct {
	rpcClient *rpc.Client
	depositor *solana.Wallet
	logger    *zap.Logger
}

func NewCLMM(
	rpcClient *rpc.Client,
	opts ...Option,
) *CLMM {
	m := &CLMM{
		rpcClient: rpcClient,
		logger:    zap.NewNop(),
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

type Option func(*CLMM)

// WithDepositor sets the default wallet used to sign add_liquidity calls.
func WithDepositor(depositor *solana.Wallet) Option {
	return func(m *CLMM) {
		m.depositor = depositor
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *CLMM) {
		m.logger = logger
	}
}
