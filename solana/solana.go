// Package solana wraps the RPC and instruction plumbing the pool client
// needs: account fetches, ATA preparation, token transfers and mints, and
// transaction submission.
package solana
