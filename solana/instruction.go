package solana

import (
	"context"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"
	sendandconfirmtransaction "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

var ataInstructionTypeID = binary.NoTypeIDDefaultID

// MergeInstructions deduplicates ATA-create instructions so that preparing
// the same associated account twice in one batch emits a single create.
func MergeInstructions(oldInstructions []solana.Instruction) []solana.Instruction {
	var (
		ataCreateInstructions []*associatedtokenaccount.Create
		newInstructions       []solana.Instruction
	)

	for _, v := range oldInstructions {
		inst, ok := v.(*associatedtokenaccount.Instruction)
		if !ok || inst.TypeID != ataInstructionTypeID {
			newInstructions = append(newInstructions, v)
			continue
		}

		ataCreate, ok := inst.Impl.(associatedtokenaccount.Create)
		if !ok {
			newInstructions = append(newInstructions, v)
			continue
		}

		bSave := false
		for _, instruction := range ataCreateInstructions {
			if ataCreate.Mint != instruction.Mint ||
				ataCreate.Payer != instruction.Payer ||
				ataCreate.Wallet != instruction.Wallet {
				continue
			}

			bSave = true
			break
		}

		if !bSave {
			ataCreateInstructions = append(ataCreateInstructions, &ataCreate)
			newInstructions = append(newInstructions, v)
		}
	}

	return newInstructions
}

// SendInstruction packs instructions into one transaction, signs it, and
// waits for confirmation.
func SendInstruction(
	ctx context.Context,
	rpcClient *rpc.Client,
	wsClient *ws.Client,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	sign func(key solana.PublicKey) *solana.PrivateKey,
) (solana.Signature, error) {

	latestBlockhash, err := GetLatestBlockhash(ctx, rpcClient)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := solana.NewTransaction(instructions, latestBlockhash, solana.TransactionPayer(payer))
	if err != nil {
		return solana.Signature{}, err
	}

	return SendTransaction(ctx, rpcClient, wsClient, tx, sign)
}

// SendTransaction signs and submits a prepared transaction, refreshing its
// blockhash, and waits for confirmation.
func SendTransaction(
	ctx context.Context,
	rpcClient *rpc.Client,
	wsClient *ws.Client,
	tx *solana.Transaction,
	sign func(key solana.PublicKey) *solana.PrivateKey,
) (solana.Signature, error) {

	latestBlockhash, err := GetLatestBlockhash(ctx, rpcClient)
	if err != nil {
		return solana.Signature{}, err
	}

	tx.Message.RecentBlockhash = latestBlockhash

	if _, err = tx.Sign(sign); err != nil {
		return solana.Signature{}, err
	}

	sig, err := rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return solana.Signature{}, err
	}

	confirmed, err := sendandconfirmtransaction.WaitForConfirmation(ctx, wsClient, sig, nil)
	if confirmed {
		if err != nil {
			return solana.Signature{}, fmt.Errorf("transaction confirmed but failed: %w", err)
		}
		return sig, nil
	}
	statusResp, err := rpcClient.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("rpc GetSignatureStatuses error: %w", err)
	}
	status := statusResp.Value[0]
	if status == nil {
		return solana.Signature{}, fmt.Errorf("transaction not found (maybe dropped)")
	}
	if status.Err != nil {
		return solana.Signature{}, fmt.Errorf("transaction confirmed but failed: %v", status.Err)
	}
	txResp, err := rpcClient.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{Commitment: rpc.CommitmentFinalized})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("rpc GetTransaction error: %w", err)
	}
	if txResp != nil && txResp.Meta != nil && txResp.Meta.Err != nil {
		return solana.Signature{}, fmt.Errorf("transaction finalized but failed: %v", txResp.Meta.Err)
	}
	return sig, nil
}
