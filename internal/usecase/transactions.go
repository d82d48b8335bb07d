package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/bindings"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// txSender submits contract calls for one account and waits for them.
// Nonce and fees are read right before every submission.
type txSender struct {
	client  ChainClient
	account domain.Account
	network *config.Network
	log     *slog.Logger
}

func (s *txSender) submitAndWait(ctx context.Context, step string, to common.Address, data []byte) (*domain.TxReceipt, error) {
	nonce, err := s.client.PendingNonce(ctx)
	if err != nil {
		return nil, &domain.TxError{Step: step, Err: fmt.Errorf("failed to get pending nonce: %w", err)}
	}
	fee, err := s.client.FeeData(ctx)
	if err != nil {
		return nil, &domain.TxError{Step: step, Err: fmt.Errorf("failed to get fee data: %w", err)}
	}

	handle, err := s.client.Submit(ctx, domain.TxRequest{
		To:       to,
		Data:     data,
		Value:    new(big.Int),
		Nonce:    nonce,
		GasLimit: s.network.GasLimit,
		Fee:      *fee,
	})
	if err != nil {
		return nil, &domain.TxError{Step: step, Err: err}
	}
	s.log.Info(step+" submitted", "account", s.account.Number(), "tx", handle.Short(), "nonce", nonce)

	receipt, err := s.client.WaitForConfirmation(ctx, handle)
	if err != nil {
		return nil, &domain.TxError{Step: step, Hash: handle.Hash, Err: err}
	}
	if !receipt.Success {
		return receipt, &domain.TxError{Step: step, Hash: handle.Hash, Err: domain.ErrTxReverted}
	}
	attrs := []any{"account", s.account.Number(), "tx", handle.Short(), "block", receipt.BlockNumber}
	if link := s.network.TxURL(handle.Hash.Hex()); link != "" {
		attrs = append(attrs, "explorer", link)
	}
	s.log.Info(step+" confirmed", attrs...)
	return receipt, nil
}

// ensureAllowance approves the maximum allowance for spender unless the
// current allowance already covers amount.
func (s *txSender) ensureAllowance(ctx context.Context, token, spender common.Address, amount *big.Int) error {
	current, err := s.client.Allowance(ctx, token, spender)
	if err != nil {
		return fmt.Errorf("failed to read allowance: %w", err)
	}
	if current.Cmp(amount) >= 0 {
		s.log.Debug("allowance sufficient, skipping approval",
			"account", s.account.Number(),
			"token", domain.ShortAddress(token),
			"spender", domain.ShortAddress(spender))
		return nil
	}

	data, err := bindings.EncodeApprove(spender, bindings.MaxAllowance)
	if err != nil {
		return fmt.Errorf("failed to encode approve: %w", err)
	}
	_, err = s.submitAndWait(ctx, "approve", token, data)
	return err
}

// recoverAction converts a panic inside an executor into a failed result.
func recoverAction(log *slog.Logger, action string, account domain.Account, ok *bool) {
	if r := recover(); r != nil {
		log.Error(action+" panicked", "account", account.Number(), "panic", r)
		*ok = false
	}
}
