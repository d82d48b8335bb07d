package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/bindings"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// maxReceiptErrors is how many consecutive failed receipt lookups end a
// confirmation wait. Pending transactions are polled indefinitely.
const maxReceiptErrors = 5

// ClientAdapter is an account-bound chain client on top of ethclient
type ClientAdapter struct {
	mu       sync.Mutex
	client   *ethclient.Client
	key      *ecdsa.PrivateKey
	address  common.Address
	chainID  *big.Int
	network  string
	interval time.Duration
	log      *slog.Logger
}

// Address returns the account address
func (c *ClientAdapter) Address() common.Address {
	return c.address
}

// NativeBalance returns the latest native balance of the account
func (c *ClientAdapter) NativeBalance(ctx context.Context) (*big.Int, error) {
	client, err := c.rpc()
	if err != nil {
		return nil, err
	}
	balance, err := client.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// PendingNonce returns the next nonce including pending transactions
func (c *ClientAdapter) PendingNonce(ctx context.Context) (uint64, error) {
	client, err := c.rpc()
	if err != nil {
		return 0, err
	}
	return client.PendingNonceAt(ctx, c.address)
}

// FeeData returns EIP-1559 fees when the latest block has a base fee and
// a legacy gas price otherwise
func (c *ClientAdapter) FeeData(ctx context.Context) (*domain.FeeData, error) {
	client, err := c.rpc()
	if err != nil {
		return nil, err
	}

	header, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	if header.BaseFee != nil {
		tip, err := client.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest tip: %w", err)
		}
		return dynamicFee(header.BaseFee, tip), nil
	}

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	return legacyFee(price), nil
}

// Allowance reads the ERC-20 allowance the account granted spender
func (c *ClientAdapter) Allowance(ctx context.Context, token, spender common.Address) (*big.Int, error) {
	client, err := c.rpc()
	if err != nil {
		return nil, err
	}
	data, err := bindings.EncodeAllowance(c.address, spender)
	if err != nil {
		return nil, err
	}
	ret, err := client.CallContract(ctx, ethereum.CallMsg{From: c.address, To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("allowance call failed: %w", err)
	}
	return bindings.DecodeAllowance(ret)
}

// Submit signs and broadcasts a transaction
func (c *ClientAdapter) Submit(ctx context.Context, req domain.TxRequest) (domain.TxHandle, error) {
	client, err := c.rpc()
	if err != nil {
		return domain.TxHandle{}, err
	}

	tx := buildTx(c.chainID, req)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return domain.TxHandle{}, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return domain.TxHandle{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return domain.TxHandle{Hash: signed.Hash()}, nil
}

// WaitForConfirmation polls for the receipt until the transaction is
// mined or ctx is done
func (c *ClientAdapter) WaitForConfirmation(ctx context.Context, handle domain.TxHandle) (*domain.TxReceipt, error) {
	client, err := c.rpc()
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	failures := 0
	for {
		receipt, err := client.TransactionReceipt(ctx, handle.Hash)
		switch {
		case err == nil:
			return toReceipt(receipt), nil
		case errors.Is(err, ethereum.NotFound):
			failures = 0
		default:
			failures++
			if failures >= maxReceiptErrors {
				return nil, fmt.Errorf("failed to get receipt: %w", err)
			}
			c.log.Debug("receipt lookup failed, retrying", "tx", handle.Short(), "network", c.network, "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close releases the underlying connection
func (c *ClientAdapter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

func (c *ClientAdapter) rpc() (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil, domain.ErrNotConnected
	}
	return c.client, nil
}

func buildTx(chainID *big.Int, req domain.TxRequest) *types.Transaction {
	to := req.To
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	if req.Fee.IsDynamic() {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     req.Nonce,
			GasTipCap: req.Fee.GasTipCap,
			GasFeeCap: req.Fee.GasFeeCap,
			Gas:       req.GasLimit,
			To:        &to,
			Value:     value,
			Data:      req.Data,
		})
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: req.Fee.GasPrice,
		Gas:      req.GasLimit,
		To:       &to,
		Value:    value,
		Data:     req.Data,
	})
}

func toReceipt(r *types.Receipt) *domain.TxReceipt {
	out := &domain.TxReceipt{
		Hash:    r.TxHash,
		GasUsed: r.GasUsed,
		Success: r.Status == types.ReceiptStatusSuccessful,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}

var _ usecase.ChainClient = (*ClientAdapter)(nil)
