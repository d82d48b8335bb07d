package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/bindings"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// SwapDeadline is how long a submitted swap stays valid.
const SwapDeadline = 30 * time.Minute

// Swap sells a random token amount through the router's exactInputSingle,
// batched in a single multicall.
type Swap struct {
	network   *config.Network
	allowance domain.AllowancePolicy
	dialer    ChainDialer
	rnd       Randomizer
	clock     Clock
	log       *slog.Logger
}

// NewSwap creates a new Swap executor
func NewSwap(cfg *config.RuntimeConfig, dialer ChainDialer, rnd Randomizer, clock Clock, log *slog.Logger) *Swap {
	return &Swap{
		network:   cfg.Networks.Swap,
		allowance: cfg.SwapAllowance,
		dialer:    dialer,
		rnd:       rnd,
		clock:     clock,
		log:       log,
	}
}

func (s *Swap) Name() string { return "swap" }

// Execute runs one swap. Failures are logged and reported as false.
func (s *Swap) Execute(ctx context.Context, account domain.Account, proxy string) (ok bool) {
	defer recoverAction(s.log, s.Name(), account, &ok)

	if err := s.execute(ctx, account, proxy); err != nil {
		s.log.Error("swap failed", "account", account.Number(), "network", s.network.Name, "error", err)
		return false
	}
	return true
}

func (s *Swap) execute(ctx context.Context, account domain.Account, proxy string) error {
	client, err := s.dialer.Dial(ctx, s.network, account.PrivateKey, proxy)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", s.network.Name, err)
	}
	defer client.Close()

	display := domain.RoundDisplay(s.rnd.Float64Between(s.network.AmountMin, s.network.AmountMax))
	amount := domain.ToBaseUnits(display, s.network.Decimals)
	tokenIn := common.HexToAddress(s.network.Token)
	router := common.HexToAddress(s.network.Contract)
	owner := client.Address()

	s.log.Info("swapping",
		"account", account.Number(),
		"address", domain.ShortAddress(owner),
		"amount", display,
		"network", s.network.Name)

	tx := &txSender{client: client, account: account, network: s.network, log: s.log}
	if s.allowance == domain.AllowanceEnsure {
		if err := tx.ensureAllowance(ctx, tokenIn, router, amount); err != nil {
			return err
		}
	}

	data, err := s.encodeSwap(owner, tokenIn, amount)
	if err != nil {
		return err
	}
	if _, err := tx.submitAndWait(ctx, "swap", router, data); err != nil {
		return err
	}
	s.log.Info("swap complete", "account", account.Number(), "amount", display)
	return nil
}

// encodeSwap builds multicall(deadline, [exactInputSingle(...)]). The
// minimum output is zero, so the swap has no slippage protection.
func (s *Swap) encodeSwap(recipient, tokenIn common.Address, amount *big.Int) ([]byte, error) {
	call, err := bindings.EncodeExactInputSingle(bindings.ExactInputSingleParams{
		TokenIn:   tokenIn,
		TokenOut:  common.HexToAddress(s.network.TokenOut),
		Fee:       new(big.Int).SetUint64(uint64(s.network.PoolFee)),
		Recipient: recipient,
		AmountIn:  amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode exactInputSingle: %w", err)
	}

	deadline := big.NewInt(s.clock.Now().Add(SwapDeadline).Unix())
	data, err := bindings.EncodeMulticall(deadline, [][]byte{call})
	if err != nil {
		return nil, fmt.Errorf("failed to encode multicall: %w", err)
	}
	return data, nil
}
