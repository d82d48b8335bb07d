package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/bindings"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// Bridge deposits a random token amount into the bridge contract on the
// bridge network, approving the contract first when needed.
type Bridge struct {
	network   *config.Network
	allowance domain.AllowancePolicy
	dialer    ChainDialer
	rnd       Randomizer
	log       *slog.Logger
}

// NewBridge creates a new Bridge executor
func NewBridge(cfg *config.RuntimeConfig, dialer ChainDialer, rnd Randomizer, log *slog.Logger) *Bridge {
	return &Bridge{
		network:   cfg.Networks.Bridge,
		allowance: cfg.BridgeAllowance,
		dialer:    dialer,
		rnd:       rnd,
		log:       log,
	}
}

func (b *Bridge) Name() string { return "bridge" }

// Execute runs one bridge deposit. Failures are logged and reported as false.
func (b *Bridge) Execute(ctx context.Context, account domain.Account, proxy string) (ok bool) {
	defer recoverAction(b.log, b.Name(), account, &ok)

	if err := b.execute(ctx, account, proxy); err != nil {
		b.log.Error("bridge failed", "account", account.Number(), "network", b.network.Name, "error", err)
		return false
	}
	return true
}

func (b *Bridge) execute(ctx context.Context, account domain.Account, proxy string) error {
	client, err := b.dialer.Dial(ctx, b.network, account.PrivateKey, proxy)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", b.network.Name, err)
	}
	defer client.Close()

	display := domain.RoundDisplay(b.rnd.Float64Between(b.network.AmountMin, b.network.AmountMax))
	amount := domain.ToBaseUnits(display, b.network.Decimals)
	token := common.HexToAddress(b.network.Token)
	contract := common.HexToAddress(b.network.Contract)
	owner := client.Address()

	b.log.Info("bridging",
		"account", account.Number(),
		"address", domain.ShortAddress(owner),
		"amount", display,
		"network", b.network.Name)

	tx := &txSender{client: client, account: account, network: b.network, log: b.log}
	if b.allowance != domain.AllowanceSkip {
		if err := tx.ensureAllowance(ctx, token, contract, amount); err != nil {
			return err
		}
	}

	data, err := bindings.EncodeDeposit(amount, owner)
	if err != nil {
		return fmt.Errorf("failed to encode deposit: %w", err)
	}
	if _, err := tx.submitAndWait(ctx, "deposit", contract, data); err != nil {
		return err
	}
	b.log.Info("bridge complete", "account", account.Number(), "amount", display)
	return nil
}
