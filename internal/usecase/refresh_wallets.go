package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/samber/lo"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// RefreshWalletsResult contains one row per loaded account
type RefreshWalletsResult struct {
	Network *config.Network
	Wallets []domain.Wallet
	Dropped int
}

// RefreshWallets reloads the accounts and queries each native balance on
// the bridge network through the account's proxy.
type RefreshWallets struct {
	loader   *LoadAccounts
	dialer   ChainDialer
	network  *config.Network
	progress ProgressSink
	log      *slog.Logger
}

// NewRefreshWallets creates a new RefreshWallets use case
func NewRefreshWallets(
	cfg *config.RuntimeConfig,
	loader *LoadAccounts,
	dialer ChainDialer,
	progress ProgressSink,
	log *slog.Logger,
) *RefreshWallets {
	return &RefreshWallets{
		loader:   loader,
		dialer:   dialer,
		network:  cfg.Networks.Bridge,
		progress: progress,
		log:      log,
	}
}

// Run executes the refresh. A failed balance query marks its row with
// the error and a zero balance; it never fails the whole refresh.
func (uc *RefreshWallets) Run(ctx context.Context) (*RefreshWalletsResult, error) {
	loaded, err := uc.loader.Run(ctx)
	if err != nil {
		return nil, err
	}

	result := &RefreshWalletsResult{
		Network: uc.network,
		Wallets: make([]domain.Wallet, 0, len(loaded.Accounts)),
		Dropped: loaded.Dropped,
	}
	total := len(loaded.Accounts)
	for i, account := range loaded.Accounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "balances",
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Querying %s (%d/%d)", account, i+1, total),
			Spinner: true,
		})
		result.Wallets = append(result.Wallets, uc.query(ctx, account, domain.ProxyFor(loaded.Proxies, i)))
	}
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "balances", Current: total, Total: total})

	failed := lo.CountBy(result.Wallets, func(w domain.Wallet) bool { return w.Err != nil })
	uc.log.Info("wallets refreshed", "wallets", total, "failed", failed, "network", uc.network.Name)
	return result, nil
}

func (uc *RefreshWallets) query(ctx context.Context, account domain.Account, proxy string) domain.Wallet {
	wallet := domain.Wallet{
		Index:   account.Index,
		Proxy:   proxy,
		Balance: new(big.Int),
	}
	if addr, err := account.Address(); err == nil {
		wallet.Address = addr
	}

	client, err := uc.dialer.Dial(ctx, uc.network, account.PrivateKey, proxy)
	if err != nil {
		wallet.Err = err
		uc.log.Warn("balance query failed", "account", account.Number(), "error", err)
		return wallet
	}
	defer client.Close()

	wallet.Address = client.Address()
	balance, err := client.NativeBalance(ctx)
	if err != nil {
		wallet.Err = err
		uc.log.Warn("balance query failed", "account", account.Number(), "error", err)
		return wallet
	}
	wallet.Balance = balance
	return wallet
}
