package usecase

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/domain/config"
)

// LoadAccountsResult contains the result of loading accounts
type LoadAccountsResult struct {
	Accounts []domain.Account
	Proxies  []string
	Dropped  int
}

// LoadAccounts reads secrets and proxies into the session's account store
type LoadAccounts struct {
	secrets SecretSource
	proxies ProxySource
	store   AccountRepository
	policy  domain.SecretPolicy
	log     *slog.Logger
}

// NewLoadAccounts creates a new LoadAccounts use case
func NewLoadAccounts(
	secrets SecretSource,
	proxies ProxySource,
	store AccountRepository,
	cfg *config.RuntimeConfig,
	log *slog.Logger,
) *LoadAccounts {
	return &LoadAccounts{
		secrets: secrets,
		proxies: proxies,
		store:   store,
		policy:  cfg.SecretPolicy,
		log:     log,
	}
}

// Run loads both sources. Missing or unreadable sources degrade to empty
// lists; the only error returned is context cancellation.
func (uc *LoadAccounts) Run(ctx context.Context) (*LoadAccountsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := uc.readLines(ctx, uc.secrets, "private keys")
	valid := lo.Filter(lines, func(line string, _ int) bool {
		return uc.policy.Accepts(line)
	})
	accounts := lo.Map(valid, func(secret string, i int) domain.Account {
		return domain.Account{PrivateKey: secret, Index: i}
	})
	proxies := uc.readLines(ctx, uc.proxies, "proxies")

	result := &LoadAccountsResult{
		Accounts: accounts,
		Proxies:  proxies,
		Dropped:  len(lines) - len(valid),
	}
	uc.store.Replace(domain.AccountSet{Accounts: accounts, Proxies: proxies})

	if result.Dropped > 0 {
		uc.log.Warn("dropped malformed private keys", "dropped", result.Dropped, "policy", string(uc.policy))
	}
	if len(proxies) == 0 {
		uc.log.Info("no proxies configured, using direct connections")
	}
	uc.log.Info("accounts loaded", "accounts", len(accounts), "proxies", len(proxies))

	return result, nil
}

func (uc *LoadAccounts) readLines(ctx context.Context, src LineSource, what string) []string {
	lines, err := src.ReadLines(ctx)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		uc.log.Warn(what+" file not found", "path", src.Path())
		return nil
	case err != nil:
		uc.log.Error("failed to read "+what, "path", src.Path(), "error", err)
		return nil
	}
	return cleanLines(lines)
}

// cleanLines trims every line and drops blanks and # comments.
func cleanLines(lines []string) []string {
	trimmed := lo.Map(lines, func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Filter(trimmed, func(line string, _ int) bool {
		return line != "" && !strings.HasPrefix(line, "#")
	})
}
