package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

func TestLoadAccounts(t *testing.T) {
	ctx := context.Background()
	secretLines := []string{
		"  " + testKey1 + "  ",
		"",
		"# staging key",
		"not-a-key",
		testKey2,
		"   ",
		testKey1,
	}

	tests := []struct {
		name        string
		policy      domain.SecretPolicy
		secrets     lineSource
		proxies     lineSource
		wantKeys    []string
		wantProxies []string
		wantDropped int
	}{
		{
			name:        "strict drops malformed keys",
			policy:      domain.SecretPolicyStrict,
			secrets:     lineSource{lines: secretLines},
			proxies:     lineSource{lines: []string{"http://a:1", "", " socks5://b:2 "}},
			wantKeys:    []string{testKey1, testKey2, testKey1},
			wantProxies: []string{"http://a:1", "socks5://b:2"},
			wantDropped: 1,
		},
		{
			name:        "loose keeps every non-blank line",
			policy:      domain.SecretPolicyLoose,
			secrets:     lineSource{lines: secretLines},
			proxies:     lineSource{lines: nil},
			wantKeys:    []string{testKey1, "not-a-key", testKey2, testKey1},
			wantDropped: 0,
		},
		{
			name:    "missing secrets file yields no accounts",
			policy:  domain.SecretPolicyStrict,
			secrets: lineSource{err: fmt.Errorf("open private_keys.txt: %w", fs.ErrNotExist), path: "private_keys.txt"},
			proxies: lineSource{err: fs.ErrNotExist, path: "proxies.txt"},
		},
		{
			name:        "unreadable proxies file yields direct connections",
			policy:      domain.SecretPolicyStrict,
			secrets:     lineSource{lines: []string{testKey2}},
			proxies:     lineSource{err: errors.New("permission denied")},
			wantKeys:    []string{testKey2},
			wantDropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testRuntimeConfig()
			cfg.SecretPolicy = tt.policy
			store := newMemAccounts(nil)
			uc := usecase.NewLoadAccounts(tt.secrets, tt.proxies, store, cfg, discardLogger())

			result, err := uc.Run(ctx)
			require.NoError(t, err)

			keys := make([]string, len(result.Accounts))
			for i, a := range result.Accounts {
				keys[i] = a.PrivateKey
				assert.Equal(t, i, a.Index)
			}
			assert.Equal(t, len(tt.wantKeys), len(keys))
			if len(tt.wantKeys) > 0 {
				assert.Equal(t, tt.wantKeys, keys)
			}
			assert.Equal(t, len(tt.wantProxies), len(result.Proxies))
			if len(tt.wantProxies) > 0 {
				assert.Equal(t, tt.wantProxies, result.Proxies)
			}
			assert.Equal(t, tt.wantDropped, result.Dropped)

			snapshot := store.Snapshot()
			assert.Equal(t, result.Accounts, snapshot.Accounts)
			assert.Equal(t, result.Proxies, snapshot.Proxies)
		})
	}
}

func TestLoadAccounts_ReplacesPreviousSet(t *testing.T) {
	store := newMemAccounts([]string{"http://old:1"}, testKey1, testKey1, testKey1)
	uc := usecase.NewLoadAccounts(lineSource{lines: []string{testKey2}}, lineSource{}, store, testRuntimeConfig(), discardLogger())

	_, err := uc.Run(context.Background())
	require.NoError(t, err)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Accounts, 1)
	assert.Equal(t, testKey2, snapshot.Accounts[0].PrivateKey)
	assert.Empty(t, snapshot.Proxies)
}

func TestLoadAccounts_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewLoadAccounts(lineSource{}, lineSource{}, newMemAccounts(nil), testRuntimeConfig(), discardLogger())
	_, err := uc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
