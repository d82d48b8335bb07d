package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestProxyFor(t *testing.T) {
	proxies := []string{"http://a:1", "socks5://b:2", "http://c:3"}

	tests := []struct {
		name    string
		proxies []string
		index   int
		want    string
	}{
		{"first", proxies, 0, "http://a:1"},
		{"last", proxies, 2, "http://c:3"},
		{"wraps around", proxies, 3, "http://a:1"},
		{"wraps twice", proxies, 7, "socks5://b:2"},
		{"empty list means direct", nil, 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProxyFor(tt.proxies, tt.index))
		})
	}

	// deterministic for a fixed list
	for i := 0; i < 10; i++ {
		assert.Equal(t, ProxyFor(proxies, i), ProxyFor(proxies, i))
	}
}

func TestIsValidSecret(t *testing.T) {
	assert.True(t, IsValidSecret(testKey))
	assert.True(t, IsValidSecret("0x"+testKey))
	assert.False(t, IsValidSecret(testKey[:63]))
	assert.False(t, IsValidSecret(testKey+"0"))
	assert.False(t, IsValidSecret("0x"+testKey[:62]+"zz"))
	assert.False(t, IsValidSecret(""))
}

func TestSecretPolicy(t *testing.T) {
	assert.True(t, SecretPolicyStrict.Accepts(testKey))
	assert.False(t, SecretPolicyStrict.Accepts("not-a-key"))
	assert.True(t, SecretPolicyLoose.Accepts("not-a-key"))

	p, err := ParseSecretPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SecretPolicyStrict, p)

	p, err = ParseSecretPolicy("LOOSE")
	require.NoError(t, err)
	assert.Equal(t, SecretPolicyLoose, p)

	_, err = ParseSecretPolicy("lenient")
	assert.Error(t, err)
}

func TestParseAllowancePolicy(t *testing.T) {
	p, err := ParseAllowancePolicy("", AllowanceSkip)
	require.NoError(t, err)
	assert.Equal(t, AllowanceSkip, p)

	p, err = ParseAllowancePolicy("ensure", AllowanceSkip)
	require.NoError(t, err)
	assert.Equal(t, AllowanceEnsure, p)

	_, err = ParseAllowancePolicy("maybe", AllowanceSkip)
	assert.Error(t, err)
}

func TestAccountAddress(t *testing.T) {
	acc := Account{PrivateKey: "0x" + testKey, Index: 0}
	addr, err := acc.Address()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"), addr)
	assert.Equal(t, 1, acc.Number())
	assert.NotContains(t, acc.String(), testKey)

	_, err = Account{PrivateKey: "nope"}.Address()
	assert.ErrorIs(t, err, ErrInvalidSecret)
}

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals uint8
		want     string
	}{
		{"18 decimals", 0.01, 18, "10000000000000000"},
		{"rounds to 6 decimals", 0.012345678, 18, "12346000000000000"},
		{"6 decimals", 0.05, 6, "50000"},
		{"2 decimals truncates", 0.019999, 2, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBaseUnits(tt.value, tt.decimals)
			want, _ := new(big.Int).SetString(tt.want, 10)
			assert.Equal(t, 0, want.Cmp(got), "got %s", got)
		})
	}
}

func TestFormatUnits(t *testing.T) {
	v, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.5000", FormatUnits(v, 18, 4))
	assert.Equal(t, "0", FormatUnits(nil, 18, 4))
}

func TestShortHash(t *testing.T) {
	h := common.HexToHash("0xabcdef0000000000000000000000000000000000000000000000000000001234")
	assert.Equal(t, "0xabcd...1234", ShortHash(h))
	assert.Equal(t, "0xabcd...1234", TxHandle{Hash: h}.Short())

	a := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
	assert.Equal(t, "0x2c75...5c23", ShortAddress(a))
}

func TestTxErrorUnwrap(t *testing.T) {
	err := &TxError{Step: "deposit", Err: ErrTxReverted}
	assert.ErrorIs(t, err, ErrTxReverted)
	assert.Equal(t, "deposit: transaction reverted", err.Error())
}
