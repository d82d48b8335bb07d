package bindings

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestSelectors(t *testing.T) {
	approve, err := EncodeApprove(spender, big.NewInt(1))
	require.NoError(t, err)
	allowance, err := EncodeAllowance(owner, spender)
	require.NoError(t, err)
	deposit, err := EncodeDeposit(big.NewInt(1), owner)
	require.NoError(t, err)
	swap, err := EncodeExactInputSingle(ExactInputSingleParams{TokenIn: owner, TokenOut: spender, AmountIn: big.NewInt(1)})
	require.NoError(t, err)
	multi, err := EncodeMulticall(big.NewInt(1), [][]byte{swap})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"approve(address,uint256)", approve, "095ea7b3"},
		{"allowance(address,address)", allowance, "dd62ed3e"},
		{"deposit(uint256,address)", deposit, "6e553f65"},
		{"exactInputSingle(tuple)", swap, "04e45aaf"},
		{"multicall(uint256,bytes[])", multi, "5ae401dc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hex.EncodeToString(MethodID(tt.data)))
		})
	}
}

func TestDecodeAllowance(t *testing.T) {
	want := big.NewInt(123456789)
	ret := common.LeftPadBytes(want.Bytes(), 32)

	got, err := DecodeAllowance(ret)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(got))

	_, err = DecodeAllowance(nil)
	assert.Error(t, err)
}

func TestMulticallRoundTrip(t *testing.T) {
	inner, err := EncodeExactInputSingle(ExactInputSingleParams{
		TokenIn:   owner,
		TokenOut:  spender,
		Fee:       big.NewInt(3000),
		Recipient: owner,
		AmountIn:  big.NewInt(5),
	})
	require.NoError(t, err)

	data, err := EncodeMulticall(big.NewInt(1_700_000_000), [][]byte{inner})
	require.NoError(t, err)

	deadline, calls, err := DecodeMulticall(data)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), deadline.Int64())
	require.Len(t, calls, 1)
	assert.Equal(t, inner, calls[0])

	_, _, err = DecodeMulticall(inner)
	assert.Error(t, err)
}

func TestMaxAllowanceIsUint256Max(t *testing.T) {
	assert.Equal(t, 256, MaxAllowance.BitLen())
	one := new(big.Int).Add(MaxAllowance, big.NewInt(1))
	assert.Equal(t, 257, one.BitLen())
}
