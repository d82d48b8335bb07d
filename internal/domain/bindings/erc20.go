package bindings

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const erc20ABIJSON = `[
	{"type":"function","name":"allowance","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable",
	 "inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

// EncodeAllowance packs allowance(owner, spender).
func EncodeAllowance(owner, spender common.Address) ([]byte, error) {
	return erc20ABI.Pack("allowance", owner, spender)
}

// DecodeAllowance unpacks the uint256 returned by allowance.
func DecodeAllowance(ret []byte) (*big.Int, error) {
	return decodeUint256("allowance", ret)
}

// EncodeApprove packs approve(spender, amount).
func EncodeApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	return erc20ABI.Pack("approve", spender, amount)
}

func decodeUint256(method string, ret []byte) (*big.Int, error) {
	if len(ret) == 0 {
		return nil, fmt.Errorf("%s: empty return data", method)
	}
	out, err := erc20ABI.Unpack(method, ret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected return type %T", method, out[0])
	}
	return v, nil
}
