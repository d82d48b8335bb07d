package bindings

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Router ABI subset of a multicall-capable V3 router (SwapRouter02 layout:
// the deadline travels with multicall, not with the swap params).
const routerABIJSON = `[
	{"type":"function","name":"exactInputSingle","stateMutability":"payable",
	 "inputs":[{"name":"params","type":"tuple","components":[
		{"name":"tokenIn","type":"address"},
		{"name":"tokenOut","type":"address"},
		{"name":"fee","type":"uint24"},
		{"name":"recipient","type":"address"},
		{"name":"amountIn","type":"uint256"},
		{"name":"amountOutMinimum","type":"uint256"},
		{"name":"sqrtPriceLimitX96","type":"uint160"}]}],
	 "outputs":[{"name":"amountOut","type":"uint256"}]},
	{"type":"function","name":"multicall","stateMutability":"payable",
	 "inputs":[{"name":"deadline","type":"uint256"},{"name":"data","type":"bytes[]"}],
	 "outputs":[{"name":"results","type":"bytes[]"}]}
]`

var routerABI = mustParseABI(routerABIJSON)

// ExactInputSingleParams mirrors the router's params tuple.
type ExactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

// EncodeExactInputSingle packs exactInputSingle(params).
func EncodeExactInputSingle(p ExactInputSingleParams) ([]byte, error) {
	if p.AmountOutMinimum == nil {
		p.AmountOutMinimum = new(big.Int)
	}
	if p.SqrtPriceLimitX96 == nil {
		p.SqrtPriceLimitX96 = new(big.Int)
	}
	if p.Fee == nil {
		p.Fee = new(big.Int)
	}
	return routerABI.Pack("exactInputSingle", p)
}

// EncodeMulticall packs multicall(deadline, calls).
func EncodeMulticall(deadline *big.Int, calls [][]byte) ([]byte, error) {
	return routerABI.Pack("multicall", deadline, calls)
}

// DecodeMulticall unpacks the deadline and inner calls of a multicall payload.
func DecodeMulticall(data []byte) (*big.Int, [][]byte, error) {
	method, err := routerABI.MethodById(MethodID(data))
	if err != nil {
		return nil, nil, err
	}
	if method.Name != "multicall" {
		return nil, nil, fmt.Errorf("not a multicall payload: %s", method.Name)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return args[0].(*big.Int), args[1].([][]byte), nil
}
