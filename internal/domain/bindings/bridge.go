package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const bridgeABIJSON = `[
	{"type":"function","name":"deposit","stateMutability":"nonpayable",
	 "inputs":[{"name":"amount","type":"uint256"},{"name":"receiver","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]}
]`

var bridgeABI = mustParseABI(bridgeABIJSON)

// EncodeDeposit packs deposit(amount, receiver).
func EncodeDeposit(amount *big.Int, receiver common.Address) ([]byte, error) {
	return bridgeABI.Pack("deposit", amount, receiver)
}
