package blockchain

import (
	"math/big"

	"github.com/trebuchet-org/courier/internal/domain"
)

// dynamicFee prices an EIP-1559 transaction so it stays includable while
// the base fee doubles: feeCap = 2*baseFee + tip.
func dynamicFee(baseFee, tip *big.Int) *domain.FeeData {
	feeCap := new(big.Int).Mul(baseFee, big.NewInt(2))
	feeCap.Add(feeCap, tip)
	return &domain.FeeData{
		GasFeeCap: feeCap,
		GasTipCap: new(big.Int).Set(tip),
	}
}

func legacyFee(gasPrice *big.Int) *domain.FeeData {
	return &domain.FeeData{GasPrice: new(big.Int).Set(gasPrice)}
}
