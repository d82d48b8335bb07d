package domain

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FeeData is a live fee estimate. GasFeeCap and GasTipCap are set on
// EIP-1559 networks, GasPrice otherwise.
type FeeData struct {
	GasPrice  *big.Int
	GasFeeCap *big.Int
	GasTipCap *big.Int
}

// IsDynamic reports whether the estimate carries EIP-1559 fields.
func (f FeeData) IsDynamic() bool {
	return f.GasFeeCap != nil && f.GasTipCap != nil
}

// TxRequest is a contract call ready to be signed and submitted.
type TxRequest struct {
	To       common.Address
	Data     []byte
	Value    *big.Int
	Nonce    uint64
	GasLimit uint64
	Fee      FeeData
}

// TxHandle identifies a submitted transaction.
type TxHandle struct {
	Hash common.Hash
}

// Short returns the abbreviated hash used in log lines.
func (h TxHandle) Short() string {
	return ShortHash(h.Hash)
}

// TxReceipt is the confirmation outcome of a transaction.
type TxReceipt struct {
	Hash        common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Success     bool
}

// ShortHash formats a hash as its first 6 and last 4 characters.
func ShortHash(h common.Hash) string {
	return shorten(h.Hex())
}

// ShortAddress formats an address as its first 6 and last 4 characters.
func ShortAddress(a common.Address) string {
	return shorten(a.Hex())
}

func shorten(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// RoundDisplay rounds a display amount to 6 decimals.
func RoundDisplay(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// ToBaseUnits converts a display amount to the token's base-unit integer.
// The amount is rounded to 6 decimals first.
func ToBaseUnits(v float64, decimals uint8) *big.Int {
	micro := big.NewInt(int64(math.Round(v * 1e6)))
	if decimals >= 6 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals-6)), nil)
		return micro.Mul(micro, scale)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(6-decimals)), nil)
	return micro.Quo(micro, scale)
}

// FormatUnits renders a base-unit integer with the given decimals.
func FormatUnits(x *big.Int, decimals uint8, precision int) string {
	if x == nil {
		return "0"
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Rat).SetFrac(x, denom).FloatString(precision)
}

// Wallet is one row of a balance refresh.
type Wallet struct {
	Index   int
	Address common.Address
	Proxy   string
	Balance *big.Int
	Err     error
}

// Number is the 1-based ordinal of the wallet.
func (w Wallet) Number() int {
	return w.Index + 1
}

func (w Wallet) String() string {
	return fmt.Sprintf("#%d %s", w.Number(), ShortAddress(w.Address))
}
