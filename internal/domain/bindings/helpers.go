package bindings

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/math"
)

// MaxAllowance is the largest uint256, used for unlimited approvals.
var MaxAllowance = new(big.Int).Set(math.MaxBig256)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}

// MethodID returns the 4-byte selector of a packed call.
func MethodID(data []byte) []byte {
	if len(data) < 4 {
		return nil
	}
	return data[:4]
}
