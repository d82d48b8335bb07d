package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var secretPattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)

// Account is one controlled key. It is immutable once loaded.
type Account struct {
	PrivateKey string
	Index      int
}

// Number is the 1-based ordinal used in log lines.
func (a Account) Number() int {
	return a.Index + 1
}

// Address derives the account address from its private key.
func (a Account) Address() (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(a.PrivateKey), "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// String never includes the private key.
func (a Account) String() string {
	return fmt.Sprintf("account #%d", a.Number())
}

// AccountSet is the loaded account list with its parallel proxy list.
type AccountSet struct {
	Accounts []Account
	Proxies  []string
}

// Empty reports whether no usable account is loaded.
func (s AccountSet) Empty() bool {
	return len(s.Accounts) == 0
}

// ProxyFor resolves the proxy of account index i by round robin.
// An empty list means a direct connection.
func ProxyFor(proxies []string, i int) string {
	if len(proxies) == 0 || i < 0 {
		return ""
	}
	return proxies[i%len(proxies)]
}

// IsValidSecret reports whether s is 64 hex characters with an optional 0x prefix.
func IsValidSecret(s string) bool {
	return secretPattern.MatchString(s)
}

// SecretPolicy decides which secret lines are usable.
type SecretPolicy string

const (
	// SecretPolicyStrict drops lines that are not 64 hex characters
	SecretPolicyStrict SecretPolicy = "strict"
	// SecretPolicyLoose accepts every non-blank line
	SecretPolicyLoose SecretPolicy = "loose"
)

// Accepts applies the policy to a trimmed, non-blank line.
func (p SecretPolicy) Accepts(line string) bool {
	if p == SecretPolicyLoose {
		return true
	}
	return IsValidSecret(line)
}

// ParseSecretPolicy parses a policy name; empty means strict.
func ParseSecretPolicy(s string) (SecretPolicy, error) {
	switch SecretPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SecretPolicyStrict:
		return SecretPolicyStrict, nil
	case SecretPolicyLoose:
		return SecretPolicyLoose, nil
	default:
		return "", fmt.Errorf("unknown secret policy %q (available: strict, loose)", s)
	}
}

// AllowancePolicy decides whether an executor checks the spending allowance
// before submitting its main transaction.
type AllowancePolicy string

const (
	AllowanceEnsure AllowancePolicy = "ensure"
	AllowanceSkip   AllowancePolicy = "skip"
)

// ParseAllowancePolicy parses a policy name; empty yields def.
func ParseAllowancePolicy(s string, def AllowancePolicy) (AllowancePolicy, error) {
	switch AllowancePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return def, nil
	case AllowanceEnsure:
		return AllowanceEnsure, nil
	case AllowanceSkip:
		return AllowanceSkip, nil
	default:
		return "", fmt.Errorf("unknown allowance policy %q (available: ensure, skip)", s)
	}
}

// RedactProxy hides proxy credentials for display. An empty endpoint
// renders as "direct".
func RedactProxy(proxy string) string {
	if proxy == "" {
		return "direct"
	}
	u, err := url.Parse(proxy)
	if err != nil || u.Host == "" {
		return proxy
	}
	return u.Redacted()
}
