package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrNoAccounts is returned when an operation needs at least one loaded account
	ErrNoAccounts = errors.New("no accounts loaded")

	// ErrAlreadyRunning is returned when activity is started while a run is active
	ErrAlreadyRunning = errors.New("activity already running")

	// ErrNotRunning is returned when stop is requested without an active run
	ErrNotRunning = errors.New("activity is not running")

	// ErrInvalidSecret is returned when a private key line has the wrong shape
	ErrInvalidSecret = errors.New("invalid private key")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidChainID is returned when the endpoint reports a different chain
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrNotConnected is returned when a client is used after Close
	ErrNotConnected = errors.New("not connected")

	// ErrInvalidProxy is returned for proxy endpoints with an unsupported scheme
	ErrInvalidProxy = errors.New("invalid proxy")

	// ErrTxReverted is returned when a mined transaction has a failed status
	ErrTxReverted = errors.New("transaction reverted")
)

// TxError describes a failed on-chain step.
type TxError struct {
	Step string
	Hash common.Hash
	Err  error
}

func (e *TxError) Error() string {
	if e.Hash == (common.Hash{}) {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Step, ShortHash(e.Hash), e.Err)
}

func (e *TxError) Unwrap() error {
	return e.Err
}
