package gotchi

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for failures detected before or after the remote call.
var (
	// ErrNoSigner indicates a write operation was attempted on a client
	// constructed without WithSigner.
	ErrNoSigner = errors.New("gotchi: no signer configured for write operation")

	// ErrNilTokenID indicates a nil token id argument.
	ErrNilTokenID = errors.New("gotchi: nil token id")

	// ErrNilHauntID indicates a nil haunt id argument.
	ErrNilHauntID = errors.New("gotchi: nil haunt id")

	// ErrNilCollateralID indicates a nil collateral id argument.
	ErrNilCollateralID = errors.New("gotchi: nil collateral id")

	// ErrNilAmount indicates a nil amount argument.
	ErrNilAmount = errors.New("gotchi: nil amount")

	// ErrTransactionReverted indicates the transaction was mined but the
	// contract reverted it. The revert reason is not fetched.
	ErrTransactionReverted = errors.New("gotchi: transaction reverted")

	// ErrWaitTimeout indicates the client's wait timeout elapsed before the
	// transaction was mined. The transaction may still confirm later.
	ErrWaitTimeout = errors.New("gotchi: timed out waiting for transaction receipt")
)

// CallError wraps a failure from a read-only contract call.
type CallError struct {
	Method string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("gotchi: call %q: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// EventError wraps a failure decoding a facet event from a receipt log.
type EventError struct {
	Event string
	Err   error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("gotchi: event %q: %v", e.Event, e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// TxError wraps a failure from a write operation. TxHash is the zero hash
// when the failure happened before the transaction was broadcast.
type TxError struct {
	Method string
	TxHash common.Hash
	Err    error
}

func (e *TxError) Error() string {
	if e.TxHash == (common.Hash{}) {
		return fmt.Sprintf("gotchi: transact %q: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("gotchi: transact %q (tx %s): %v", e.Method, e.TxHash.Hex(), e.Err)
}

func (e *TxError) Unwrap() error {
	return e.Err
}
