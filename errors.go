package cwplus

import (
	"errors"
	"fmt"
)

// Sentinel errors for common local failure conditions.
var (
	// ErrNoTransport indicates the client was built without a transport.
	ErrNoTransport = errors.New("cwplus: no transport configured")

	// ErrNoWallet indicates the client was built without a signing identity.
	ErrNoWallet = errors.New("cwplus: no wallet configured")

	// ErrNoFaucet indicates a credit was requested with no faucet configured.
	ErrNoFaucet = errors.New("cwplus: no faucet configured")

	// ErrBadPassphrase indicates the keyfile could not be decrypted with
	// the supplied passphrase. The keyfile on disk is left untouched.
	ErrBadPassphrase = errors.New("cwplus: keyfile passphrase does not match")

	// ErrInvalidGasPrice indicates a gas price string could not be parsed.
	ErrInvalidGasPrice = errors.New("cwplus: invalid gas price")
)

// QueryError indicates a read-only contract query failed, either in the
// transport or at the node.
type QueryError struct {
	Contract string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("cwplus: query on contract %s: %v", e.Contract, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// ExecuteError indicates a state-mutating contract call failed. This
// covers transport and signature failures as well as remote policy
// rejections such as insufficient allowance, a non-admin caller, or an
// admin update against a frozen contract. The remote cause is carried
// unmodified in Err.
type ExecuteError struct {
	Contract string
	Action   string
	Err      error
}

func (e *ExecuteError) Error() string {
	if e.Contract == "" {
		return fmt.Sprintf("cwplus: execute %s: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("cwplus: execute %s on contract %s: %v", e.Action, e.Contract, e.Err)
}

func (e *ExecuteError) Unwrap() error {
	return e.Err
}

// ArtifactFetchError indicates a non-success status downloading the
// contract binary.
type ArtifactFetchError struct {
	URL    string
	Status int
}

func (e *ArtifactFetchError) Error() string {
	return fmt.Sprintf("cwplus: fetching artifact %s: unexpected status %d", e.URL, e.Status)
}

// WalletError indicates a keyfile operation failed. A decrypt failure
// never overwrites the existing keyfile.
type WalletError struct {
	Path string
	Op   string
	Err  error
}

func (e *WalletError) Error() string {
	return fmt.Sprintf("cwplus: wallet %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WalletError) Unwrap() error {
	return e.Err
}

// FaucetError indicates the faucet rejected a credit request.
type FaucetError struct {
	URL    string
	Status int
}

func (e *FaucetError) Error() string {
	return fmt.Sprintf("cwplus: faucet %s: unexpected status %d", e.URL, e.Status)
}
