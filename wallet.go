package cwplus

import (
	"fmt"
	"os"

	"github.com/cosmos/cosmos-sdk/crypto"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// keyfileAlgo is recorded in the armor header of generated keyfiles.
const keyfileAlgo = "secp256k1"

// Wallet is a local signing identity backed by an encrypted keyfile.
type Wallet struct {
	address string
	priv    cryptotypes.PrivKey
}

// LoadOrCreateWallet loads the identity stored at path, or generates one
// if no file exists there. The returned bool reports whether a new
// identity was created.
//
// The two paths are mutually exclusive on file existence: a present file
// is only ever decrypted, and a failed decrypt (wrong passphrase,
// corrupt armor) returns a WalletError without touching the file. A new
// keyfile is written only when path does not exist.
func LoadOrCreateWallet(path, passphrase, bech32Prefix string) (*Wallet, bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		w, err := loadWallet(path, passphrase, bech32Prefix)
		return w, false, err
	case os.IsNotExist(err):
		w, err := createWallet(path, passphrase, bech32Prefix)
		return w, true, err
	default:
		return nil, false, &WalletError{Path: path, Op: "stat", Err: err}
	}
}

func loadWallet(path, passphrase, bech32Prefix string) (*Wallet, error) {
	armored, err := os.ReadFile(path)
	if err != nil {
		return nil, &WalletError{Path: path, Op: "read", Err: err}
	}

	priv, _, err := crypto.UnarmorDecryptPrivKey(string(armored), passphrase)
	if err != nil {
		// The keyfile stays as it is; only the decrypt attempt failed.
		return nil, &WalletError{Path: path, Op: "decrypt", Err: ErrBadPassphrase}
	}

	return newWallet(priv, bech32Prefix)
}

func createWallet(path, passphrase, bech32Prefix string) (*Wallet, error) {
	priv := secp256k1.GenPrivKey()

	armored := crypto.EncryptArmorPrivKey(priv, passphrase, keyfileAlgo)
	if err := os.WriteFile(path, []byte(armored), 0o600); err != nil {
		return nil, &WalletError{Path: path, Op: "write", Err: err}
	}

	return newWallet(priv, bech32Prefix)
}

func newWallet(priv cryptotypes.PrivKey, bech32Prefix string) (*Wallet, error) {
	address, err := sdk.Bech32ifyAddressBytes(bech32Prefix, priv.PubKey().Address())
	if err != nil {
		return nil, fmt.Errorf("cwplus: encoding wallet address: %w", err)
	}

	return &Wallet{address: address, priv: priv}, nil
}

// Address returns the wallet's bech32 account address.
func (w *Wallet) Address() string {
	return w.address
}

// PubKey returns the wallet's public key.
func (w *Wallet) PubKey() cryptotypes.PubKey {
	return w.priv.PubKey()
}

// PrivKey returns the wallet's private key for use by a signing
// transport.
func (w *Wallet) PrivKey() cryptotypes.PrivKey {
	return w.priv
}

// Sign signs msg with the wallet's private key.
func (w *Wallet) Sign(msg []byte) ([]byte, error) {
	return w.priv.Sign(msg)
}
