package cwplus

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// defaultArtifactURL points at the versioned cw1-subkeys build released
// with cw-plus. Upload always fetches this exact artifact unless
// overridden with WithArtifact.
const defaultArtifactURL = "https://github.com/CosmWasm/cw-plus/releases/download/v0.6.2/cw1_subkeys.wasm"

// defaultLabel is used when Instantiate is called with an empty label.
const defaultLabel = "cw1-subkeys"

func defaultGasPrice() GasPrice {
	return GasPrice{Denom: "ucosm", Price: decimal.RequireFromString("0.025")}
}

// Client drives the lifecycle of proxy contracts for one signing
// identity: uploading code, instantiating instances, and binding to
// existing ones. It keeps no state beyond its configuration; all
// contract state lives on chain.
type Client struct {
	transport Transport
	wallet    *Wallet

	gasPrice    GasPrice
	gasLimits   GasLimits
	fees        FeeTable
	artifactURL string
	faucet      *Faucet
	http        *http.Client
	log         zerolog.Logger
}

// NewClient creates a Client over a transport and a signing identity.
func NewClient(transport Transport, wallet *Wallet, opts ...ClientOption) *Client {
	c := &Client{
		transport:   transport,
		wallet:      wallet,
		gasPrice:    defaultGasPrice(),
		gasLimits:   DefaultGasLimits(),
		artifactURL: defaultArtifactURL,
		http:        http.DefaultClient,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.fees = BuildFeeTable(c.gasPrice, c.gasLimits)
	return c
}

// Sender returns the bech32 address of the client's signing identity.
func (c *Client) Sender() string {
	return c.wallet.Address()
}

// Fees returns the static fee schedule computed from the configured gas
// price and limits.
func (c *Client) Fees() FeeTable {
	return c.fees
}

// Upload fetches the contract artifact and registers it on chain,
// returning the code id for later instantiation.
func (c *Client) Upload(ctx context.Context) (uint64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}

	wasm, err := c.fetchArtifact(ctx)
	if err != nil {
		return 0, err
	}
	c.log.Debug().Str("url", c.artifactURL).Int("size", len(wasm)).Msg("fetched contract artifact")

	codeID, err := c.transport.StoreCode(ctx, c.Sender(), wasm)
	if err != nil {
		return 0, &ExecuteError{Action: "store_code", Err: err}
	}
	c.log.Info().Uint64("codeId", codeID).Msg("stored contract code")

	return codeID, nil
}

// Instantiate creates a live contract instance from an uploaded code id
// and returns a client bound to it. label is a display name only. admin,
// if non-empty, names the chain-level migration admin for the instance,
// which is distinct from the contract's internal admin set.
func (c *Client) Instantiate(ctx context.Context, codeID uint64, initMsg InstantiateMsg, label, admin string) (*Cw1, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if label == "" {
		label = defaultLabel
	}

	addr, err := c.transport.InstantiateContract(ctx, c.Sender(), codeID, initMsg, label, admin)
	if err != nil {
		return nil, &ExecuteError{Action: "instantiate", Err: err}
	}
	c.log.Info().Uint64("codeId", codeID).Str("contract", addr).Str("label", label).Msg("instantiated contract")

	return c.Use(addr), nil
}

// Use binds to an existing contract instance. The binding is purely
// local: no check is made that the address hosts a compatible contract,
// and a mismatch surfaces on the first query or execute.
func (c *Client) Use(contractAddr string) *Cw1 {
	return &Cw1{client: c, addr: contractAddr}
}

// Credit asks the configured faucet to fund the client's own address
// with the token named by ticker. Call it when the signing identity has
// no funded account yet.
func (c *Client) Credit(ctx context.Context, ticker string) error {
	if c.faucet == nil {
		return ErrNoFaucet
	}
	if c.wallet == nil {
		return ErrNoWallet
	}
	return c.faucet.Credit(ctx, ticker, c.Sender())
}

func (c *Client) check() error {
	if c.transport == nil {
		return ErrNoTransport
	}
	if c.wallet == nil {
		return ErrNoWallet
	}
	return nil
}

func (c *Client) fetchArtifact(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.artifactURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cwplus: building artifact request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cwplus: downloading artifact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ArtifactFetchError{URL: c.artifactURL, Status: resp.StatusCode}
	}

	wasm, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cwplus: reading artifact: %w", err)
	}
	return wasm, nil
}
