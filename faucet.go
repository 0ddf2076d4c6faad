package cwplus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Faucet requests testnet funds for an account. It is used once, when
// the bound identity has no funded account yet.
type Faucet struct {
	// URL is the faucet's credit endpoint.
	URL string

	// HTTPClient overrides http.DefaultClient when set.
	HTTPClient *http.Client
}

type faucetRequest struct {
	Ticker  string `json:"ticker"`
	Address string `json:"address"`
}

// Credit asks the faucet to fund address with the token named by ticker.
func (f *Faucet) Credit(ctx context.Context, ticker, address string) error {
	body, err := json.Marshal(faucetRequest{Ticker: ticker, Address: address})
	if err != nil {
		return fmt.Errorf("cwplus: encoding faucet request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cwplus: building faucet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cwplus: faucet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FaucetError{URL: f.URL, Status: resp.StatusCode}
	}

	return nil
}
