package cwplus

import (
	"net/http"

	"github.com/rs/zerolog"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger attaches a structured logger to the client. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = logger
	}
}

// WithGasPrice sets the gas price used to build the fee schedule.
// Default is 0.025ucosm.
func WithGasPrice(price GasPrice) ClientOption {
	return func(c *Client) {
		c.gasPrice = price
	}
}

// WithGasLimits sets per-operation gas limits for the fee schedule.
func WithGasLimits(limits GasLimits) ClientOption {
	return func(c *Client) {
		c.gasLimits = limits
	}
}

// WithArtifact overrides the URL of the wasm artifact fetched by Upload.
func WithArtifact(url string) ClientOption {
	return func(c *Client) {
		c.artifactURL = url
	}
}

// WithFaucet attaches a faucet for crediting an unfunded identity.
func WithFaucet(faucet *Faucet) ClientOption {
	return func(c *Client) {
		c.faucet = faucet
	}
}

// WithHTTPClient overrides the HTTP client used for artifact downloads.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.http = httpClient
	}
}
