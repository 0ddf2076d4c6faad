// Package wasmgrpc implements the cwplus.Transport interface against a
// wasmd node: smart queries go over the node's gRPC query service, and
// writes are built as x/wasm messages and handed to a caller-supplied
// Broadcaster that owns signing and broadcast.
package wasmgrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc"

	cwplus "github.com/nicolaslara/cw-plus"
)

// Broadcaster signs the given messages into one transaction, broadcasts
// it, and waits for inclusion. Implementations own account/sequence
// handling, fees, and timeout policy.
type Broadcaster interface {
	BroadcastTx(ctx context.Context, msgs ...sdk.Msg) (*sdk.TxResponse, error)
}

// Client is a cwplus.Transport backed by a wasmd node.
type Client struct {
	query wasmtypes.QueryClient
	bc    Broadcaster
}

var _ cwplus.Transport = (*Client)(nil)

// New creates a transport over an established gRPC connection and a
// broadcaster for write operations.
func New(conn grpc.ClientConnInterface, bc Broadcaster) *Client {
	return &Client{
		query: wasmtypes.NewQueryClient(conn),
		bc:    bc,
	}
}

// SmartQuery runs a read-only smart query and decodes the contract's
// JSON response into result.
func (c *Client) SmartQuery(ctx context.Context, contractAddr string, query, result any) error {
	bz, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("wasmgrpc: encoding query: %w", err)
	}

	resp, err := c.query.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contractAddr,
		QueryData: bz,
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Data, result); err != nil {
		return fmt.Errorf("wasmgrpc: decoding query response: %w", err)
	}
	return nil
}

// ExecuteContract submits a MsgExecuteContract and returns the tx hash.
func (c *Client) ExecuteContract(ctx context.Context, sender, contractAddr string, msg any, funds []cwplus.Coin) (string, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("wasmgrpc: encoding execute msg: %w", err)
	}

	coins, err := toSDKCoins(funds)
	if err != nil {
		return "", err
	}

	res, err := c.broadcast(ctx, &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contractAddr,
		Msg:      bz,
		Funds:    coins,
	})
	if err != nil {
		return "", err
	}
	return res.TxHash, nil
}

// StoreCode submits a MsgStoreCode and returns the code id recorded in
// the tx events.
func (c *Client) StoreCode(ctx context.Context, sender string, wasm []byte) (uint64, error) {
	res, err := c.broadcast(ctx, &wasmtypes.MsgStoreCode{
		Sender:       sender,
		WASMByteCode: wasm,
	})
	if err != nil {
		return 0, err
	}

	raw, err := eventAttribute(res, wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyCodeID)
	if err != nil {
		return 0, err
	}

	codeID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("wasmgrpc: parsing code id %q: %w", raw, err)
	}
	return codeID, nil
}

// InstantiateContract submits a MsgInstantiateContract and returns the
// new instance's address recorded in the tx events.
func (c *Client) InstantiateContract(ctx context.Context, sender string, codeID uint64, initMsg any, label, admin string) (string, error) {
	bz, err := json.Marshal(initMsg)
	if err != nil {
		return "", fmt.Errorf("wasmgrpc: encoding init msg: %w", err)
	}

	res, err := c.broadcast(ctx, &wasmtypes.MsgInstantiateContract{
		Sender: sender,
		Admin:  admin,
		CodeID: codeID,
		Label:  label,
		Msg:    bz,
	})
	if err != nil {
		return "", err
	}

	return eventAttribute(res, wasmtypes.EventTypeInstantiate, wasmtypes.AttributeKeyContractAddr)
}

func (c *Client) broadcast(ctx context.Context, msg sdk.Msg) (*sdk.TxResponse, error) {
	res, err := c.bc.BroadcastTx(ctx, msg)
	if err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return nil, fmt.Errorf("wasmgrpc: tx %s failed with code %d: %s", res.TxHash, res.Code, res.RawLog)
	}
	return res, nil
}

// eventAttribute scans tx events for one attribute value.
func eventAttribute(res *sdk.TxResponse, eventType, key string) (string, error) {
	for _, ev := range res.Events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == key {
				return attr.Value, nil
			}
		}
	}
	return "", fmt.Errorf("wasmgrpc: tx %s: no %s.%s event attribute", res.TxHash, eventType, key)
}

func toSDKCoins(funds []cwplus.Coin) (sdk.Coins, error) {
	if len(funds) == 0 {
		return nil, nil
	}

	coins := make([]sdk.Coin, 0, len(funds))
	for _, c := range funds {
		amount, ok := sdkmath.NewIntFromString(c.Amount)
		if !ok {
			return nil, fmt.Errorf("wasmgrpc: invalid coin amount %q", c.Amount)
		}
		coins = append(coins, sdk.Coin{Denom: c.Denom, Amount: amount})
	}
	return sdk.NewCoins(coins...), nil
}
