package cwplus

import "context"

// Transport carries contract operations to a node. Implementations own
// signing, broadcast, and timeout policy; the client layers no retries,
// caching, or locking on top.
//
// Messages are passed as Go values and marshaled to the contract's JSON
// wire format by the transport.
type Transport interface {
	// SmartQuery runs a read-only smart query against a contract and
	// decodes the JSON response into result.
	SmartQuery(ctx context.Context, contractAddr string, query, result any) error

	// ExecuteContract submits a state-mutating contract call and returns
	// the transaction hash once the transaction is accepted.
	ExecuteContract(ctx context.Context, sender, contractAddr string, msg any, funds []Coin) (string, error)

	// StoreCode registers a wasm binary on chain and returns its code id.
	StoreCode(ctx context.Context, sender string, wasm []byte) (uint64, error)

	// InstantiateContract creates a contract instance from a stored code
	// id and returns its address. admin, if non-empty, is the chain-level
	// migration admin, distinct from the contract's internal admin set.
	InstantiateContract(ctx context.Context, sender string, codeID uint64, initMsg any, label, admin string) (string, error)
}
